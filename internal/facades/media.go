package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// MediaHostFacade uploads images to the external media-hosting service,
// which stores them, applies the configured size/quality transformation
// and answers with a stable public URL.
type MediaHostFacade struct {
	client *http.Client
	url    string
	folder string
}

// NewMediaHostFacade creates a facade for the media host upload endpoint.
func NewMediaHostFacade(url, folder string, timeout time.Duration) *MediaHostFacade {
	return &MediaHostFacade{
		client: &http.Client{Timeout: timeout},
		url:    url,
		folder: folder,
	}
}

// mediaHostResponse mirrors the media host's upload answer.
type mediaHostResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Upload streams one image to the media host and returns its public URL
// and host-side asset id.
func (f *MediaHostFacade) Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadedImage, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()

		if err := mw.WriteField("folder", f.folder); err != nil {
			pw.CloseWithError(err)
			return
		}
		// Media host transform: cap at 800x800, automatic quality.
		if err := mw.WriteField("transformation", "c_limit,w_800,h_800/q_auto"); err != nil {
			pw.CloseWithError(err)
			return
		}

		part, err := mw.CreateFormFile("image", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, pr)
	if err != nil {
		logger.Log.Errorw("failed to build media host request", "error", err)
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("media host request failed", "url", f.url, "filename", filename, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		err := fmt.Errorf("media host returned status %d", resp.StatusCode)
		logger.Log.Errorw("media host rejected upload", "url", f.url, "filename", filename, "error", err)
		return nil, err
	}

	var body mediaHostResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode media host response", "error", err)
		return nil, err
	}

	logger.Log.Infow("image uploaded", "filename", filename, "public_id", body.PublicID)

	return &models.UploadedImage{
		URL:      body.SecureURL,
		PublicID: body.PublicID,
	}, nil
}
