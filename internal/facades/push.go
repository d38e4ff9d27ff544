package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// PushGatewayFacade submits batched push notifications to the external
// push-delivery gateway over a single HTTP POST. There is no retry, no
// batch partitioning and no delivery-receipt tracking; the client timeout
// is the only bound on the call.
type PushGatewayFacade struct {
	client *http.Client
	url    string
}

// NewPushGatewayFacade creates a facade for the gateway at the given URL.
func NewPushGatewayFacade(url string, timeout time.Duration) *PushGatewayFacade {
	return &PushGatewayFacade{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// SendBatch posts all messages to the gateway in one request.
func (f *PushGatewayFacade) SendBatch(ctx context.Context, messages []models.PushMessage) error {
	if len(messages) == 0 {
		return nil
	}

	payload, err := json.Marshal(messages)
	if err != nil {
		logger.Log.Errorw("failed to marshal push batch", "error", err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(payload))
	if err != nil {
		logger.Log.Errorw("failed to build push gateway request", "error", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("push gateway request failed", "url", f.url, "batch_size", len(messages), "error", err)
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("push gateway returned status %d", resp.StatusCode)
		logger.Log.Errorw("push gateway rejected batch", "url", f.url, "batch_size", len(messages), "error", err)
		return err
	}

	logger.Log.Infow("push batch delivered", "url", f.url, "batch_size", len(messages))
	return nil
}
