package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/okhuysen/peturnidad-api/internal/logger"
	"github.com/okhuysen/peturnidad-api/internal/models"
)

// maxUploadBytes caps the in-flight multipart form size.
const maxUploadBytes = 10 << 20 // 10 MiB

// ImageUploader defines the interface that the media host facade must implement.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadedImage, error)
}

// UploadImageResponse represents a successful image upload
// swagger:model UploadImageResponse
type UploadImageResponse struct {
	// Success message
	// example: Imagen subida exitosamente
	Message string `json:"message"`

	// Public URL of the stored image
	ImageURL string `json:"imageUrl"`

	// Media-host asset identifier
	PublicID string `json:"publicId"`
}

// NewUploadImageHandler returns an HTTP handler that forwards an image to the media host.
// @Summary Upload an image
// @Description Accepts a multipart image and forwards it to the media-hosting service, which returns a stable public URL.
// @Tags media
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} handlers.UploadImageResponse "Image stored"
// @Failure 400 {object} handlers.ErrorResponse "No image in the request"
// @Failure 500 {object} handlers.ErrorResponse "Media host failure"
// @Router /upload-image [post]
func NewUploadImageHandler(uploader ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "No se ha subido ninguna imagen",
			})
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "No se ha subido ninguna imagen",
			})
			return
		}
		defer file.Close()

		uploaded, err := uploader.Upload(r.Context(), header.Filename, file)
		if err != nil {
			logger.Log.Errorw("image upload failed", "filename", header.Filename, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Error al subir la imagen",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UploadImageResponse{
			Message:  "Imagen subida exitosamente",
			ImageURL: uploaded.URL,
			PublicID: uploaded.PublicID,
		})
	}
}
