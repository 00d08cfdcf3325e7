package controller

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"time"
)

// maxUploadSize caps in-memory parsing of the multipart form (10 MiB).
const maxUploadSize = 10 << 20

// Uploader defines the upload method needed by the upload handler.
// Satisfied by *services.CloudinaryService.
type Uploader interface {
	UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error)
}

type UploadController struct {
	uploader Uploader
}

func NewUploadController(uploader Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// Upload an image and return its hosted URL. The client sends the file under
// the "image" field and an optional "folder" field (products, categories,
// cuisines).
func (c *UploadController) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid multipart form"}`, http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		http.Error(w, `{"success": false, "message": "Image file is required"}`, http.StatusBadRequest)
		return
	}
	// The uploader re-opens the file from its header.
	file.Close()

	folder := r.FormValue("folder")

	url, err := c.uploader.UploadFile(ctx, fileHeader, folder)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Image upload failed"}`, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Image uploaded successfully",
		"data":    map[string]interface{}{"url": url},
	})
}
