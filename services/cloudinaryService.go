package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// uploadTimeout bounds a single upload round-trip; a hung upload is treated
// as a failure and returned to the caller.
const uploadTimeout = 60 * time.Second

// CloudinaryService uploads images to Cloudinary's unsigned upload endpoint
// and returns the hosted secure URL. Upload failures are never retried here;
// the caller re-invokes with the original local reference.
type CloudinaryService struct {
	uploadURL    string
	uploadPreset string
	httpClient   *http.Client
}

func NewCloudinaryService(cloudName, uploadPreset string) *CloudinaryService {
	return &CloudinaryService{
		uploadURL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		uploadPreset: uploadPreset,
		httpClient:   &http.Client{Timeout: uploadTimeout},
	}
}

// Upload resolves an image reference. References that are already remote
// URLs pass through unchanged; local paths (optionally file:// prefixed) are
// read and uploaded into the given folder.
func (s *CloudinaryService) Upload(ctx context.Context, ref, folder string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("missing image reference")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}

	path := strings.TrimPrefix(ref, "file://")
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image %s: %w", path, err)
	}
	defer file.Close()

	return s.send(ctx, filepath.Base(path), file, folder)
}

// UploadFile uploads an image received as a multipart form file.
func (s *CloudinaryService) UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	return s.send(ctx, fileHeader.Filename, file, folder)
}

func (s *CloudinaryService) send(ctx context.Context, filename string, r io.Reader, folder string) (string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read image %s: %w", filename, err)
	}
	if err := mw.WriteField("upload_preset", s.uploadPreset); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if folder != "" {
		if err := mw.WriteField("folder", folder); err != nil {
			return "", fmt.Errorf("build upload form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("cloudinary upload failed: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	var out struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode cloudinary response: %w", err)
	}
	if out.SecureURL == "" {
		return "", fmt.Errorf("cloudinary response missing secure_url")
	}

	log.Printf("[Upload] %s stored as %s", filename, out.PublicID)
	return out.SecureURL, nil
}
