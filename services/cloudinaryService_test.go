package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCloudinary(t *testing.T, handler http.HandlerFunc) *CloudinaryService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &CloudinaryService{
		uploadURL:    server.URL,
		uploadPreset: "unsigned-test",
		httpClient:   server.Client(),
	}
}

func TestUploadRemoteURLPassesThrough(t *testing.T) {
	svc := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("remote references must not hit the upload endpoint")
	})

	got, err := svc.Upload(context.Background(), "https://cdn.example.com/img.jpg", "products")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.jpg", got)
}

func TestUploadEmptyReference(t *testing.T) {
	svc := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := svc.Upload(context.Background(), "", "products")

	assert.Error(t, err)
}

func TestUploadLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagine.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake-jpeg-bytes"), 0o600))

	var gotPreset, gotFolder, gotFilename string
	svc := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("upload_preset")
		gotFolder = r.FormValue("folder")
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		file.Close()
		gotFilename = header.Filename

		json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.cloudinary.com/demo/tagine.jpg",
			"public_id":  "products/tagine",
		})
	})

	got, err := svc.Upload(context.Background(), "file://"+path, "products")

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/tagine.jpg", got)
	assert.Equal(t, "unsigned-test", gotPreset)
	assert.Equal(t, "products", gotFolder)
	assert.Equal(t, "tagine.jpg", gotFilename)
}

func TestUploadRejectionSurfacesDetail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagine.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake-jpeg-bytes"), 0o600))

	svc := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Upload preset not found"}}`, http.StatusBadRequest)
	})

	_, err := svc.Upload(context.Background(), path, "products")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")
}

func TestUploadMissingSecureURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagine.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake-jpeg-bytes"), 0o600))

	svc := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"public_id": "products/tagine"})
	})

	_, err := svc.Upload(context.Background(), path, "products")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "secure_url")
}
