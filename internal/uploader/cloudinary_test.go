// internal/uploader/cloudinary_test.go
package uploader

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"egs-enquiry/internal/common/config"
	"egs-enquiry/internal/common/errors"
	"egs-enquiry/internal/common/logger"
	"egs-enquiry/internal/enquiry"
)

// ==========================
// Test Helper Functions
// ==========================

func testUploader(t *testing.T, serverURL string) *Cloudinary {
	t.Helper()
	return NewCloudinary(config.UploadsConfig{
		UploadURL:    serverURL,
		UploadPreset: "egs_unsigned",
	}, logger.NewTestLogger(t))
}

func pdfFile(name string) *enquiry.File {
	return &enquiry.File{
		Name:        name,
		ContentType: "application/pdf",
		Size:        11,
		Content:     []byte("%PDF-1.4 xx"),
	}
}

// ==========================
// Successful Uploads
// ==========================

func TestCloudinary_UploadSendsMultipartForm(t *testing.T) {
	var gotPreset, gotFilename, gotPartType string
	var gotContent []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotPreset = r.FormValue("upload_preset")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		gotPartType = header.Header.Get("Content-Type")
		gotContent, _ = io.ReadAll(file)

		json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.cloudinary.com/demo/passport.pdf",
			"url":        "http://res.cloudinary.com/demo/passport.pdf",
		})
	}))
	defer server.Close()

	doc, err := testUploader(t, server.URL).Upload(context.Background(), pdfFile("passport.pdf"))

	require.NoError(t, err)
	assert.Equal(t, "egs_unsigned", gotPreset)
	assert.Equal(t, "passport.pdf", gotFilename)
	assert.Equal(t, "application/pdf", gotPartType)
	assert.Equal(t, []byte("%PDF-1.4 xx"), gotContent)

	assert.Equal(t, "https://res.cloudinary.com/demo/passport.pdf", doc.URL)
	assert.Equal(t, "passport.pdf", doc.OriginalName)
	assert.Equal(t, "application/pdf", doc.MimeType)
	assert.Equal(t, int64(11), doc.Size)
}

func TestCloudinary_FallsBackToPlainURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"url": "http://res.cloudinary.com/demo/photo.jpg",
		})
	}))
	defer server.Close()

	doc, err := testUploader(t, server.URL).Upload(context.Background(), pdfFile("photo.jpg"))

	require.NoError(t, err)
	assert.Equal(t, "http://res.cloudinary.com/demo/photo.jpg", doc.URL)
}

// ==========================
// Failure Modes
// ==========================

func TestCloudinary_UnconfiguredCredentials(t *testing.T) {
	c := NewCloudinary(config.UploadsConfig{}, logger.NewTestLogger(t))

	_, err := c.Upload(context.Background(), pdfFile("a.pdf"))

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUploadNotConfigured, errors.Code(err))
}

func TestCloudinary_SurfacesServiceErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Upload preset not found"},
		})
	}))
	defer server.Close()

	_, err := testUploader(t, server.URL).Upload(context.Background(), pdfFile("a.pdf"))

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUploadFailed, errors.Code(err))
	stdErr := err.(*errors.StandardError)
	assert.Contains(t, stdErr.Details, "Upload preset not found")
	assert.True(t, errors.IsRetryable(err))
}

func TestCloudinary_MissingURLInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"public_id": "abc123"})
	}))
	defer server.Close()

	_, err := testUploader(t, server.URL).Upload(context.Background(), pdfFile("a.pdf"))

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUploadFailed, errors.Code(err))
}
