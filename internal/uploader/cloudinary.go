// Package uploader wraps the Cloudinary unsigned upload API. It is stateless:
// one file in, one hosted URL out. Retry, if any, is the caller's concern.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"egs-enquiry/internal/common/config"
	"egs-enquiry/internal/common/errors"
	commonhttp "egs-enquiry/internal/common/http"
	"egs-enquiry/internal/common/logger"
	"egs-enquiry/internal/enquiry"
)

const defaultUploadURLFormat = "https://api.cloudinary.com/v1_1/%s/auto/upload"

// Cloudinary uploads files as multipart form data with an unsigned preset.
type Cloudinary struct {
	http      *commonhttp.Client
	uploadURL string
	preset    string
	logger    logger.Logger
}

func NewCloudinary(cfg config.UploadsConfig, log logger.Logger) *Cloudinary {
	uploadURL := cfg.UploadURL
	if uploadURL == "" && cfg.CloudName != "" {
		uploadURL = fmt.Sprintf(defaultUploadURLFormat, cfg.CloudName)
	}
	timeout := config.GetDuration(cfg.Timeout)
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Cloudinary{
		http:      commonhttp.NewClient(timeout),
		uploadURL: uploadURL,
		preset:    cfg.UploadPreset,
		logger:    log.WithFields(map[string]interface{}{"component": "uploader"}),
	}
}

// cloudinaryResponse is the subset of the upload reply we consume.
type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends one file and returns its hosted record. The document index is
// assigned by the caller; everything else comes from the local file and the
// upload response.
func (c *Cloudinary) Upload(ctx context.Context, file *enquiry.File) (*enquiry.UploadedDoc, error) {
	if c.uploadURL == "" || c.preset == "" {
		return nil, errors.NewUploadNotConfiguredError("cloud name or upload preset missing")
	}

	body, contentType, err := c.encodeForm(file)
	if err != nil {
		return nil, errors.NewUploadFailedError(file.Name, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.uploadURL, body)
	if err != nil {
		return nil, errors.NewUploadFailedError(file.Name, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.DoWithContext(ctx, req)
	if err != nil {
		return nil, errors.NewUploadFailedError(file.Name, err)
	}
	defer resp.Body.Close()

	var parsed cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.NewUploadFailedError(file.Name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("upload service returned %d", resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return nil, errors.NewUploadFailedError(file.Name, fmt.Errorf("%s", msg))
	}

	hostedURL := parsed.SecureURL
	if hostedURL == "" {
		hostedURL = parsed.URL
	}
	if hostedURL == "" {
		return nil, errors.NewUploadFailedError(file.Name, fmt.Errorf("upload response missing url"))
	}

	c.logger.Debug("file uploaded", map[string]interface{}{
		"name": file.Name,
		"size": file.Size,
	})

	return &enquiry.UploadedDoc{
		URL:          hostedURL,
		OriginalName: file.Name,
		MimeType:     file.ContentType,
		Size:         file.Size,
	}, nil
}

// encodeForm builds the multipart body with the file part and upload preset.
func (c *Cloudinary) encodeForm(file *enquiry.File) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(file.Name)))
	if file.ContentType != "" {
		header.Set("Content-Type", file.ContentType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, "", err
	}

	if err := w.WriteField("upload_preset", c.preset); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
