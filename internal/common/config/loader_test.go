// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ==========================
// Loading & Defaults
// ==========================

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: egs-enquiry
  environment: test
api:
  base_url: https://api.example.com/api/v1/
  timeout: 15000
uploads:
  cloud_name: egs-demo
  upload_preset: egs_unsigned
session:
  storage_key: "egs:auth:token"
  redis:
    address: localhost:6379
forms:
  dummy-ticket:
    enabled: false
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "egs-enquiry", cfg.App.Name)
	assert.Equal(t, "https://api.example.com/api/v1/", cfg.API.BaseURL)
	assert.Equal(t, 15000, cfg.API.Timeout)
	assert.Equal(t, "egs-demo", cfg.Uploads.CloudName)

	// Defaults fill the rest.
	assert.Equal(t, int64(5242880), cfg.Uploads.MaxFileBytes)
	assert.Equal(t, 60000, cfg.Uploads.Timeout)
	assert.Equal(t, "/login", cfg.Session.LoginURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":9102", cfg.Metrics.Address)
}

func TestLoadFromFile_ExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_EGS_BASE_URL", "https://staging.example.com/api/v1")

	path := writeConfigFile(t, `
api:
  base_url: ${TEST_EGS_BASE_URL}
session:
  redis:
    address: localhost:6379
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/api/v1", cfg.API.BaseURL)
}

// ==========================
// Helpers
// ==========================

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, GetDuration(30000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}

func TestEnquiryURL(t *testing.T) {
	api := APIConfig{BaseURL: "https://api.example.com/api/v1/"}
	assert.Equal(t,
		"https://api.example.com/api/v1/pcc/pcc-legalization/enquiry",
		api.EnquiryURL("pcc/pcc-legalization/enquiry"))
}

func TestFormToggles(t *testing.T) {
	cfg := &Config{Forms: map[string]FormConfig{
		"dummy-ticket": {Enabled: false},
		"e-visa":       {Enabled: true},
	}}

	assert.False(t, IsFormEnabled(cfg, "dummy-ticket"))
	assert.True(t, IsFormEnabled(cfg, "e-visa"))
	// Unlisted forms default to enabled.
	assert.True(t, IsFormEnabled(cfg, "insurance"))
	assert.Equal(t, FormConfig{Enabled: true}, GetFormConfig(cfg, "insurance"))
}
