package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOAuthInstalled() OAuthInstalled {
	return OAuthInstalled{
		ClientID:                "test-client-id.apps.googleusercontent.com",
		ProjectID:               "test-project",
		AuthURI:                 "https://accounts.google.com/o/oauth2/auth",
		TokenURI:                "https://oauth2.googleapis.com/token",
		AuthProviderX509CertURL: "https://www.googleapis.com/oauth2/v1/certs",
		ClientSecret:            "test-secret",
		RedirectURIs:            []string{"http://localhost"},
	}
}

func TestValidateOAuthClient_ValidConfig(t *testing.T) {
	cfg := &OAuthClientConfig{Installed: validOAuthInstalled()}

	err := ValidateOAuthClient(cfg)
	assert.NoError(t, err)
}

func TestValidateOAuthClient_MissingClientID(t *testing.T) {
	installed := validOAuthInstalled()
	installed.ClientID = ""
	cfg := &OAuthClientConfig{Installed: installed}

	err := ValidateOAuthClient(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateOAuthClient_InvalidURL(t *testing.T) {
	installed := validOAuthInstalled()
	installed.AuthURI = "not-a-valid-url"
	cfg := &OAuthClientConfig{Installed: installed}

	err := ValidateOAuthClient(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateOAuthClient_EmptyRedirectURIs(t *testing.T) {
	installed := validOAuthInstalled()
	installed.RedirectURIs = []string{}
	cfg := &OAuthClientConfig{Installed: installed}

	err := ValidateOAuthClient(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadOAuthClientFromPath_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	oauthPath := filepath.Join(tmpDir, "transport_oauth.json")

	validJSON := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	err := os.WriteFile(oauthPath, []byte(validJSON), 0644)
	require.NoError(t, err)

	cfg, err := LoadOAuthClientFromPath(oauthPath)
	require.NoError(t, err)
	assert.Equal(t, "test-project", cfg.Installed.ProjectID)
	assert.Len(t, cfg.Installed.RedirectURIs, 1)
}

func TestLoadOAuthClientFromPath_MalformedJSON(t *testing.T) {
	tmpDir := t.TempDir()
	oauthPath := filepath.Join(tmpDir, "transport_oauth.json")

	err := os.WriteFile(oauthPath, []byte("{not json"), 0644)
	require.NoError(t, err)

	_, err = LoadOAuthClientFromPath(oauthPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse oauth client file")
}

func TestLoadOAuthClientFromPath_MissingFile(t *testing.T) {
	_, err := LoadOAuthClientFromPath("/nonexistent/transport_oauth.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read oauth client file")
}
