package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ieltsmaster/writing-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogout_RevokesAtProvider(t *testing.T) {
	var gotAuth string
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	cfg := &config.Config{}
	cfg.Auth.ProviderURL = ts.URL
	svc := NewAuthService(cfg)

	require.NoError(t, svc.Logout(context.Background(), "token-123"))
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Equal(t, "/logout", gotPath)
}

func TestLogout_ProviderErrorPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	cfg := &config.Config{}
	cfg.Auth.ProviderURL = ts.URL
	svc := NewAuthService(cfg)

	assert.Error(t, svc.Logout(context.Background(), "token-123"))
}

func TestLogout_EmptyTokenSkipsProvider(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	cfg := &config.Config{}
	cfg.Auth.ProviderURL = ts.URL
	svc := NewAuthService(cfg)

	require.NoError(t, svc.Logout(context.Background(), ""))
	assert.False(t, called)
}

func TestLogout_NoProviderConfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{})
	assert.NoError(t, svc.Logout(context.Background(), "token-123"))
}
