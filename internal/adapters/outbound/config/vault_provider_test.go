package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kvResponse = `{
  "data": {
    "data": {"OPENAI_API_KEY": "gh-token", "RETENTION_DAYS": 30},
    "metadata": {"created_time": "2026-01-01T00:00:00Z", "deletion_time": "", "destroyed": false, "version": 1}
  }
}`

func newVaultServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v1/secret/data/travel-agent", r.URL.Path)
		assert.Equal(t, "root-token", r.Header.Get("X-Vault-Token"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestNewVaultProvider_Validation(t *testing.T) {
	tests := map[string]struct {
		server, token, mount, secret string
	}{
		"missing-server": {token: "t", mount: "secret", secret: "app"},
		"missing-token":  {server: "http://localhost:8200", mount: "secret", secret: "app"},
		"missing-mount":  {server: "http://localhost:8200", token: "t", secret: "app"},
		"missing-secret": {server: "http://localhost:8200", token: "t", mount: "secret"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mount, tt.secret)
			assert.Error(t, err)
		})
	}
}

func TestVaultProvider_Get(t *testing.T) {
	tests := map[string]struct {
		status    int
		body      string
		key       string
		expected  string
		expectErr bool
	}{
		"string-value": {
			status:   http.StatusOK,
			body:     kvResponse,
			key:      "OPENAI_API_KEY",
			expected: "gh-token",
		},
		"missing-key": {
			status:    http.StatusOK,
			body:      kvResponse,
			key:       "DB_PASS",
			expectErr: true,
		},
		"non-string-value": {
			status:    http.StatusOK,
			body:      kvResponse,
			key:       "RETENTION_DAYS",
			expectErr: true,
		},
		"secret-not-found": {
			status:    http.StatusNotFound,
			body:      `{"errors":[]}`,
			key:       "OPENAI_API_KEY",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv, _ := newVaultServer(t, tt.status, tt.body)

			vp, err := NewVaultProvider(srv.URL, "root-token", "secret", "travel-agent")
			require.NoError(t, err)

			got, err := vp.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVaultProvider_Get_CachesSecret(t *testing.T) {
	srv, calls := newVaultServer(t, http.StatusOK, kvResponse)

	vp, err := NewVaultProvider(srv.URL, "root-token", "secret", "travel-agent")
	require.NoError(t, err)

	for range 3 {
		_, err := vp.Get(context.Background(), "OPENAI_API_KEY")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestInitVaultProvider_Initialize(t *testing.T) {
	tests := map[string]struct {
		init      InitVaultProvider
		expectErr bool
	}{
		"disabled": {
			init: InitVaultProvider{Server: "-", Token: "-", MountPath: "secret", SecretPath: "travel-agent"},
		},
		"missing-token": {
			init:      InitVaultProvider{Server: "http://localhost:8200", Token: "-", MountPath: "secret", SecretPath: "travel-agent"},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
