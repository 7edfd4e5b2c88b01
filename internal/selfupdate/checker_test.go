package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/lernzeit/lernzeit/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.5.0","html_url":"https://example.com/v1.5.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))

	tests := []struct {
		name      string
		version   string
		available bool
	}{
		{"older version", "v1.0.0", true},
		{"same version", "v1.5.0", false},
		{"newer version", "v2.0.0", false},
		{"missing v prefix", "1.0.0", true},
		{"unparseable version", "garbage", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.version})
			require.NoError(t, err)
			assert.Equal(t, tt.available, result.UpdateAvailable)
			assert.Equal(t, "v1.5.0", result.LatestVersion)
			assert.Equal(t, "https://example.com/v1.5.0", result.ReleaseURL)
		})
	}
}

func TestCheckBadResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag_name")
}
