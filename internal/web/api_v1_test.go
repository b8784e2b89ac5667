package web

import (
	"encoding/json"
	"image/png"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flcms/crest/internal/export"
)

func TestIconEndpointReturnsPNG(t *testing.T) {
	srv := httptest.NewServer(NewDefaultMux("", APIV1Config{}))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/v1/icon?size=64")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	cfg, err := png.DecodeConfig(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
}

func TestIconEndpointRejectsBadSizes(t *testing.T) {
	srv := httptest.NewServer(NewDefaultMux("", APIV1Config{}))
	defer srv.Close()

	for _, query := range []string{"size=abc", "size=0", "size=-4", "size=8", "size=99999"} {
		resp, err := srv.Client().Get(srv.URL + "/api/v1/icon?" + query)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, 400, resp.StatusCode, query)
	}
}

func TestIconEndpointPresetParameter(t *testing.T) {
	srv := httptest.NewServer(NewDefaultMux("", APIV1Config{}))
	defer srv.Close()

	for _, preset := range []string{"management", "simple"} {
		resp, err := srv.Client().Get(srv.URL + "/api/v1/icon?size=32&preset=" + preset)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, 200, resp.StatusCode, preset)
	}
}

func TestPlanEndpoint(t *testing.T) {
	cfg := APIV1Config{
		Plan: export.Plan{
			{Label: "app_icon.png", Size: 512},
			{Label: "icon_64.png", Size: 64},
		},
	}
	srv := httptest.NewServer(NewDefaultMux("", cfg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/v1/plan")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var got planResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "management", got.Preset)
	assert.Equal(t, 512, got.Master)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "app_icon.png", got.Entries[0].Label)
}

func TestQREndpointReturnsPNG(t *testing.T) {
	srv := httptest.NewServer(NewDefaultMux("", APIV1Config{PublicURL: "http://crest.local/"}))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/v1/qr")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 200, resp.StatusCode)
	_, err = png.DecodeConfig(resp.Body)
	assert.NoError(t, err)
}

func TestIconEndpointMethodNotAllowed(t *testing.T) {
	srv := httptest.NewServer(NewDefaultMux("", APIV1Config{}))
	defer srv.Close()

	resp, err := srv.Client().Post(srv.URL+"/api/v1/icon", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 405, resp.StatusCode)
}
