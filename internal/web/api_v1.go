package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/flcms/crest/internal/export"
	"github.com/flcms/crest/internal/icon"
)

// HTTP-facing size limits. The core renderer accepts any size >= 1;
// the preview API is stricter so a stray query can't ask for a
// gigapixel canvas.
const (
	minAPIIconSize     = 16
	maxAPIIconSize     = 4096
	defaultAPIIconSize = 256
	defaultQRSizePx    = 256
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type planEntry struct {
	Label string `json:"label"`
	Size  int    `json:"size"`
}

type planResponse struct {
	Preset  string      `json:"preset"`
	Master  int         `json:"master"`
	Entries []planEntry `json:"entries"`
}

// APIV1Config carries everything the preview API serves.
type APIV1Config struct {
	// DefaultPreset is used when the request has no preset parameter.
	DefaultPreset icon.Preset

	// Plan is reported by GET /plan so the UI can show what an export
	// run would produce.
	Plan export.Plan

	// PublicURL, when set, is the address encoded by GET /qr.
	// Otherwise the request's own host is used.
	PublicURL string
}

func (cfg APIV1Config) preset(r *http.Request) icon.Preset {
	if name := r.URL.Query().Get("preset"); name != "" {
		return icon.PresetByName(name)
	}
	if cfg.DefaultPreset.Name != "" {
		return cfg.DefaultPreset
	}
	return icon.PresetManagement
}

func apiV1Router(cfg APIV1Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/icon", func(w http.ResponseWriter, r *http.Request) { handleIcon(w, r, cfg) })
	mux.HandleFunc("/plan", func(w http.ResponseWriter, r *http.Request) { handlePlan(w, r, cfg) })
	mux.HandleFunc("/qr", func(w http.ResponseWriter, r *http.Request) { handleQR(w, r, cfg) })
	return mux
}

// handleIcon renders the icon at the requested size and streams it as
// PNG. Each request is an independent render; there is no shared
// canvas to coordinate on.
func handleIcon(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	size := defaultAPIIconSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_size", fmt.Sprintf("size %q is not an integer", raw))
			return
		}
		size = parsed
	}
	if size < minAPIIconSize || size > maxAPIIconSize {
		writeError(w, http.StatusBadRequest, "bad_size",
			fmt.Sprintf("size must be between %d and %d", minAPIIconSize, maxAPIIconSize))
		return
	}

	img, err := icon.RenderPreset(size, cfg.preset(r))
	if err != nil {
		if errors.Is(err, icon.ErrInvalidSize) {
			writeError(w, http.StatusBadRequest, "bad_size", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

func handlePlan(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	plan := cfg.Plan
	if len(plan) == 0 {
		plan = export.DefaultPlan()
	}
	resp := planResponse{
		Preset: cfg.preset(r).Name,
		Master: plan.MaxSize(),
	}
	for _, e := range plan {
		resp.Entries = append(resp.Entries, planEntry{Label: e.Label, Size: e.Size})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleQR returns a QR code for the preview URL so the icon can be
// checked on a phone screen.
func handleQR(w http.ResponseWriter, r *http.Request, cfg APIV1Config) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	payload := cfg.PublicURL
	if payload == "" {
		payload = "http://" + r.Host + "/"
	}
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "qr_failed", err.Error())
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code.Image(defaultQRSizePx)); err != nil {
		writeError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use "+allowed)
}
