// internal/app/features/pwa/manifest.go
package pwa

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const themeColor = "#2563eb"

// webManifest is the web app manifest structure.
type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Scope           string         `json:"scope"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Categories      []string       `json:"categories"`
	Icons           []manifestIcon `json:"icons"`
}

type manifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

// ServeManifest serves /manifest.webmanifest.
func (h *Handler) ServeManifest(w http.ResponseWriter, r *http.Request) {
	m := webManifest{
		Name:            h.SiteName + " - Machine Learning Resources",
		ShortName:       h.SiteName,
		Description:     "Discover curated machine learning PDFs, videos and web resources.",
		StartURL:        "/",
		Scope:           "/",
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      themeColor,
		Categories:      []string{"education", "productivity"},
		Icons: []manifestIcon{
			{Src: "/static/icons/icon-192.png", Sizes: "192x192", Type: "image/png", Purpose: "any maskable"},
			{Src: "/static/icons/icon-512.png", Sizes: "512x512", Type: "image/png", Purpose: "any maskable"},
		},
	}

	w.Header().Set("Content-Type", "application/manifest+json")
	if err := json.NewEncoder(w).Encode(m); err != nil {
		h.Log.Warn("encode manifest failed", zap.Error(err))
	}
}
