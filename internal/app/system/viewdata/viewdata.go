// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/dalemusser/mlhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is used until Init is called.
const DefaultSiteName = "MLHub"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
//	data := struct {
//	    viewdata.BaseVM
//	    Results []models.Resource
//	}{
//	    BaseVM: viewdata.NewBaseVM(r, "Search"),
//	}
type BaseVM struct {
	// Site settings (from config)
	SiteName   string
	BaseURL    string
	FooterHTML template.HTML

	// Page context
	Title       string
	CurrentPath string
}

type siteSettings struct {
	name       string
	baseURL    string
	footerHTML template.HTML
}

var (
	mu   sync.RWMutex
	site = siteSettings{name: DefaultSiteName}
)

// Init sets the site-wide settings shown on every page. footerHTML is
// sanitized before use. Call this once at startup from bootstrap.
func Init(siteName, baseURL, footerHTML string) {
	mu.Lock()
	defer mu.Unlock()
	if siteName == "" {
		siteName = DefaultSiteName
	}
	site = siteSettings{
		name:       siteName,
		baseURL:    baseURL,
		footerHTML: htmlsanitize.SanitizeToHTML(footerHTML),
	}
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return site.name
}

// NewBaseVM creates a populated BaseVM for a page.
func NewBaseVM(r *http.Request, title string) BaseVM {
	mu.RLock()
	s := site
	mu.RUnlock()

	return BaseVM{
		SiteName:    s.name,
		BaseURL:     s.baseURL,
		FooterHTML:  s.footerHTML,
		Title:       title,
		CurrentPath: httpnav.CurrentPath(r),
	}
}
