// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/templates"
)

// Page describes a module page response.
type Page struct {
	Title      string
	StatusCode int
	ActivePath string
	Notice     *templates.Notice
	Fragment   templ.Component
}

// Write renders a full page through the shared shell.
func Write(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	view := templates.PageView{
		Title:      page.Title,
		ActivePath: page.ActivePath,
		Notice:     page.Notice,
	}
	if deps.ResolveLanguage != nil {
		view.Lang = deps.ResolveLanguage(r)
	}
	if deps.ResolveUserID != nil {
		_, view.SignedIn = deps.ResolveUserID(r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return templates.Page(view, page.Fragment).Render(r.Context(), w)
}
