// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"

	"github.com/awelabs/awe.agency/internal/web/module"
	weberrors "github.com/awelabs/awe.agency/internal/web/platform/errors"
	"github.com/awelabs/awe.agency/internal/web/platform/pagerender"
	"github.com/awelabs/awe.agency/internal/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the error-page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WriteStatus writes the shared error page for a status code.
func WriteStatus(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	err := pagerender.Write(w, r, deps, pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode),
		StatusCode: statusCode,
		Fragment:   templates.ErrorPage(statusCode),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteError maps an application error onto the right response shape: full
// error page for not-found and server failures, plain text otherwise.
func WriteError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := weberrors.HTTPStatus(err)
	if ShouldRenderErrorPage(statusCode) {
		WriteStatus(w, r, statusCode, deps)
		return
	}
	http.Error(w, weberrors.PublicMessage(err), statusCode)
}
