package onboarding

import (
	"net/http"

	"github.com/awelabs/awe.agency/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.GetStartedPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.GetStartedStep, h.handleStep)
	mux.HandleFunc(http.MethodPost+" "+routepath.GetStartedBack, h.handleBack)
	mux.HandleFunc(http.MethodPost+" "+routepath.GetStartedSubmit, h.handleSubmit)
	mux.HandleFunc(routepath.GetStartedPrefix+"{rest...}", h.handleNotFound)
}
