package marketing

import (
	"net/http"

	"github.com/awelabs/awe.agency/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Solutions, h.handleSolutions)
	mux.HandleFunc(http.MethodGet+" "+routepath.Sustainability, h.handleSustainability)
	mux.HandleFunc(http.MethodGet+" "+routepath.Testimonials, h.handleTestimonials)
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleContact)
	mux.HandleFunc(http.MethodGet+" "+routepath.Pricing, h.handlePricing)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(routepath.Root+"{rest...}", h.handleNotFound)
}
