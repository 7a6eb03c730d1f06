package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/awelabs/awe.agency/internal/store"
	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/platform/pagerender"
	"github.com/awelabs/awe.agency/internal/web/platform/weberror"
	"github.com/awelabs/awe.agency/internal/web/routepath"
	"github.com/awelabs/awe.agency/internal/web/templates"
)

// AppModule provides the protected dashboard routes under /app/.
type AppModule struct{}

// NewApp returns the protected dashboard module.
func NewApp() AppModule { return AppModule{} }

// ID returns a stable module identifier.
func (AppModule) ID() string { return "dashboard" }

// Mount wires the protected dashboard handlers.
func (AppModule) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Store == nil {
		return module.Mount{}, fmt.Errorf("dashboard: store is required")
	}
	if deps.ResolveUserID == nil {
		return module.Mount{}, fmt.Errorf("dashboard: user resolver is required")
	}
	mux := http.NewServeMux()
	h := appHandlers{deps: deps}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppDashboard, h.handleDashboard)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppDashboardProfile, h.handleProfileUpdate)
	mux.HandleFunc(routepath.AppPrefix+"{rest...}", h.handleNotFound)
	return module.Mount{Prefix: routepath.AppPrefix, Handler: mux}, nil
}

type appHandlers struct {
	deps module.Dependencies
}

// handleDashboard loads the user, their business profile, and campaign
// metrics, and renders the overview.
func (h appHandlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.deps.ResolveUserID(r)
	if !ok {
		http.Redirect(w, r, routepath.SignIn, http.StatusSeeOther)
		return
	}

	user, err := h.deps.Store.GetUser(r.Context(), userID)
	if err != nil {
		weberror.WriteError(w, r, err, h.deps)
		return
	}
	profile, err := h.deps.Store.GetProfile(r.Context(), userID)
	if err != nil && !isNotFound(err) {
		weberror.WriteError(w, r, err, h.deps)
		return
	}
	metrics, err := h.deps.Store.ListMetricsByUser(r.Context(), userID)
	if err != nil {
		weberror.WriteError(w, r, err, h.deps)
		return
	}

	view := templates.DashboardView{
		Name:    user.Name,
		Profile: profileView(profile),
		Metrics: metricRows(metrics),
		Totals:  metricTotals(metrics),
		Saved:   r.URL.Query().Get("saved") == "1",
	}
	page := pagerender.Page{Title: "Dashboard", Fragment: templates.Dashboard(view)}
	if err := pagerender.Write(w, r, h.deps, page); err != nil {
		h.deps.Logger.Error().Err(err).Msg("render dashboard")
	}
}

// handleProfileUpdate saves the posted business profile fields.
func (h appHandlers) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.deps.ResolveUserID(r)
	if !ok {
		http.Redirect(w, r, routepath.SignIn, http.StatusSeeOther)
		return
	}

	profile, err := h.deps.Store.GetProfile(r.Context(), userID)
	if err != nil && !isNotFound(err) {
		weberror.WriteError(w, r, err, h.deps)
		return
	}
	profile.UserID = userID
	profile.BusinessName = strings.TrimSpace(r.PostFormValue("business_name"))
	profile.Zipcode = strings.TrimSpace(r.PostFormValue("zipcode"))
	profile.Mission = strings.TrimSpace(r.PostFormValue("mission"))
	profile.Products = strings.TrimSpace(r.PostFormValue("products"))
	profile.Audience = strings.TrimSpace(r.PostFormValue("audience"))
	profile.UpdatedAt = time.Now().UTC()

	if err := h.deps.Store.PutProfile(r.Context(), profile); err != nil {
		weberror.WriteError(w, r, err, h.deps)
		return
	}
	http.Redirect(w, r, routepath.AppDashboard+"?saved=1", http.StatusSeeOther)
}

func (h appHandlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteStatus(w, r, http.StatusNotFound, h.deps)
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

func profileView(profile store.BusinessProfile) templates.WizardDraftView {
	return templates.WizardDraftView{
		BusinessName:     profile.BusinessName,
		Zipcode:          profile.Zipcode,
		Mission:          profile.Mission,
		Products:         profile.Products,
		Audience:         profile.Audience,
		AgeRange:         profile.AgeRange,
		Interests:        profile.Interests,
		CreativesPerWeek: profile.CreativesPerWeek,
	}
}

func formatCount(value int64) string {
	s := strconv.FormatInt(value, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}
	return string(out)
}

func formatMoney(cents int64) string {
	return fmt.Sprintf("$%s.%02d", formatCount(cents/100), cents%100)
}

func metricRows(metrics []store.AdMetric) []templates.MetricRowView {
	rows := make([]templates.MetricRowView, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, templates.MetricRowView{
			Campaign:    m.Campaign,
			Impressions: formatCount(m.Impressions),
			Clicks:      formatCount(m.Clicks),
			Conversions: formatCount(m.Conversions),
			Spend:       formatMoney(m.SpendCents),
			Revenue:     formatMoney(m.RevenueCents),
			RecordedAt:  m.RecordedAt.Format("Jan 2, 2006"),
		})
	}
	return rows
}

func metricTotals(metrics []store.AdMetric) templates.MetricTotalsView {
	var impressions, clicks, conversions, spend, revenue int64
	for _, m := range metrics {
		impressions += m.Impressions
		clicks += m.Clicks
		conversions += m.Conversions
		spend += m.SpendCents
		revenue += m.RevenueCents
	}
	return templates.MetricTotalsView{
		Impressions: formatCount(impressions),
		Clicks:      formatCount(clicks),
		Conversions: formatCount(conversions),
		Spend:       formatMoney(spend),
		Revenue:     formatMoney(revenue),
	}
}
