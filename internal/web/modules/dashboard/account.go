package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/awelabs/awe.agency/internal/platform/id"
	"github.com/awelabs/awe.agency/internal/store"
	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/platform/pagerender"
	"github.com/awelabs/awe.agency/internal/web/platform/sessioncookie"
	"github.com/awelabs/awe.agency/internal/web/routepath"
	"github.com/awelabs/awe.agency/internal/web/templates"
)

// AccountModule provides the public sign-in, sign-up, and sign-out routes.
type AccountModule struct {
	secret []byte
}

// NewAccount returns the account module signing sessions with secret.
func NewAccount(secret []byte) AccountModule {
	return AccountModule{secret: secret}
}

// ID returns a stable module identifier.
func (AccountModule) ID() string { return "account" }

// Mount wires the account route handlers.
func (m AccountModule) Mount(deps module.Dependencies) (module.Mount, error) {
	if len(m.secret) == 0 {
		return module.Mount{}, fmt.Errorf("account: session secret is required")
	}
	if deps.Store == nil {
		return module.Mount{}, fmt.Errorf("account: store is required")
	}
	mux := http.NewServeMux()
	h := accountHandlers{deps: deps, secret: m.secret}
	mux.HandleFunc(http.MethodGet+" "+routepath.SignIn, h.handleSignInForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignIn, h.handleSignIn)
	mux.HandleFunc(http.MethodGet+" "+routepath.SignUp, h.handleSignUpForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignUp, h.handleSignUp)
	mux.HandleFunc(http.MethodPost+" "+routepath.SignOut, h.handleSignOut)
	return module.Mount{
		Prefix:  routepath.SignIn,
		Aliases: []string{routepath.SignUp, routepath.SignOut},
		Handler: mux,
	}, nil
}

type accountHandlers struct {
	deps   module.Dependencies
	secret []byte
}

func (h accountHandlers) render(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.Write(w, r, h.deps, page); err != nil {
		h.deps.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("render account page")
	}
}

func (h accountHandlers) startSession(w http.ResponseWriter, r *http.Request, userID string) error {
	token, err := IssueToken(h.secret, userID, time.Now())
	if err != nil {
		return err
	}
	sessioncookie.Write(w, r, sessioncookie.DashboardName, token)
	return nil
}

func (h accountHandlers) handleSignInForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pagerender.Page{
		Title:    "Sign in",
		Fragment: templates.SignIn(templates.AccountFormView{}),
	})
}

// handleSignIn looks the account up by email. This is demo-grade auth:
// there is no password.
func (h accountHandlers) handleSignIn(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.PostFormValue("email"))
	view := templates.AccountFormView{Email: email}
	if email == "" || !strings.Contains(email, "@") {
		view.Error = "Enter the email you signed up with."
		h.render(w, r, pagerender.Page{Title: "Sign in", StatusCode: http.StatusBadRequest, Fragment: templates.SignIn(view)})
		return
	}

	user, err := h.deps.Store.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			view.Error = "No account found for this email."
			h.render(w, r, pagerender.Page{Title: "Sign in", StatusCode: http.StatusUnauthorized, Fragment: templates.SignIn(view)})
			return
		}
		h.deps.Logger.Error().Err(err).Msg("sign-in lookup failed")
		view.Error = "Something went wrong. Please try again."
		h.render(w, r, pagerender.Page{Title: "Sign in", StatusCode: http.StatusInternalServerError, Fragment: templates.SignIn(view)})
		return
	}

	if err := h.startSession(w, r, user.ID); err != nil {
		h.deps.Logger.Error().Err(err).Msg("issue session token")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, routepath.AppDashboard, http.StatusSeeOther)
}

func (h accountHandlers) handleSignUpForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pagerender.Page{
		Title:    "Create your account",
		Fragment: templates.SignUp(templates.AccountFormView{}),
	})
}

// handleSignUp creates the account and an empty business profile, then
// signs the visitor in.
func (h accountHandlers) handleSignUp(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	view := templates.AccountFormView{Email: email, Name: name}
	if name == "" || email == "" || !strings.Contains(email, "@") {
		view.Error = "Enter your name and a valid email."
		h.render(w, r, pagerender.Page{Title: "Create your account", StatusCode: http.StatusBadRequest, Fragment: templates.SignUp(view)})
		return
	}

	userID, err := id.NewID()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	now := time.Now().UTC()
	err = h.deps.Store.CreateUser(r.Context(), store.User{ID: userID, Email: email, Name: name, CreatedAt: now})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			view.Error = "An account with this email already exists."
			h.render(w, r, pagerender.Page{Title: "Create your account", StatusCode: http.StatusConflict, Fragment: templates.SignUp(view)})
			return
		}
		h.deps.Logger.Error().Err(err).Msg("sign-up create failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.deps.Store.PutProfile(r.Context(), store.BusinessProfile{UserID: userID, UpdatedAt: now}); err != nil {
		h.deps.Logger.Error().Err(err).Msg("sign-up profile create failed")
	}

	if err := h.startSession(w, r, userID); err != nil {
		h.deps.Logger.Error().Err(err).Msg("issue session token")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, routepath.AppDashboard, http.StatusSeeOther)
}

func (h accountHandlers) handleSignOut(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r, sessioncookie.DashboardName)
	http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
}
