// Package routepath centralizes route constants shared across modules.
package routepath

// Top-level marketing routes.
const (
	Root           = "/"
	Solutions      = "/solutions"
	Sustainability = "/sustainability"
	Testimonials   = "/testimonials"
	Contact        = "/contact"
	Pricing        = "/pricing"
	Health         = "/health"
)

// Onboarding wizard routes under the get-started subtree.
const (
	GetStartedPrefix  = "/get-started/"
	GetStartedStep    = "/get-started/step"
	GetStartedBack    = "/get-started/back"
	GetStartedSubmit  = "/get-started/submit"
	GetStartedResults = "/get-started/results"
)

// Account routes for the demo dashboard.
const (
	SignIn  = "/signin"
	SignUp  = "/signup"
	SignOut = "/signout"
)

// Protected dashboard routes. Everything under AppPrefix requires a session.
const (
	AppPrefix           = "/app/"
	AppDashboard        = "/app/dashboard"
	AppDashboardProfile = "/app/dashboard/profile"
)

// StaticPrefix serves embedded assets.
const StaticPrefix = "/static/"
