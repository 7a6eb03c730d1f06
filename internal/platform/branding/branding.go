// Package branding centralizes product naming for user-facing surfaces.
package branding

// AppName is the canonical product name shown in page titles and chrome.
const AppName = "Awe Agency"

// ShortName is the lowercase wordmark used next to the logo.
const ShortName = "awe"

// Tagline is the default marketing strapline.
const Tagline = "Personalized, sustainable advertising for small businesses"
