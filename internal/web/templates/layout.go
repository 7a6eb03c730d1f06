// Package templates renders the site's HTML as templ components.
package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/awelabs/awe.agency/internal/platform/branding"
	"github.com/awelabs/awe.agency/internal/web/routepath"
)

// Notice is a dismissible banner rendered above page content.
type Notice struct {
	Kind    string
	Message string
}

// PageView carries the data every full page needs.
type PageView struct {
	Title      string
	Lang       string
	ActivePath string
	SignedIn   bool
	Notice     *Notice
}

func esc(s string) string { return templ.EscapeString(s) }

func write(w io.Writer, chunks ...string) error {
	for _, chunk := range chunks {
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
	}
	return nil
}

type navLink struct {
	Path  string
	Label string
}

var navLinks = []navLink{
	{routepath.Solutions, "Solutions"},
	{routepath.Sustainability, "Sustainability"},
	{routepath.Pricing, "Pricing"},
	{routepath.Testimonials, "Testimonials"},
	{routepath.Contact, "Contact"},
}

// Page wraps content in the full HTML shell: head, nav, notice banner, and
// footer.
func Page(view PageView, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := view.Lang
		if lang == "" {
			lang = "en"
		}
		title := view.Title
		if title == "" {
			title = branding.AppName
		} else {
			title = title + " | " + branding.AppName
		}

		if err := write(w,
			`<!DOCTYPE html><html lang="`, esc(lang), `"><head>`,
			`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, esc(title), `</title>`,
			`<link rel="stylesheet" href="/static/styles.css">`,
			`</head><body><header class="site-header"><nav class="site-nav">`,
			`<a class="brand" href="`, routepath.Root, `">`, esc(branding.AppName), `</a><ul>`,
		); err != nil {
			return err
		}
		for _, link := range navLinks {
			class := ""
			if link.Path == view.ActivePath {
				class = ` class="active"`
			}
			if err := write(w, `<li><a`, class, ` href="`, link.Path, `">`, esc(link.Label), `</a></li>`); err != nil {
				return err
			}
		}
		accountLink := `<li><a href="` + routepath.SignIn + `">Sign in</a></li>`
		if view.SignedIn {
			accountLink = `<li><a href="` + routepath.AppDashboard + `">Dashboard</a></li>`
		}
		if err := write(w, accountLink,
			`<li><a class="cta" href="`, routepath.GetStartedPrefix, `">Get started</a></li>`,
			`</ul></nav></header><main>`,
		); err != nil {
			return err
		}

		if view.Notice != nil {
			if err := write(w,
				`<div class="notice notice-`, esc(view.Notice.Kind), `" role="alert">`,
				esc(view.Notice.Message),
				` <a href="" class="notice-dismiss" aria-label="Dismiss">&times;</a></div>`,
			); err != nil {
				return err
			}
		}

		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}

		return write(w,
			`</main><footer class="site-footer"><p>`, esc(branding.AppName), ` &middot; `,
			esc(branding.Tagline), `</p></footer></body></html>`,
		)
	})
}

// ErrorPage renders the shared error page fragment for a status code.
func ErrorPage(statusCode int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		text := http.StatusText(statusCode)
		if text == "" {
			text = "Something went wrong"
		}
		return write(w,
			`<section class="error-state"><h1>`, fmt.Sprintf("%d", statusCode), `</h1>`,
			`<p>`, esc(text), `</p>`,
			`<p><a href="`, routepath.Root, `">Back to the homepage</a></p></section>`,
		)
	})
}

// ErrorPageTitle returns the page title for a status code.
func ErrorPageTitle(statusCode int) string {
	text := http.StatusText(statusCode)
	if text == "" {
		return "Error"
	}
	return text
}
