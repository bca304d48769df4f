// Package site renders the single-page marketing site on the server.
package site

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"betagym/internal/domain/content"
)

func sectionHeading(title, intro string) g.Node {
	return html.Div(
		html.Class("section-heading"),
		html.H2(g.Text(title)),
		g.If(intro != "", html.P(html.Class("section-intro"), g.Text(intro))),
	)
}

func featureCard(f content.Feature) g.Node {
	return html.Div(
		html.Class("card"),
		html.Span(html.Class("card-icon"), html.Aria("hidden", "true"), g.Text(f.Icon)),
		html.H3(g.Text(f.Title)),
		html.P(g.Text(f.Description)),
	)
}

func linkButton(l content.Link, class string) g.Node {
	return html.A(html.Href(l.Href), html.Class(class), g.Text(l.Text))
}

// Hero is the top banner with the primary call to action.
func Hero(h content.Hero) g.Node {
	return html.Section(
		html.ID("hero"),
		html.Class("hero"),
		html.Img(html.Src(h.Background), html.Alt(h.BackgroundAlt), html.Class("hero-background")),
		html.Div(
			html.Class("hero-content"),
			html.H1(g.Text(h.Heading)),
			html.H2(g.Text(h.Subheading)),
			html.P(g.Text(h.Body)),
			html.A(html.Href(h.CTAHref), html.Class("btn btn-primary"), html.Aria("label", h.CTALabel), g.Text(h.CTA)),
		),
	)
}

// About renders the feature cards and the trust indicators.
func About(a content.About) g.Node {
	return html.Section(
		html.ID("about"),
		html.Class("about"),
		sectionHeading(a.Heading, a.Body),
		html.Div(html.Class("grid grid-3"), g.Group(g.Map(a.Features, featureCard))),
		linkButton(a.CTA, "btn btn-outline"),
		html.Ul(
			html.Class("stats"),
			g.Group(g.Map(a.Stats, func(s content.Stat) g.Node {
				return html.Li(
					html.Strong(g.Text(s.Value)),
					html.Span(g.Text(s.Label)),
				)
			})),
		),
	)
}

func Services(s content.Services) g.Node {
	return html.Section(
		html.ID("services"),
		html.Class("services"),
		sectionHeading(s.Heading, s.Intro),
		html.Div(
			html.Class("grid grid-3"),
			g.Group(g.Map(s.Items, func(f content.Feature) g.Node {
				return html.Div(
					html.Class("card"),
					html.Span(html.Class("card-icon"), html.Aria("hidden", "true"), g.Text(f.Icon)),
					html.H3(g.Text(f.Title)),
					html.P(g.Text(f.Description)),
					html.A(html.Href("#contact"), html.Class("card-more"), g.Text(s.MoreLabel)),
				)
			})),
		),
	)
}

func Facilities(f content.Facilities) g.Node {
	return html.Section(
		html.ID("facilities"),
		html.Class("facilities"),
		sectionHeading(f.Heading, f.Intro),
		html.Div(html.Class("grid grid-4"), g.Group(g.Map(f.Items, featureCard))),
		linkButton(f.CTA, "btn btn-primary"),
	)
}

// CTA is the join-now band near the bottom of the page.
func CTA(c content.CTA) g.Node {
	return html.Section(
		html.ID("cta"),
		html.Class("cta"),
		g.Attr("style", "background-image: url('"+c.Background+"')"),
		html.H2(g.Text(c.Headline)),
		html.P(g.Text(c.Subheadline)),
		html.A(html.Href(c.ButtonHref), html.Class("btn btn-primary"), g.Text(c.ButtonText)),
		html.Small(g.Text(c.Footnote)),
	)
}

func Footer(f content.Footer, year int) g.Node {
	return html.Footer(
		html.Class("site-footer"),
		html.Div(
			html.Class("grid grid-4"),
			html.Div(
				html.H3(g.Text(f.Name)),
				html.P(g.Text(f.Description)),
				html.Ul(
					html.Class("social"),
					g.Group(g.Map(f.Social, func(l content.Link) g.Node {
						return html.Li(html.A(
							html.Href(l.Href),
							html.Target("_blank"),
							html.Rel("noopener noreferrer"),
							html.Aria("label", l.Label),
							g.Text(l.Text),
						))
					})),
				),
			),
			html.Nav(
				html.Aria("label", f.NavHeading),
				html.H3(g.Text(f.NavHeading)),
				html.Ul(g.Group(g.Map(f.Nav, func(l content.Link) g.Node {
					return html.Li(linkButton(l, "footer-link"))
				}))),
			),
			html.Div(
				html.H3(g.Text(f.ContactHeading)),
				html.P(g.Text(f.Address)),
				html.P(html.A(html.Href("tel:"+f.Phone), g.Text(f.Phone))),
				html.P(html.A(html.Href("mailto:"+f.Email), g.Text(f.Email))),
			),
			html.Div(
				html.H3(g.Text(f.TagsHeading)),
				html.Ul(
					html.Class("tags"),
					g.Group(g.Map(f.Tags, func(t string) g.Node {
						return html.Li(html.Class("tag"), g.Text(t))
					})),
				),
			),
		),
		html.Div(
			html.Class("footer-bottom"),
			html.P(g.Text(f.Copyright(year))),
			html.Ul(g.Group(g.Map(f.Legal, func(l content.Link) g.Node {
				return html.Li(linkButton(l, "footer-link"))
			}))),
		),
	)
}
