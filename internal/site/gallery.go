package site

import (
	"net/url"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"betagym/internal/domain/content"
	"betagym/internal/domain/gallery"
)

func categoryHref(c gallery.Category) string {
	if c == gallery.CategoryAll {
		return "/#gallery"
	}
	return "/?" + url.Values{"category": {c.String()}}.Encode() + "#gallery"
}

// Gallery renders the filter buttons and the visible tiles. An empty
// selection renders the empty-state block instead of an empty grid.
func Gallery(text content.Gallery, st gallery.State) g.Node {
	return html.Section(
		html.ID("gallery"),
		html.Class("gallery"),
		sectionHeading(text.Heading, text.Intro),
		html.Nav(
			html.Class("gallery-filters"),
			html.Role("tablist"),
			g.Group(g.Map(gallery.Categories(), func(c gallery.Category) g.Node {
				active := c == st.Active
				return html.A(
					html.Href(categoryHref(c)),
					html.Role("tab"),
					html.Aria("selected", boolAttr(active)),
					g.Attr("data-category", c.String()),
					html.Class(classes("filter-btn", active, "active")),
					g.Text(c.Label()),
				)
			})),
		),
		g.If(st.Loading, html.Div(html.Class("gallery-loading"), html.Aria("busy", "true"))),
		galleryBody(text, st),
	)
}

func galleryBody(text content.Gallery, st gallery.State) g.Node {
	if st.Empty {
		return html.Div(
			html.Class("gallery-empty"),
			html.H3(g.Text(text.EmptyTitle)),
			html.P(g.Text(text.EmptyBody)),
		)
	}
	return html.Div(
		html.Class("gallery-grid"),
		g.Group(g.Map(st.Visible, func(it gallery.Item) g.Node {
			return g.El("figure",
				html.Class("gallery-item"),
				g.Attr("data-category", it.Category.String()),
				html.Img(html.Src(it.Src), html.Alt(it.Alt), g.Attr("loading", "lazy")),
				g.El("figcaption",
					html.Span(html.Class("badge"), g.Text(it.Category.Label())),
					html.P(g.Text(it.Caption)),
				),
			)
		})),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func classes(base string, on bool, extra string) string {
	if on {
		return base + " " + extra
	}
	return base
}
