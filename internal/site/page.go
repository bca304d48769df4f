package site

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"betagym/internal/domain/contact"
	"betagym/internal/domain/content"
	"betagym/internal/domain/gallery"
	"betagym/internal/domain/location"
)

const leafletVersion = "1.9.4"

// PageData is everything one render of the home page needs.
type PageData struct {
	Content  content.Page
	Gallery  gallery.State
	Form     contact.State
	Banner   *Banner
	Location *location.View
	Year     int
}

// Page composes the sections in their original order.
func Page(d PageData) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("he"),
			g.Attr("dir", "rtl"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.Meta(html.Name("description"), html.Content(d.Content.Hero.Body)),
				g.El("title", g.Text(d.Content.Footer.Name+" | "+d.Content.Hero.Heading)),
				html.Link(html.Rel("stylesheet"), html.Href("https://unpkg.com/leaflet@"+leafletVersion+"/dist/leaflet.css")),
			),
			html.Body(
				html.Main(
					Hero(d.Content.Hero),
					About(d.Content.About),
					Services(d.Content.Services),
					Facilities(d.Content.Facilities),
					Gallery(d.Content.Gallery, d.Gallery),
					Contact(d.Content.Contact, d.Form, d.Banner),
					g.Iff(d.Location != nil, func() g.Node { return Location(*d.Location) }),
					CTA(d.Content.CTA),
				),
				Footer(d.Content.Footer, d.Year),
				g.If(d.Location != nil, g.Group{
					html.Script(html.Src("https://unpkg.com/leaflet@" + leafletVersion + "/dist/leaflet.js")),
					html.Script(g.Raw(mountScript)),
				}),
			),
		),
	)
}
