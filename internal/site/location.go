package site

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"betagym/internal/domain/location"
)

// MapEndpoint returns the mounted map model as JSON.
const MapEndpoint = "/api/v1/location?mounted=true"

// Location renders the business details. The map itself is only a
// placeholder until the browser has mounted the page and fetched
// MapEndpoint; a view that already carries a map never reaches the server
// render.
func Location(v location.View) g.Node {
	return html.Section(
		html.ID("location"),
		html.Class("location"),
		sectionHeading(v.Heading, v.Intro),
		html.Div(
			html.Class("location-grid"),
			html.Div(
				html.Class("location-details"),
				html.H3(g.Text(v.Name)),
				html.P(g.Text(v.Address)),
				html.P(html.A(html.Href(v.PhoneHref), g.Text(v.Phone))),
				html.P(html.A(html.Href(v.EmailHref), g.Text(v.Email))),
				html.H4(g.Text("שעות פעילות")),
				html.Ul(
					html.Class("hours"),
					g.Group(g.Map(v.Hours, func(h location.BusinessHours) g.Node {
						return html.Li(html.Span(g.Text(h.Day)), html.Span(g.Text(h.Hours)))
					})),
				),
			),
			html.Div(
				html.ID("map"),
				html.Class("map-placeholder"),
				g.Attr("data-endpoint", MapEndpoint),
				html.Aria("label", "מפה"),
			),
		),
	)
}

// mountScript initialises Leaflet once the page has loaded. It is the
// only client-side code on the page. The popup is built from text nodes
// so content copy is never parsed as HTML.
const mountScript = `document.addEventListener("DOMContentLoaded", function () {
  var el = document.getElementById("map");
  if (!el || !window.L) return;
  fetch(el.dataset.endpoint, {credentials: "same-origin"})
    .then(function (r) { return r.json(); })
    .then(function (body) {
      var m = body.data && body.data.map;
      if (!m) return;
      var map = L.map(el).setView([m.center.lat, m.center.lng], m.zoom);
      L.tileLayer(m.tile_url, {attribution: m.attribution}).addTo(map);
      var popup = document.createElement("div");
      m.marker.caption.split("\n").forEach(function (line, i) {
        if (i > 0) popup.appendChild(document.createElement("br"));
        popup.appendChild(document.createTextNode(line));
      });
      L.marker([m.marker.position.lat, m.marker.position.lng]).addTo(map)
        .bindPopup(popup);
    });
});`
