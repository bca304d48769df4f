package site

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"betagym/internal/domain/contact"
	"betagym/internal/domain/content"
)

// Banner is a one-off notice rendered above the form, used for
// transport failures that are not tied to a field.
type Banner struct {
	Kind    string
	Message string
}

type formField struct {
	name        string
	label       string
	inputType   string
	placeholder string
	value       string
}

// Contact renders the contact form with inline errors, the success banner
// and the side panel with the other ways to reach the gym.
func Contact(text content.Contact, st contact.State, banner *Banner) g.Node {
	fields := []formField{
		{name: contact.FieldName, label: "שם מלא", inputType: "text", placeholder: "הזינו את שמכם המלא", value: st.Fields.Name},
		{name: contact.FieldPhone, label: "טלפון", inputType: "tel", placeholder: "הזינו מספר טלפון", value: st.Fields.Phone},
		{name: contact.FieldEmail, label: "אימייל", inputType: "email", placeholder: "הזינו כתובת אימייל", value: st.Fields.Email},
	}

	submitLabel := text.SubmitLabel
	if st.InFlight {
		submitLabel = text.SendingLabel
	}

	return html.Section(
		html.ID("contact"),
		html.Class("contact"),
		sectionHeading(text.Heading, text.Intro),
		html.H3(g.Text(text.Subheading)),
		g.If(st.Success, html.Div(
			html.Class("alert alert-success"),
			html.Role("status"),
			html.Strong(g.Text(text.SuccessTitle)),
			html.P(g.Text(text.SuccessBody)),
		)),
		g.Iff(banner != nil, func() g.Node {
			return html.Div(html.Class("alert alert-"+banner.Kind), html.Role("alert"), g.Text(banner.Message))
		}),
		g.El("form",
			html.Method("post"),
			html.Action("/contact#contact"),
			html.Class("contact-form"),
			g.Attr("novalidate"),
			g.Group(g.Map(fields, func(f formField) g.Node {
				return fieldRow(f, st.Errors, html.Input(
					html.ID(f.name),
					html.Name(f.name),
					html.Type(f.inputType),
					html.Value(f.value),
					html.Placeholder(f.placeholder),
					html.Required(),
					g.If(hasError(st.Errors, f.name), html.Aria("invalid", "true")),
				))
			})),
			fieldRow(formField{name: contact.FieldMessage, label: "הודעה"}, st.Errors, html.Textarea(
				html.ID(contact.FieldMessage),
				html.Name(contact.FieldMessage),
				g.Attr("rows", "5"),
				html.Placeholder("כתבו את הודעתכם כאן"),
				html.Required(),
				g.If(hasError(st.Errors, contact.FieldMessage), html.Aria("invalid", "true")),
				g.Text(st.Fields.Message),
			)),
			html.Button(
				html.Type("submit"),
				html.Class("btn btn-primary"),
				g.If(st.InFlight, html.Disabled()),
				g.Text(submitLabel),
			),
		),
		html.Aside(
			html.Class("contact-side"),
			html.H4(g.Text(text.OtherWays)),
			html.Ul(g.Group(g.Map(text.OtherWaysLines, func(line string) g.Node {
				return html.Li(g.Text(line))
			}))),
		),
	)
}

func fieldRow(f formField, errs contact.Errors, input g.Node) g.Node {
	fe, bad := errs[f.name]
	return html.Div(
		html.Class(classes("form-row", bad, "has-error")),
		g.El("label", g.Attr("for", f.name), g.Text(f.label)),
		input,
		g.If(bad, html.P(html.Class("field-error"), html.ID(f.name+"-error"), g.Attr("data-rule", string(fe.Rule)), g.Text(fe.Message))),
	)
}

func hasError(errs contact.Errors, field string) bool {
	_, ok := errs[field]
	return ok
}
