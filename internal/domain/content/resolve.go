package content

import "slices"

// Overrides has the layout of Page. Non-empty strings and non-empty lists
// replace the matching default; everything else falls through.
type Overrides Page

// Resolve merges o over Defaults. The result shares no slices with o.
func Resolve(o Overrides) Page {
	d := Defaults()
	return Page{
		Hero: Hero{
			Heading:       pick(o.Hero.Heading, d.Hero.Heading),
			Subheading:    pick(o.Hero.Subheading, d.Hero.Subheading),
			Body:          pick(o.Hero.Body, d.Hero.Body),
			CTA:           pick(o.Hero.CTA, d.Hero.CTA),
			CTALabel:      pick(o.Hero.CTALabel, d.Hero.CTALabel),
			CTAHref:       pick(o.Hero.CTAHref, d.Hero.CTAHref),
			Background:    pick(o.Hero.Background, d.Hero.Background),
			BackgroundAlt: pick(o.Hero.BackgroundAlt, d.Hero.BackgroundAlt),
		},
		About: About{
			Heading:  pick(o.About.Heading, d.About.Heading),
			Body:     pick(o.About.Body, d.About.Body),
			Features: pickList(o.About.Features, d.About.Features),
			CTA:      pickLink(o.About.CTA, d.About.CTA),
			Stats:    pickList(o.About.Stats, d.About.Stats),
		},
		Services: Services{
			Heading:   pick(o.Services.Heading, d.Services.Heading),
			Intro:     pick(o.Services.Intro, d.Services.Intro),
			Items:     pickList(o.Services.Items, d.Services.Items),
			MoreLabel: pick(o.Services.MoreLabel, d.Services.MoreLabel),
		},
		Facilities: Facilities{
			Heading: pick(o.Facilities.Heading, d.Facilities.Heading),
			Intro:   pick(o.Facilities.Intro, d.Facilities.Intro),
			Items:   pickList(o.Facilities.Items, d.Facilities.Items),
			CTA:     pickLink(o.Facilities.CTA, d.Facilities.CTA),
		},
		Gallery: Gallery{
			Heading:    pick(o.Gallery.Heading, d.Gallery.Heading),
			Intro:      pick(o.Gallery.Intro, d.Gallery.Intro),
			EmptyTitle: pick(o.Gallery.EmptyTitle, d.Gallery.EmptyTitle),
			EmptyBody:  pick(o.Gallery.EmptyBody, d.Gallery.EmptyBody),
		},
		Contact: Contact{
			Heading:        pick(o.Contact.Heading, d.Contact.Heading),
			Subheading:     pick(o.Contact.Subheading, d.Contact.Subheading),
			Intro:          pick(o.Contact.Intro, d.Contact.Intro),
			SuccessTitle:   pick(o.Contact.SuccessTitle, d.Contact.SuccessTitle),
			SuccessBody:    pick(o.Contact.SuccessBody, d.Contact.SuccessBody),
			SubmitLabel:    pick(o.Contact.SubmitLabel, d.Contact.SubmitLabel),
			SendingLabel:   pick(o.Contact.SendingLabel, d.Contact.SendingLabel),
			OtherWays:      pick(o.Contact.OtherWays, d.Contact.OtherWays),
			OtherWaysLines: pickList(o.Contact.OtherWaysLines, d.Contact.OtherWaysLines),
		},
		CTA: CTA{
			Headline:    pick(o.CTA.Headline, d.CTA.Headline),
			Subheadline: pick(o.CTA.Subheadline, d.CTA.Subheadline),
			ButtonText:  pick(o.CTA.ButtonText, d.CTA.ButtonText),
			ButtonHref:  pick(o.CTA.ButtonHref, d.CTA.ButtonHref),
			Footnote:    pick(o.CTA.Footnote, d.CTA.Footnote),
			Background:  pick(o.CTA.Background, d.CTA.Background),
		},
		Footer: Footer{
			Name:           pick(o.Footer.Name, d.Footer.Name),
			Description:    pick(o.Footer.Description, d.Footer.Description),
			Social:         pickList(o.Footer.Social, d.Footer.Social),
			NavHeading:     pick(o.Footer.NavHeading, d.Footer.NavHeading),
			Nav:            pickList(o.Footer.Nav, d.Footer.Nav),
			ContactHeading: pick(o.Footer.ContactHeading, d.Footer.ContactHeading),
			Address:        pick(o.Footer.Address, d.Footer.Address),
			Phone:          pick(o.Footer.Phone, d.Footer.Phone),
			Email:          pick(o.Footer.Email, d.Footer.Email),
			TagsHeading:    pick(o.Footer.TagsHeading, d.Footer.TagsHeading),
			Tags:           pickList(o.Footer.Tags, d.Footer.Tags),
			Legal:          pickList(o.Footer.Legal, d.Footer.Legal),
		},
	}
}

func pick(o, d string) string {
	if o != "" {
		return o
	}
	return d
}

func pickLink(o, d Link) Link {
	return Link{
		Text:  pick(o.Text, d.Text),
		Href:  pick(o.Href, d.Href),
		Label: pick(o.Label, d.Label),
	}
}

func pickList[T any](o, d []T) []T {
	if len(o) > 0 {
		return slices.Clone(o)
	}
	return d
}
