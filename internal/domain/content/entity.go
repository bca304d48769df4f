package content

import "fmt"

// Feature is an (icon, title, description) card.
type Feature struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Stat is one trust indicator, e.g. "+1,000" regular members.
type Stat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Link is an anchor. Label is the accessible name when Text is an icon.
type Link struct {
	Text  string `json:"text" yaml:"text"`
	Href  string `json:"href" yaml:"href"`
	Label string `json:"label,omitempty" yaml:"label"`
}

type Hero struct {
	Heading       string `json:"heading" yaml:"heading"`
	Subheading    string `json:"subheading" yaml:"subheading"`
	Body          string `json:"body" yaml:"body"`
	CTA           string `json:"cta" yaml:"cta"`
	CTALabel      string `json:"cta_label" yaml:"cta_label"`
	CTAHref       string `json:"cta_href" yaml:"cta_href"`
	Background    string `json:"background" yaml:"background"`
	BackgroundAlt string `json:"background_alt" yaml:"background_alt"`
}

type About struct {
	Heading  string    `json:"heading" yaml:"heading"`
	Body     string    `json:"body" yaml:"body"`
	Features []Feature `json:"features" yaml:"features"`
	CTA      Link      `json:"cta" yaml:"cta"`
	Stats    []Stat    `json:"stats" yaml:"stats"`
}

type Services struct {
	Heading   string    `json:"heading" yaml:"heading"`
	Intro     string    `json:"intro" yaml:"intro"`
	Items     []Feature `json:"items" yaml:"items"`
	MoreLabel string    `json:"more_label" yaml:"more_label"`
}

type Facilities struct {
	Heading string    `json:"heading" yaml:"heading"`
	Intro   string    `json:"intro" yaml:"intro"`
	Items   []Feature `json:"items" yaml:"items"`
	CTA     Link      `json:"cta" yaml:"cta"`
}

// Gallery holds the copy around the filterable gallery.
type Gallery struct {
	Heading    string `json:"heading" yaml:"heading"`
	Intro      string `json:"intro" yaml:"intro"`
	EmptyTitle string `json:"empty_title" yaml:"empty_title"`
	EmptyBody  string `json:"empty_body" yaml:"empty_body"`
}

// Contact holds the copy around the contact form.
type Contact struct {
	Heading        string   `json:"heading" yaml:"heading"`
	Subheading     string   `json:"subheading" yaml:"subheading"`
	Intro          string   `json:"intro" yaml:"intro"`
	SuccessTitle   string   `json:"success_title" yaml:"success_title"`
	SuccessBody    string   `json:"success_body" yaml:"success_body"`
	SubmitLabel    string   `json:"submit_label" yaml:"submit_label"`
	SendingLabel   string   `json:"sending_label" yaml:"sending_label"`
	OtherWays      string   `json:"other_ways" yaml:"other_ways"`
	OtherWaysLines []string `json:"other_ways_lines" yaml:"other_ways_lines"`
}

type CTA struct {
	Headline    string `json:"headline" yaml:"headline"`
	Subheadline string `json:"subheadline" yaml:"subheadline"`
	ButtonText  string `json:"button_text" yaml:"button_text"`
	ButtonHref  string `json:"button_href" yaml:"button_href"`
	Footnote    string `json:"footnote" yaml:"footnote"`
	Background  string `json:"background" yaml:"background"`
}

type Footer struct {
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	Social         []Link   `json:"social" yaml:"social"`
	NavHeading     string   `json:"nav_heading" yaml:"nav_heading"`
	Nav            []Link   `json:"nav" yaml:"nav"`
	ContactHeading string   `json:"contact_heading" yaml:"contact_heading"`
	Address        string   `json:"address" yaml:"address"`
	Phone          string   `json:"phone" yaml:"phone"`
	Email          string   `json:"email" yaml:"email"`
	TagsHeading    string   `json:"tags_heading" yaml:"tags_heading"`
	Tags           []string `json:"tags" yaml:"tags"`
	Legal          []Link   `json:"legal" yaml:"legal"`
}

// Copyright renders the copyright line for the given year.
func (f Footer) Copyright(year int) string {
	return fmt.Sprintf("© %d %s. כל הזכויות שמורות.", year, f.Name)
}

// Page is every content section of the site.
type Page struct {
	Hero       Hero       `json:"hero" yaml:"hero"`
	About      About      `json:"about" yaml:"about"`
	Services   Services   `json:"services" yaml:"services"`
	Facilities Facilities `json:"facilities" yaml:"facilities"`
	Gallery    Gallery    `json:"gallery" yaml:"gallery"`
	Contact    Contact    `json:"contact" yaml:"contact"`
	CTA        CTA        `json:"cta" yaml:"cta"`
	Footer     Footer     `json:"footer" yaml:"footer"`
}

// Section names accepted by Page.Section.
const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionServices   = "services"
	SectionFacilities = "facilities"
	SectionGallery    = "gallery"
	SectionContact    = "contact"
	SectionCTA        = "cta"
	SectionFooter     = "footer"
)

func SectionNames() []string {
	return []string{
		SectionHero,
		SectionAbout,
		SectionServices,
		SectionFacilities,
		SectionGallery,
		SectionContact,
		SectionCTA,
		SectionFooter,
	}
}

// Section returns one section by name.
func (p Page) Section(name string) (any, error) {
	switch name {
	case SectionHero:
		return p.Hero, nil
	case SectionAbout:
		return p.About, nil
	case SectionServices:
		return p.Services, nil
	case SectionFacilities:
		return p.Facilities, nil
	case SectionGallery:
		return p.Gallery, nil
	case SectionContact:
		return p.Contact, nil
	case SectionCTA:
		return p.CTA, nil
	case SectionFooter:
		return p.Footer, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
}
