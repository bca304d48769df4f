package content

const (
	businessName    = "מכון כושר ביתא"
	businessAddress = "רחוב הרצל 123, תל אביב"
	businessPhone   = "03-1234567"
	businessEmail   = "info@betagym.co.il"
	tagline         = "אנחנו מכון כושר מוביל בתחום עם ניסיון של שנים רבות. אנחנו מתמחים במתן שירות מקצועי ואיכותי ללקוחותינו."
)

// Defaults returns the built-in copy of every section. Each call returns
// fresh slices.
func Defaults() Page {
	return Page{
		Hero: Hero{
			Heading:       "מכון כושר מוביל בישראל",
			Subheading:    "חווית לקוח מושלמת בכל ביקור",
			Body:          tagline,
			CTA:           "קבע תור עכשיו",
			CTALabel:      "קבע תור עכשיו למכון הכושר",
			CTAHref:       "#contact",
			Background:    "/images/gym-background.jpg",
			BackgroundAlt: "מכון כושר מקצועי",
		},
		About: About{
			Heading: "אודות מכון כושר ביתא",
			Body:    tagline,
			Features: []Feature{
				{Icon: "🏋️", Title: "ציוד מתקדם", Description: "אנו מציעים מגוון רחב של ציוד כושר מתקדם ועדכני לחוויית אימון מיטבית"},
				{Icon: "🏆", Title: "מדריכים מוסמכים", Description: "הצוות שלנו מורכב ממדריכים מקצועיים בעלי הסמכות והכשרות מהרמה הגבוהה ביותר"},
				{Icon: "👥", Title: "קהילה תומכת", Description: "הצטרפו לקהילה שלנו ותיהנו מסביבה תומכת ומעודדת להשגת היעדים שלכם"},
			},
			CTA: Link{Text: "צור קשר עוד היום", Href: "#contact"},
			Stats: []Stat{
				{Value: "+1,000", Label: "מתאמנים קבועים"},
				{Value: "15", Label: "שנות ניסיון"},
				{Value: "25", Label: "מדריכים מוסמכים"},
				{Value: "98%", Label: "שביעות רצון לקוחות"},
			},
		},
		Services: Services{
			Heading: "השירותים שלנו",
			Intro:   "במכון כושר ביתא אנחנו מציעים מגוון רחב של שירותים מקצועיים כדי לעזור לך להשיג את המטרות שלך",
			Items: []Feature{
				{Icon: "👤", Title: "אימון אישי", Description: "אימונים מותאמים אישית עם מאמנים מוסמכים שיעזרו לך להשיג את היעדים שלך"},
				{Icon: "👥", Title: "אימוני קבוצות", Description: "מגוון רחב של שיעורים קבוצתיים כמו יוגה, פילאטיס, זומבה ועוד"},
				{Icon: "🥗", Title: "ייעוץ תזונה", Description: "תוכניות תזונה מותאמות אישית שילוו את האימונים שלך לתוצאות מיטביות"},
				{Icon: "📋", Title: "תוכניות אימון מיוחדות", Description: "תוכניות ייעודיות לירידה במשקל, בניית שריר, או שיפור הכושר הכללי"},
				{Icon: "🏋️", Title: "מתקנים מתקדמים", Description: "ציוד חדשני ומתקדם לאימון יעיל ובטוח בסביבה נוחה ומזמינה"},
				{Icon: "🤝", Title: "ליווי מקצועי", Description: "צוות מקצועי ומנוסה שילווה אותך לאורך כל הדרך להשגת המטרות שלך"},
			},
			MoreLabel: "קרא עוד",
		},
		Facilities: Facilities{
			Heading: "המתקנים שלנו",
			Intro:   "מכון כושר ביתא מציע לכם את המתקנים והציוד המתקדמים ביותר לחווית אימון מושלמת",
			Items: []Feature{
				{Icon: "💪", Title: "ציוד מודרני", Description: "מגוון רחב של מכשירי כושר חדישים ומתקדמים לאימון יעיל ומהנה"},
				{Icon: "🏋️", Title: "אזורי אימון מרווחים", Description: "חללי אימון גדולים ומאווררים המאפשרים חופש תנועה ונוחות מרבית"},
				{Icon: "🚿", Title: "חדרי הלבשה מפנקים", Description: "חדרי הלבשה נקיים עם מקלחות, לוקרים ואביזרי נוחות לחוויה מושלמת"},
				{Icon: "👨‍🏫", Title: "צוות מקצועי", Description: "מאמנים מוסמכים ובעלי ניסיון עשיר שילוו אתכם להשגת היעדים שלכם"},
			},
			CTA: Link{Text: "בואו להתרשם ממתקני המכון", Href: "#contact"},
		},
		Gallery: Gallery{
			Heading:    "הגלריה שלנו",
			Intro:      "צפו בתמונות ממכון הכושר המוביל שלנו - מכון כושר ביתא. מתקנים חדישים, ציוד מקצועי, שיעורים מגוונים וסיפורי הצלחה של מתאמנים.",
			EmptyTitle: "אין תוצאות",
			EmptyBody:  "לא נמצאו תמונות בקטגוריה זו",
		},
		Contact: Contact{
			Heading:      "צור קשר",
			Subheading:   businessName,
			Intro:        "מלאו את הטופס כדי לקבל מידע נוסף או לקבוע פגישה במכון הכושר שלנו. צוות המומחים שלנו ישמח לענות על כל שאלה ולעזור לכם להשיג את יעדי הכושר שלכם.",
			SuccessTitle: "תודה רבה!",
			SuccessBody:  "פנייתך התקבלה בהצלחה. ניצור איתך קשר בהקדם.",
			SubmitLabel:  "שלח פנייה",
			SendingLabel: "שולח...",
			OtherWays:    "דרכים נוספות ליצירת קשר:",
			OtherWaysLines: []string{
				businessPhone,
				businessEmail,
				businessAddress,
			},
		},
		CTA: CTA{
			Headline:    "הצטרפו למכון כושר ביתא והתחילו את המסע שלכם לכושר מושלם",
			Subheadline: "אימונים מותאמים אישית, מאמנים מקצועיים, וציוד חדשני - כל מה שאתם צריכים במקום אחד",
			ButtonText:  "קבע תור עכשיו",
			ButtonHref:  "#contact",
			Footnote:    "*אימון ראשון חינם למצטרפים חדשים",
			Background:  "/images/fitness-background.jpg",
		},
		Footer: Footer{
			Name:        businessName,
			Description: tagline,
			Social: []Link{
				{Text: "Facebook", Href: "https://facebook.com", Label: "פייסבוק"},
				{Text: "Instagram", Href: "https://instagram.com", Label: "אינסטגרם"},
				{Text: "Twitter", Href: "https://twitter.com", Label: "טוויטר"},
				{Text: "WhatsApp", Href: "https://whatsapp.com", Label: "וואטסאפ"},
			},
			NavHeading: "ניווט מהיר",
			Nav: []Link{
				{Text: "דף הבית", Href: "/"},
				{Text: "אודות", Href: "#about"},
				{Text: "שירותים", Href: "#services"},
				{Text: "צור קשר", Href: "#contact"},
			},
			ContactHeading: "צור קשר",
			Address:        businessAddress,
			Phone:          businessPhone,
			Email:          businessEmail,
			TagsHeading:    "תגיות",
			Tags:           []string{"מכון כושר", "שירות", "איכות", "מקצועיות", "ישראל"},
			Legal: []Link{
				{Text: "מדיניות פרטיות", Href: "/privacy"},
				{Text: "תנאי שימוש", Href: "/terms"},
			},
		},
	}
}
