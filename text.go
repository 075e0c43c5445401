package main

// Static site catalog. Localized strings live in internal/content/locales;
// everything here is the same in every language.

const (
	Brand         = "Solla Design"
	OwnerName     = "Rafael Solla"
	OwnerPhoto    = "/static/me-pic.svg"
	CopyrightYear = 2025
)

// Outbound link keys double as click-tracking keys.
const (
	LinkEmail    = "email"
	LinkBehance  = "behance"
	LinkLinkedIn = "linkedin"
)

// SkillEntry is a named competency and its displayed proficiency (0-100).
type SkillEntry struct {
	Name  string
	Level int
}

// PortfolioItem is a gallery entry. Key selects the localized title,
// category and description.
type PortfolioItem struct {
	Key   string
	Image string
	URL   string
}

var (
	Skills = []SkillEntry{
		{Name: "Figma", Level: 75},
		{Name: "Photoshop", Level: 90},
		{Name: "Illustrator", Level: 85},
		{Name: "UI Design", Level: 80},
		{Name: "ID Visual", Level: 85},
	}

	PortfolioItems = []PortfolioItem{
		{
			Key:   "labesc",
			Image: "/static/placeholder.svg",
			URL:   "https://www.behance.net/gallery/198182671/Projeto-Labesc",
		},
		{
			Key:   "alice",
			Image: "/static/placeholder.svg",
			URL:   "https://www.behance.net/gallery/160098689/Identidade-Visual-ChatLab",
		},
		{
			Key:   "chatlab",
			Image: "/static/placeholder.svg",
			URL:   "https://www.behance.net/gallery/160098689/Identidade-Visual-ChatLab",
		},
	}

	Links = map[string]string{
		LinkEmail:    "https://mail.google.com/mail/?view=cm&fs=1&to=contato@solladesign.com.br",
		LinkBehance:  "https://www.behance.net/sollamartins",
		LinkLinkedIn: "https://www.linkedin.com/in/rafaelsolla",
	}
)

// trackableKeys returns every key accepted by the click endpoint.
func trackableKeys() map[string]bool {
	keys := make(map[string]bool, len(Links)+len(PortfolioItems))
	for k := range Links {
		keys[k] = true
	}
	for _, item := range PortfolioItems {
		keys[item.Key] = true
	}
	return keys
}
