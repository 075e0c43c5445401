package content

// Section identifies a scroll target on the page.
type Section string

const (
	SectionAbout     Section = "about"
	SectionSkills    Section = "skills"
	SectionPortfolio Section = "portfolio"
	SectionContact   Section = "contact"
)

var sections = []Section{SectionAbout, SectionSkills, SectionPortfolio, SectionContact}

// Sections returns the navigable sections in page order.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

// ParseSection validates a section id.
func ParseSection(id string) (Section, bool) {
	for _, s := range sections {
		if string(s) == id {
			return s, true
		}
	}
	return "", false
}

// ID is the element id the section renders with.
func (s Section) ID() string {
	return string(s)
}

// Anchor is the fragment link that scrolls to the section.
func (s Section) Anchor() string {
	return "#" + string(s)
}
