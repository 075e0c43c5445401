package content

// Dictionary holds every display string for one language.
type Dictionary struct {
	Locale      string    `yaml:"locale" json:"locale"`
	ToggleLabel string    `yaml:"toggle_label" json:"toggleLabel"`
	Nav         Nav       `yaml:"nav" json:"nav"`
	Hero        Hero      `yaml:"hero" json:"hero"`
	About       About     `yaml:"about" json:"about"`
	Skills      Skills    `yaml:"skills" json:"skills"`
	Portfolio   Portfolio `yaml:"portfolio" json:"portfolio"`
	Contact     Contact   `yaml:"contact" json:"contact"`
	Footer      Footer    `yaml:"footer" json:"footer"`
	Theme       Theme     `yaml:"theme" json:"theme"`
}

type Nav struct {
	About     string `yaml:"about" json:"about"`
	Skills    string `yaml:"skills" json:"skills"`
	Portfolio string `yaml:"portfolio" json:"portfolio"`
	Contact   string `yaml:"contact" json:"contact"`
}

type Hero struct {
	Greeting  string `yaml:"greeting" json:"greeting"`
	Title     string `yaml:"title" json:"title"`
	Subtitle  string `yaml:"subtitle" json:"subtitle"`
	CTA       string `yaml:"cta" json:"cta"`
	ContactMe string `yaml:"contact_me" json:"contactMe"`
}

type About struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Badges      []string `yaml:"badges" json:"badges"`
}

type Skills struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
}

type Portfolio struct {
	Title       string          `yaml:"title" json:"title"`
	Subtitle    string          `yaml:"subtitle" json:"subtitle"`
	ViewProject string          `yaml:"view_project" json:"viewProject"`
	ViewMore    string          `yaml:"view_more" json:"viewMore"`
	Items       map[string]Item `yaml:"items" json:"items"`
}

// Item is the localized metadata of one portfolio entry.
type Item struct {
	Title       string `yaml:"title" json:"title"`
	Category    string `yaml:"category" json:"category"`
	Description string `yaml:"description" json:"description"`
}

type Contact struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	CTA      string `yaml:"cta" json:"cta"`
}

type Footer struct {
	Rights string `yaml:"rights" json:"rights"`
}

type Theme struct {
	Light string `yaml:"light" json:"light"`
	Dark  string `yaml:"dark" json:"dark"`
}

// Item returns the localized metadata for a portfolio key.
func (d *Dictionary) Item(key string) (Item, bool) {
	item, ok := d.Portfolio.Items[key]
	return item, ok
}

// NavLabel returns the navigation label for a section.
func (d *Dictionary) NavLabel(s Section) string {
	switch s {
	case SectionAbout:
		return d.Nav.About
	case SectionSkills:
		return d.Nav.Skills
	case SectionPortfolio:
		return d.Nav.Portfolio
	case SectionContact:
		return d.Nav.Contact
	}
	return ""
}

// ThemeLabel describes the theme the toggle switches to.
func (d *Dictionary) ThemeLabel(dark bool) string {
	if dark {
		return d.Theme.Light
	}
	return d.Theme.Dark
}
