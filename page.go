package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/solladesign/portfolio/internal/animation"
	"github.com/solladesign/portfolio/internal/content"
)

const langKey = "lang"

type navLink struct {
	ID     string
	Anchor string
	Label  string
}

type skillView struct {
	Name          string
	Level         int
	DelayMS       int64
	DurationMS    int64
	Threshold     float64
	Circumference float64
	Offset        float64
}

type projectView struct {
	Key         string
	Image       string
	URL         string
	Title       string
	Category    string
	Description string
}

type pageData struct {
	Lang        string
	Theme       string
	RootClass   string
	T           *content.Dictionary
	Brand       string
	Owner       string
	Photo       string
	Nav         []navLink
	Skills      []skillView
	Projects    []projectView
	Links       map[string]string
	Year        int
	ThemeToggle string
}

// buildPage assembles everything the index template renders for state.
func buildPage(bundle *content.Bundle, state content.State) pageData {
	t := bundle.For(state.Lang)

	nav := make([]navLink, 0, len(content.Sections()))
	for _, s := range content.Sections() {
		nav = append(nav, navLink{ID: s.ID(), Anchor: s.Anchor(), Label: t.NavLabel(s)})
	}

	ring := animation.DefaultRing()
	skills := make([]skillView, 0, len(Skills))
	for i, skill := range Skills {
		a := animation.New(skill.Level, animation.Stagger(i, animation.DefaultStagger))
		skills = append(skills, skillView{
			Name:          skill.Name,
			Level:         a.Target(),
			DelayMS:       a.Delay().Milliseconds(),
			DurationMS:    a.Duration().Milliseconds(),
			Threshold:     a.Threshold(),
			Circumference: ring.Circumference(),
			Offset:        ring.DashOffset(0),
		})
	}

	projects := make([]projectView, 0, len(PortfolioItems))
	for _, p := range PortfolioItems {
		item, ok := t.Item(p.Key)
		if !ok {
			log.Printf("Missing %s portfolio text for %q", t.Locale, p.Key)
			item = content.Item{Title: p.Key}
		}
		projects = append(projects, projectView{
			Key:         p.Key,
			Image:       p.Image,
			URL:         p.URL,
			Title:       item.Title,
			Category:    item.Category,
			Description: item.Description,
		})
	}

	return pageData{
		Lang:        state.Lang.String(),
		Theme:       state.Theme(),
		RootClass:   state.RootClass(),
		T:           t,
		Brand:       Brand,
		Owner:       OwnerName,
		Photo:       OwnerPhoto,
		Nav:         nav,
		Skills:      skills,
		Projects:    projects,
		Links:       Links,
		Year:        CopyrightYear,
		ThemeToggle: t.ThemeLabel(state.Dark),
	}
}

// home renders the page. GET always starts from the default state; the
// toggles POST the current state back with the action to apply, so nothing
// survives a reload.
func (s *server) home(c *gin.Context) {
	state := content.State{Lang: s.defaultLang}
	if c.Request.Method == http.MethodPost {
		state = content.NewState(c.PostForm("lang"), c.PostForm("theme"))
		switch c.PostForm("toggle") {
		case "lang":
			state = state.ToggleLanguage()
		case "theme":
			state = state.ToggleTheme()
		}
	}
	c.Set(langKey, state.Lang.String())
	c.HTML(http.StatusOK, "index.html", buildPage(s.bundle, state))
}

// contentJSON exposes a dictionary, e.g. GET /api/content/en-US.
func (s *server) contentJSON(c *gin.Context) {
	raw := c.Param("lang")
	tag, err := language.Parse(raw)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown language " + raw})
		return
	}
	dict, err := s.bundle.Lookup(tag)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dict)
}
