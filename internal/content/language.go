package content

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	// Portuguese is the site's default language.
	Portuguese = language.BrazilianPortuguese
	// English is the alternate language offered by the toggle.
	English = language.AmericanEnglish
)

var supported = []language.Tag{Portuguese, English}

var matcher = language.NewMatcher(supported)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return Portuguese
}

// Parse resolves a raw tag string ("pt-BR", "en", "pt") to a supported tag.
func Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	return Match(tag)
}

// Match maps any tag onto one of the supported tags.
func Match(tag language.Tag) (language.Tag, bool) {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// Normalize coerces unknown values to the default language.
func Normalize(value string) language.Tag {
	if tag, ok := Parse(value); ok {
		return tag
	}
	return DefaultTag()
}

// Toggle returns the other supported language. Applying it twice yields the
// original tag for every supported tag.
func Toggle(tag language.Tag) language.Tag {
	if tag == English {
		return Portuguese
	}
	if tag == Portuguese {
		return English
	}
	return Toggle(Normalize(tag.String()))
}
