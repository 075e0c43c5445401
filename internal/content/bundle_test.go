package content

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func readEmbedded(t *testing.T, name string) string {
	t.Helper()
	data, err := embeddedFS.ReadFile("locales/" + name)
	require.NoError(t, err)
	return string(data)
}

func catalogFS(pt, en string) fstest.MapFS {
	return fstest.MapFS{
		"locales/pt-BR.yaml": {Data: []byte(pt)},
		"locales/en-US.yaml": {Data: []byte(en)},
	}
}

func TestDefaultBundleKeyParity(t *testing.T) {
	t.Parallel()

	b := Default()
	base := Keys(b.For(Portuguese))
	require.NotEmpty(t, base)
	for _, tag := range SupportedTags() {
		dict, err := b.Lookup(tag)
		require.NoError(t, err)
		assert.Equal(t, base, Keys(dict), "keys for %s", tag)
	}
	assert.Contains(t, base, "portfolio.items.labesc.title")
	assert.Contains(t, base, "about.badges.2")
}

func TestDefaultBundleLocales(t *testing.T) {
	t.Parallel()

	b := Default()
	pt := b.For(Portuguese)
	en := b.For(English)
	assert.Equal(t, "pt-BR", pt.Locale)
	assert.Equal(t, "en-US", en.Locale)
	assert.Equal(t, "EN", pt.ToggleLabel)
	assert.Equal(t, "PT", en.ToggleLabel)
	assert.Equal(t, "Sobre", pt.NavLabel(SectionAbout))
	assert.Equal(t, "Contact", en.NavLabel(SectionContact))
	assert.Len(t, en.About.Badges, 3)

	item, ok := en.Item("alice")
	require.True(t, ok)
	assert.Equal(t, "Editorial", item.Category)
	_, ok = en.Item("missing")
	assert.False(t, ok)
}

func TestLookupUnsupported(t *testing.T) {
	t.Parallel()

	_, err := Default().Lookup(language.French)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "fr", cfgErr.Locale)
}

func TestLookupMatchesRegionless(t *testing.T) {
	t.Parallel()

	dict, err := Default().Lookup(language.English)
	require.NoError(t, err)
	assert.Equal(t, "en-US", dict.Locale)
}

func TestForFallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pt-BR", Default().For(language.Japanese).Locale)
}

func TestLoadMissingItem(t *testing.T) {
	t.Parallel()

	en := strings.Replace(readEmbedded(t, "en-US.yaml"),
		"    chatlab:\n      title: Chatlab\n      category: Visual ID\n      description: Visual identity for the support chat system.\n",
		"", 1)
	_, err := Load(catalogFS(readEmbedded(t, "pt-BR.yaml"), en))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingKey))

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "en-US", cfgErr.Locale)
	assert.True(t, strings.HasPrefix(cfgErr.Key, "portfolio.items.chatlab."), cfgErr.Key)
}

func TestLoadExtraItemInSecondary(t *testing.T) {
	t.Parallel()

	en := strings.Replace(readEmbedded(t, "en-US.yaml"),
		"  items:\n",
		"  items:\n    extra:\n      title: Extra\n      category: Extra\n      description: Extra\n", 1)
	_, err := Load(catalogFS(readEmbedded(t, "pt-BR.yaml"), en))
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "pt-BR", cfgErr.Locale)
}

func TestLoadEmptyString(t *testing.T) {
	t.Parallel()

	en := strings.Replace(readEmbedded(t, "en-US.yaml"), "rights: All rights reserved.", `rights: ""`, 1)
	_, err := Load(catalogFS(readEmbedded(t, "pt-BR.yaml"), en))
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "footer.rights", cfgErr.Key)
}

func TestLoadUnknownField(t *testing.T) {
	t.Parallel()

	en := readEmbedded(t, "en-US.yaml") + "unexpected: value\n"
	_, err := Load(catalogFS(readEmbedded(t, "pt-BR.yaml"), en))
	require.Error(t, err)
}

func TestLoadMissingLocale(t *testing.T) {
	t.Parallel()

	_, err := Load(fstest.MapFS{
		"locales/pt-BR.yaml": {Data: []byte(readEmbedded(t, "pt-BR.yaml"))},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
}

func TestLoadLocaleMustMatchPath(t *testing.T) {
	t.Parallel()

	_, err := Load(fstest.MapFS{
		"locales/pt-BR.yaml": {Data: []byte(readEmbedded(t, "en-US.yaml"))},
		"locales/en-US.yaml": {Data: []byte(readEmbedded(t, "en-US.yaml"))},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must match path locale")
}

func TestLoadNoFiles(t *testing.T) {
	t.Parallel()

	_, err := Load(fstest.MapFS{})
	require.Error(t, err)
}
