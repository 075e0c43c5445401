package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Bundle contains one Dictionary per supported language.
type Bundle struct {
	dicts map[language.Tag]*Dictionary
}

//go:embed locales/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

func mustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return b
}

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into this package.
func LoadEmbedded() (*Bundle, error) {
	return Load(embeddedFS)
}

// Load reads locales/*.yaml from fsys. Every supported language must be present,
// every string must be non-empty, and all catalogs must share the same keys.
func Load(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{dicts: make(map[language.Tag]*Dictionary, len(paths))}
	keys := make(map[language.Tag][]string, len(paths))

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		dict, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}

		fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if dict.Locale != fromPath {
			return nil, fmt.Errorf("catalog %s: locale %q must match path locale %q", p, dict.Locale, fromPath)
		}
		tag, ok := Parse(dict.Locale)
		if !ok || tag.String() != dict.Locale {
			return nil, &ConfigurationError{Locale: dict.Locale, Err: ErrUnsupportedLanguage}
		}
		if _, dup := b.dicts[tag]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate locale %s", p, dict.Locale)
		}

		flat, empty, err := flatten(dict)
		if err != nil {
			return nil, fmt.Errorf("flatten catalog %s: %w", p, err)
		}
		if len(empty) > 0 {
			return nil, &ConfigurationError{Locale: dict.Locale, Key: empty[0], Err: ErrMissingKey}
		}
		b.dicts[tag] = dict
		keys[tag] = flat
	}

	for _, tag := range supported {
		if _, ok := b.dicts[tag]; !ok {
			return nil, &ConfigurationError{Locale: tag.String(), Err: ErrUnsupportedLanguage}
		}
	}

	base := keys[DefaultTag()]
	for _, tag := range supported[1:] {
		if err := compareKeys(DefaultTag(), base, tag, keys[tag]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func decode(data []byte) (*Dictionary, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var dict Dictionary
	if err := dec.Decode(&dict); err != nil {
		return nil, err
	}
	return &dict, nil
}

func compareKeys(baseTag language.Tag, base []string, tag language.Tag, other []string) error {
	have := make(map[string]bool, len(other))
	for _, k := range other {
		have[k] = true
	}
	for _, k := range base {
		if !have[k] {
			return &ConfigurationError{Locale: tag.String(), Key: k, Err: ErrMissingKey}
		}
		delete(have, k)
	}
	for _, k := range other {
		if have[k] {
			return &ConfigurationError{Locale: baseTag.String(), Key: k, Err: ErrMissingKey}
		}
	}
	return nil
}

// Lookup returns the dictionary for tag. Tags that match no supported
// language yield a *ConfigurationError wrapping ErrUnsupportedLanguage.
func (b *Bundle) Lookup(tag language.Tag) (*Dictionary, error) {
	matched, ok := Match(tag)
	if !ok {
		return nil, &ConfigurationError{Locale: tag.String(), Err: ErrUnsupportedLanguage}
	}
	dict, ok := b.dicts[matched]
	if !ok {
		return nil, &ConfigurationError{Locale: matched.String(), Err: ErrUnsupportedLanguage}
	}
	return dict, nil
}

// For is the total form of Lookup: unknown tags fall back to the default language.
func (b *Bundle) For(tag language.Tag) *Dictionary {
	if dict, err := b.Lookup(tag); err == nil {
		return dict
	}
	return b.dicts[DefaultTag()]
}

// Keys returns the sorted dotted key paths of d, e.g. "portfolio.items.alice.title".
func Keys(d *Dictionary) []string {
	keys, _, err := flatten(d)
	if err != nil {
		return nil
	}
	return keys
}

func flatten(d *Dictionary) (keys, empty []string, err error) {
	var root yaml.Node
	if err := root.Encode(d); err != nil {
		return nil, nil, err
	}
	walk(&root, "", &keys, &empty)
	sort.Strings(keys)
	sort.Strings(empty)
	return keys, empty, nil
}

func walk(n *yaml.Node, prefix string, keys, empty *[]string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			walk(c, prefix, keys, empty)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			walk(n.Content[i+1], join(n.Content[i].Value), keys, empty)
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			walk(c, join(strconv.Itoa(i)), keys, empty)
		}
	case yaml.ScalarNode:
		*keys = append(*keys, prefix)
		if strings.TrimSpace(n.Value) == "" {
			*empty = append(*empty, prefix)
		}
	}
}
