package content

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrMissingKey          = errors.New("missing translation key")
)

// ConfigurationError reports a catalog that cannot serve a language.
type ConfigurationError struct {
	Locale string
	Key    string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("content %s: %s: %v", e.Locale, e.Key, e.Err)
	}
	return fmt.Sprintf("content %s: %v", e.Locale, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
