package utils

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

var bundle *i18n.Bundle

var supportedLanguages = []string{"en", "fr"}

// InitI18NBundle loads the translation files of all supported languages.
// The directory defaults to ./i18n and can be overridden with the
// i18n.dir configuration key.
func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	dir := viper.GetString("i18n.dir")
	if dir == "" {
		dir = "i18n"
	}

	for _, lang := range supportedLanguages {
		bundle.MustLoadMessageFile(fmt.Sprintf("%s/active.%s.toml", dir, lang))
	}
}

// NewLocalizer returns a localizer of the given language with an english
// fallback.
func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang, "en")
}
