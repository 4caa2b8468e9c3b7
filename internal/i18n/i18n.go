// Package i18n localizes the calculator's UI chrome. Translations live in
// embedded YAML files under locales/, one file per language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Localizer translates message IDs into one language, falling back to English.
type Localizer struct {
	localizer *goi18n.Localizer
}

// New loads the embedded locales and returns a Localizer for lang.
func New(lang string) (*Localizer, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", f.Name(), err)
		}
	}
	return &Localizer{localizer: goi18n.NewLocalizer(bundle, lang)}, nil
}

// Languages lists the embedded locale codes.
func Languages() []string {
	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(files))
	for _, f := range files {
		langs = append(langs, strings.TrimSuffix(f.Name(), ".yaml"))
	}
	return langs
}

// T translates messageID. Unknown IDs come back unchanged.
func (l *Localizer) T(messageID string) string {
	if l == nil || l.localizer == nil {
		return messageID
	}
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
