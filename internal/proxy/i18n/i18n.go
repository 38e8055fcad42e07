// Package i18n provides locale resolution and message printing for text the
// proxy renders into chat.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.English,
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supported))
	copy(tags, supported)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Match resolves the best supported tag for the requested language codes.
func Match(preferred ...string) language.Tag {
	if len(preferred) == 0 {
		return Default()
	}
	matcher := language.NewMatcher(Supported())
	tags := make([]language.Tag, 0, len(preferred))
	for _, code := range preferred {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	tag, _, _ := matcher.Match(tags...)
	return tag
}
