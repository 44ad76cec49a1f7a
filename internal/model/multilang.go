package model

import "sort"

// resolveOrder is the fixed priority used by Get.
var resolveOrder = []string{"ja", "Japanese", "English"}

// MultiLanguageString maps a language tag ("ja", "English", ...) to the text
// rendered in that language.
//
// Keys are whatever the page uses: title spans carry short tags like "ja" or
// "en", track list panels carry labels like "Japanese" or "Romaji".
type MultiLanguageString map[string]string

// Insert stores text under language, replacing any previous value.
func (m MultiLanguageString) Insert(language, text string) {
	m[language] = text
}

// Get returns the display value.
//
// Resolution order is "ja", then "Japanese", then "English", then the entry
// with the lexicographically smallest key. The second return value is false
// only when the string is empty.
func (m MultiLanguageString) Get() (string, bool) {
	for _, lang := range resolveOrder {
		if v, ok := m[lang]; ok {
			return v, true
		}
	}
	langs := m.Languages()
	if len(langs) == 0 {
		return "", false
	}
	return m[langs[0]], true
}

// String returns the display value, or "" when empty.
func (m MultiLanguageString) String() string {
	v, _ := m.Get()
	return v
}

// Preferred returns the value for language when present and falls back to Get.
//
// Example:
//
//	title.Preferred("en") // English tag when the page has one
func (m MultiLanguageString) Preferred(language string) string {
	if language != "" {
		if v, ok := m[language]; ok {
			return v
		}
	}
	return m.String()
}

// Languages returns the language tags in sorted order.
func (m MultiLanguageString) Languages() []string {
	langs := make([]string, 0, len(m))
	for lang := range m {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
