package routes

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeyPrefix is removed from keys when deriving a title.
const KeyPrefix = "admin_"

// DeriveTitle builds a display title from a folder key, e.g. "admin_foo_bar"
// becomes "Foo Bar". Every run of letters is title-cased on its own, so a
// letter following a digit or an apostrophe starts a new word
// ("admin_top10items" becomes "Top10Items").
func DeriveTitle(key string) string {
	s := strings.ReplaceAll(key, KeyPrefix, "")
	s = strings.ReplaceAll(s, "_", " ")

	// Casers keep state and must not be shared between goroutines.
	caser := cases.Title(language.English)

	var (
		b     strings.Builder
		start = -1
	)

	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}

			continue
		}

		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}

		b.WriteRune(r)
	}

	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}

	return b.String()
}

// NormalizeFolder converts a folder name to snake case so that folders such
// as "AdminProductsList" classify like "admin_products_list".
func NormalizeFolder(name string) string {
	return strcase.ToSnake(name)
}
