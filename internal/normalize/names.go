package normalize

import (
	"strings"

	"github.com/FlagBrew/local-dex/internal/pokeapi"
)

var (
	chineseLanguages  = []string{"zh-hans", "zh-hant", "zh"}
	japaneseLanguages = []string{"ja-hrkt", "ja"}
	englishLanguages  = []string{"en"}
)

// localized returns the first non-empty value whose language matches one of
// langs, tried in order, or fallback when none does.
func localized[T any](entries []T, value func(T) (text, lang string), langs []string, fallback string) string {
	for _, want := range langs {
		for _, e := range entries {
			text, lang := value(e)
			if text != "" && strings.EqualFold(lang, want) {
				return text
			}
		}
	}
	return fallback
}

func nameValue(n pokeapi.LocalizedName) (string, string) { return n.Name, n.Language.Name }
func genusValue(g pokeapi.Genus) (string, string)        { return g.Genus, g.Language.Name }
func flavorValue(f pokeapi.FlavorText) (string, string) {
	return cleanText(f.Value()), f.Language.Name
}

type localizedNames struct {
	Name     string
	Japanese string
	English  string
}

func resolveNames(names []pokeapi.LocalizedName, primary string) localizedNames {
	return localizedNames{
		Name:     localized(names, nameValue, chineseLanguages, primary),
		Japanese: localized(names, nameValue, japaneseLanguages, primary),
		English:  localized(names, nameValue, englishLanguages, primary),
	}
}

// description picks the first Chinese flavor text, otherwise the first entry
// in source order regardless of language.
func description(entries []pokeapi.FlavorText) string {
	if len(entries) == 0 {
		return ""
	}
	return localized(entries, flavorValue, chineseLanguages, cleanText(entries[0].Value()))
}

// cleanText collapses the line and page breaks PokeAPI keeps from the games.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
