package domain

// SupportedLanguages is the fixed set of languages the platform can serve.
// Codes are lowercase ISO-639-1. A site's base language needs no translation
// rows; every other supported language gets one per question via backfill.
var SupportedLanguages = []string{
	"fr", "en", "de", "es", "it", "pt", "nl", "pl", "ru", "ja",
	"zh", "ko", "ar", "tr", "sv", "da", "fi", "no", "cs", "el",
	"hu", "ro", "sk", "bg", "uk", "id",
}

// DefaultBaseLanguage is used when a site has no explicit base language.
const DefaultBaseLanguage = "fr"

// IsSupportedLanguage reports whether code is one of the platform languages.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
