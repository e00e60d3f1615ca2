package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Username: letters, digits, underscores and dots, 3-30 chars
	UsernamePattern = `^[a-zA-Z0-9_.]{3,30}$`

	// Language tag for podcasts, e.g. "en" or "pt-BR"
	LanguagePattern = `^[a-zA-Z]{2,3}(-[a-zA-Z]{2})?$`

	PasswordMinLength = 8

	TitleMaxLength = 255
)

// Rating bounds for note ratings.
const (
	RatingMin = 1
	RatingMax = 5
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Username *regexp.Regexp
	Language *regexp.Regexp
}{
	Username: regexp.MustCompile(UsernamePattern),
	Language: regexp.MustCompile(LanguagePattern),
}

// ValidUsername reports whether the handle is acceptable as a login name.
func ValidUsername(username string) bool {
	return CompiledPatterns.Username.MatchString(username)
}

// ValidLanguage reports whether the tag looks like a language code.
func ValidLanguage(tag string) bool {
	return CompiledPatterns.Language.MatchString(tag)
}

// ValidRating reports whether a rating value is inside the display range.
func ValidRating(value int) bool {
	return value >= RatingMin && value <= RatingMax
}
