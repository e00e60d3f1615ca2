package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	valid := []string{"maya", "maya_r", "user.42", "abc", "a_b.c_d"}
	for _, username := range valid {
		assert.True(t, ValidUsername(username), "expected %q to be valid", username)
	}

	invalid := []string{"", "ab", "has space", "emoji😀", "way-too-long-username-over-thirty-chars", "dash-ed"}
	for _, username := range invalid {
		assert.False(t, ValidUsername(username), "expected %q to be invalid", username)
	}
}

func TestValidLanguage(t *testing.T) {
	valid := []string{"en", "hin", "pt-BR", "es"}
	for _, tag := range valid {
		assert.True(t, ValidLanguage(tag), "expected %q to be valid", tag)
	}

	invalid := []string{"", "e", "english", "en_US", "12"}
	for _, tag := range invalid {
		assert.False(t, ValidLanguage(tag), "expected %q to be invalid", tag)
	}
}

func TestValidRating(t *testing.T) {
	for rating := RatingMin; rating <= RatingMax; rating++ {
		assert.True(t, ValidRating(rating))
	}

	assert.False(t, ValidRating(0))
	assert.False(t, ValidRating(-1))
	assert.False(t, ValidRating(6))
}
