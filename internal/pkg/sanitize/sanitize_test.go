package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.Equal(t, "hello", Text("  hello  "))
	assert.Equal(t, "hello", Text("<b>hello</b>"))
	assert.Equal(t, "hello world", Text("<a href=\"https://example.com\">hello world</a>"))
	assert.Equal(t, "", Text("<img src=x onerror=alert(1)>"))
}

func TestFields(t *testing.T) {
	got := Fields([]string{" go ", "<i>sql</i>", ""})
	assert.Equal(t, []string{"go", "sql", ""}, got)
}
