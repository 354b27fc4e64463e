package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "a", Coalesce("a", "b"))
	assert.Equal(t, "b", Coalesce("", "b"))
	assert.Equal(t, "b", Coalesce("   ", "b"))
	assert.Equal(t, "", Coalesce("", "  ", ""))
	assert.Equal(t, "", Coalesce())
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "long st...", TruncateText("long string here", 10))
	// Width too small to truncate safely leaves the string alone.
	assert.Equal(t, "abcd", TruncateText("abcd", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, got, "expected %q to parse as true", s)
	}
	for _, s := range []string{"no", "False", "0"} {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, got, "expected %q to parse as false", s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestGetColorLabel(t *testing.T) {
	// Labels survive regardless of whether ANSI codes are attached.
	assert.Contains(t, GetColorLabel(0.95), "Strong")
	assert.Contains(t, GetColorLabel(0.7), "Good")
	assert.Contains(t, GetColorLabel(0.45), "Fair")
	assert.Contains(t, GetColorLabel(0.1), "Weak")
}
