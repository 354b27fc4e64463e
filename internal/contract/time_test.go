package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateBound(t *testing.T) {
	t.Run("plain day expands to start of day", func(t *testing.T) {
		got, err := ParseDateBound("2019-03-15", false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("plain day expands to end of day", func(t *testing.T) {
		got, err := ParseDateBound("2019-03-15", true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2019, 3, 15, 23, 59, 59, 0, time.UTC), got)
	})

	t.Run("full timestamp passes through", func(t *testing.T) {
		got, err := ParseDateBound("2019-03-15T08:30:00Z", true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2019, 3, 15, 8, 30, 0, 0, time.UTC), got)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseDateBound("yesterday", false)
		assert.Error(t, err)
	})
}

func TestParseCreationTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2019-03-15T08:30:00Z", time.Date(2019, 3, 15, 8, 30, 0, 0, time.UTC)},
		{"space separated", "2019-03-15 08:30:00", time.Date(2019, 3, 15, 8, 30, 0, 0, time.UTC)},
		{"date only", "2019-03-15", time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCreationTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unparseable value is rejected", func(t *testing.T) {
		_, err := ParseCreationTime("15/03/2019")
		assert.Error(t, err)
	})
}
