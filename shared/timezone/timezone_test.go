package timezone_test

import (
	"testing"
	"time"

	"grandplaza/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowAndLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", timezone.Format(parsed, "2006-01-02"))
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 15, 17, 45, 12, 0, timezone.GetLocation())
	got := timezone.StartOfDay(in)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, timezone.GetLocation()), got)
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2024, 3, 15, 17, 45, 12, 0, timezone.GetLocation())

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, timezone.GetLocation()), timezone.StartOfMonth(in))
}

func TestSameDay(t *testing.T) {
	loc := timezone.GetLocation()
	morning := time.Date(2024, 3, 15, 8, 0, 0, 0, loc)
	evening := time.Date(2024, 3, 15, 22, 0, 0, 0, loc)
	nextDay := time.Date(2024, 3, 16, 1, 0, 0, 0, loc)

	assert.True(t, timezone.SameDay(morning, evening))
	assert.False(t, timezone.SameDay(evening, nextDay))
}
