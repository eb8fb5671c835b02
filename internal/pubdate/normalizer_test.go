package pubdate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize_DaylightSaving(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	got, err := n.Normalize("March 14, 2024")
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, time.March, 14, 9, 0, 0, 0, loc)))
	_, offset := got.Zone()
	assert.Equal(t, -4*60*60, offset)
	assert.Equal(t, "Thu, 14 Mar 2024 09:00:00 -0400", got.Format(time.RFC1123Z))
}

func TestNormalizer_Normalize_StandardTime(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	got, err := n.Normalize("January 5, 2024")
	require.NoError(t, err)

	assert.Equal(t, "Fri, 05 Jan 2024 09:00:00 -0500", got.Format(time.RFC1123Z))
	assert.Equal(t, time.Date(2024, time.January, 5, 14, 0, 0, 0, time.UTC), got.UTC())
}

func TestNormalizer_Normalize_RoundTrip(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	got, err := n.Normalize("November 3, 2024")
	require.NoError(t, err)

	parsed, err := time.Parse(time.RFC1123Z, got.Format(time.RFC1123Z))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(got))
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
}

func TestNormalizer_Normalize_InvalidFormat(t *testing.T) {
	n, err := New()
	require.NoError(t, err)

	inputs := []string{
		"",
		"2024-03-14",
		"Mar 14, 2024",
		"March 14 2024",
		"14 March, 2024",
		"March 32, 2024",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got, err := n.Normalize(in)
			require.Error(t, err)
			assert.True(t, got.IsZero())
			assert.True(t, errors.Is(err, ErrDateFormat))

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, in, formatErr.Value)
		})
	}
}
