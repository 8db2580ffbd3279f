package discordhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Unix(1756118400, 0)

	marker, err := FormatTimestamp(ts, TimestampStyleRelative)
	require.NoError(t, err)
	assert.Equal(t, "<t:1756118400:R>", marker)

	marker, err = FormatTimestamp(ts, TimestampStyleLongDateTime)
	require.NoError(t, err)
	assert.Equal(t, "<t:1756118400:F>", marker)
}

func TestFormatTimestamp_InvalidStyle(t *testing.T) {
	_, err := FormatTimestamp(time.Now(), TimestampStyle("x"))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "style", validationErr.Field)
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		input    string
		expected int
	}{
		{"#5CB85C", 0x5CB85C},
		{"0x5CB85C", 0x5CB85C},
		{"5CB85C", 0x5CB85C},
		{"000000", 0},
		{"FFFFFF", 0xFFFFFF},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			color, err := ParseColor(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, color)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	_, err := ParseColor("not-a-color")
	require.Error(t, err)

	_, err = ParseColor("1000000") // 0x1000000 is one past the 24-bit range
	require.Error(t, err)
}

func TestCheckColorRange(t *testing.T) {
	_, err := CheckColorRange(-1)
	require.Error(t, err)

	color, err := CheckColorRange(DefaultEmbedColor)
	require.NoError(t, err)
	assert.Equal(t, DefaultEmbedColor, color)
}

func TestMentionHelpers(t *testing.T) {
	assert.Equal(t, "<@42>", MentionUser("42"))
	assert.Equal(t, "<@&77>", MentionRole("77"))
	assert.Equal(t, "<@&1> <@&2>", MentionRoles([]string{"1", "2"}))
	assert.Equal(t, "", MentionRoles(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "lon...", Truncate("long enough text", 6))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
