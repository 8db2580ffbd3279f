package discordhook

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampStyle selects how Discord renders a <t:...> timestamp marker.
type TimestampStyle string

const (
	TimestampStyleShortTime     TimestampStyle = "t"
	TimestampStyleLongTime      TimestampStyle = "T"
	TimestampStyleShortDate     TimestampStyle = "d"
	TimestampStyleLongDate      TimestampStyle = "D"
	TimestampStyleShortDateTime TimestampStyle = "f"
	TimestampStyleLongDateTime  TimestampStyle = "F"
	TimestampStyleRelative      TimestampStyle = "R"
)

// FormatTimestamp renders a Discord timestamp marker for the given time.
func FormatTimestamp(t time.Time, style TimestampStyle) (string, error) {
	switch style {
	case TimestampStyleShortTime, TimestampStyleLongTime,
		TimestampStyleShortDate, TimestampStyleLongDate,
		TimestampStyleShortDateTime, TimestampStyleLongDateTime,
		TimestampStyleRelative:
		return fmt.Sprintf("<t:%d:%s>", t.Unix(), style), nil
	default:
		return "", NewValidationError("style", style, "timestamp style must be one of t, T, d, D, f, F, R")
	}
}

// ParseColor converts a hex color string ("#5CB85C", "0x5CB85C" or bare hex)
// into the integer form embeds expect. The value must fit in 24 bits.
func ParseColor(color string) (int, error) {
	normalized := strings.TrimSpace(color)
	normalized = strings.TrimPrefix(normalized, "#")
	normalized = strings.TrimPrefix(normalized, "0x")

	value, err := strconv.ParseInt(normalized, 16, 32)
	if err != nil {
		return 0, NewValidationError("color", color, "color must be a hexadecimal value")
	}
	return CheckColorRange(int(value))
}

// CheckColorRange validates that an integer color fits Discord's 24-bit range.
func CheckColorRange(color int) (int, error) {
	if color < 0 || color > 0xFFFFFF {
		return 0, NewValidationError("color", color, "color is out of the valid range")
	}
	return color, nil
}

// MentionUser builds the content marker that mentions a user by ID
func MentionUser(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// MentionRole builds the content marker that mentions a role by ID
func MentionRole(roleID string) string {
	return fmt.Sprintf("<@&%s>", roleID)
}

// MentionRoles joins role mention markers for a list of role IDs
func MentionRoles(roleIDs []string) string {
	if len(roleIDs) == 0 {
		return ""
	}
	mentions := make([]string, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		mentions = append(mentions, MentionRole(roleID))
	}
	return strings.Join(mentions, " ")
}

// Truncate shortens a string to maxLength with an ellipsis. This is an
// explicit opt-in helper; nothing in the library truncates implicitly.
func Truncate(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
