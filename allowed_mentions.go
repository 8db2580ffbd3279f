package discordhook

import (
	"fmt"
)

// AllowedMentions controls which mention types in a message actually notify
// their targets. A nil *AllowedMentions on a Message defers to the host's
// defaults; SuppressAllMentions produces the explicitly-empty record that
// disables all mention parsing. The two states serialize differently: the
// former omits the field, the latter sends {"parse":[]}.
type AllowedMentions struct {
	parseUsers    bool
	parseRoles    bool
	parseEveryone bool
	userIDs       []string
	roleIDs       []string
	repliedUser   bool
}

// NewAllowedMentions creates an allowed-mentions record with every category
// disabled. Enable categories or add explicit IDs before attaching it.
func NewAllowedMentions() *AllowedMentions {
	return &AllowedMentions{}
}

// SuppressAllMentions returns a record that suppresses all mention parsing.
func SuppressAllMentions() *AllowedMentions {
	return &AllowedMentions{}
}

// AllowUsers permits all user mentions in the message content
func (am *AllowedMentions) AllowUsers() *AllowedMentions {
	am.parseUsers = true
	return am
}

// AllowRoles permits all role mentions in the message content
func (am *AllowedMentions) AllowRoles() *AllowedMentions {
	am.parseRoles = true
	return am
}

// AllowEveryone permits @everyone and @here mentions
func (am *AllowedMentions) AllowEveryone() *AllowedMentions {
	am.parseEveryone = true
	return am
}

// AddUserID adds a specific user to the mention allow-list
func (am *AllowedMentions) AddUserID(userID string) *AllowedMentions {
	am.userIDs = append(am.userIDs, userID)
	return am
}

// AddRoleID adds a specific role to the mention allow-list
func (am *AllowedMentions) AddRoleID(roleID string) *AllowedMentions {
	am.roleIDs = append(am.roleIDs, roleID)
	return am
}

// MentionRepliedUser notifies the author of the message being replied to
func (am *AllowedMentions) MentionRepliedUser(mention bool) *AllowedMentions {
	am.repliedUser = mention
	return am
}

// Validate rejects records that enable a category via parse while also
// supplying that category's explicit ID list; Discord treats the overlap as
// an error. Allow-lists are capped at MaxMentionIDs entries.
func (am *AllowedMentions) Validate() error {
	if am.parseUsers && len(am.userIDs) > 0 {
		return NewValidationError("users", am.userIDs, "cannot combine the users parse flag with an explicit user allow-list")
	}
	if am.parseRoles && len(am.roleIDs) > 0 {
		return NewValidationError("roles", am.roleIDs, "cannot combine the roles parse flag with an explicit role allow-list")
	}
	if len(am.userIDs) > MaxMentionIDs {
		return NewValidationError("users", am.userIDs, fmt.Sprintf("user allow-list cannot exceed %d entries", MaxMentionIDs))
	}
	if len(am.roleIDs) > MaxMentionIDs {
		return NewValidationError("roles", am.roleIDs, fmt.Sprintf("role allow-list cannot exceed %d entries", MaxMentionIDs))
	}
	return nil
}

type allowedMentionsJSON struct {
	Parse       []string `json:"parse"`
	Users       []string `json:"users,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	RepliedUser bool     `json:"replied_user,omitempty"`
}

// MarshalJSON always emits the parse array, even when empty, so that the
// suppress-everything state survives serialization instead of collapsing
// into an omitted field.
func (am *AllowedMentions) MarshalJSON() ([]byte, error) {
	out := allowedMentionsJSON{
		Parse:       []string{},
		Users:       am.userIDs,
		Roles:       am.roleIDs,
		RepliedUser: am.repliedUser,
	}
	if am.parseUsers {
		out.Parse = append(out.Parse, "users")
	}
	if am.parseRoles {
		out.Parse = append(out.Parse, "roles")
	}
	if am.parseEveryone {
		out.Parse = append(out.Parse, "everyone")
	}
	return json.Marshal(out)
}
