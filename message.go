package discordhook

// Message represents the JSON payload sent to a Discord webhook.
type Message struct {
	Content         string           `json:"content,omitempty"`    // Message content (text)
	Username        string           `json:"username,omitempty"`   // Override the default webhook username
	AvatarURL       string           `json:"avatar_url,omitempty"` // Override the default webhook avatar
	TTS             bool             `json:"tts,omitempty"`        // Text-to-speech message
	Embeds          []Embed          `json:"embeds,omitempty"`     // Array of embed objects
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
	Components      []Component      `json:"components,omitempty"`
	Poll            *Poll            `json:"poll,omitempty"`

	// Wait makes Discord return the created message object instead of 204.
	Wait bool `json:"-"`
	// ThreadID posts the message into the given thread of the webhook's channel.
	ThreadID string `json:"-"`
}

// IsEmpty reports whether the message has nothing Discord would accept.
func (m *Message) IsEmpty() bool {
	return m.Content == "" && len(m.Embeds) == 0 && len(m.Components) == 0 && m.Poll == nil
}
