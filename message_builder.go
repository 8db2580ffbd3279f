package discordhook

// MessageBuilder helps in constructing Message objects.
type MessageBuilder struct {
	message Message
}

// NewMessageBuilder creates a new instance of MessageBuilder.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{
		message: Message{},
	}
}

// WithContent sets the Content for the Message.
func (b *MessageBuilder) WithContent(content string) *MessageBuilder {
	b.message.Content = content
	return b
}

// WithUsername sets the Username for the Message.
func (b *MessageBuilder) WithUsername(username string) *MessageBuilder {
	b.message.Username = username
	return b
}

// WithAvatarURL sets the AvatarURL for the Message.
func (b *MessageBuilder) WithAvatarURL(avatarURL string) *MessageBuilder {
	b.message.AvatarURL = avatarURL
	return b
}

// WithTTS marks the message as text-to-speech.
func (b *MessageBuilder) WithTTS(tts bool) *MessageBuilder {
	b.message.TTS = tts
	return b
}

// AddEmbed adds an Embed to the Message.
func (b *MessageBuilder) AddEmbed(embed Embed) *MessageBuilder {
	b.message.Embeds = append(b.message.Embeds, embed)
	return b
}

// WithEmbeds replaces the Message's embed list.
func (b *MessageBuilder) WithEmbeds(embeds []Embed) *MessageBuilder {
	b.message.Embeds = embeds
	return b
}

// WithAllowedMentions attaches an allowed-mentions record to the Message.
func (b *MessageBuilder) WithAllowedMentions(mentions *AllowedMentions) *MessageBuilder {
	b.message.AllowedMentions = mentions
	return b
}

// WithComponents attaches a component tree to the Message.
func (b *MessageBuilder) WithComponents(components []Component) *MessageBuilder {
	b.message.Components = components
	return b
}

// WithPoll attaches a poll to the Message.
func (b *MessageBuilder) WithPoll(poll Poll) *MessageBuilder {
	b.message.Poll = &poll
	return b
}

// WithWait makes Discord return the created message object.
func (b *MessageBuilder) WithWait(wait bool) *MessageBuilder {
	b.message.Wait = wait
	return b
}

// WithThreadID posts the message into the given thread.
func (b *MessageBuilder) WithThreadID(threadID string) *MessageBuilder {
	b.message.ThreadID = threadID
	return b
}

// Build returns the constructed Message object.
func (b *MessageBuilder) Build() Message {
	return b.message
}
