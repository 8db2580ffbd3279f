package discordhook

import (
	"time"
)

// EmbedBuilder helps in constructing Embed objects.
type EmbedBuilder struct {
	embed     Embed
	validator *EmbedValidator
}

// NewEmbedBuilder creates a new embed builder
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{
		embed:     Embed{},
		validator: NewEmbedValidator(),
	}
}

// WithTitle sets the embed title
func (eb *EmbedBuilder) WithTitle(title string) *EmbedBuilder {
	eb.embed.Title = title
	return eb
}

// WithDescription sets the embed description
func (eb *EmbedBuilder) WithDescription(description string) *EmbedBuilder {
	eb.embed.Description = description
	return eb
}

// WithURL makes the embed title a clickable link
func (eb *EmbedBuilder) WithURL(url string) *EmbedBuilder {
	eb.embed.URL = url
	return eb
}

// WithTimestamp sets the embed timestamp
func (eb *EmbedBuilder) WithTimestamp(timestamp time.Time) *EmbedBuilder {
	eb.embed.Timestamp = timestamp.Format(time.RFC3339)
	return eb
}

// WithColor sets the embed color
func (eb *EmbedBuilder) WithColor(color int) *EmbedBuilder {
	eb.embed.Color = color
	return eb
}

// WithFooter sets the embed footer
func (eb *EmbedBuilder) WithFooter(text, iconURL string) *EmbedBuilder {
	eb.embed.Footer = NewEmbedFooter(text, iconURL)
	return eb
}

// WithImage sets the embed image
func (eb *EmbedBuilder) WithImage(url string) *EmbedBuilder {
	eb.embed.Image = NewEmbedImage(url)
	return eb
}

// WithThumbnail sets the embed thumbnail
func (eb *EmbedBuilder) WithThumbnail(url string) *EmbedBuilder {
	eb.embed.Thumbnail = NewEmbedThumbnail(url)
	return eb
}

// WithProvider sets the embed provider
func (eb *EmbedBuilder) WithProvider(name, url string) *EmbedBuilder {
	eb.embed.Provider = &EmbedProvider{Name: name, URL: url}
	return eb
}

// WithVideo sets the embed video
func (eb *EmbedBuilder) WithVideo(url string) *EmbedBuilder {
	eb.embed.Video = &EmbedVideo{URL: url}
	return eb
}

// WithAuthor sets the embed author
func (eb *EmbedBuilder) WithAuthor(name, url, iconURL string) *EmbedBuilder {
	eb.embed.Author = NewEmbedAuthor(name, url, iconURL)
	return eb
}

// AddField adds a field to the embed
func (eb *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	field := NewEmbedField(name, value, inline)
	eb.embed.Fields = append(eb.embed.Fields, field)
	return eb
}

// Validate validates the current embed
func (eb *EmbedBuilder) Validate() error {
	return eb.validator.ValidateEmbed(eb.embed)
}

// Build validates and returns the embed. The error is a *ValidationError
// when a Discord limit is exceeded; nothing is silently truncated.
func (eb *EmbedBuilder) Build() (Embed, error) {
	if err := eb.Validate(); err != nil {
		return Embed{}, err
	}
	return eb.embed, nil
}
