package discordhook

import (
	"fmt"
)

// EmbedValidator validates embed objects against Discord's documented limits.
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateEmbed validates an embed
func (ev *EmbedValidator) ValidateEmbed(embed Embed) error {
	if len(embed.Title) > MaxEmbedTitleLength {
		return NewValidationError("title", embed.Title, fmt.Sprintf("title cannot exceed %d characters", MaxEmbedTitleLength))
	}

	if len(embed.Description) > MaxEmbedDescriptionLength {
		return NewValidationError("description", embed.Description, fmt.Sprintf("description cannot exceed %d characters", MaxEmbedDescriptionLength))
	}

	if len(embed.Fields) > MaxEmbedFields {
		return NewValidationError("fields", embed.Fields, fmt.Sprintf("cannot have more than %d fields", MaxEmbedFields))
	}

	// Validate fields
	for i, field := range embed.Fields {
		if len(field.Name) > MaxEmbedFieldNameLength {
			return NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot exceed %d characters", i, MaxEmbedFieldNameLength))
		}
		if len(field.Value) > MaxEmbedFieldValueLength {
			return NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot exceed %d characters", i, MaxEmbedFieldValueLength))
		}
		if field.Name == "" {
			return NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot be empty", i))
		}
		if field.Value == "" {
			return NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot be empty", i))
		}
	}

	if embed.Footer != nil && len(embed.Footer.Text) > MaxEmbedFooterTextLength {
		return NewValidationError("footer_text", embed.Footer.Text, fmt.Sprintf("footer text cannot exceed %d characters", MaxEmbedFooterTextLength))
	}

	if embed.Author != nil && len(embed.Author.Name) > MaxEmbedAuthorNameLength {
		return NewValidationError("author_name", embed.Author.Name, fmt.Sprintf("author name cannot exceed %d characters", MaxEmbedAuthorNameLength))
	}

	if total := ev.totalLength(embed); total > MaxEmbedTotalLength {
		return NewValidationError("embed", total, fmt.Sprintf("combined embed text cannot exceed %d characters", MaxEmbedTotalLength))
	}

	return nil
}

// totalLength sums the character counts Discord applies its 6000-character
// limit to: title, description, field names and values, footer and author.
func (ev *EmbedValidator) totalLength(embed Embed) int {
	total := len(embed.Title) + len(embed.Description)
	for _, field := range embed.Fields {
		total += len(field.Name) + len(field.Value)
	}
	if embed.Footer != nil {
		total += len(embed.Footer.Text)
	}
	if embed.Author != nil {
		total += len(embed.Author.Name)
	}
	return total
}
