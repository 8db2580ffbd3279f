package discordhook

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedBuilder_Build(t *testing.T) {
	embed, err := NewEmbedBuilder().
		WithTitle("Test").
		WithDescription("Description").
		WithTimestamp(time.Now()).
		WithColor(0x00FF00).
		Build()

	require.NoError(t, err)
	if embed.Title != "Test" {
		t.Errorf("expected title 'Test', got '%s'", embed.Title)
	}
	if embed.Description != "Description" {
		t.Errorf("expected description, got '%s'", embed.Description)
	}
	if embed.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestEmbedBuilder_SubRecords(t *testing.T) {
	embed, err := NewEmbedBuilder().
		WithTitle("Release").
		WithURL("https://example.com/release").
		WithFooter("footer text", "https://example.com/footer.png").
		WithAuthor("author", "https://example.com", "https://example.com/author.png").
		WithImage("https://example.com/image.png").
		WithThumbnail("https://example.com/thumb.png").
		WithProvider("provider", "https://example.com").
		AddField("version", "1.2.3", true).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "footer text", embed.Footer.Text)
	assert.Equal(t, "author", embed.Author.Name)
	assert.Equal(t, "https://example.com/image.png", embed.Image.URL)
	assert.Equal(t, "https://example.com/thumb.png", embed.Thumbnail.URL)
	assert.Equal(t, "provider", embed.Provider.Name)
	require.Len(t, embed.Fields, 1)
	assert.True(t, embed.Fields[0].Inline)
}

func TestEmbedBuilder_TooManyFields(t *testing.T) {
	builder := NewEmbedBuilder().WithTitle("limits")
	for i := 0; i < MaxEmbedFields+1; i++ {
		builder.AddField(fmt.Sprintf("field %d", i), "value", false)
	}

	embed, err := builder.Build()
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "fields", validationErr.Field)
	assert.Equal(t, Embed{}, embed)
}

func TestEmbedBuilder_TitleTooLong(t *testing.T) {
	_, err := NewEmbedBuilder().
		WithTitle(strings.Repeat("a", MaxEmbedTitleLength+1)).
		Build()

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)
}

func TestEmbedBuilder_EmptyFieldValue(t *testing.T) {
	_, err := NewEmbedBuilder().
		AddField("name", "", false).
		Build()

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "field_value", validationErr.Field)
}

func TestEmbedValidator_TotalLength(t *testing.T) {
	builder := NewEmbedBuilder().WithDescription(strings.Repeat("a", MaxEmbedDescriptionLength))
	for i := 0; i < 2; i++ {
		builder.AddField(fmt.Sprintf("field %d", i), strings.Repeat("b", MaxEmbedFieldValueLength), false)
	}

	_, err := builder.Build()

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "embed", validationErr.Field)
}

func TestEmbed_JSONRoundTrip(t *testing.T) {
	embed, err := NewEmbedBuilder().
		WithTitle("Round trip").
		WithDescription("structural equality after decode").
		WithColor(SuccessEmbedColor).
		WithTimestamp(time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)).
		WithFooter("footer", "").
		AddField("first", "1", true).
		AddField("second", "2", false).
		Build()
	require.NoError(t, err)

	data, err := json.Marshal(embed)
	require.NoError(t, err)

	var decoded Embed
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, embed, decoded)
}
