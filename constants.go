package discordhook

// Discord documented limits for embeds.
const (
	MaxEmbedTitleLength       = 256
	MaxEmbedDescriptionLength = 4096
	MaxEmbedFields            = 25
	MaxEmbedFieldNameLength   = 256
	MaxEmbedFieldValueLength  = 1024
	MaxEmbedFooterTextLength  = 2048
	MaxEmbedAuthorNameLength  = 256
	MaxEmbedTotalLength       = 6000
	MaxEmbedsPerMessage       = 10
)

// Discord documented limits for polls.
const (
	MaxPollQuestionLength   = 300
	MaxPollAnswers          = 10
	MaxPollAnswerTextLength = 55
	MaxPollDurationHours    = 768
)

// Discord documented limits for message components.
const (
	MaxActionRowsPerMessage = 5
	MaxButtonsPerActionRow  = 5
	MaxSelectOptions        = 25
	MaxButtonLabelLength    = 80
	MaxCustomIDLength       = 100
)

// Discord documented limits for allowed mentions allow-lists.
const MaxMentionIDs = 100

// MaxAttachmentSize is Discord's file size limit without Nitro (8MB).
const MaxAttachmentSize = 8 * 1024 * 1024

// Embed colors.
const (
	DefaultEmbedColor = 0x2B2D31 // Discord dark theme color
	SuccessEmbedColor = 0x5CB85C // Bootstrap success green
	ErrorEmbedColor   = 0xD9534F // Bootstrap danger red
	WarningEmbedColor = 0xF0AD4E // Bootstrap warning orange
	InfoEmbedColor    = 0x5BC0DE // Bootstrap info blue
)
