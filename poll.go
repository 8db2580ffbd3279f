package discordhook

import (
	"fmt"
)

// Poll represents a Discord poll create request object.
type Poll struct {
	Question         PollMedia    `json:"question"`
	Answers          []PollAnswer `json:"answers"`
	Duration         int          `json:"duration,omitempty"` // Hours the poll stays open; 0 defers to Discord's default
	AllowMultiselect bool         `json:"allow_multiselect,omitempty"`
	LayoutType       int          `json:"layout_type,omitempty"`
}

// PollMedia is the common object backing poll questions and answers.
type PollMedia struct {
	Text  string        `json:"text,omitempty"`
	Emoji *PartialEmoji `json:"emoji,omitempty"`
}

// PollAnswer represents a single selectable poll answer.
type PollAnswer struct {
	PollMedia PollMedia `json:"poll_media"`
}

// PartialEmoji identifies an emoji by name (unicode) or ID (custom).
type PartialEmoji struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// PollBuilder helps in constructing Poll objects.
type PollBuilder struct {
	poll Poll
}

// NewPollBuilder creates a new poll builder with the given question
func NewPollBuilder(question string) *PollBuilder {
	return &PollBuilder{
		poll: Poll{
			Question: PollMedia{Text: question},
		},
	}
}

// AddAnswer appends a text answer to the poll
func (pb *PollBuilder) AddAnswer(text string) *PollBuilder {
	pb.poll.Answers = append(pb.poll.Answers, PollAnswer{PollMedia: PollMedia{Text: text}})
	return pb
}

// AddAnswerWithEmoji appends an answer with a visual marker
func (pb *PollBuilder) AddAnswerWithEmoji(text string, emoji PartialEmoji) *PollBuilder {
	pb.poll.Answers = append(pb.poll.Answers, PollAnswer{PollMedia: PollMedia{Text: text, Emoji: &emoji}})
	return pb
}

// RemoveAnswer removes an answer by index
func (pb *PollBuilder) RemoveAnswer(index int) *PollBuilder {
	if index >= 0 && index < len(pb.poll.Answers) {
		pb.poll.Answers = append(pb.poll.Answers[:index], pb.poll.Answers[index+1:]...)
	}
	return pb
}

// WithDuration sets how many hours the poll stays open
func (pb *PollBuilder) WithDuration(hours int) *PollBuilder {
	pb.poll.Duration = hours
	return pb
}

// WithMultiselect allows voters to pick more than one answer
func (pb *PollBuilder) WithMultiselect(allow bool) *PollBuilder {
	pb.poll.AllowMultiselect = allow
	return pb
}

// Validate validates the current poll
func (pb *PollBuilder) Validate() error {
	return validatePoll(pb.poll)
}

// Build validates and returns the poll
func (pb *PollBuilder) Build() (Poll, error) {
	if err := pb.Validate(); err != nil {
		return Poll{}, err
	}
	return pb.poll, nil
}

func validatePoll(poll Poll) error {
	if poll.Question.Text == "" {
		return NewValidationError("question", poll.Question.Text, "poll question cannot be empty")
	}
	if len(poll.Question.Text) > MaxPollQuestionLength {
		return NewValidationError("question", poll.Question.Text, fmt.Sprintf("poll question cannot exceed %d characters", MaxPollQuestionLength))
	}
	if len(poll.Answers) == 0 {
		return NewValidationError("answers", poll.Answers, "poll requires at least one answer")
	}
	if len(poll.Answers) > MaxPollAnswers {
		return NewValidationError("answers", poll.Answers, fmt.Sprintf("poll cannot have more than %d answers", MaxPollAnswers))
	}
	for i, answer := range poll.Answers {
		if answer.PollMedia.Text == "" {
			return NewValidationError("answer_text", answer.PollMedia.Text, fmt.Sprintf("answer %d text cannot be empty", i))
		}
		if len(answer.PollMedia.Text) > MaxPollAnswerTextLength {
			return NewValidationError("answer_text", answer.PollMedia.Text, fmt.Sprintf("answer %d text cannot exceed %d characters", i, MaxPollAnswerTextLength))
		}
	}
	if poll.Duration < 0 || poll.Duration > MaxPollDurationHours {
		return NewValidationError("duration", poll.Duration, fmt.Sprintf("poll duration must be between 1 and %d hours", MaxPollDurationHours))
	}
	return nil
}
