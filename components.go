package discordhook

import (
	"fmt"
)

// ComponentType represents the type of a message component.
type ComponentType int

const (
	// ComponentTypeActionRow is a non-interactive container for other components.
	ComponentTypeActionRow ComponentType = 1 + iota
	// ComponentTypeButton is an interactive component that renders in messages.
	ComponentTypeButton
	// ComponentTypeStringSelect allows users to select from predefined text options.
	ComponentTypeStringSelect
)

// ButtonStyle represents the visual style of a button.
type ButtonStyle int

const (
	ButtonStylePrimary ButtonStyle = 1 + iota
	ButtonStyleSecondary
	ButtonStyleSuccess
	ButtonStyleDanger
	ButtonStyleLink
)

// Component represents a node in a message's component tree. Action rows
// carry children in Components; buttons and select menus are leaves.
type Component struct {
	Type        ComponentType  `json:"type"`
	Label       string         `json:"label,omitempty"`
	Style       ButtonStyle    `json:"style,omitempty"`
	CustomID    string         `json:"custom_id,omitempty"`
	URL         string         `json:"url,omitempty"`
	Emoji       *PartialEmoji  `json:"emoji,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	MinValues   int            `json:"min_values,omitempty"`
	MaxValues   int            `json:"max_values,omitempty"`
	Options     []SelectOption `json:"options,omitempty"`
	Components  []Component    `json:"components,omitempty"`
}

// SelectOption represents one choice in a select menu.
type SelectOption struct {
	Label       string        `json:"label"`
	Value       string        `json:"value"`
	Description string        `json:"description,omitempty"`
	Emoji       *PartialEmoji `json:"emoji,omitempty"`
	Default     bool          `json:"default,omitempty"`
}

// NewButton creates a button that reports interactions under customID
func NewButton(label, customID string, style ButtonStyle) Component {
	return Component{
		Type:     ComponentTypeButton,
		Label:    label,
		CustomID: customID,
		Style:    style,
	}
}

// NewLinkButton creates a button that opens a URL instead of firing an interaction
func NewLinkButton(label, url string) Component {
	return Component{
		Type:  ComponentTypeButton,
		Label: label,
		URL:   url,
		Style: ButtonStyleLink,
	}
}

// NewSelectMenu creates a single-choice select menu with the given options
func NewSelectMenu(customID, placeholder string, options ...SelectOption) Component {
	return Component{
		Type:        ComponentTypeStringSelect,
		CustomID:    customID,
		Placeholder: placeholder,
		MinValues:   1,
		MaxValues:   1,
		Options:     options,
	}
}

// ComponentsBuilder helps in constructing a message's component tree.
type ComponentsBuilder struct {
	rows []Component
}

// NewComponentsBuilder creates a new components builder
func NewComponentsBuilder() *ComponentsBuilder {
	return &ComponentsBuilder{}
}

// AddActionRow appends a row containing the given children
func (cb *ComponentsBuilder) AddActionRow(children ...Component) *ComponentsBuilder {
	cb.rows = append(cb.rows, Component{
		Type:       ComponentTypeActionRow,
		Components: children,
	})
	return cb
}

// Validate validates the current component tree
func (cb *ComponentsBuilder) Validate() error {
	return validateComponents(cb.rows)
}

// Build validates and returns the component tree
func (cb *ComponentsBuilder) Build() ([]Component, error) {
	if err := cb.Validate(); err != nil {
		return nil, err
	}
	return cb.rows, nil
}

func validateComponents(rows []Component) error {
	if len(rows) > MaxActionRowsPerMessage {
		return NewValidationError("components", len(rows), fmt.Sprintf("cannot have more than %d action rows", MaxActionRowsPerMessage))
	}
	for i, row := range rows {
		if row.Type != ComponentTypeActionRow {
			return NewValidationError("components", row.Type, fmt.Sprintf("top-level component %d must be an action row", i))
		}
		if len(row.Components) == 0 {
			return NewValidationError("components", row.Components, fmt.Sprintf("action row %d cannot be empty", i))
		}
		for j, child := range row.Components {
			if err := validateChild(i, j, child); err != nil {
				return err
			}
		}
		if hasSelect(row.Components) && len(row.Components) > 1 {
			return NewValidationError("components", len(row.Components), fmt.Sprintf("action row %d with a select menu cannot hold other components", i))
		}
		if len(row.Components) > MaxButtonsPerActionRow {
			return NewValidationError("components", len(row.Components), fmt.Sprintf("action row %d cannot hold more than %d buttons", i, MaxButtonsPerActionRow))
		}
	}
	return nil
}

func validateChild(row, idx int, child Component) error {
	switch child.Type {
	case ComponentTypeButton:
		return validateButton(row, idx, child)
	case ComponentTypeStringSelect:
		return validateSelectMenu(row, idx, child)
	case ComponentTypeActionRow:
		return NewValidationError("components", child.Type, fmt.Sprintf("action row %d cannot nest another action row", row))
	default:
		return NewValidationError("components", child.Type, fmt.Sprintf("component %d in row %d has an unknown type", idx, row))
	}
}

func validateButton(row, idx int, button Component) error {
	if len(button.Label) > MaxButtonLabelLength {
		return NewValidationError("label", button.Label, fmt.Sprintf("button %d in row %d label cannot exceed %d characters", idx, row, MaxButtonLabelLength))
	}
	if button.Style == ButtonStyleLink {
		if button.URL == "" {
			return NewValidationError("url", button.URL, fmt.Sprintf("link button %d in row %d requires a URL", idx, row))
		}
		if button.CustomID != "" {
			return NewValidationError("custom_id", button.CustomID, fmt.Sprintf("link button %d in row %d cannot carry a custom ID", idx, row))
		}
		return nil
	}
	if button.Style < ButtonStylePrimary || button.Style > ButtonStyleLink {
		return NewValidationError("style", button.Style, fmt.Sprintf("button %d in row %d has an invalid style", idx, row))
	}
	if button.CustomID == "" {
		return NewValidationError("custom_id", button.CustomID, fmt.Sprintf("button %d in row %d requires a custom ID", idx, row))
	}
	if len(button.CustomID) > MaxCustomIDLength {
		return NewValidationError("custom_id", button.CustomID, fmt.Sprintf("button %d in row %d custom ID cannot exceed %d characters", idx, row, MaxCustomIDLength))
	}
	if button.URL != "" {
		return NewValidationError("url", button.URL, fmt.Sprintf("non-link button %d in row %d cannot carry a URL", idx, row))
	}
	return nil
}

func validateSelectMenu(row, idx int, menu Component) error {
	if menu.CustomID == "" {
		return NewValidationError("custom_id", menu.CustomID, fmt.Sprintf("select menu %d in row %d requires a custom ID", idx, row))
	}
	if len(menu.Options) == 0 {
		return NewValidationError("options", menu.Options, fmt.Sprintf("select menu %d in row %d requires at least one option", idx, row))
	}
	if len(menu.Options) > MaxSelectOptions {
		return NewValidationError("options", len(menu.Options), fmt.Sprintf("select menu %d in row %d cannot have more than %d options", idx, row, MaxSelectOptions))
	}
	for k, option := range menu.Options {
		if option.Label == "" || option.Value == "" {
			return NewValidationError("options", option, fmt.Sprintf("option %d of select menu %d in row %d requires a label and value", k, idx, row))
		}
	}
	if menu.MinValues < 0 || menu.MaxValues < menu.MinValues {
		return NewValidationError("min_values", menu.MinValues, fmt.Sprintf("select menu %d in row %d has an invalid min/max range", idx, row))
	}
	return nil
}

func hasSelect(children []Component) bool {
	for _, child := range children {
		if child.Type == ComponentTypeStringSelect {
			return true
		}
	}
	return false
}
