package discordhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/aleister1102/discordhook/httpclient"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response is the raw result of a webhook call. Non-2xx statuses are not
// errors; callers inspect StatusCode and Body themselves.
type Response = httpclient.Response

// File is an attachment uploaded alongside a message.
type File struct {
	Name string
	Body io.Reader
}

// Client delivers messages to a single Discord incoming webhook.
type Client struct {
	logger     zerolog.Logger
	httpClient *httpclient.Client
	webhookURL string
	id         string
	token      string
	defaults   Message
}

// NewClient creates a webhook client for the given URL. The webhook id and
// token are taken from the last two path segments; query and fragment parts
// are dropped. A nil httpClient gets replaced with a default one; pass
// zerolog.Nop() to disable logging.
func NewClient(webhookURL string, logger zerolog.Logger, hc *httpclient.Client) (*Client, error) {
	normalized, id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}

	moduleLogger := logger.With().Str("module", "discordhook").Logger()

	if hc == nil {
		hc, err = httpclient.NewClientBuilder(moduleLogger).Build()
		if err != nil {
			return nil, WrapError(err, "failed to build default HTTP client")
		}
	}

	return &Client{
		logger:     moduleLogger,
		httpClient: hc,
		webhookURL: normalized,
		id:         id,
		token:      token,
	}, nil
}

// ID returns the webhook id parsed from the URL.
func (c *Client) ID() string { return c.id }

// Token returns the webhook token parsed from the URL.
func (c *Client) Token() string { return c.token }

// SetDefaults stores message fields merged into every Execute call. Per-call
// values win; defaults only fill fields the caller left empty.
func (c *Client) SetDefaults(defaults Message) *Client {
	c.defaults = defaults
	return c
}

// URL returns the normalized webhook URL.
func (c *Client) URL() string {
	return c.webhookURL
}

func parseWebhookURL(webhookURL string) (string, string, string, error) {
	parsed, err := url.Parse(webhookURL)
	if err != nil {
		return "", "", "", WrapError(ErrInvalidWebhookURL, err.Error())
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", "", "", WrapError(ErrInvalidWebhookURL, fmt.Sprintf("unsupported scheme '%s'", parsed.Scheme))
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 {
		return "", "", "", WrapError(ErrInvalidWebhookURL, "URL must end in /{webhook.id}/{webhook.token}")
	}
	id := segments[len(segments)-2]
	token := segments[len(segments)-1]
	if id == "" || token == "" {
		return "", "", "", WrapError(ErrInvalidWebhookURL, "webhook id and token cannot be empty")
	}
	normalized := fmt.Sprintf("%s://%s%s", parsed.Scheme, parsed.Host, parsed.Path)
	return normalized, id, token, nil
}

// Execute sends one message to the webhook. Validation failures return a
// *ValidationError before any network activity; transport failures return a
// *NetworkError; everything the remote answers, including 4xx and 5xx, comes
// back as a *Response. Exactly one outbound call is made, with no retries.
func (c *Client) Execute(ctx context.Context, message *Message) (*Response, error) {
	merged, err := c.prepareMessage(message, false)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		return nil, WrapError(err, "failed to marshal webhook payload")
	}

	resp, err := c.post(ctx, merged, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	c.logger.Info().Int("status_code", resp.StatusCode).Msg("Webhook message sent")
	return resp, nil
}

// ExecuteWithFiles sends one message with file attachments as a
// multipart/form-data request carrying a payload_json field.
func (c *Client) ExecuteWithFiles(ctx context.Context, message *Message, files ...File) (*Response, error) {
	// Attachments alone make a valid message, so the empty check is relaxed
	// when at least one file is supplied.
	merged, err := c.prepareMessage(message, len(files) > 0)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		return nil, WrapError(err, "failed to marshal webhook payload")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("payload_json", string(payload)); err != nil {
		return nil, WrapError(err, "failed to write payload_json to multipart")
	}

	for i, file := range files {
		if file.Name == "" {
			return nil, NewValidationError("file_name", file.Name, fmt.Sprintf("file %d requires a name", i))
		}
		part, err := writer.CreateFormFile(fmt.Sprintf("file[%d]", i), file.Name)
		if err != nil {
			return nil, WrapError(err, "failed to create form file")
		}
		n, err := io.Copy(part, io.LimitReader(file.Body, MaxAttachmentSize+1))
		if err != nil {
			return nil, WrapError(err, "failed to copy file data to form")
		}
		if n > MaxAttachmentSize {
			return nil, NewValidationError("file", file.Name, fmt.Sprintf("file %d exceeds the %d byte attachment limit", i, MaxAttachmentSize))
		}
	}

	if err := writer.Close(); err != nil {
		return nil, WrapError(err, "failed to close multipart writer")
	}

	resp, err := c.post(ctx, merged, writer.FormDataContentType(), body)
	if err != nil {
		return nil, err
	}

	c.logger.Info().Int("status_code", resp.StatusCode).Int("files", len(files)).Msg("Webhook message with attachments sent")
	return resp, nil
}

// Get fetches the webhook object from Discord.
func (c *Client) Get(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, c.webhookURL, "", nil)
}

// Modify updates the webhook's name and/or avatar. Empty arguments are
// omitted from the request.
func (c *Client) Modify(ctx context.Context, name, avatarURL string) (*Response, error) {
	patch := make(map[string]string)
	if name != "" {
		patch["name"] = name
	}
	if avatarURL != "" {
		patch["avatar"] = avatarURL
	}

	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, WrapError(err, "failed to marshal webhook patch")
	}

	return c.do(ctx, http.MethodPatch, c.webhookURL, "application/json", bytes.NewReader(payload))
}

// Delete removes the webhook.
func (c *Client) Delete(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodDelete, c.webhookURL, "", nil)
}

// prepareMessage merges instance defaults into the per-call message and
// validates the result. The caller's message is not mutated.
func (c *Client) prepareMessage(message *Message, allowEmpty bool) (*Message, error) {
	if message == nil {
		message = &Message{}
	}

	merged := *message
	if merged.Content == "" {
		merged.Content = c.defaults.Content
	}
	if merged.Username == "" {
		merged.Username = c.defaults.Username
	}
	if merged.AvatarURL == "" {
		merged.AvatarURL = c.defaults.AvatarURL
	}
	if len(merged.Embeds) == 0 {
		merged.Embeds = c.defaults.Embeds
	}
	if merged.AllowedMentions == nil {
		merged.AllowedMentions = c.defaults.AllowedMentions
	}

	if err := c.validateMessage(&merged, allowEmpty); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (c *Client) validateMessage(message *Message, allowEmpty bool) error {
	if message.IsEmpty() && !allowEmpty {
		return NewValidationError("message", message, ErrEmptyMessage.Error())
	}

	if len(message.Embeds) > MaxEmbedsPerMessage {
		return NewValidationError("embeds", len(message.Embeds), fmt.Sprintf("cannot send more than %d embeds per message", MaxEmbedsPerMessage))
	}

	validator := NewEmbedValidator()
	for _, embed := range message.Embeds {
		if err := validator.ValidateEmbed(embed); err != nil {
			return err
		}
	}

	if message.AllowedMentions != nil {
		if err := message.AllowedMentions.Validate(); err != nil {
			return err
		}
	}

	if len(message.Components) > 0 {
		if err := validateComponents(message.Components); err != nil {
			return err
		}
	}

	if message.Poll != nil {
		if err := validatePoll(*message.Poll); err != nil {
			return err
		}
	}

	return nil
}

// post issues the single outbound webhook call for a message, applying the
// wait and thread_id query parameters when set.
func (c *Client) post(ctx context.Context, message *Message, contentType string, body io.Reader) (*Response, error) {
	target := c.webhookURL
	query := url.Values{}
	if message.Wait {
		query.Set("wait", "true")
	}
	if message.ThreadID != "" {
		query.Set("thread_id", message.ThreadID)
	}
	if len(query) > 0 {
		target = target + "?" + query.Encode()
	}

	return c.do(ctx, http.MethodPost, target, contentType, body)
}

func (c *Client) do(ctx context.Context, method, target, contentType string, body io.Reader) (*Response, error) {
	headers := make(map[string]string)
	if contentType != "" {
		headers["Content-Type"] = contentType
	}

	resp, err := c.httpClient.Do(&httpclient.Request{
		URL:     target,
		Method:  method,
		Headers: headers,
		Body:    body,
		Context: ctx,
	})
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Msg("Webhook request failed")
		return nil, NewNetworkError(c.webhookURL, "webhook request failed", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().Int("status_code", resp.StatusCode).Str("method", method).Msg("Webhook request rejected by Discord")
	}

	return resp, nil
}
