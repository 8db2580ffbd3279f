package discordhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookPath = "/api/webhooks/123456789/abc-token"

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := NewClient(serverURL+webhookPath, zerolog.Nop(), nil)
	require.NoError(t, err)
	return client
}

func TestParseWebhookURL(t *testing.T) {
	client, err := NewClient("https://discord.com/api/webhooks/123456789/abc-token?wait=true", zerolog.Nop(), nil)
	require.NoError(t, err)

	assert.Equal(t, "123456789", client.ID())
	assert.Equal(t, "abc-token", client.Token())
	assert.Equal(t, "https://discord.com/api/webhooks/123456789/abc-token", client.URL())
}

func TestParseWebhookURL_Invalid(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"missing segments", "https://discord.com/justone"},
		{"bad scheme", "ftp://discord.com/api/webhooks/1/t"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClient(tc.url, zerolog.Nop(), nil)
			require.ErrorIs(t, err, ErrInvalidWebhookURL)
		})
	}
}

func TestClient_Execute_TwoEmbeds(t *testing.T) {
	var requests atomic.Int32
	var captured Message

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	embed1, err := NewEmbedBuilder().WithTitle("first").Build()
	require.NoError(t, err)
	embed2, err := NewEmbedBuilder().WithTitle("second").Build()
	require.NoError(t, err)

	message := NewMessageBuilder().
		WithContent("two embeds").
		AddEmbed(embed1).
		AddEmbed(embed2).
		Build()

	resp, err := client.Execute(context.Background(), &message)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	assert.Equal(t, int32(1), requests.Load())
	require.Len(t, captured.Embeds, 2)
	assert.Equal(t, "first", captured.Embeds[0].Title)
	assert.Equal(t, "second", captured.Embeds[1].Title)
}

func TestClient_Execute_RemoteRejectionIsData(t *testing.T) {
	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid Form Body","code":50035}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	message := NewMessageBuilder().WithContent("rejected").Build()

	resp, err := client.Execute(context.Background(), &message)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "Invalid Form Body")

	// One request only, no retry on rejection.
	assert.Equal(t, int32(1), requests.Load())
}

func TestClient_Execute_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := newTestClient(t, serverURL)
	message := NewMessageBuilder().WithContent("unreachable").Build()

	resp, err := client.Execute(context.Background(), &message)
	require.Error(t, err)
	assert.Nil(t, resp)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
}

func TestClient_Execute_ValidationBeforeNetwork(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	embeds := make([]Embed, MaxEmbedsPerMessage+1)
	for i := range embeds {
		embeds[i] = Embed{Title: "over the limit"}
	}
	message := NewMessageBuilder().WithEmbeds(embeds).Build()

	_, err := client.Execute(context.Background(), &message)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "embeds", validationErr.Field)

	// Fail-fast means no HTTP round trip was spent.
	assert.Equal(t, int32(0), requests.Load())
}

func TestClient_Execute_EmptyMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Execute(context.Background(), &Message{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestClient_Execute_DefaultsMerge(t *testing.T) {
	var captured Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.SetDefaults(Message{Username: "default-bot", Content: "default content"})

	message := NewMessageBuilder().WithContent("explicit content").Build()
	_, err := client.Execute(context.Background(), &message)
	require.NoError(t, err)

	assert.Equal(t, "default-bot", captured.Username)
	assert.Equal(t, "explicit content", captured.Content)
}

func TestClient_Execute_WaitAndThreadID(t *testing.T) {
	var query map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	message := NewMessageBuilder().
		WithContent("threaded").
		WithWait(true).
		WithThreadID("99887766").
		Build()

	_, err := client.Execute(context.Background(), &message)
	require.NoError(t, err)

	assert.Equal(t, []string{"true"}, query["wait"])
	assert.Equal(t, []string{"99887766"}, query["thread_id"])
}

func TestClient_ExecuteWithFiles(t *testing.T) {
	var payloadJSON string
	var fileContent string
	var fileName string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		payloadJSON = r.FormValue("payload_json")

		file, header, err := r.FormFile("file[0]")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)

		fileName = header.Filename
		fileContent = string(data)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	message := NewMessageBuilder().WithContent("see attachment").Build()

	resp, err := client.ExecuteWithFiles(context.Background(), &message, File{
		Name: "report.txt",
		Body: strings.NewReader("scan results"),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded Message
	require.NoError(t, json.Unmarshal([]byte(payloadJSON), &decoded))
	assert.Equal(t, "see attachment", decoded.Content)
	assert.Equal(t, "report.txt", fileName)
	assert.Equal(t, "scan results", fileContent)
}

func TestClient_ExecuteWithFiles_AttachmentOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("file[0]")
		assert.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	resp, err := client.ExecuteWithFiles(context.Background(), &Message{}, File{
		Name: "only.txt",
		Body: strings.NewReader("attachment without content"),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_ModifyAndDelete(t *testing.T) {
	type call struct {
		method string
		body   string
	}
	var calls []call

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, call{method: r.Method, body: string(body)})
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Modify(context.Background(), "renamed-hook", "")
	require.NoError(t, err)

	_, err = client.Delete(context.Background())
	require.NoError(t, err)

	_, err = client.Get(context.Background())
	require.NoError(t, err)

	require.Len(t, calls, 3)
	assert.Equal(t, http.MethodPatch, calls[0].method)
	assert.JSONEq(t, `{"name":"renamed-hook"}`, calls[0].body)
	assert.Equal(t, http.MethodDelete, calls[1].method)
	assert.Equal(t, http.MethodGet, calls[2].method)
}
