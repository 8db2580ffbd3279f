package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/aleister1102/discordhook"
	"github.com/aleister1102/discordhook/httpclient"
)

func main() {
	// Flags
	configFile := flag.String("config", "", "Path to the YAML configuration file.")
	configFileAlias := flag.String("c", "", "Alias for --config")

	webhookURL := flag.String("webhook-url", "", "Webhook URL (overrides config file and DISCORDHOOK_WEBHOOK_URL)")
	content := flag.String("content", "", "Message content to send")
	username := flag.String("username", "", "Override the webhook's default username")
	tts := flag.Bool("tts", false, "Send as a text-to-speech message")

	embedTitle := flag.String("title", "", "Title of an embed to attach")
	embedDescription := flag.String("description", "", "Description of an embed to attach")
	embedColor := flag.String("color", "", "Hex color of the embed, e.g. #5CB85C")

	timeout := flag.Duration("timeout", 20*time.Second, "HTTP request timeout")
	flag.Parse()

	// Consolidate alias flags
	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}

	// .env values fill in whatever the environment doesn't already set
	_ = godotenv.Load()

	cfg := discordhook.NewDefaultWebhookConfig()
	if *configFile != "" {
		loaded, err := discordhook.LoadWebhookConfigFromFile(*configFile)
		if err != nil {
			log.Fatalf("[FATAL] Could not load config from '%s': %v", *configFile, err)
		}
		cfg = *loaded
	}

	if envURL := os.Getenv("DISCORDHOOK_WEBHOOK_URL"); envURL != "" && cfg.WebhookURL == "" {
		cfg.WebhookURL = envURL
	}
	if *webhookURL != "" {
		cfg.WebhookURL = *webhookURL
	}
	if cfg.WebhookURL == "" {
		log.Fatalln("[FATAL] A webhook URL is required (--webhook-url, config file, or DISCORDHOOK_WEBHOOK_URL)")
	}

	zLogger, err := discordhook.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	hc, err := httpclient.NewClientBuilder(zLogger).
		WithTimeout(*timeout).
		WithUserAgent("discordhook-cli").
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not build HTTP client")
	}

	client, err := discordhook.NewClient(cfg.WebhookURL, zLogger, hc)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Invalid webhook URL")
	}
	client.SetDefaults(discordhook.Message{
		Username:  cfg.Username,
		AvatarURL: cfg.AvatarURL,
	})

	message, err := buildMessage(cfg, *content, *username, *tts, *embedTitle, *embedDescription, *embedColor)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Invalid message")
	}

	resp, err := client.Execute(context.Background(), message)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to send webhook message")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		zLogger.Error().Int("status_code", resp.StatusCode).Str("body", string(resp.Body)).Msg("Discord rejected the message")
		os.Exit(1)
	}

	fmt.Printf("Message delivered (HTTP %d)\n", resp.StatusCode)
}

func buildMessage(cfg discordhook.WebhookConfig, content, username string, tts bool, title, description, color string) (*discordhook.Message, error) {
	builder := discordhook.NewMessageBuilder().
		WithContent(content).
		WithUsername(username).
		WithTTS(tts)

	if len(cfg.MentionRoleIDs) > 0 && content != "" {
		builder.WithContent(discordhook.MentionRoles(cfg.MentionRoleIDs) + " " + content)

		mentions := discordhook.NewAllowedMentions()
		for _, roleID := range cfg.MentionRoleIDs {
			mentions.AddRoleID(roleID)
		}
		builder.WithAllowedMentions(mentions)
	}

	if title != "" || description != "" {
		embedBuilder := discordhook.NewEmbedBuilder().
			WithTitle(title).
			WithDescription(description).
			WithTimestamp(time.Now())

		if color != "" {
			parsed, err := discordhook.ParseColor(color)
			if err != nil {
				return nil, err
			}
			embedBuilder.WithColor(parsed)
		} else {
			embedBuilder.WithColor(discordhook.DefaultEmbedColor)
		}

		embed, err := embedBuilder.Build()
		if err != nil {
			return nil, err
		}
		builder.AddEmbed(embed)
	}

	message := builder.Build()
	return &message, nil
}
