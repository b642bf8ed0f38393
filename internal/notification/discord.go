package notification

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stosento/stephenruns/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// DiscordNotifier posts roster announcements to a Discord webhook.
// An empty webhook URL disables delivery; sends become no-ops so the
// roster paths never depend on the channel being configured.
type DiscordNotifier struct {
	session      *discordgo.Session
	webhookID    string
	webhookToken string
	logger       logger.Logger
}

func NewDiscordNotifier(webhookURL string, log logger.Logger) (*DiscordNotifier, error) {
	if webhookURL == "" {
		log.Warn("discord webhook url is empty, notifications disabled")
		return &DiscordNotifier{logger: log}, nil
	}

	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}

	// Webhook execution needs no bot token, only the webhook credentials.
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	return &DiscordNotifier{
		session:      session,
		webhookID:    id,
		webhookToken: token,
		logger:       log,
	}, nil
}

func (n *DiscordNotifier) NotifyParticipantJoined(ctx context.Context, eventName, participantName string, eventDate *time.Time) error {
	return n.send(ctx, joinedMessage(eventName, participantName, eventDate))
}

func (n *DiscordNotifier) NotifyParticipantLeft(ctx context.Context, eventName, participantName string, eventDate *time.Time) error {
	return n.send(ctx, leftMessage(eventName, participantName, eventDate))
}

func (n *DiscordNotifier) NotifyEventReminder(ctx context.Context, event *domain.Event) error {
	date := event.Date
	return n.send(ctx, reminderMessage(event.Name, &date))
}

func joinedMessage(eventName, participantName string, eventDate *time.Time) string {
	return fmt.Sprintf(`🎉 **New Participant!** %s has joined: %q`,
		participantName, eventLabel(eventName, eventDate))
}

func leftMessage(eventName, participantName string, eventDate *time.Time) string {
	return fmt.Sprintf(`👋 **Participant Left!** %s has left: %q`,
		participantName, eventLabel(eventName, eventDate))
}

func reminderMessage(eventName string, eventDate *time.Time) string {
	return fmt.Sprintf(`📅 **Upcoming Event!** %q is coming up`,
		eventLabel(eventName, eventDate))
}

func (n *DiscordNotifier) send(ctx context.Context, content string) error {
	if n.session == nil {
		n.logger.Debug("notification skipped (webhook disabled)", logger.String("content", content))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := n.session.WebhookExecute(n.webhookID, n.webhookToken, false, &discordgo.WebhookParams{
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("execute webhook: %w", err)
	}

	return nil
}

// eventLabel renders `Event Name - Friday, 03/14/2025`, or just the name
// when the parent has no single date (recurring runs).
func eventLabel(name string, date *time.Time) string {
	if date == nil {
		return name
	}
	return name + " - " + FormatEventDate(*date)
}

// FormatEventDate renders the announcement date as weekday plus MM/DD/YYYY.
func FormatEventDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s, %02d/%02d/%d", t.Weekday(), int(t.Month()), t.Day(), t.Year())
}

// parseWebhookURL splits a Discord webhook URL of the form
// .../api/webhooks/{id}/{token} into its credentials.
func parseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 4 || parts[len(parts)-3] != "webhooks" {
		return "", "", fmt.Errorf("unexpected webhook url path %q", u.Path)
	}

	return parts[len(parts)-2], parts[len(parts)-1], nil
}
