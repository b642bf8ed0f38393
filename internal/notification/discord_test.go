package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestJoinedMessage_WithDate(t *testing.T) {
	date := time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC)

	msg := joinedMessage("5K Fun Run", "Alex", &date)

	assert.Equal(t, `🎉 **New Participant!** Alex has joined: "5K Fun Run - Friday, 03/14/2025"`, msg)
}

func TestJoinedMessage_WithoutDate(t *testing.T) {
	msg := joinedMessage("Saturday Long Run", "Alex", nil)

	assert.Equal(t, `🎉 **New Participant!** Alex has joined: "Saturday Long Run"`, msg)
}

func TestLeftMessage_WithDate(t *testing.T) {
	date := time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC)

	msg := leftMessage("5K Fun Run", "Alex", &date)

	assert.Equal(t, `👋 **Participant Left!** Alex has left: "5K Fun Run - Friday, 03/14/2025"`, msg)
}

func TestReminderMessage(t *testing.T) {
	date := time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC)

	msg := reminderMessage("5K Fun Run", &date)

	assert.Equal(t, `📅 **Upcoming Event!** "5K Fun Run - Friday, 03/14/2025" is coming up`, msg)
}

func TestFormatEventDate(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			"afternoon utc",
			time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC),
			"Friday, 03/14/2025",
		},
		{
			"single digit day and month padded",
			time.Date(2026, time.January, 3, 9, 0, 0, 0, time.UTC),
			"Saturday, 01/03/2026",
		},
		{
			"non-utc input rendered in utc",
			time.Date(2025, time.March, 15, 1, 0, 0, 0, time.FixedZone("AEST", 10*3600)),
			"Friday, 03/14/2025",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatEventDate(tc.in))
		})
	}
}

func TestParseWebhookURL(t *testing.T) {
	id, token, err := parseWebhookURL("https://discord.com/api/webhooks/123456789/abc-def_token")

	require.NoError(t, err)
	assert.Equal(t, "123456789", id)
	assert.Equal(t, "abc-def_token", token)
}

func TestParseWebhookURL_Invalid(t *testing.T) {
	_, _, err := parseWebhookURL("https://discord.com/api/not-a-webhook")

	require.Error(t, err)
}

func TestDiscordNotifier_DisabledWithoutURL(t *testing.T) {
	n, err := NewDiscordNotifier("", newTestLogger(t))
	require.NoError(t, err)

	date := time.Now()

	// sends become no-ops, never errors
	assert.NoError(t, n.NotifyParticipantJoined(context.Background(), "5K Fun Run", "Alex", &date))
	assert.NoError(t, n.NotifyParticipantLeft(context.Background(), "5K Fun Run", "Alex", nil))
}

func TestNewDiscordNotifier_BadURL(t *testing.T) {
	_, err := NewDiscordNotifier("https://discord.com/api/not-a-webhook", newTestLogger(t))

	require.Error(t, err)
}
