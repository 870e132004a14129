package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"live-chat-app/entity"
)

func TestFormatMessage(t *testing.T) {
	sentAt := time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)
	message := entity.Message{
		ID:             "msg-1",
		ConversationID: "conv-1",
		Text:           "hello",
		UserEmail:      "a@x.com",
		SentAt:         sentAt,
	}

	formatted := FormatMessage(message)

	assert.Equal(t, "msg-1", formatted.ID)
	assert.Equal(t, "conv-1", formatted.ConversationID)
	assert.Equal(t, "hello", formatted.Text)
	assert.Equal(t, "a@x.com", formatted.User)
	require.NotNil(t, formatted.SentAt)
	assert.Equal(t, "2024-03-09 14:30:05", *formatted.SentAt)
}

func TestFormatMessageIsIdempotent(t *testing.T) {
	message := entity.Message{
		ID:             "msg-1",
		ConversationID: "conv-1",
		Text:           "hello",
		UserEmail:      "a@x.com",
		SentAt:         time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC),
	}

	first := FormatMessage(message)
	second := FormatMessage(message)

	assert.Equal(t, first, second)
}

func TestFormatMessageWithoutTimestamp(t *testing.T) {
	// a message not yet timestamped by the server formats with a nil SentAt,
	// it must not fail
	message := entity.Message{
		ID:             "msg-2",
		ConversationID: "conv-1",
		Text:           "pending",
		UserEmail:      "a@x.com",
	}

	formatted := FormatMessage(message)

	assert.Nil(t, formatted.SentAt)
	assert.Equal(t, "pending", formatted.Text)
}

func TestFormatMessagesPreservesOrder(t *testing.T) {
	messages := []entity.Message{
		{ID: "m1", SentAt: time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)},
		{ID: "m2", SentAt: time.Date(2024, 3, 9, 11, 0, 0, 0, time.UTC)},
		{ID: "m3", SentAt: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)},
	}

	formatted := FormatMessages(messages)

	require.Len(t, formatted, 3)
	assert.Equal(t, "m1", formatted[0].ID)
	assert.Equal(t, "m2", formatted[1].ID)
	assert.Equal(t, "m3", formatted[2].ID)
}

func TestFormatTimestamp(t *testing.T) {
	assert.Nil(t, FormatTimestamp(time.Time{}))

	formatted := FormatTimestamp(time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC))
	require.NotNil(t, formatted)
	assert.Equal(t, "2024-03-09 14:30:05", *formatted)
}
