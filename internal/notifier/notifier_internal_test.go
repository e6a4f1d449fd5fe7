package notifier

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"

	"github.com/tkarimov/pricewatch/internal/models"
)

// mockAPI is a mock for the telebot client subset.
type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	args := m.Called(to, what)
	var msg *telebot.Message
	if args.Get(0) != nil {
		msg = args.Get(0).(*telebot.Message)
	}
	return msg, args.Error(1)
}

func hitProduct() models.ScrapedProduct {
	return models.ScrapedProduct{
		Name:    "Xbox Series X",
		URL:     "https://techsiro.com/products/4804/xbox-series-x",
		Outcome: models.SuccessOutcome(63600000, "۶۳٬۶۰۰٬۰۰۰ تومان"),
	}
}

func TestTelegram_NotifyTargetPrice(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("message carries name and price text", func(t *testing.T) {
		api := &mockAPI{}
		api.On("Send", telebot.ChatID(42), mock.MatchedBy(func(msg interface{}) bool {
			text, ok := msg.(string)
			return ok && strings.Contains(text, "Xbox Series X") && strings.Contains(text, "۶۳٬۶۰۰٬۰۰۰ تومان")
		})).Return(&telebot.Message{}, nil).Once()

		tg := &Telegram{bot: api, log: logger, chat: telebot.ChatID(42)}

		err := tg.NotifyTargetPrice(t.Context(), hitProduct(), 63600000)

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("send failure is wrapped", func(t *testing.T) {
		api := &mockAPI{}
		api.On("Send", telebot.ChatID(42), mock.Anything).
			Return(nil, errors.New("telegram: unauthorized")).Once()

		tg := &Telegram{bot: api, log: logger, chat: telebot.ChatID(42)}

		err := tg.NotifyTargetPrice(t.Context(), hitProduct(), 63600000)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send target price alert")
		api.AssertExpectations(t)
	})
}

func TestNoop_NotifyTargetPrice(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := NewNoop(logger).NotifyTargetPrice(t.Context(), hitProduct(), 63600000)

	assert.NoError(t, err)
}
