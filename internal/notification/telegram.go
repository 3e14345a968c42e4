package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/django-nerd/ulin/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier tells the operator chat about new bookings.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, id string, booking domain.Booking) {
	n.send(ctx, bookingMessage(id, booking))
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

func bookingMessage(id string, b domain.Booking) string {
	customer := b.Customer()

	var sb strings.Builder
	fmt.Fprintf(&sb, "New %s booking\n\n", b.Type)
	fmt.Fprintf(&sb, "Booking: %s\n", id)
	fmt.Fprintf(&sb, "Item: %s\n", b.ItemID)
	fmt.Fprintf(&sb, "Customer: %s <%s>\n", customer.Name, customer.Email)
	if customer.Phone != nil {
		fmt.Fprintf(&sb, "Phone: %s\n", *customer.Phone)
	}
	fmt.Fprintf(&sb, "Guests: %d\n", b.Guests)
	writeOptional(&sb, "Check-in", b.CheckIn)
	writeOptional(&sb, "Check-out", b.CheckOut)
	writeOptional(&sb, "Travel date", b.TravelDate)
	writeOptional(&sb, "Note", b.Note)

	return strings.TrimRight(sb.String(), "\n")
}

func writeOptional(sb *strings.Builder, label string, v *string) {
	if v == nil || *v == "" {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, *v)
}
