// Package notify delivers new lead alerts to the sales team.
package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	marketingapp "github.com/autenticco/backend/internal/application/marketing"
	"github.com/autenticco/backend/internal/domain/marketing"
	"github.com/autenticco/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure TelegramNotifier implements LeadNotifier
var _ marketingapp.LeadNotifier = (*TelegramNotifier)(nil)

// sender is the part of the bot API used here
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts new leads to a Telegram chat
type TelegramNotifier struct {
	bot     sender
	chatID  int64
	siteURL string
	logger  *zap.Logger
}

// NewTelegramNotifier authenticates the bot against Telegram
func NewTelegramNotifier(cfg config.NotifyConfig, siteURL string, logger *zap.Logger) (*TelegramNotifier, error) {
	if cfg.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}
	if cfg.TelegramChatID == 0 {
		return nil, errors.New("telegram chat id is required")
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Telegram notifier ready", zap.String("bot", api.Self.UserName))
	return newTelegramNotifier(api, cfg.TelegramChatID, siteURL, logger), nil
}

func newTelegramNotifier(bot sender, chatID int64, siteURL string, logger *zap.Logger) *TelegramNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TelegramNotifier{
		bot:     bot,
		chatID:  chatID,
		siteURL: strings.TrimRight(siteURL, "/"),
		logger:  logger,
	}
}

// NotifyNewLead implements LeadNotifier
func (n *TelegramNotifier) NotifyNewLead(ctx context.Context, ln marketingapp.LeadNotification) error {
	if ln.Lead == nil {
		return errors.New("lead is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, n.formatLead(ln))
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	n.logger.Debug("Lead sent to Telegram", zap.String("lead_id", ln.Lead.ID.String()))
	return nil
}

var sourceLabels = map[marketing.LeadSource]string{
	marketing.LeadSourceContact:   "Contato",
	marketing.LeadSourceCar:       "Interesse em veículo",
	marketing.LeadSourceFinancing: "Financiamento",
	marketing.LeadSourceTradeIn:   "Troca",
	marketing.LeadSourceSellCar:   "Venda seu carro",
	marketing.LeadSourceWhatsApp:  "WhatsApp",
}

func (n *TelegramNotifier) formatLead(ln marketingapp.LeadNotification) string {
	l := ln.Lead
	var b strings.Builder
	b.WriteString("<b>Novo lead</b>\n")
	fmt.Fprintf(&b, "Nome: %s\n", html.EscapeString(l.Name))
	fmt.Fprintf(&b, "Telefone: %s\n", html.EscapeString(l.Phone))
	if l.Email != "" {
		fmt.Fprintf(&b, "E-mail: %s\n", html.EscapeString(l.Email))
	}
	source, ok := sourceLabels[l.Source]
	if !ok {
		source = string(l.Source)
	}
	if source != "" {
		fmt.Fprintf(&b, "Origem: %s\n", html.EscapeString(source))
	}
	if ln.CarTitle != "" {
		car := html.EscapeString(ln.CarTitle)
		if n.siteURL != "" && ln.CarSlug != "" {
			car = fmt.Sprintf(`<a href="%s/carros/%s">%s</a>`, n.siteURL, html.EscapeString(ln.CarSlug), car)
		}
		fmt.Fprintf(&b, "Veículo: %s\n", car)
	}
	if msg := strings.TrimSpace(l.Message); msg != "" {
		fmt.Fprintf(&b, "\n%s", html.EscapeString(msg))
	}
	return strings.TrimRight(b.String(), "\n")
}
