package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

const methodSendMessage = "sendMessage"

// Исходы вызова Bot API для метрик
const (
	OutcomeSuccess       = "success"
	OutcomeRejected      = "rejected"
	OutcomeError         = "error"
	OutcomeNotConfigured = "not_configured"
)

// Client клиент Telegram Bot API для отправки бронирований персоналу магазина
type Client struct {
	endpoint   string // формат "https://api.telegram.org/bot%s/%s"
	token      string
	chatID     string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента.
// Пустой endpoint означает публичный Bot API.
func NewClient(endpoint, token, chatID string, timeout time.Duration, log Logger) *Client {
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	return &Client{
		endpoint: endpoint,
		token:    token,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics включает сбор метрик вызовов Bot API
func (c *Client) WithMetrics(metrics MetricsRecorder) *Client {
	c.metrics = metrics
	return c
}

// Send форматирует бронирование и отправляет его в чат магазина.
// Единственная попытка, без повторов.
func (c *Client) Send(ctx context.Context, reservation *domain.Reservation) error {
	start := time.Now()
	err := c.SendMessage(ctx, FormatReservationMessage(reservation))
	c.observe(err, time.Since(start))

	if err != nil {
		c.log.Error("Telegram: failed to deliver reservation ref=%s: %v", reservation.Reference, err)
		return err
	}

	c.log.Info("Telegram: reservation ref=%s delivered to chat", reservation.Reference)
	return nil
}

// SendMessage отправляет текст в формате Markdown в чат магазина
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if c.token == "" || c.chatID == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: tgbotapi.ModeMarkdown,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf(c.endpoint, c.token, methodSendMessage)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		// текст ошибки содержит URL с токеном
		return fmt.Errorf("%w: failed to create request", ErrInternal)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, redactToken(err, c.token))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	// Telegram описывает причину отказа в поле description
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var apiResp tgbotapi.APIResponse
	if err := json.Unmarshal(raw, &apiResp); err == nil && apiResp.Description != "" {
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, apiResp.Description)
	}
	return fmt.Errorf("%w: unexpected status code %d", ErrRejected, resp.StatusCode)
}

func (c *Client) observe(err error, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveGatewayCall(outcomeOf(err), duration)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrNotConfigured):
		return OutcomeNotConfigured
	case errors.Is(err, ErrRejected):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}

// redactToken убирает токен бота из текста ошибки (url.Error содержит полный URL)
func redactToken(err error, token string) string {
	if token == "" {
		return err.Error()
	}
	return strings.ReplaceAll(err.Error(), token, "<redacted>")
}
