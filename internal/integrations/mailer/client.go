package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент транзакционного почтового API.
// Отправляет письма через REST-вызов POST {baseURL}/messages.
type Client struct {
	baseURL    string
	apiKey     string
	sender     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(baseURL, apiKey, sender string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		sender:  sender,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет письмо. Ошибка доставки не критична для вызывающего
// кода: решение глотать или пробрасывать принимает сервис уведомлений.
func (c *Client) Send(ctx context.Context, msg Message) error {
	url := fmt.Sprintf("%s/messages", c.baseURL)

	payload, err := json.Marshal(sendRequest{
		From:    c.sender,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: rejected with status %d: %s", ErrDelivery, resp.StatusCode, string(body))
	default:
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Письмо принято, некорректное тело ответа не считаем ошибкой доставки
		c.log.Warn("mailer: accepted but response decode failed: %v", err)
		return nil
	}

	c.log.Info("mailer: message accepted, id=%s, to=%s", result.ID, msg.To)
	return nil
}
