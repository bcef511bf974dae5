package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"contact-notif/pkg/models"
)

const maxErrorBody = 4096

// DeliveryError is returned when the webhook answers with anything but 200.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("request to slack returned an error %d, the response is:\n%s", e.StatusCode, e.Body)
}

// Client defines the interface for posting messages to an incoming webhook
type Client interface {
	PostMessage(ctx context.Context, msg models.SlackMessage) error
}

type clientImpl struct {
	webhookURL string
	httpClient *http.Client
}

// NewClient creates a new webhook client. A nil httpClient selects http.DefaultClient.
func NewClient(webhookURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clientImpl{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}
}

func (c *clientImpl) PostMessage(ctx context.Context, msg models.SlackMessage) error {
	jsonPayload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error posting to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &DeliveryError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
