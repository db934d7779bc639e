package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BridgeSender pushes outbound messages to the transport bridge. Delivery is
// fire-and-forget: callers log failures and never retry.
type BridgeSender struct {
	baseURL string
	client  *http.Client
}

func NewBridgeSender(baseURL string) *BridgeSender {
	return &BridgeSender{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// Send posts one message to the bridge delivery endpoint.
func (s *BridgeSender) Send(ctx context.Context, identity, text string) error {
	body, err := json.Marshal(sendRequest{To: identity, Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("bridge returned status %d", resp.StatusCode)
	}
	return nil
}
