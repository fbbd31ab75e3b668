// Package notification delivers in-app task notifications to platform users.
package notification

import (
	"context"
	"net/http"
	"time"

	"tradecargo/internal/clients/httpx"
)

// Notification is the payload accepted by the notification service. Context
// carries enough identifiers for the UI to deep-link back to the entity.
type Notification struct {
	ProductID          string         `json:"productId"`
	Type               string         `json:"type"`
	Level              string         `json:"level"`
	RequiredPermission Permission     `json:"requiredPermission"`
	Context            map[string]any `json:"context"`
	Message            string         `json:"message"`
}

type Permission struct {
	ProductID string `json:"productId"`
	ActionID  string `json:"actionId"`
}

const (
	ProductTradeFinance = "tradeFinance"
	TypeTradeCargoInfo  = "TradeMessageData.info"
	LevelInfo           = "info"
	ActionManageTrades  = "manageTrades"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CreateNotification(ctx context.Context, n Notification) error {
	return httpx.PostJSON(ctx, c.http, c.baseURL+"/v0/notifications", n)
}
