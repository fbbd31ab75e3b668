// Package counterparty adds trade counterparties to the company's network.
// Calls are best effort: a failure is logged by the caller and never blocks
// trade persistence.
package counterparty

import (
	"context"
	"net/http"
	"time"

	"tradecargo/internal/clients/httpx"
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

type autoAddRequest struct {
	CompanyIDs []string `json:"companyIds"`
}

// AutoAdd registers the given company static IDs as counterparties without
// requiring a manual approval step.
func (c *Client) AutoAdd(ctx context.Context, companyIDs []string) error {
	if len(companyIDs) == 0 {
		return nil
	}
	return httpx.PostJSON(ctx, c.http, c.baseURL+"/v0/counterparties/add", autoAddRequest{CompanyIDs: companyIDs})
}
