// Package tradefinance queries letters of credit attached to a trade. Used to
// block deletion of trades with live financing.
package tradefinance

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"tradecargo/internal/clients/httpx"
)

// LetterOfCredit is the subset of the LC model the deletion guard needs.
type LetterOfCredit struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// Rejected LC statuses do not block deletion; anything else does.
const (
	StatusRequestRejected = "request rejected"
	StatusIssuedRejected  = "issued lc rejected"
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

func (c *Client) GetLettersOfCredit(ctx context.Context, tradeID string) ([]LetterOfCredit, error) {
	query := url.Values{"filter": {url.QueryEscape(`{"query":{"tradeAndCargoSnapshot.trade._id":"` + tradeID + `"}}`)}}
	var lcs []LetterOfCredit
	err := httpx.GetJSON(ctx, c.http, c.baseURL+"/v0/lc?"+query.Encode(), &lcs)
	if err != nil {
		return nil, err
	}
	return lcs, nil
}

// Active reports whether any letter of credit is in a non-rejected state.
func Active(lcs []LetterOfCredit) bool {
	for _, lc := range lcs {
		if lc.Status != StatusRequestRejected && lc.Status != StatusIssuedRejected {
			return true
		}
	}
	return false
}
