// Package documents reads the document type catalog used to validate the
// required-documents list on sale trades.
package documents

import (
	"context"
	"net/http"
	"net/url"
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

type documentType struct {
	ID string `json:"id"`
}

// GetDocumentTypes returns the known document type IDs for a product category.
func (c *Client) GetDocumentTypes(ctx context.Context, productID, categoryID string) ([]string, error) {
	query := url.Values{"categoryId": {categoryID}}
	var types []documentType
	err := httpx.GetJSON(ctx, c.http, c.baseURL+"/v0/products/"+productID+"/types?"+query.Encode(), &types)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(types))
	for _, t := range types {
		ids = append(ids, t.ID)
	}
	return ids, nil
}
