package store

import "tradecargo/internal/domain"

// Query filters trades. Zero-valued fields are ignored; deleted trades are
// never returned by any lookup.
type Query struct {
	Source       domain.Source
	SourceID     string
	BuyerEtrmID  string
	SellerEtrmID string
}

// Options paginates Find results.
type Options struct {
	Skip  int
	Limit int
}

// DefaultLimit bounds unpaginated finds.
const DefaultLimit = 100
