package store

import "tradecargo/internal/domain"

// Query filters cargo movements. Zero-valued fields are ignored; deleted
// movements are never returned.
type Query struct {
	Source   domain.Source
	SourceID string
	CargoID  string
}

// Options paginates Find results.
type Options struct {
	Skip  int
	Limit int
}

// DefaultLimit bounds unpaginated finds.
const DefaultLimit = 100
