// Package websets defines the interface and request types used to talk to
// the remote search/enrichment provider that owns websets.
package websets

import (
	"context"

	"prospector/pkg/domain"
)

// Enrichment result formats accepted by the provider.
const (
	// FormatText requests a free-text enrichment value.
	FormatText = "text"
	// FormatNumber requests a numeric enrichment value.
	FormatNumber = "number"
)

// Criterion is one verification criterion a webset search must satisfy.
type Criterion struct {
	Description string `json:"description"`
}

// Enrichment describes one derived field the provider should compute per item.
type Enrichment struct {
	Description string `json:"description"`
	Format      string `json:"format"`
}

// Search describes the query behind a new webset.
type Search struct {
	// Query is the natural-language search prompt.
	Query string `json:"query"`
	// Criteria are the verification criteria applied to each candidate.
	Criteria []Criterion `json:"criteria,omitempty"`
	// Count is the number of results to collect.
	Count int `json:"count,omitempty"`
}

// CreateParams are the parameters for creating a new webset.
type CreateParams struct {
	Search      Search       `json:"search"`
	Enrichments []Enrichment `json:"enrichments,omitempty"`
}

// Client is the abstraction over the remote websets provider. Implementations
// perform the network calls; callers treat the provider as an opaque service.
//
//go:generate mockgen -package mockwebsets -source=interface.go -destination=mock/mockwebsets.go *
type Client interface {
	// ListWebsets returns one page of webset summaries starting at cursor
	// (empty for the first page) plus the cursor of the next page, if any.
	ListWebsets(ctx context.Context, cursor string) ([]domain.WebsetSummary, string, error)
	// GetWebset fetches a webset by ID with its items expanded.
	GetWebset(ctx context.Context, id string) (*domain.Webset, error)
	// CreateWebset creates a new webset from the given search and enrichments.
	CreateWebset(ctx context.Context, params CreateParams) (*domain.Webset, error)
	// UpdateMetadata attaches the given metadata key/values to a webset.
	UpdateMetadata(ctx context.Context, id string, metadata map[string]string) error
}
