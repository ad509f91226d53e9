// Package pipeline implements the webset-to-table ETL: flattening remote
// items into flat records, merging tables across websets, and reconstructing
// combined tables from on-disk artifacts.
package pipeline

import (
	"context"
	"prospector/pkg/domain"
)

//go:generate mockgen -package mockpipeline -source=interface.go -destination=mock/mockpipeline.go *
type Pipeline interface {
	// CreateVerticalWebset starts a new webset search for companies in the
	// given vertical with the standard enrichments, and tags the webset's
	// metadata with the vertical.
	CreateVerticalWebset(ctx context.Context, vertical string) (*domain.Webset, error)
	// Materialize fetches one webset and flattens its items, in order, into a
	// table labeled with the webset's title. With persist, the table is
	// written to "<title>.csv" in the data folder.
	Materialize(ctx context.Context, websetID string, persist bool) (domain.Table, error)
	// AggregateAll materializes every webset from the first list page,
	// combines the tables (first-occurrence dedup by company name, stable
	// sort by vertical) and optionally persists the combined table.
	AggregateAll(ctx context.Context, persist bool) (domain.Table, error)
	// MergeFromDisk rebuilds the combined table from the partial tables in
	// folder whose names carry the configured part prefix, without touching
	// the remote provider.
	MergeFromDisk(ctx context.Context, folder string, persist bool) (domain.Table, error)
}
