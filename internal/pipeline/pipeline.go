package pipeline

import (
	"context"
	"fmt"
	"strings"

	"prospector/internal/config"
	"prospector/pkg/domain"
	"prospector/pkg/logger"
	"prospector/pkg/serrors"
	"prospector/pkg/storage"
	"prospector/pkg/websets"

	"go.uber.org/zap"
)

// Names of the persisted table artifacts.
const (
	// tableExt is appended to the vertical title for per-webset tables.
	tableExt = ".csv"
	// combinedTableName holds the aggregate over all live websets.
	combinedTableName = "combined_df.csv"
	// totalCombinedTableName holds the merge of the on-disk partial tables.
	totalCombinedTableName = "total_combined_df.csv"
)

// Options configure where tables are persisted and how webset searches are
// sized. These settings are derived from application configuration.
type Options struct {
	// DataFolder is the folder receiving per-vertical and combined tables.
	DataFolder string
	// PartPrefix selects which files MergeFromDisk treats as partial tables.
	PartPrefix string
	// SearchCount is the result count requested for new websets.
	SearchCount int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DataFolder:  cfg.Data.Folder,
		PartPrefix:  cfg.Data.PartPrefix,
		SearchCount: cfg.Exa.SearchCount,
	}
}

// pipeline is the concrete implementation of the Pipeline interface. It
// coordinates the remote websets client with the table storage.
type pipeline struct {
	client  websets.Client
	store   storage.Storage
	options Options
}

// New creates a Pipeline backed by the provided websets client and table
// storage, configured with the given options.
func New(client websets.Client, store storage.Storage, options Options) Pipeline {
	return &pipeline{
		client:  client,
		store:   store,
		options: options,
	}
}

// CreateVerticalWebset creates a webset searching for US companies in the
// given vertical with the standard CEO-email and money-raised enrichments,
// then tags the webset metadata with the vertical.
func (p *pipeline) CreateVerticalWebset(ctx context.Context, vertical string) (*domain.Webset, error) {
	vertical = strings.TrimSpace(vertical)
	if vertical == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "vertical must not be empty")
	}

	ws, err := p.client.CreateWebset(ctx, NewVerticalSearch(vertical, p.options.SearchCount))
	if err != nil {
		return nil, fmt.Errorf("could not create webset: %w", err)
	}
	logger.Debug(ctx, "webset created", zap.String("webset", ws.ID), zap.String("vertical", vertical))

	if err := p.client.UpdateMetadata(ctx, ws.ID, map[string]string{"vertical": vertical}); err != nil {
		return nil, fmt.Errorf("could not tag webset metadata: %w", err)
	}

	return ws, nil
}

// Materialize fetches the webset with its items and flattens every item, in
// the original item order, into a table. The vertical of each record is the
// webset's title, reflecting what was actually searched. A flatten failure
// aborts the whole table; there is no skip-and-continue.
func (p *pipeline) Materialize(ctx context.Context, websetID string, persist bool) (domain.Table, error) {
	ws, err := p.client.GetWebset(ctx, websetID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch webset: %w", err)
	}
	if ws.Items == nil {
		return nil, serrors.With(serrors.ErrMissingItems, "webset %s was fetched without items", websetID)
	}

	items := *ws.Items
	logger.Debug(ctx, "materializing webset",
		zap.String("webset", websetID),
		zap.String("vertical", ws.Title),
		zap.Int("items", len(items)))

	table := make(domain.Table, 0, len(items))
	for i, item := range items {
		rec, err := Flatten(item, ws.Title)
		if err != nil {
			return nil, fmt.Errorf("could not flatten item %d of webset %s: %w", i, websetID, err)
		}
		table = append(table, rec)
	}

	if persist {
		if err := p.store.WriteTable(p.options.DataFolder, ws.Title+tableExt, table); err != nil {
			return nil, fmt.Errorf("could not persist table: %w", err)
		}
	}

	return table, nil
}

// AggregateAll materializes every webset of the first list page, combines the
// tables and optionally persists the result as the combined artifact.
// Per-webset persistence stays off here; only the combined table is written.
func (p *pipeline) AggregateAll(ctx context.Context, persist bool) (domain.Table, error) {
	summaries, _, err := p.client.ListWebsets(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("could not list websets: %w", err)
	}
	logger.Debug(ctx, "aggregating websets", zap.Int("websets", len(summaries)))

	tables := make([]domain.Table, 0, len(summaries))
	for i, summary := range summaries {
		logger.Debug(ctx, "processing webset",
			zap.String("webset", summary.ID),
			zap.Int("index", i+1),
			zap.Int("total", len(summaries)))

		table, err := p.Materialize(ctx, summary.ID, false)
		if err != nil {
			return nil, fmt.Errorf("could not materialize webset %s: %w", summary.ID, err)
		}
		tables = append(tables, table)
	}

	combined := Combine(tables...)

	if persist {
		if err := p.store.WriteTable(p.options.DataFolder, combinedTableName, combined); err != nil {
			return nil, fmt.Errorf("could not persist combined table: %w", err)
		}
	}

	return combined, nil
}

// MergeFromDisk reads every partial table in folder whose name carries the
// part prefix, combines them in directory-listing order and optionally
// persists the result as the total combined artifact in the same folder. No
// remote calls are made, so interrupted collection runs can be merged later.
func (p *pipeline) MergeFromDisk(ctx context.Context, folder string, persist bool) (domain.Table, error) {
	names, err := p.store.ListTables(folder, p.options.PartPrefix)
	if err != nil {
		return nil, fmt.Errorf("could not list partial tables: %w", err)
	}
	logger.Debug(ctx, "merging saved tables", zap.String("folder", folder), zap.Int("tables", len(names)))

	tables := make([]domain.Table, 0, len(names))
	for _, name := range names {
		table, err := p.store.ReadTable(folder, name)
		if err != nil {
			return nil, fmt.Errorf("could not read partial table %s: %w", name, err)
		}
		tables = append(tables, table)
	}

	combined := Combine(tables...)

	if persist {
		if err := p.store.WriteTable(folder, totalCombinedTableName, combined); err != nil {
			return nil, fmt.Errorf("could not persist combined table: %w", err)
		}
	}

	return combined, nil
}
