package stage

import (
	"context"
	"fmt"
	"os"

	"github.com/esplo/pikmin-aggregator/pkg/postgres"
)

// watermarkSentinel makes a first run cover all history: no exchange in the
// supported set has executions before 2000.
const watermarkSentinel = "2000-01-01 00:00:00.000"

// Repository moves distinct timestamps from a source table into the working
// index through a file-based bulk round trip: COPY the next batch out to a
// local dump file, then COPY the file back into the index. Row-by-row
// inserts are far too slow for the distinct-timestamp sets involved.
//
// The round trip deliberately runs outside a transaction: it only appends
// timestamps that are strictly above everything already captured, so a
// retry after a partial failure rebuilds the index without duplicates.
type Repository struct {
	client postgres.StoreClient
}

// NewRepository creates a new stage repository.
func NewRepository(client postgres.StoreClient) *Repository {
	return &Repository{
		client: client,
	}
}

// BatchParams describes one bulk extract/load round trip.
type BatchParams struct {
	// SourceTable is the raw execution table read from.
	SourceTable string
	// IndexTable is the working timestamp index appended to.
	IndexTable string
	// DumpFile is the collision-free local file path for this round trip.
	DumpFile string
	// Limit bounds the number of distinct timestamps moved.
	Limit int
}

// StageNextBatch exports up to Limit distinct timestamps strictly greater
// than the maximum already captured in the index, ordered ascending, into
// the dump file, then bulk-loads the file into the index. It returns the
// number of timestamps moved; zero means the source is exhausted.
//
// Batching on distinct values keeps every group of source rows sharing one
// timestamp within a single batch, and the strict watermark comparison
// makes consecutive batches advance without overlap or gaps.
func (r *Repository) StageNextBatch(ctx context.Context, params BatchParams) (int64, error) {
	file, err := os.Create(params.DumpFile)
	if err != nil {
		return 0, fmt.Errorf("failed to create dump file %s: %w", params.DumpFile, err)
	}
	defer os.Remove(params.DumpFile)

	// COPY cannot be prepared, so names and the limit are spliced in; names
	// come from the naming package and the limit is an int.
	exportStmt := fmt.Sprintf(`COPY (
		SELECT DISTINCT traded_at
		FROM %s
		WHERE traded_at > COALESCE(
			(SELECT traded_at FROM %s ORDER BY traded_at DESC LIMIT 1),
			TIMESTAMP '%s'
		)
		ORDER BY traded_at
		LIMIT %d
	) TO STDOUT`, params.SourceTable, params.IndexTable, watermarkSentinel, params.Limit)

	exported, err := r.client.CopyTo(ctx, file, exportStmt)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("failed to export timestamps from %s: %w", params.SourceTable, err)
	}

	if exported == 0 {
		return 0, nil
	}

	dump, err := os.Open(params.DumpFile)
	if err != nil {
		return 0, fmt.Errorf("failed to reopen dump file %s: %w", params.DumpFile, err)
	}
	defer dump.Close()

	loadStmt := fmt.Sprintf(`COPY %s (traded_at) FROM STDIN`, params.IndexTable)

	loaded, err := r.client.CopyFrom(ctx, dump, loadStmt)
	if err != nil {
		return 0, fmt.Errorf("failed to load timestamps into %s: %w", params.IndexTable, err)
	}

	return loaded, nil
}
