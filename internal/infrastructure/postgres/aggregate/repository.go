package aggregate

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/esplo/pikmin-aggregator/pkg/postgres"
)

// Repository computes aggregated rows from the timestamp index and the
// source table. Table names must come from the naming package.
type Repository struct {
	client postgres.StoreClient
}

// NewRepository creates a new aggregate repository.
func NewRepository(client postgres.StoreClient) *Repository {
	return &Repository{
		client: client,
	}
}

// MoveBatch aggregates the first Limit index timestamps into the staging
// table and deletes exactly those timestamps from the index, returning the
// number of rows inserted; zero means the index is exhausted.
//
// Both statements must run inside one caller-owned transaction (see
// postgres.Begin): committing insert and delete together is what guarantees
// a timestamp is aggregated exactly once across crashes. Within the
// transaction both statements see the same ordered prefix of the index, so
// the deleted set is the inserted set.
func (r *Repository) MoveBatch(ctx context.Context, params BatchParams) (int64, error) {
	insertStmt := fmt.Sprintf(`INSERT INTO %s (traded_at, amount, price)
		SELECT s1.traded_at, SUM(src.amount), AVG(src.price)
		FROM (SELECT traded_at FROM %s ORDER BY traded_at LIMIT $1) s1
		JOIN %s src ON src.traded_at = s1.traded_at
		GROUP BY s1.traded_at`,
		params.StagingTable, params.IndexTable, params.SourceTable)

	tag, err := r.client.Exec(ctx, insertStmt, params.Limit)
	if err != nil {
		return 0, fmt.Errorf("failed to insert aggregates into %s: %w", params.StagingTable, err)
	}

	inserted := tag.RowsAffected()
	if inserted == 0 {
		// Every index entry joins at least one source row, so zero inserts
		// means an empty index and there is nothing to delete.
		return 0, nil
	}

	deleteStmt := fmt.Sprintf(`DELETE FROM %s
		WHERE traded_at IN (SELECT traded_at FROM %s ORDER BY traded_at LIMIT $1)`,
		params.IndexTable, params.IndexTable)

	if _, err := r.client.Exec(ctx, deleteStmt, params.Limit); err != nil {
		return 0, fmt.Errorf("failed to delete consumed timestamps from %s: %w", params.IndexTable, err)
	}

	return inserted, nil
}

// List reads all aggregated rows of a table in timestamp order.
func (r *Repository) List(ctx context.Context, table string) ([]*AggregatedTrade, error) {
	query := fmt.Sprintf(`SELECT traded_at, amount::text, price::text
		FROM %s ORDER BY traded_at`, table)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query aggregates from %s: %w", table, err)
	}
	defer rows.Close()

	var trades []*AggregatedTrade
	for rows.Next() {
		trade := &AggregatedTrade{}
		var amount, price string
		if err := rows.Scan(&trade.TradedAt, &amount, &price); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate: %w", err)
		}
		if trade.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse amount %q: %w", amount, err)
		}
		if trade.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("failed to parse price %q: %w", price, err)
		}
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return trades, nil
}
