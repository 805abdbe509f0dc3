package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// TestHelper provides common testing utilities
type TestHelper struct {
	Container *TestContainer
	T         *testing.T
}

// NewTestHelper creates a new test helper with default configuration
func NewTestHelper(t *testing.T) *TestHelper {
	return NewTestHelperWithConfig(t, nil)
}

// NewTestHelperWithConfig creates a new test helper with custom configuration
func NewTestHelperWithConfig(t *testing.T, config *TestContainerConfig) *TestHelper {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	if config == nil {
		config = DefaultTestContainerConfig()
	}

	container, err := NewTestContainer(ctx, config)
	require.NoError(t, err)

	// Cleanup on test completion
	t.Cleanup(func() {
		if err := container.Close(); err != nil {
			t.Logf("Failed to close test container: %v", err)
		}
	})

	return &TestHelper{
		Container: container,
		T:         t,
	}
}

// Client returns the store client connected to the container.
func (h *TestHelper) Client() StoreClient {
	return h.Container.Client
}

// ExecSQL executes a raw SQL statement, failing the test on error.
func (h *TestHelper) ExecSQL(ctx context.Context, sql string, args ...any) {
	_, err := h.Container.Client.Exec(ctx, sql, args...)
	require.NoError(h.T, err)
}

// FakeTx is a no-op pgx.Tx for unit tests that drive the tx-in-context
// helpers without a live connection.
type FakeTx struct {
	CommitErr   error
	RollbackErr error

	Commits   int
	Rollbacks int
}

var _ pgx.Tx = (*FakeTx)(nil)

// Begin implements pgx.Tx.
func (t *FakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

// Commit implements pgx.Tx.
func (t *FakeTx) Commit(ctx context.Context) error {
	t.Commits++
	return t.CommitErr
}

// Rollback implements pgx.Tx.
func (t *FakeTx) Rollback(ctx context.Context) error {
	t.Rollbacks++
	return t.RollbackErr
}

// CopyFrom implements pgx.Tx.
func (t *FakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

// SendBatch implements pgx.Tx.
func (t *FakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

// LargeObjects implements pgx.Tx.
func (t *FakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

// Prepare implements pgx.Tx.
func (t *FakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

// Exec implements pgx.Tx.
func (t *FakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

// Query implements pgx.Tx.
func (t *FakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

// QueryRow implements pgx.Tx.
func (t *FakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

// Conn implements pgx.Tx.
func (t *FakeTx) Conn() *pgx.Conn { return nil }
