package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Executor is the querying capability handed to every repository method. It
// is satisfied both by the connection pool and by a transaction, so usecases
// decide on transactionality without repositories noticing.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TransactionFactory is what usecases depend on instead of the concrete
// pool-backed getter, so tests can substitute a fake.
type TransactionFactory interface {
	Executor() Executor
	Transaction(ctx context.Context, fn func(tx Executor) error) error
}

type ExecutorGetter struct {
	pool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) ExecutorGetter {
	return ExecutorGetter{pool: pool}
}

func (g ExecutorGetter) Executor() Executor {
	return g.pool
}

// Transaction runs fn inside a database transaction, committing on nil error.
func (g ExecutorGetter) Transaction(ctx context.Context, fn func(tx Executor) error) error {
	return pgx.BeginFunc(ctx, g.pool, func(tx pgx.Tx) error {
		return fn(tx)
	})
}
