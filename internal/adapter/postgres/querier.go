package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the part of pgx the session and word repositories use. A
// catalog import runs it on a transaction; every other call runs it on the
// pool directly.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type activeTxKey struct{}

func contextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, activeTxKey{}, tx)
}

// QuerierFromCtx picks the import transaction opened by TxManager.RunInTx
// when ctx carries one, so groups and words of an import commit together.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	tx, ok := ctx.Value(activeTxKey{}).(pgx.Tx)
	if !ok {
		return pool
	}
	return tx
}
