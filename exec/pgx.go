package exec

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool executes rendered statements on a pgx connection pool. pgx binds
// @name placeholders natively through NamedArgs, so no rewriting happens
// on this path.
type Pool struct {
	pool *pgxpool.Pool
}

// OpenPostgres opens a pgx pool for the given connection string.
func OpenPostgres(ctx context.Context, dsn string) (*Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Pool{pool: pool}, nil
}

// NewPool wraps an existing pgx pool.
func NewPool(pool *pgxpool.Pool) *Pool {
	return &Pool{pool: pool}
}

// Query runs a rendered statement, binding params as named arguments.
func (p *Pool) Query(ctx context.Context, query string, params map[string]any) (pgx.Rows, error) {
	return p.pool.Query(ctx, query, pgx.NamedArgs(params))
}

// Exec runs a rendered statement and reports the affected row count.
func (p *Pool) Exec(ctx context.Context, query string, params map[string]any) (int64, error) {
	tag, err := p.pool.Exec(ctx, query, pgx.NamedArgs(params))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Close releases the pool.
func (p *Pool) Close() {
	p.pool.Close()
}
