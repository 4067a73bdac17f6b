package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TxManager runs units of work in a transaction carried by the context.
// A RunInTx call inside a RunInTx callback joins the outer transaction.
type TxManager struct {
	pool   *pgxpool.Pool
	opts   pgx.TxOptions
	tracer trace.Tracer
}

// TxOption customizes a TxManager.
type TxOption func(*TxManager)

// WithIsolation sets the isolation level of new transactions.
// Read committed is used otherwise.
func WithIsolation(level pgx.TxIsoLevel) TxOption {
	return func(m *TxManager) { m.opts.IsoLevel = level }
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{
		pool:   pool,
		opts:   pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		tracer: otel.Tracer("github.com/heartmarshall/glossary-backend/internal/adapter/postgres"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx commits when fn returns nil and rolls back otherwise. A panic in
// fn rolls back and is re-raised.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	ctx, span := m.tracer.Start(ctx, "postgres.tx",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", "postgresql"),
			attribute.String("db.postgresql.isolation", string(m.opts.IsoLevel))),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "transaction failed")
		}
		span.End()
	}()

	tx, err := m.pool.BeginTx(ctx, m.opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
