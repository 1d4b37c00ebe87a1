package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrBeginTx is returned when a transaction cannot be started
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx is returned when a transaction cannot be committed
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// Executor is the subset of *sql.DB / *sql.Tx the repositories use
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txKey struct{}

// TransactionManager runs functions inside a serializable transaction.
// The running transaction travels through the context so repositories pick
// it up transparently via ExecutorFromContext.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a transaction manager over the given database
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a serializable transaction.
// Any error from fn rolls the transaction back and is returned as-is.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// ExecutorFromContext returns the transaction carried by ctx, or fallback when
// no transaction is running
func ExecutorFromContext(ctx context.Context, fallback Executor) Executor {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return fallback
}
