package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxFunc 在交易內執行；回傳 error 即 rollback
type TxFunc func(ctx context.Context, tx pgx.Tx) error

// Transactor 提供以交易為範圍的資料庫 handle，結束時一定會 commit 或 rollback
type Transactor interface {
	WithinTransaction(ctx context.Context, fn TxFunc) error
}

type TransactorImpl struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewTransactor lockTimeout 為 0 時不設定 lock_timeout，等待時間只受 ctx 限制
func NewTransactor(pool *pgxpool.Pool, lockTimeout time.Duration) Transactor {
	return &TransactorImpl{
		pool:        pool,
		lockTimeout: lockTimeout,
	}
}

func (t *TransactorImpl) WithinTransaction(ctx context.Context, fn TxFunc) error {
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	// commit 之後的 rollback 是 no-op
	defer tx.Rollback(ctx)

	if t.lockTimeout > 0 {
		// SET 不接受參數綁定，數值由設定檔產生
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", t.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("set lock_timeout: %w", err)
		}
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
