package repositories

import (
	"context"
	"event-ticketing/internal/repository"

	"github.com/jackc/pgx/v5"
)

// FakeTransactor 直接執行 fn，tx 為 nil；BeginErr/CommitErr 模擬交易本身失敗
type FakeTransactor struct {
	BeginErr  error
	CommitErr error

	Calls      int
	RolledBack bool
	Committed  bool
}

var _ repository.Transactor = (*FakeTransactor)(nil)

func (f *FakeTransactor) WithinTransaction(ctx context.Context, fn repository.TxFunc) error {
	f.Calls++
	if f.BeginErr != nil {
		return f.BeginErr
	}
	if err := fn(ctx, pgx.Tx(nil)); err != nil {
		f.RolledBack = true
		return err
	}
	if f.CommitErr != nil {
		f.RolledBack = true
		return f.CommitErr
	}
	f.Committed = true
	return nil
}
