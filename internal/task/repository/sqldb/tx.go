package sqldb

import (
	"context"

	"dotask-bot/internal/task/repository"
)

// WithTx runs fn inside one transaction. Nested calls reuse the outer one.
func (r *implRepository) WithTx(ctx context.Context, fn func(repository.Repository) error) (err error) {
	if r.inTx {
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("WithTx"), err)
		return repository.ErrFailedToBegin
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	txRepo := &implRepository{db: r.db, q: tx, inTx: true, dialect: r.dialect, l: r.l}
	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.l.Warnf(ctx, "%s rollback: %v", r.dsn("WithTx"), rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("WithTx"), err)
		return repository.ErrFailedToCommit
	}
	return nil
}
