package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"dotask-bot/internal/model"
	repo "dotask-bot/internal/task/repository"
)

const userColumns = `id, telegram_id, full_name, username, language, created_at, updated_at`

// UpsertUser inserts the user or refreshes name, handle and language, keyed by telegram_id.
func (r *implRepository) UpsertUser(ctx context.Context, opt repo.UpsertUserOptions) (model.User, error) {
	query := r.dialect.rebind(`
		INSERT INTO users (telegram_id, full_name, username, language, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (telegram_id) DO UPDATE SET
			full_name = excluded.full_name,
			username = excluded.username,
			language = excluded.language,
			updated_at = excluded.updated_at
		RETURNING ` + userColumns)

	now := toUnix(nowOr(opt.Now))
	user, err := scanUser(r.q.QueryRowContext(ctx, query,
		opt.TelegramID, opt.FullName, opt.Username, opt.Language, now, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s telegram_id=%d: %v", r.dsn("UpsertUser"), opt.TelegramID, err)
		return model.User{}, repo.ErrFailedToUpsert
	}
	return user, nil
}

// GetUserByTelegramID returns a zero-value User when not found.
func (r *implRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (model.User, error) {
	query := r.dialect.rebind(`SELECT ` + userColumns + ` FROM users WHERE telegram_id = ?`)

	user, err := scanUser(r.q.QueryRowContext(ctx, query, telegramID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s telegram_id=%d: %v", r.dsn("GetUserByTelegramID"), telegramID, err)
		return model.User{}, repo.ErrFailedToGet
	}
	return user, nil
}

func scanUser(row *sql.Row) (model.User, error) {
	var (
		u                    model.User
		createdAt, updatedAt int64
	)
	if err := row.Scan(&u.ID, &u.TelegramID, &u.FullName, &u.Username, &u.Language, &createdAt, &updatedAt); err != nil {
		return model.User{}, err
	}
	u.CreatedAt = fromUnix(createdAt)
	u.UpdatedAt = fromUnix(updatedAt)
	return u, nil
}
