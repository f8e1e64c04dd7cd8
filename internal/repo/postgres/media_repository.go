package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/media_consumer/internal/domain"
	"github.com/Gunvolt24/media_consumer/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что MediaRepository удовлетворяет интерфейсу MediaRepository.
var _ ports.MediaRepository = (*MediaRepository)(nil)

// ErrEmptyBatch — попытка записать пустую пачку.
var ErrEmptyBatch = errors.New("media batch is empty")

// MediaRepository — хранилище записей о видео на Postgres (pgxpool).
type MediaRepository struct {
	pool *pgxpool.Pool
}

// NewMediaRepository - конструктор MediaRepository.
func NewMediaRepository(pool *pgxpool.Pool) *MediaRepository { return &MediaRepository{pool: pool} }

// InsertBatch — вставляет пачку одним COPY внутри транзакции: либо вся пачка, либо ничего.
func (r *MediaRepository) InsertBatch(ctx context.Context, batch []domain.Media) (int64, error) {
	if len(batch) == 0 {
		return 0, ErrEmptyBatch
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	n, err := copyMedia(ctx, transaction, batch)
	if err != nil {
		return 0, err
	}
	if n != int64(len(batch)) {
		return 0, fmt.Errorf("copy media: inserted %d of %d rows", n, len(batch))
	}

	if err := transaction.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

// Count — число записей в таблице.
func (r *MediaRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM media`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}
	return n, nil
}

// ListByUser — записи пользователя в порядке вставки, с пагинацией.
func (r *MediaRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Media, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT title, added_year, added_date, description, userid, videoid
		FROM media
		WHERE userid = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select media: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Media, 0, limit)
	for rows.Next() {
		var m domain.Media
		if err := rows.Scan(&m.Title, &m.AddedYear, &m.AddedDate, &m.Description, &m.UserID, &m.VideoID); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("media rows: %w", err)
	}
	return out, nil
}

// copyMedia — вставка через COPY (CopyFromRows); порядок строк совпадает с порядком пачки.
func copyMedia(ctx context.Context, tx pgx.Tx, batch []domain.Media) (int64, error) {
	rows := make([][]any, 0, len(batch))
	for _, m := range batch {
		rows = append(rows, []any{m.Title, m.AddedYear, m.AddedDate, m.Description, m.UserID, m.VideoID})
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{mediaTable}, mediaColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy media: %w", err)
	}
	return n, nil
}
