package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/pkg/entity"
)

const historyColumns = `id, profile_id, content_id, current_time_sec, duration_sec, completed, last_watched, created_at, updated_at`

type HistoryRepository struct {
	conn PgConnection
}

func NewHistoryRepoWithConn(conn PgConnection) *HistoryRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for historyRepo: " + err.Error())
	}
	return &HistoryRepository{
		conn: conn,
	}
}

func scanHistory(row pgx.Row) (*entity.ViewingHistory, error) {
	var h entity.ViewingHistory
	err := row.Scan(&h.ID, &h.ProfileID, &h.ContentID, &h.CurrentTime, &h.Duration,
		&h.Completed, &h.LastWatched, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Upsert relies on UNIQUE (profile_id, content_id): concurrent saves of the
// same pair resolve to the last one reaching the database.
func (hr *HistoryRepository) Upsert(ctx context.Context, record *entity.ViewingHistory) (*entity.ViewingHistory, error) {
	h, err := scanHistory(hr.conn.QueryRow(ctx, `INSERT INTO viewing_history (profile_id, content_id, current_time_sec, duration_sec, completed, last_watched)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (profile_id, content_id) DO UPDATE SET
			current_time_sec = EXCLUDED.current_time_sec,
			duration_sec = EXCLUDED.duration_sec,
			completed = EXCLUDED.completed,
			last_watched = EXCLUDED.last_watched,
			updated_at = NOW()
		RETURNING `+historyColumns+`;`,
		record.ProfileID,
		record.ContentID,
		record.CurrentTime,
		record.Duration,
		record.Completed,
		record.LastWatched,
	))
	if err != nil {
		return nil, dbError("upserting viewing history", err)
	}
	return h, nil
}

func (hr *HistoryRepository) Get(ctx context.Context, profileID uuid.UUID, contentID int) (*entity.ViewingHistory, error) {
	h, err := scanHistory(hr.conn.QueryRow(ctx, `SELECT `+historyColumns+` FROM viewing_history WHERE profile_id = $1 AND content_id = $2;`,
		profileID, contentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHistoryNotFound
		}
		return nil, dbError("getting viewing history", err)
	}
	return h, nil
}

func (hr *HistoryRepository) ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*entity.ViewingHistory, error) {
	return hr.list(ctx, "listing viewing history", `SELECT `+historyColumns+` FROM viewing_history
		WHERE profile_id = $1 ORDER BY last_watched DESC LIMIT $2;`, profileID, limit)
}

func (hr *HistoryRepository) ListInProgress(ctx context.Context, profileID uuid.UUID, limit int) ([]*entity.ViewingHistory, error) {
	return hr.list(ctx, "listing in-progress history", `SELECT `+historyColumns+` FROM viewing_history
		WHERE profile_id = $1 AND completed = FALSE AND current_time_sec > 0 ORDER BY last_watched DESC LIMIT $2;`, profileID, limit)
}

func (hr *HistoryRepository) ListByProfiles(ctx context.Context, profileIDs []uuid.UUID) ([]*entity.ViewingHistory, error) {
	if len(profileIDs) == 0 {
		return []*entity.ViewingHistory{}, nil
	}
	return hr.list(ctx, "listing history of profiles", `SELECT `+historyColumns+` FROM viewing_history
		WHERE profile_id = ANY($1) ORDER BY last_watched DESC, id;`, profileIDs)
}

func (hr *HistoryRepository) list(ctx context.Context, op, query string, args ...any) ([]*entity.ViewingHistory, error) {
	rows, err := hr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError(op, err)
	}
	defer rows.Close()
	result := make([]*entity.ViewingHistory, 0)
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, errors.New("history row parsing error: " + err.Error())
		}
		result = append(result, h)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError(op, err)
	}
	return result, nil
}

func (hr *HistoryRepository) ContentIDsByProfile(ctx context.Context, profileID uuid.UUID) ([]int, error) {
	rows, err := hr.conn.Query(ctx, `SELECT content_id FROM viewing_history WHERE profile_id = $1;`, profileID)
	if err != nil {
		return nil, dbError("listing watched content ids", err)
	}
	defer rows.Close()
	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("content id parsing error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("listing watched content ids", err)
	}
	return ids, nil
}

func (hr *HistoryRepository) Delete(ctx context.Context, profileID uuid.UUID, contentID int) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM viewing_history WHERE profile_id = $1 AND content_id = $2;`, profileID, contentID)
	if err != nil {
		return dbError("deleting viewing history", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHistoryNotFound
	}
	return nil
}
