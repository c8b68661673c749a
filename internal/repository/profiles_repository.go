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

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for profilesRepo: " + err.Error())
	}
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) Create(ctx context.Context, profile *entity.Profile) (uuid.UUID, error) {
	var id uuid.UUID
	row := pr.conn.QueryRow(ctx, `INSERT INTO profiles (user_id, name, avatar) VALUES ($1, $2, $3) RETURNING id;`,
		profile.UserID,
		profile.Name,
		profile.Avatar,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return uuid.UUID{}, errorvalues.ErrProfileExists
		case pgForeignKeyViolation:
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, dbError("creating profile", err)
	}
	return id, nil
}

func (pr *ProfilesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var p entity.Profile
	row := pr.conn.QueryRow(ctx, `SELECT id, user_id, name, avatar, likes, created_at, updated_at FROM profiles WHERE id = $1;`, id)
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Avatar, &p.Likes, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, dbError("getting profile by id", err)
	}
	return &p, nil
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Profile, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, user_id, name, avatar, likes, created_at, updated_at
		FROM profiles WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, dbError("getting profiles by uid", err)
	}
	defer rows.Close()
	profiles := make([]*entity.Profile, 0, entity.MaxProfilesPerUser)
	for rows.Next() {
		p := entity.Profile{}
		err = rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Avatar, &p.Likes, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling profile error: " + err.Error())
		}
		profiles = append(profiles, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating profiles", err)
	}
	return profiles, nil
}

func (pr *ProfilesRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := pr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM profiles WHERE user_id = $1;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, dbError("counting profiles", err)
	}
	return count, nil
}

func (pr *ProfilesRepository) Update(ctx context.Context, profile *entity.Profile) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE profiles SET name = $1, avatar = $2, updated_at = NOW() WHERE id = $3;`,
		profile.Name, profile.Avatar, profile.ID,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return errorvalues.ErrProfileExists
		}
		return dbError("updating profile", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}

func (pr *ProfilesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM profiles WHERE id = $1;`, id)
	if err != nil {
		return dbError("deleting profile", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}

func (pr *ProfilesRepository) AddLike(ctx context.Context, id uuid.UUID, contentID int) ([]int, error) {
	return pr.updateLikes(ctx, `UPDATE profiles
		SET likes = CASE WHEN $2 = ANY(likes) THEN likes ELSE array_append(likes, $2) END, updated_at = NOW()
		WHERE id = $1 RETURNING likes;`, id, contentID)
}

func (pr *ProfilesRepository) RemoveLike(ctx context.Context, id uuid.UUID, contentID int) ([]int, error) {
	return pr.updateLikes(ctx, `UPDATE profiles SET likes = array_remove(likes, $2), updated_at = NOW() WHERE id = $1 RETURNING likes;`, id, contentID)
}

func (pr *ProfilesRepository) updateLikes(ctx context.Context, query string, id uuid.UUID, contentID int) ([]int, error) {
	likes := make([]int, 0)
	row := pr.conn.QueryRow(ctx, query, id, contentID)
	if err := row.Scan(&likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, dbError("updating likes", err)
	}
	return likes, nil
}

func (pr *ProfilesRepository) LikeCounts(ctx context.Context) (map[int]int, error) {
	rows, err := pr.conn.Query(ctx, `SELECT l.content_id, COUNT(*) FROM profiles p, unnest(p.likes) AS l(content_id) GROUP BY l.content_id;`)
	if err != nil {
		return nil, dbError("counting likes", err)
	}
	defer rows.Close()
	counts := make(map[int]int)
	for rows.Next() {
		var contentID, count int
		if err = rows.Scan(&contentID, &count); err != nil {
			return nil, errors.New("like count row parsing error: " + err.Error())
		}
		counts[contentID] = count
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating like counts", err)
	}
	return counts, nil
}
