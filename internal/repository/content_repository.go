package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/pkg/entity"
)

const contentColumns = `id, name, year, genre, type, episodes, seasons, duration, rating, description, image, video_url, created_at`

type ContentRepository struct {
	conn PgConnection
}

func NewContentRepoWithConn(conn PgConnection) *ContentRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for contentRepo: " + err.Error())
	}
	return &ContentRepository{
		conn: conn,
	}
}

// scanContent reads contentColumns, splitting the stored genre string.
func scanContent(row pgx.Row) (*entity.Content, error) {
	var c entity.Content
	var genre string
	err := row.Scan(&c.ID, &c.Name, &c.Year, &genre, &c.Type, &c.Episodes, &c.Seasons,
		&c.Duration, &c.Rating, &c.Description, &c.Image, &c.VideoURL, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.Genres = entity.ParseGenres(genre)
	return &c, nil
}

func (cr *ContentRepository) Create(ctx context.Context, content *entity.Content) error {
	_, err := cr.conn.Exec(ctx, `INSERT INTO content (id, name, year, genre, type, episodes, seasons, duration, rating, description, image, video_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		content.ID, content.Name, content.Year, entity.JoinGenres(content.Genres), content.Type,
		content.Episodes, content.Seasons, content.Duration, content.Rating,
		content.Description, content.Image, content.VideoURL,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return errorvalues.ErrContentExists
		}
		return dbError("creating content", err)
	}
	return nil
}

func (cr *ContentRepository) GetByID(ctx context.Context, id int) (*entity.Content, error) {
	c, err := scanContent(cr.conn.QueryRow(ctx, `SELECT `+contentColumns+` FROM content WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrContentNotFound
		}
		return nil, dbError("getting content by id", err)
	}
	return c, nil
}

func (cr *ContentRepository) GetByIDs(ctx context.Context, ids []int) ([]*entity.Content, error) {
	if len(ids) == 0 {
		return []*entity.Content{}, nil
	}
	return cr.list(ctx, "getting content by ids", `SELECT `+contentColumns+` FROM content WHERE id = ANY($1) ORDER BY id;`, ids)
}

func (cr *ContentRepository) ListAll(ctx context.Context) ([]*entity.Content, error) {
	return cr.list(ctx, "listing content", `SELECT `+contentColumns+` FROM content ORDER BY id;`)
}

func (cr *ContentRepository) list(ctx context.Context, op, query string, args ...any) ([]*entity.Content, error) {
	rows, err := cr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError(op, err)
	}
	defer rows.Close()
	result := make([]*entity.Content, 0)
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, errors.New("content row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError(op, err)
	}
	return result, nil
}

func (cr *ContentRepository) Update(ctx context.Context, content *entity.Content) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE content SET name = $1, year = $2, genre = $3, type = $4, episodes = $5, seasons = $6,
		duration = $7, rating = $8, description = $9, image = $10, video_url = $11 WHERE id = $12;`,
		content.Name, content.Year, entity.JoinGenres(content.Genres), content.Type,
		content.Episodes, content.Seasons, content.Duration, content.Rating,
		content.Description, content.Image, content.VideoURL, content.ID,
	)
	if err != nil {
		return dbError("updating content", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrContentNotFound
	}
	return nil
}

func (cr *ContentRepository) Delete(ctx context.Context, id int) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM content WHERE id = $1;`, id)
	if err != nil {
		return dbError("deleting content", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrContentNotFound
	}
	return nil
}

func (cr *ContentRepository) MostLiked(ctx context.Context, limit int) ([]*entity.PopularContent, error) {
	rows, err := cr.conn.Query(ctx, `SELECT c.id, c.name, c.year, c.genre, c.type, c.episodes, c.seasons, c.duration, c.rating,
		c.description, c.image, c.video_url, c.created_at, l.total_likes
		FROM (SELECT lk AS content_id, COUNT(*) AS total_likes FROM profiles, unnest(likes) AS lk GROUP BY lk) l
		JOIN content c ON c.id = l.content_id
		ORDER BY l.total_likes DESC, c.id
		LIMIT $1;`, limit)
	if err != nil {
		return nil, dbError("getting most liked content", err)
	}
	defer rows.Close()
	result := make([]*entity.PopularContent, 0, limit)
	for rows.Next() {
		var pc entity.PopularContent
		var genre string
		err = rows.Scan(&pc.ID, &pc.Name, &pc.Year, &genre, &pc.Type, &pc.Episodes, &pc.Seasons,
			&pc.Duration, &pc.Rating, &pc.Description, &pc.Image, &pc.VideoURL, &pc.CreatedAt, &pc.TotalLikes)
		if err != nil {
			return nil, errors.New("popular content row parsing error: " + err.Error())
		}
		pc.Genres = entity.ParseGenres(genre)
		result = append(result, &pc)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError("iterating popular content", err)
	}
	return result, nil
}
