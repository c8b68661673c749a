package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/internal/repository"
	"github.com/limbo/flicks/pkg/entity"
)

var contentCols = []string{"id", "name", "year", "genre", "type", "episodes", "seasons", "duration", "rating", "description", "image", "video_url", "created_at"}

func ptr[T any](v T) *T {
	return &v
}

func TestGetContentByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewContentRepoWithConn(mock)
	created := time.Now()
	query := regexp.QuoteMeta(`FROM content WHERE id = $1;`)
	ctx := context.Background()

	t.Run("genres are split", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(42).
			WillReturnRows(pgxmock.NewRows(contentCols).AddRow(
				42, "Knives Out", 2019, "Comedy, Crime,Drama ", "movie",
				(*int)(nil), (*int)(nil), ptr("130 min"), "7.9", "whodunit", "/img/42.jpg", (*string)(nil), created,
			))
		c, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Comedy", "Crime", "Drama"}, c.Genres)
		assert.Equal(t, "Comedy", c.PrimaryGenre())
		assert.Equal(t, "130 min", *c.Duration)
		assert.Nil(t, c.Episodes)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(43).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, 43)
		assert.ErrorIs(t, err, errorvalues.ErrContentNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetContentByIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewContentRepoWithConn(mock)
	ctx := context.Background()

	result, err := repo.GetByIDs(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, result)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM content WHERE id = ANY($1) ORDER BY id;`)).
		WithArgs([]int{1, 2}).
		WillReturnRows(pgxmock.NewRows(contentCols).AddRow(
			1, "Dark", 2017, "Mystery, Sci-Fi", "series",
			ptr(26), ptr(3), (*string)(nil), "8.7", "time travel", "/img/1.jpg", ptr("/video/1.mp4"), time.Now(),
		))
	result, err = repo.GetByIDs(ctx, []int{1, 2})
	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 26, *result[0].Episodes)
	assert.True(t, result[0].HasGenre("sci-fi"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewContentRepoWithConn(mock)
	content := entity.Content{
		ID:          5,
		Name:        "Heat",
		Year:        1995,
		Genres:      []string{"Action", "Crime"},
		Type:        entity.ContentTypeMovie,
		Duration:    ptr("170 min"),
		Rating:      "8.3",
		Description: "heist",
		Image:       "/img/5.jpg",
	}
	query := regexp.QuoteMeta(`INSERT INTO content`)
	args := []any{content.ID, content.Name, content.Year, "Action, Crime", content.Type,
		content.Episodes, content.Seasons, content.Duration, content.Rating,
		content.Description, content.Image, content.VideoURL}

	mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Create(context.Background(), &content))

	mock.ExpectExec(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, repo.Create(context.Background(), &content), errorvalues.ErrContentExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMostLiked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewContentRepoWithConn(mock)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY l.total_likes DESC, c.id`)).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(append(contentCols, "total_likes")).AddRow(
			3, "Up", 2009, "Animation, Family", "movie",
			(*int)(nil), (*int)(nil), ptr("96 min"), "8.3", "balloons", "/img/3.jpg", (*string)(nil), time.Now(), 4,
		))
	result, err := repo.MostLiked(context.Background(), 10)
	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 4, result[0].TotalLikes)
	assert.Equal(t, []string{"Animation", "Family"}, result[0].Genres)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteContent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewContentRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM content WHERE id = $1;`)
	mock.ExpectExec(query).WithArgs(8).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 8), errorvalues.ErrContentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
