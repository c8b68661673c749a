package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/internal/repository/mocks"
	"github.com/limbo/flicks/internal/service"
	"github.com/limbo/flicks/pkg/entity"
)

func testCatalog() []*entity.Content {
	return []*entity.Content{
		{ID: 1, Name: "Mad Max", Year: 2015, Genres: []string{"Action"}, Type: entity.ContentTypeMovie, Rating: "8.1"},
		{ID: 2, Name: "Indiana Jones", Year: 1981, Genres: []string{"Action-Adventure"}, Type: entity.ContentTypeMovie, Rating: "8.4"},
		{ID: 3, Name: "Dark", Year: 2017, Genres: []string{"Mystery", "Sci-Fi"}, Type: entity.ContentTypeSeries, Rating: "8.7"},
		{ID: 4, Name: "Bullet Train", Year: 2022, Genres: []string{"Comedy", "Action"}, Type: entity.ContentTypeMovie, Rating: "7.3"},
		{ID: 5, Name: "Arcane", Year: 2021, Genres: []string{"Animation", "action"}, Type: entity.ContentTypeSeries, Rating: "9.0"},
	}
}

func newCatalogService(t *testing.T) (*service.CatalogService, historyMocks) {
	ctrl := gomock.NewController(t)
	m := historyMocks{
		profiles: mocks.NewMockProfilesRepositoryI(ctrl),
		content:  mocks.NewMockContentRepositoryI(ctrl),
		history:  mocks.NewMockHistoryRepositoryI(ctrl),
	}
	return service.NewCatalogService(m.content, m.profiles, m.history, 2), m
}

func ids(content []*entity.Content) []int {
	result := make([]int, 0, len(content))
	for _, c := range content {
		result = append(result, c.ID)
	}
	return result
}

func TestFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("genre matches whole tokens only", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
		page, err := cs.Filter(ctx, owner, service.FilterOpts{Genre: "Action", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, []int{5, 4, 1}, ids(page.Content))
		assert.NotContains(t, ids(page.Content), 2)
	})
	t.Run("type and sort", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
		page, err := cs.Filter(ctx, owner, service.FilterOpts{Type: "series", Sort: "rating", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, []int{5, 3}, ids(page.Content))
	})
	t.Run("sort orders", func(t *testing.T) {
		orders := map[string][]int{
			"name-asc":  {5, 4, 3, 2, 1},
			"name-desc": {1, 2, 3, 4, 5},
			"year-asc":  {2, 1, 3, 5, 4},
			"year-desc": {4, 5, 3, 1, 2},
			"bogus":     {5, 4, 3, 2, 1},
		}
		for order, want := range orders {
			cs, m := newCatalogService(t)
			m.content.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
			page, err := cs.Filter(ctx, owner, service.FilterOpts{Sort: order, Limit: 10})
			require.NoError(t, err)
			assert.Equal(t, want, ids(page.Content), order)
		}
	})
	t.Run("pagination uses configured page size", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
		page, err := cs.Filter(ctx, owner, service.FilterOpts{Page: 3, Genre: "all", Type: "all"})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, ids(page.Content))
		assert.Equal(t, entity.Pagination{Page: 3, Limit: 2, TotalCount: 5, TotalPages: 3, HasMore: false}, page.Pagination)
	})
	t.Run("page past the end is empty", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
		page, err := cs.Filter(ctx, owner, service.FilterOpts{Page: 9})
		require.NoError(t, err)
		assert.Empty(t, page.Content)
		assert.False(t, page.Pagination.HasMore)
	})
	t.Run("watched and unwatched", func(t *testing.T) {
		for watched, want := range map[string][]int{
			service.WatchedOnly:     {3, 1},
			service.WatchedExcluded: {5, 4, 2},
		} {
			cs, m := newCatalogService(t)
			m.content.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
			m.profiles.EXPECT().GetByID(gomock.Any(), profileID).Return(profile, nil)
			m.history.EXPECT().ContentIDsByProfile(gomock.Any(), profileID).Return([]int{1, 3}, nil)
			page, err := cs.Filter(ctx, owner, service.FilterOpts{Watched: watched, ProfileID: &profileID, Limit: 10})
			require.NoError(t, err)
			assert.Equal(t, want, ids(page.Content), watched)
		}
	})
	t.Run("watched filter without profile is ignored", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
		page, err := cs.Filter(ctx, owner, service.FilterOpts{Watched: service.WatchedOnly, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, page.Content, 5)
	})
	t.Run("foreign profile", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), profileID).Return(profile, nil)
		_, err := cs.Filter(ctx, stranger, service.FilterOpts{Watched: service.WatchedOnly, ProfileID: &profileID})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("invalid type", func(t *testing.T) {
		cs, _ := newCatalogService(t)
		_, err := cs.Filter(ctx, owner, service.FilterOpts{Type: "podcast"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestGenresAndSimilar(t *testing.T) {
	ctx := context.Background()

	t.Run("genres", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
		genres, err := cs.Genres(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Action", "Action-Adventure", "Animation", "Comedy", "Mystery", "Sci-Fi"}, genres)
	})
	t.Run("genres keep first seen spelling", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().ListAll(gomock.Any()).Return([]*entity.Content{
			{ID: 1, Genres: []string{"drama"}},
			{ID: 2, Genres: []string{"Drama", "Crime"}},
		}, nil)
		genres, err := cs.Genres(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Crime", "drama"}, genres)
	})
	t.Run("similar shares primary genre token", func(t *testing.T) {
		cs, m := newCatalogService(t)
		catalog := testCatalog()
		m.content.EXPECT().GetByID(gomock.Any(), 1).Return(catalog[0], nil)
		m.content.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)
		similar, err := cs.Similar(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{4, 5}, ids(similar))
	})
	t.Run("similar is capped", func(t *testing.T) {
		cs, m := newCatalogService(t)
		catalog := make([]*entity.Content, 0, 10)
		for i := 1; i <= 10; i++ {
			catalog = append(catalog, &entity.Content{ID: i, Genres: []string{"Drama"}})
		}
		m.content.EXPECT().GetByID(gomock.Any(), 1).Return(catalog[0], nil)
		m.content.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)
		similar, err := cs.Similar(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, similar, service.SimilarLimit)
	})
	t.Run("similar of missing content", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().GetByID(gomock.Any(), 77).Return(nil, errorvalues.ErrContentNotFound)
		_, err := cs.Similar(ctx, 77)
		assert.ErrorIs(t, err, errorvalues.ErrContentNotFound)
	})
}

func TestPopularAndNewest(t *testing.T) {
	ctx := context.Background()

	t.Run("popular default limit", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().MostLiked(gomock.Any(), service.PopularLimit).
			Return([]*entity.PopularContent{{Content: entity.Content{ID: 3}, TotalLikes: 4}}, nil)
		popular, err := cs.Popular(ctx, 0)
		require.NoError(t, err)
		require.Len(t, popular, 1)
		assert.Equal(t, 4, popular[0].TotalLikes)
	})
	t.Run("newest per genre", func(t *testing.T) {
		cs, m := newCatalogService(t)
		catalog := testCatalog()
		catalog = append(catalog, &entity.Content{ID: 6, Name: "John Wick 4", Year: 2022, Genres: []string{"Action"}, CreatedAt: time.Now()})
		m.content.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)
		newest, err := cs.NewestByGenre(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{6, 4}, ids(newest["Action"]))
		assert.Equal(t, []int{3}, ids(newest["Sci-Fi"]))
	})
}

func TestAdminContent(t *testing.T) {
	ctx := context.Background()
	req := func() *service.ContentRequest {
		return &service.ContentRequest{
			ID:          10,
			Name:        "Heat",
			Year:        1995,
			Genres:      []string{"Action", "Crime, Drama"},
			Type:        entity.ContentTypeMovie,
			Duration:    ptr("170 min"),
			Rating:      "8.3",
			Description: "heist",
			Image:       "/img/10.jpg",
		}
	}

	t.Run("non admin", func(t *testing.T) {
		cs, _ := newCatalogService(t)
		_, err := cs.CreateContent(ctx, owner, req())
		assert.ErrorIs(t, err, errorvalues.ErrAdminOnly)
		assert.ErrorIs(t, cs.DeleteContent(ctx, owner, 10), errorvalues.ErrAdminOnly)
	})
	t.Run("create splits genres", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *entity.Content) error {
			assert.Equal(t, []string{"Action", "Crime", "Drama"}, c.Genres)
			return nil
		})
		m.content.EXPECT().GetByID(gomock.Any(), 10).Return(&entity.Content{ID: 10}, nil)
		created, err := cs.CreateContent(ctx, admin, req())
		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)
	})
	t.Run("movie needs duration", func(t *testing.T) {
		cs, _ := newCatalogService(t)
		r := req()
		r.Duration = nil
		_, err := cs.CreateContent(ctx, admin, r)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("series needs episodes and seasons", func(t *testing.T) {
		cs, _ := newCatalogService(t)
		r := req()
		r.Type = entity.ContentTypeSeries
		r.Seasons = ptr(2)
		_, err := cs.CreateContent(ctx, admin, r)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("duplicate id", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrContentExists)
		_, err := cs.CreateContent(ctx, admin, req())
		assert.ErrorIs(t, err, errorvalues.ErrContentExists)
	})
	t.Run("update uses path id", func(t *testing.T) {
		cs, m := newCatalogService(t)
		r := req()
		r.ID = 0
		m.content.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *entity.Content) error {
			assert.Equal(t, 11, c.ID)
			return nil
		})
		m.content.EXPECT().GetByID(gomock.Any(), 11).Return(&entity.Content{ID: 11}, nil)
		_, err := cs.UpdateContent(ctx, admin, 11, r)
		assert.NoError(t, err)
	})
	t.Run("delete missing", func(t *testing.T) {
		cs, m := newCatalogService(t)
		m.content.EXPECT().Delete(gomock.Any(), 12).Return(errorvalues.ErrContentNotFound)
		assert.ErrorIs(t, cs.DeleteContent(ctx, admin, 12), errorvalues.ErrContentNotFound)
	})
}
