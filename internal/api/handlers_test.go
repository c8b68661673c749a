package api_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/flicks/internal/api"
	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/internal/service"
	"github.com/limbo/flicks/internal/service/mocks"
	"github.com/limbo/flicks/pkg/entity"
	jwtservice "github.com/limbo/flicks/pkg/jwt_service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	user      = &entity.User{ID: uuid.New(), Email: "neo@matrix.io", Username: "neo"}
	adminUser = &entity.User{ID: uuid.New(), Email: "morpheus@matrix.io", Username: "morpheus", IsAdmin: true}
	identity  = entity.Identity{UserID: user.ID, Username: user.Username}
	profileID = uuid.New()
)

type serviceMocks struct {
	users      *mocks.MockUserServiceI
	profiles   *mocks.MockProfilesServiceI
	history    *mocks.MockHistoryServiceI
	statistics *mocks.MockStatisticsServiceI
	catalog    *mocks.MockCatalogServiceI
}

type testEnv struct {
	server *api.Server
	mocks  serviceMocks
	jwt    *jwtservice.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		users:      mocks.NewMockUserServiceI(ctrl),
		profiles:   mocks.NewMockProfilesServiceI(ctrl),
		history:    mocks.NewMockHistoryServiceI(ctrl),
		statistics: mocks.NewMockStatisticsServiceI(ctrl),
		catalog:    mocks.NewMockCatalogServiceI(ctrl),
	}
	jwt := jwtservice.New("test_secret", time.Hour)
	server := api.New(&api.ServicesList{
		UserService:       m.users,
		ProfilesService:   m.profiles,
		HistoryService:    m.history,
		StatisticsService: m.statistics,
		CatalogService:    m.catalog,
		JwtService:        jwt,
	}, api.Options{})
	return &testEnv{server: server, mocks: m, jwt: jwt}
}

// do sends the request through the full router as u. A nil user sends an
// anonymous request.
func (e *testEnv) do(t *testing.T, u *entity.User, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := sonic.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if u != nil {
		token, err := e.jwt.GenerateToken(u)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: api.SessionCookieName, Value: token})
		e.mocks.users.EXPECT().GetByID(gomock.Any(), u.ID).Return(u, nil)
	}
	rr := httptest.NewRecorder()
	e.server.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Details []string `json:"details"`
	Data    any      `json:"data"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestHealthAndMetrics(t *testing.T) {
	e := newTestEnv(t)
	rr := e.do(t, nil, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode(t, rr).Success)
	assert.NotEmpty(t, rr.Header().Get(api.RequestIDHeader))

	rr = e.do(t, nil, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_requests_total")
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, nil, http.MethodGet, "/api/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		env := decode(t, rr)
		assert.False(t, env.Success)
		assert.Equal(t, "authentication required", env.Error)
	})
	t.Run("bearer token", func(t *testing.T) {
		e := newTestEnv(t)
		token, err := e.jwt.GenerateToken(user)
		require.NoError(t, err)
		e.mocks.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil).Times(2)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		e.server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("forged token", func(t *testing.T) {
		e := newTestEnv(t)
		token, err := jwtservice.New("other_secret", time.Hour).GenerateToken(user)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: api.SessionCookieName, Value: token})
		rr := httptest.NewRecorder()
		e.server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("deleted user", func(t *testing.T) {
		e := newTestEnv(t)
		token, err := e.jwt.GenerateToken(user)
		require.NoError(t, err)
		e.mocks.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(nil, errorvalues.ErrUserNotFound)
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: api.SessionCookieName, Value: token})
		rr := httptest.NewRecorder()
		e.server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRegisterAndLogin(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		e := newTestEnv(t)
		req := service.RegisterRequest{Email: "neo@matrix.io", Username: "neo", Password: "redpill"}
		e.mocks.users.EXPECT().Register(gomock.Any(), &req).Return(user, nil)
		rr := e.do(t, nil, http.MethodPost, "/api/auth/register", req)
		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decode(t, rr)
		assert.True(t, env.Success)
		assert.Equal(t, "User registered successfully", env.Message)
		require.Len(t, rr.Result().Cookies(), 1)
		assert.Equal(t, api.SessionCookieName, rr.Result().Cookies()[0].Name)
		assert.True(t, rr.Result().Cookies()[0].HttpOnly)
	})
	t.Run("duplicate", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
		rr := e.do(t, nil, http.MethodPost, "/api/auth/register", service.RegisterRequest{Email: "neo@matrix.io"})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("validation details", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.users.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, errorvalues.NewValidationError("Email: failed on 'email'"))
		rr := e.do(t, nil, http.MethodPost, "/api/auth/register", service.RegisterRequest{Email: "neo"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, []string{"Email: failed on 'email'"}, decode(t, rr).Details)
	})
	t.Run("invalid body", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, nil, http.MethodPost, "/api/auth/register", "{")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("login", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.users.EXPECT().Login(gomock.Any(), &service.LoginRequest{Email: "neo@matrix.io", Password: "redpill"}).Return(user, nil)
		rr := e.do(t, nil, http.MethodPost, "/api/auth/login", service.LoginRequest{Email: "neo@matrix.io", Password: "redpill"})
		assert.Equal(t, http.StatusOK, rr.Code)
		require.Len(t, rr.Result().Cookies(), 1)

		token := rr.Result().Cookies()[0].Value
		claims, err := e.jwt.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.users.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrWrongCredentials)
		rr := e.do(t, nil, http.MethodPost, "/api/auth/login", service.LoginRequest{Email: "neo@matrix.io", Password: "x"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "wrong email or password", decode(t, rr).Error)
	})
	t.Run("logout clears cookie", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, user, http.MethodPost, "/api/auth/logout", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		require.Len(t, rr.Result().Cookies(), 1)
		assert.Negative(t, rr.Result().Cookies()[0].MaxAge)
	})
}

func TestProfilesHandlers(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.profiles.EXPECT().ListProfiles(gomock.Any(), identity, user.ID).
			Return([]*entity.Profile{{ID: profileID, UserID: user.ID, Name: "main"}}, nil)
		rr := e.do(t, user, http.MethodGet, "/api/users/"+user.ID.String()+"/profiles", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		data, ok := decode(t, rr).Data.([]any)
		require.True(t, ok)
		assert.Len(t, data, 1)
	})
	t.Run("foreign user", func(t *testing.T) {
		e := newTestEnv(t)
		other := uuid.New()
		e.mocks.profiles.EXPECT().ListProfiles(gomock.Any(), identity, other).Return(nil, errorvalues.ErrWrongOwner)
		rr := e.do(t, user, http.MethodGet, "/api/users/"+other.String()+"/profiles", nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
	t.Run("invalid user id", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, user, http.MethodGet, "/api/users/not-a-uuid/profiles", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("create over limit", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.profiles.EXPECT().CreateProfile(gomock.Any(), identity, user.ID, &service.CreateProfileRequest{Name: "sixth"}).
			Return(nil, errorvalues.ErrProfileLimit)
		rr := e.do(t, user, http.MethodPost, "/api/users/"+user.ID.String()+"/profiles", service.CreateProfileRequest{Name: "sixth"})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
	t.Run("update", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.profiles.EXPECT().UpdateProfile(gomock.Any(), identity, profileID, gomock.Any()).
			Return(&entity.Profile{ID: profileID, Name: "renamed"}, nil)
		rr := e.do(t, user, http.MethodPut, "/api/profiles/"+profileID.String(), `{"name":"renamed"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("delete missing", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.profiles.EXPECT().DeleteProfile(gomock.Any(), identity, profileID).Return(errorvalues.ErrProfileNotFound)
		rr := e.do(t, user, http.MethodDelete, "/api/profiles/"+profileID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestLikeHandlers(t *testing.T) {
	base := "/api/profiles/" + profileID.String()

	t.Run("like", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.profiles.EXPECT().Like(gomock.Any(), identity, profileID, 42).Return([]int{7, 42}, nil)
		rr := e.do(t, user, http.MethodPost, base+"/like", `{"contentId":42}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"message":"Content liked successfully","data":{"likes":[7,42]}}`, rr.Body.String())
	})
	t.Run("unlike with delete", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.profiles.EXPECT().Unlike(gomock.Any(), identity, profileID, 7).Return([]int{}, nil)
		rr := e.do(t, user, http.MethodDelete, base+"/unlike", `{"contentId":7}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"message":"Content unliked successfully","data":{"likes":[]}}`, rr.Body.String())
	})
	t.Run("non numeric content id", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, user, http.MethodPost, base+"/like", `{"contentId":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("get likes", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.profiles.EXPECT().GetLikes(gomock.Any(), identity, profileID).Return([]int{3}, nil)
		rr := e.do(t, user, http.MethodGet, base+"/likes", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("global counts", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.profiles.EXPECT().GlobalLikeCounts(gomock.Any()).Return(map[int]int{3: 2}, nil)
		rr := e.do(t, user, http.MethodGet, "/api/content/likes", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"data":{"3":2}}`, rr.Body.String())
	})
}

func TestHistoryHandlers(t *testing.T) {
	base := "/api/profiles/" + profileID.String() + "/viewing-history"

	t.Run("save", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.history.EXPECT().SaveProgress(gomock.Any(), identity, profileID, &service.SaveProgressRequest{ContentID: 5, CurrentTime: 590, Duration: 600}).
			Return(&entity.ViewingHistory{ProfileID: profileID, ContentID: 5, CurrentTime: 590, Duration: 600, Completed: true}, nil)
		rr := e.do(t, user, http.MethodPost, base, `{"contentId":5,"currentTime":590,"duration":600}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		data, ok := decode(t, rr).Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, data["completed"])
	})
	t.Run("save to foreign profile", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.history.EXPECT().SaveProgress(gomock.Any(), identity, profileID, gomock.Any()).Return(nil, errorvalues.ErrWrongOwner)
		rr := e.do(t, user, http.MethodPost, base, `{"contentId":5,"currentTime":1,"duration":600}`)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
	t.Run("list with limit", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.history.EXPECT().GetProfileHistory(gomock.Any(), identity, profileID, 5).Return([]*entity.HistoryWithContent{}, nil)
		rr := e.do(t, user, http.MethodGet, base+"?limit=5", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("bad limit", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, user, http.MethodGet, base+"?limit=ten", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("continue watching", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.history.EXPECT().ContinueWatching(gomock.Any(), identity, profileID).Return([]*entity.HistoryWithContent{}, nil)
		rr := e.do(t, user, http.MethodGet, base+"/continue", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("get progress never saved", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.history.EXPECT().GetProgress(gomock.Any(), identity, profileID, 5).
			Return(&entity.ViewingHistory{ProfileID: profileID, ContentID: 5}, nil)
		rr := e.do(t, user, http.MethodGet, base+"/5", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"data":{"currentTime":0,"completed":false}}`, rr.Body.String())
	})
	t.Run("get stored progress", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.history.EXPECT().GetProgress(gomock.Any(), identity, profileID, 5).
			Return(&entity.ViewingHistory{ID: 4, ProfileID: profileID, ContentID: 5, CurrentTime: 120, Duration: 600}, nil)
		rr := e.do(t, user, http.MethodGet, base+"/5", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		data, ok := decode(t, rr).Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(4), data["id"])
		assert.Equal(t, float64(120), data["currentTime"])
	})
	t.Run("non numeric content id in path", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, user, http.MethodGet, base+"/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("delete", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.history.EXPECT().DeleteProgress(gomock.Any(), identity, profileID, 5).Return(errorvalues.ErrHistoryNotFound)
		rr := e.do(t, user, http.MethodDelete, base+"/5", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("store unavailable", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.history.EXPECT().ContinueWatching(gomock.Any(), identity, profileID).Return(nil, errorvalues.ErrStoreUnavailable)
		rr := e.do(t, user, http.MethodGet, base+"/continue", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestStatisticsHandler(t *testing.T) {
	t.Run("own statistics", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.statistics.EXPECT().ComputeStatistics(gomock.Any(), identity, user.ID).
			Return(&entity.Statistics{DailyViews: []entity.ProfileDailyViews{}, GenrePopularity: []entity.GenreCount{}}, nil)
		rr := e.do(t, user, http.MethodGet, "/api/users/"+user.ID.String()+"/statistics", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"data":{"dailyViews":[],"genrePopularity":[]}}`, rr.Body.String())
	})
	t.Run("other user", func(t *testing.T) {
		e := newTestEnv(t)
		other := uuid.New()
		e.mocks.statistics.EXPECT().ComputeStatistics(gomock.Any(), identity, other).Return(nil, errorvalues.ErrWrongOwner)
		rr := e.do(t, user, http.MethodGet, "/api/users/"+other.String()+"/statistics", nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestContentHandlers(t *testing.T) {
	t.Run("filter query", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.catalog.EXPECT().Filter(gomock.Any(), identity, service.FilterOpts{
			Genre:     "Action",
			Type:      "movie",
			Page:      2,
			Limit:     5,
			Sort:      "year-desc",
			Watched:   "unwatched",
			ProfileID: &profileID,
		}).Return(&entity.ContentPage{Content: []*entity.Content{}}, nil)
		rr := e.do(t, user, http.MethodGet, "/api/content/filter?genre=Action&type=movie&page=2&limit=5&sort=year-desc&watched=unwatched&profileId="+profileID.String(), nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("filter bad page", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, user, http.MethodGet, "/api/content/filter?page=x", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("filter bad profile id", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, user, http.MethodGet, "/api/content/filter?watched=watched&profileId=123", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("get missing", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.catalog.EXPECT().Get(gomock.Any(), 404).Return(nil, errorvalues.ErrContentNotFound)
		rr := e.do(t, user, http.MethodGet, "/api/content/404", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("static routes win over id", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.catalog.EXPECT().Genres(gomock.Any()).Return([]string{"Action"}, nil)
		rr := e.do(t, user, http.MethodGet, "/api/content/genres", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("similar", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.catalog.EXPECT().Similar(gomock.Any(), 3).Return([]*entity.Content{}, nil)
		rr := e.do(t, user, http.MethodGet, "/api/content/3/similar", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("popular and newest", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.catalog.EXPECT().Popular(gomock.Any(), 0).Return([]*entity.PopularContent{}, nil)
		e.mocks.catalog.EXPECT().NewestByGenre(gomock.Any(), 3).Return(map[string][]*entity.Content{}, nil)
		assert.Equal(t, http.StatusOK, e.do(t, user, http.MethodGet, "/api/content/popular", nil).Code)
		assert.Equal(t, http.StatusOK, e.do(t, user, http.MethodGet, "/api/content/newest?limit=3", nil).Code)
	})
	t.Run("all", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.catalog.EXPECT().All(gomock.Any()).Return([]*entity.Content{{ID: 1}}, nil)
		rr := e.do(t, user, http.MethodGet, "/api/content", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAdminRoutes(t *testing.T) {
	adminIdentity := entity.Identity{UserID: adminUser.ID, Username: adminUser.Username, IsAdmin: true}
	body := `{"id":10,"name":"Heat","year":1995,"genres":["Crime"],"type":"movie","duration":"170 min","rating":"8.3","description":"heist","image":"/img/10.jpg"}`

	t.Run("non admin rejected", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, user, http.MethodPost, "/api/admin/content", body)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		rr = e.do(t, user, http.MethodDelete, "/api/admin/content/10", nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
	t.Run("create", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.catalog.EXPECT().CreateContent(gomock.Any(), adminIdentity, gomock.Any()).Return(&entity.Content{ID: 10}, nil)
		rr := e.do(t, adminUser, http.MethodPost, "/api/admin/content", body)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
	t.Run("update", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.catalog.EXPECT().UpdateContent(gomock.Any(), adminIdentity, 10, gomock.Any()).Return(&entity.Content{ID: 10}, nil)
		rr := e.do(t, adminUser, http.MethodPut, "/api/admin/content/10", body)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("delete bad id", func(t *testing.T) {
		e := newTestEnv(t)
		rr := e.do(t, adminUser, http.MethodDelete, "/api/admin/content/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("delete", func(t *testing.T) {
		e := newTestEnv(t)
		e.mocks.catalog.EXPECT().DeleteContent(gomock.Any(), adminIdentity, 10).Return(nil)
		rr := e.do(t, adminUser, http.MethodDelete, "/api/admin/content/10", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
