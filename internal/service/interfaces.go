package service

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/flicks/internal/service UserServiceI,ProfilesServiceI,HistoryServiceI,StatisticsServiceI,CatalogServiceI

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/flicks/pkg/entity"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Username string `json:"username" validate:"required,alphanum_underscore,min=3,max=20"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	// Checked only when sent
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserServiceI interface {
	// Validates request, hashes password and stores new user. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data
	Login(ctx context.Context, req *LoginRequest) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type CreateProfileRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=20"`
	Avatar string `json:"avatar" validate:"omitempty,avatar"`
}

// UpdateProfileRequest changes only the fields that are set.
type UpdateProfileRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=20"`
	Avatar *string `json:"avatar" validate:"omitempty,avatar"`
}

type ProfilesServiceI interface {
	ListProfiles(ctx context.Context, caller entity.Identity, userID uuid.UUID) ([]*entity.Profile, error)
	// Creates profile for userID. Fails with ErrProfileLimit when user already has 5
	CreateProfile(ctx context.Context, caller entity.Identity, userID uuid.UUID, req *CreateProfileRequest) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, caller entity.Identity, profileID uuid.UUID, req *UpdateProfileRequest) (*entity.Profile, error)
	DeleteProfile(ctx context.Context, caller entity.Identity, profileID uuid.UUID) error
	// Adds contentID to profile's likes. Liking twice is a no-op. Returns resulting likes
	Like(ctx context.Context, caller entity.Identity, profileID uuid.UUID, contentID int) ([]int, error)
	// Removes contentID from profile's likes. Unliking absent content is a no-op
	Unlike(ctx context.Context, caller entity.Identity, profileID uuid.UUID, contentID int) ([]int, error)
	GetLikes(ctx context.Context, caller entity.Identity, profileID uuid.UUID) ([]int, error)
	// Number of profiles liking each content across all users
	GlobalLikeCounts(ctx context.Context) (map[int]int, error)
}

type SaveProgressRequest struct {
	ContentID   int `json:"contentId" validate:"required,min=1"`
	CurrentTime int `json:"currentTime" validate:"min=0"`
	Duration    int `json:"duration" validate:"min=0"`
	// Ignored, completion is derived from CurrentTime and Duration
	Completed *bool `json:"completed,omitempty"`
}

type HistoryServiceI interface {
	SaveProgress(ctx context.Context, caller entity.Identity, profileID uuid.UUID, req *SaveProgressRequest) (*entity.ViewingHistory, error)
	// Returns stored progress or zero progress when pair was never saved
	GetProgress(ctx context.Context, caller entity.Identity, profileID uuid.UUID, contentID int) (*entity.ViewingHistory, error)
	GetProfileHistory(ctx context.Context, caller entity.Identity, profileID uuid.UUID, limit int) ([]*entity.HistoryWithContent, error)
	DeleteProgress(ctx context.Context, caller entity.Identity, profileID uuid.UUID, contentID int) error
	ContinueWatching(ctx context.Context, caller entity.Identity, profileID uuid.UUID) ([]*entity.HistoryWithContent, error)
}

type StatisticsServiceI interface {
	// Daily views of the last 30 days per profile and all-time genre popularity of user's profiles
	ComputeStatistics(ctx context.Context, caller entity.Identity, userID uuid.UUID) (*entity.Statistics, error)
}

const (
	WatchedAll       = "all"
	WatchedOnly      = "watched"
	WatchedExcluded  = "unwatched"
	DefaultSortOrder = "name-asc"
)

type FilterOpts struct {
	Genre     string
	Type      string `validate:"omitempty,oneof=movie series"`
	Page      int    `validate:"min=0"`
	Limit     int    `validate:"min=0,max=100"`
	Sort      string
	Watched   string `validate:"omitempty,oneof=all watched unwatched"`
	ProfileID *uuid.UUID
}

type ContentRequest struct {
	ID          int      `json:"id" validate:"required,min=1"`
	Name        string   `json:"name" validate:"required,max=200"`
	Year        int      `json:"year" validate:"required,min=1870,max=2100"`
	Genres      []string `json:"genres" validate:"required,min=1,dive,required"`
	Type        string   `json:"type" validate:"required,oneof=movie series"`
	Episodes    *int     `json:"episodes" validate:"required_if=Type series,omitempty,min=1"`
	Seasons     *int     `json:"seasons" validate:"required_if=Type series,omitempty,min=1"`
	Duration    *string  `json:"duration" validate:"required_if=Type movie"`
	Rating      string   `json:"rating" validate:"required,numeric"`
	Description string   `json:"description" validate:"required"`
	Image       string   `json:"image" validate:"required"`
	VideoURL    *string  `json:"videoUrl"`
}

type CatalogServiceI interface {
	All(ctx context.Context) ([]*entity.Content, error)
	Get(ctx context.Context, id int) (*entity.Content, error)
	// Filters, sorts and paginates the catalog. Watched filter needs ProfileID owned by caller
	Filter(ctx context.Context, caller entity.Identity, opts FilterOpts) (*entity.ContentPage, error)
	// Sorted distinct genre tokens
	Genres(ctx context.Context) ([]string, error)
	// Up to 6 other content items sharing primary genre
	Similar(ctx context.Context, id int) ([]*entity.Content, error)
	Popular(ctx context.Context, limit int) ([]*entity.PopularContent, error)
	NewestByGenre(ctx context.Context, perGenre int) (map[string][]*entity.Content, error)
	CreateContent(ctx context.Context, caller entity.Identity, req *ContentRequest) (*entity.Content, error)
	UpdateContent(ctx context.Context, caller entity.Identity, id int, req *ContentRequest) (*entity.Content, error)
	DeleteContent(ctx context.Context, caller entity.Identity, id int) error
}
