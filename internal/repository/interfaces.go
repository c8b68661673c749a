package repository

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limbo/flicks/internal/repository UsersRepositoryI,ProfilesRepositoryI,ContentRepositoryI,HistoryRepositoryI

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/flicks/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database and returns its id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Used by auth middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ProfilesRepositoryI interface {
	// Creates profile. UserID, Name, Avatar are necessary
	Create(ctx context.Context, profile *entity.Profile) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	// Lists all profiles owned by user with uid
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Profile, error)
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
	// Updates name and avatar by ID
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Adds content to likes unless present. Returns resulting likes
	AddLike(ctx context.Context, id uuid.UUID, contentID int) ([]int, error)
	// Removes content from likes if present. Returns resulting likes
	RemoveLike(ctx context.Context, id uuid.UUID, contentID int) ([]int, error)
	// Counts profiles per liked content across the whole system
	LikeCounts(ctx context.Context) (map[int]int, error)
}

type ContentRepositoryI interface {
	Create(ctx context.Context, content *entity.Content) error
	GetByID(ctx context.Context, id int) (*entity.Content, error)
	// Returns found content only, missing ids are skipped
	GetByIDs(ctx context.Context, ids []int) ([]*entity.Content, error)
	// Lists whole catalog ordered by id
	ListAll(ctx context.Context) ([]*entity.Content, error)
	Update(ctx context.Context, content *entity.Content) error
	Delete(ctx context.Context, id int) error
	// Content ordered by number of likes, only liked content is returned
	MostLiked(ctx context.Context, limit int) ([]*entity.PopularContent, error)
}

type HistoryRepositoryI interface {
	// Inserts or updates the row of (ProfileID, ContentID)
	Upsert(ctx context.Context, record *entity.ViewingHistory) (*entity.ViewingHistory, error)
	Get(ctx context.Context, profileID uuid.UUID, contentID int) (*entity.ViewingHistory, error)
	// Most recently watched first
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*entity.ViewingHistory, error)
	// Unfinished rows with progress, most recently watched first
	ListInProgress(ctx context.Context, profileID uuid.UUID, limit int) ([]*entity.ViewingHistory, error)
	// All rows of given profiles, most recently watched first
	ListByProfiles(ctx context.Context, profileIDs []uuid.UUID) ([]*entity.ViewingHistory, error)
	ContentIDsByProfile(ctx context.Context, profileID uuid.UUID) ([]int, error)
	Delete(ctx context.Context, profileID uuid.UUID, contentID int) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	// Defaults to disable
	SSLMode string
}

func (pgcfg *PGCfg) ConnString() string {
	sslMode := pgcfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB, sslMode)
}
