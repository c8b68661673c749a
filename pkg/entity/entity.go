package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ContentTypeMovie  = "movie"
	ContentTypeSeries = "series"

	// Playback within this many seconds of the end counts as watched.
	CompletionThresholdSeconds = 30

	MaxProfilesPerUser = 5
)

var Avatars = []string{
	"profile_pic_1.png",
	"profile_pic_2.png",
	"profile_pic_3.png",
	"profile_pic_4.png",
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID   uuid.UUID
	Username string
	IsAdmin  bool
}

// CanActFor reports whether the caller may act on resources owned by uid.
func (id Identity) CanActFor(uid uuid.UUID) bool {
	return id.IsAdmin || id.UserID == uid
}

type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []int     `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Profile) HasLiked(contentID int) bool {
	for _, id := range p.Likes {
		if id == contentID {
			return true
		}
	}
	return false
}

type Content struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Year        int       `json:"year"`
	Genres      []string  `json:"genres"`
	Type        string    `json:"type"`
	Episodes    *int      `json:"episodes,omitempty"`
	Seasons     *int      `json:"seasons,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	Rating      string    `json:"rating"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	VideoURL    *string   `json:"videoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PrimaryGenre is the first listed genre, or "" when none.
func (c *Content) PrimaryGenre() string {
	if len(c.Genres) == 0 {
		return ""
	}
	return c.Genres[0]
}

// HasGenre matches whole genre tokens case-insensitively: "Action" never
// matches "Action-Adventure".
func (c *Content) HasGenre(genre string) bool {
	genre = strings.TrimSpace(genre)
	for _, g := range c.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// ParseGenres splits the stored comma-separated form into trimmed tokens.
func ParseGenres(raw string) []string {
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}

// JoinGenres is the inverse of ParseGenres.
func JoinGenres(genres []string) string {
	return strings.Join(genres, ", ")
}

type ViewingHistory struct {
	ID          int64     `json:"id"`
	ProfileID   uuid.UUID `json:"profileId"`
	ContentID   int       `json:"contentId"`
	CurrentTime int       `json:"currentTime"`
	Duration    int       `json:"duration"`
	Completed   bool      `json:"completed"`
	LastWatched time.Time `json:"lastWatched"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Saved reports whether the record came from the store.
func (vh *ViewingHistory) Saved() bool {
	return vh.ID != 0
}

// UnsavedProgress is the progress of content a profile never started.
type UnsavedProgress struct {
	CurrentTime int  `json:"currentTime"`
	Completed   bool `json:"completed"`
}

// IsCompleted applies the completion rule to a playback position.
func IsCompleted(currentTime, duration int) bool {
	return duration-currentTime < CompletionThresholdSeconds
}

type HistoryWithContent struct {
	ViewingHistory
	Content *Content `json:"content"`
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalCount int  `json:"totalCount"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

type ContentPage struct {
	Content    []*Content `json:"content"`
	Pagination Pagination `json:"pagination"`
}

type PopularContent struct {
	Content
	TotalLikes int `json:"totalLikes"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ProfileDailyViews struct {
	ProfileID   uuid.UUID    `json:"profileId"`
	ProfileName string       `json:"profileName"`
	Dates       []DailyCount `json:"dates"`
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

type Statistics struct {
	DailyViews      []ProfileDailyViews `json:"dailyViews"`
	GenrePopularity []GenreCount        `json:"genrePopularity"`
}
