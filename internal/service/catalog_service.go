package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sort"
	"strconv"
	"strings"

	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/internal/repository"
	"github.com/limbo/flicks/pkg/entity"
)

const (
	DefaultItemsPerPage = 12
	MaxItemsPerPage     = 100
	SimilarLimit        = 6
	PopularLimit        = 10
	NewestPerGenre      = 10
)

type CatalogService struct {
	content      repository.ContentRepositoryI
	profiles     repository.ProfilesRepositoryI
	history      repository.HistoryRepositoryI
	itemsPerPage int
}

func NewCatalogService(contentRepo repository.ContentRepositoryI, profilesRepo repository.ProfilesRepositoryI, historyRepo repository.HistoryRepositoryI, itemsPerPage int) *CatalogService {
	if contentRepo == nil || profilesRepo == nil || historyRepo == nil {
		log.Fatal("provided nil repository to catalogService")
	}
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultItemsPerPage
	}
	return &CatalogService{
		content:      contentRepo,
		profiles:     profilesRepo,
		history:      historyRepo,
		itemsPerPage: min(itemsPerPage, MaxItemsPerPage),
	}
}

func (cs *CatalogService) All(ctx context.Context) ([]*entity.Content, error) {
	content, err := cs.content.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("content repository error: %w", err)
	}
	return content, nil
}

func (cs *CatalogService) Get(ctx context.Context, id int) (*entity.Content, error) {
	content, err := cs.content.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrContentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("content repository error: %w", err)
	}
	return content, nil
}

func (cs *CatalogService) Filter(ctx context.Context, caller entity.Identity, opts FilterOpts) (*entity.ContentPage, error) {
	if strings.EqualFold(opts.Genre, "all") {
		opts.Genre = ""
	}
	if strings.EqualFold(opts.Type, "all") {
		opts.Type = ""
	}
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = cs.itemsPerPage
	}
	opts.Limit = min(opts.Limit, MaxItemsPerPage)
	if err := validateStruct(opts); err != nil {
		return nil, err
	}

	all, err := cs.All(ctx)
	if err != nil {
		return nil, err
	}
	var watched map[int]struct{}
	if opts.ProfileID != nil && (opts.Watched == WatchedOnly || opts.Watched == WatchedExcluded) {
		if _, err = ownedProfile(ctx, cs.profiles, caller, *opts.ProfileID); err != nil {
			return nil, err
		}
		ids, err := cs.history.ContentIDsByProfile(ctx, *opts.ProfileID)
		if err != nil {
			return nil, fmt.Errorf("history repository error: %w", err)
		}
		watched = make(map[int]struct{}, len(ids))
		for _, id := range ids {
			watched[id] = struct{}{}
		}
	}

	filtered := make([]*entity.Content, 0, len(all))
	for _, c := range all {
		if opts.Genre != "" && !c.HasGenre(opts.Genre) {
			continue
		}
		if opts.Type != "" && c.Type != opts.Type {
			continue
		}
		if watched != nil {
			_, seen := watched[c.ID]
			if seen != (opts.Watched == WatchedOnly) {
				continue
			}
		}
		filtered = append(filtered, c)
	}
	sortContent(filtered, opts.Sort)

	total := len(filtered)
	totalPages := (total + opts.Limit - 1) / opts.Limit
	from := min((opts.Page-1)*opts.Limit, total)
	to := min(from+opts.Limit, total)
	return &entity.ContentPage{
		Content: filtered[from:to],
		Pagination: entity.Pagination{
			Page:       opts.Page,
			Limit:      opts.Limit,
			TotalCount: total,
			TotalPages: totalPages,
			HasMore:    opts.Page < totalPages,
		},
	}, nil
}

func parseRating(rating string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(rating), 64)
	if err != nil {
		return 0
	}
	return value
}

// sortContent orders content in place. Unknown orders fall back to name-asc.
func sortContent(content []*entity.Content, order string) {
	var compare func(a, b *entity.Content) int
	switch order {
	case "name-desc":
		compare = func(a, b *entity.Content) int { return strings.Compare(b.Name, a.Name) }
	case "year-desc":
		compare = func(a, b *entity.Content) int { return cmp.Compare(b.Year, a.Year) }
	case "year-asc":
		compare = func(a, b *entity.Content) int { return cmp.Compare(a.Year, b.Year) }
	case "rating-desc", "rating":
		compare = func(a, b *entity.Content) int { return cmp.Compare(parseRating(b.Rating), parseRating(a.Rating)) }
	default:
		compare = func(a, b *entity.Content) int { return strings.Compare(a.Name, b.Name) }
	}
	slices.SortStableFunc(content, compare)
}

func (cs *CatalogService) Genres(ctx context.Context) ([]string, error) {
	all, err := cs.All(ctx)
	if err != nil {
		return nil, err
	}
	// Genres differing only in case collapse to the first-seen spelling.
	seen := make(map[string]struct{})
	genres := make([]string, 0)
	for _, c := range all {
		for _, g := range c.Genres {
			key := strings.ToLower(g)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			genres = append(genres, g)
		}
	}
	sort.Strings(genres)
	return genres, nil
}

func (cs *CatalogService) Similar(ctx context.Context, id int) ([]*entity.Content, error) {
	target, err := cs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	similar := make([]*entity.Content, 0, SimilarLimit)
	primary := target.PrimaryGenre()
	if primary == "" {
		return similar, nil
	}
	all, err := cs.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		if len(similar) == SimilarLimit {
			break
		}
		if c.ID != target.ID && c.HasGenre(primary) {
			similar = append(similar, c)
		}
	}
	return similar, nil
}

func (cs *CatalogService) Popular(ctx context.Context, limit int) ([]*entity.PopularContent, error) {
	if limit <= 0 {
		limit = PopularLimit
	}
	popular, err := cs.content.MostLiked(ctx, min(limit, MaxItemsPerPage))
	if err != nil {
		return nil, fmt.Errorf("content repository error: %w", err)
	}
	return popular, nil
}

func (cs *CatalogService) NewestByGenre(ctx context.Context, perGenre int) (map[string][]*entity.Content, error) {
	if perGenre <= 0 {
		perGenre = NewestPerGenre
	}
	all, err := cs.All(ctx)
	if err != nil {
		return nil, err
	}
	newest := slices.Clone(all)
	slices.SortStableFunc(newest, func(a, b *entity.Content) int {
		if c := cmp.Compare(b.Year, a.Year); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	result := make(map[string][]*entity.Content)
	for _, c := range newest {
		for _, g := range c.Genres {
			if len(result[g]) < perGenre {
				result[g] = append(result[g], c)
			}
		}
	}
	return result, nil
}

func contentFromRequest(req *ContentRequest) *entity.Content {
	return &entity.Content{
		ID:          req.ID,
		Name:        strings.TrimSpace(req.Name),
		Year:        req.Year,
		Genres:      entity.ParseGenres(entity.JoinGenres(req.Genres)),
		Type:        req.Type,
		Episodes:    req.Episodes,
		Seasons:     req.Seasons,
		Duration:    req.Duration,
		Rating:      req.Rating,
		Description: req.Description,
		Image:       req.Image,
		VideoURL:    req.VideoURL,
	}
}

func (cs *CatalogService) CreateContent(ctx context.Context, caller entity.Identity, req *ContentRequest) (*entity.Content, error) {
	if !caller.IsAdmin {
		return nil, errorvalues.ErrAdminOnly
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := cs.content.Create(ctx, contentFromRequest(req)); err != nil {
		if errors.Is(err, errorvalues.ErrContentExists) {
			return nil, err
		}
		return nil, fmt.Errorf("content repository error: %w", err)
	}
	return cs.Get(ctx, req.ID)
}

func (cs *CatalogService) UpdateContent(ctx context.Context, caller entity.Identity, id int, req *ContentRequest) (*entity.Content, error) {
	if !caller.IsAdmin {
		return nil, errorvalues.ErrAdminOnly
	}
	req.ID = id
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := cs.content.Update(ctx, contentFromRequest(req)); err != nil {
		if errors.Is(err, errorvalues.ErrContentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("content repository error: %w", err)
	}
	return cs.Get(ctx, id)
}

func (cs *CatalogService) DeleteContent(ctx context.Context, caller entity.Identity, id int) error {
	if !caller.IsAdmin {
		return errorvalues.ErrAdminOnly
	}
	if err := cs.content.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrContentNotFound) {
			return err
		}
		return fmt.Errorf("content repository error: %w", err)
	}
	return nil
}
