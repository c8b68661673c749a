package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/internal/repository"
	"github.com/limbo/flicks/pkg/entity"
	"github.com/limbo/flicks/pkg/metrics"
)

const (
	DefaultHistoryLimit  = 20
	MaxHistoryLimit      = 100
	ContinueWatchingSize = 10
)

type HistoryService struct {
	profiles repository.ProfilesRepositoryI
	content  repository.ContentRepositoryI
	history  repository.HistoryRepositoryI
	now      func() time.Time
}

func NewHistoryService(profilesRepo repository.ProfilesRepositoryI, contentRepo repository.ContentRepositoryI, historyRepo repository.HistoryRepositoryI) *HistoryService {
	if profilesRepo == nil || contentRepo == nil || historyRepo == nil {
		log.Fatal("provided nil repository to historyService")
	}
	return &HistoryService{
		profiles: profilesRepo,
		content:  contentRepo,
		history:  historyRepo,
		now:      time.Now,
	}
}

func (hs *HistoryService) SaveProgress(ctx context.Context, caller entity.Identity, profileID uuid.UUID, req *SaveProgressRequest) (*entity.ViewingHistory, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := ownedProfile(ctx, hs.profiles, caller, profileID); err != nil {
		return nil, err
	}
	if _, err := hs.content.GetByID(ctx, req.ContentID); err != nil {
		if errors.Is(err, errorvalues.ErrContentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("content repository error: %w", err)
	}
	record, err := hs.history.Upsert(ctx, &entity.ViewingHistory{
		ProfileID:   profileID,
		ContentID:   req.ContentID,
		CurrentTime: req.CurrentTime,
		Duration:    req.Duration,
		Completed:   entity.IsCompleted(req.CurrentTime, req.Duration),
		LastWatched: hs.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("history repository error: %w", err)
	}
	metrics.ProgressSaves.Inc()
	return record, nil
}

func (hs *HistoryService) GetProgress(ctx context.Context, caller entity.Identity, profileID uuid.UUID, contentID int) (*entity.ViewingHistory, error) {
	if _, err := ownedProfile(ctx, hs.profiles, caller, profileID); err != nil {
		return nil, err
	}
	record, err := hs.history.Get(ctx, profileID, contentID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHistoryNotFound) {
			return &entity.ViewingHistory{
				ProfileID: profileID,
				ContentID: contentID,
			}, nil
		}
		return nil, fmt.Errorf("history repository error: %w", err)
	}
	return record, nil
}

func (hs *HistoryService) GetProfileHistory(ctx context.Context, caller entity.Identity, profileID uuid.UUID, limit int) ([]*entity.HistoryWithContent, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)
	if _, err := ownedProfile(ctx, hs.profiles, caller, profileID); err != nil {
		return nil, err
	}
	records, err := hs.history.ListByProfile(ctx, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("history repository error: %w", err)
	}
	return hs.withContent(ctx, records)
}

func (hs *HistoryService) DeleteProgress(ctx context.Context, caller entity.Identity, profileID uuid.UUID, contentID int) error {
	if _, err := ownedProfile(ctx, hs.profiles, caller, profileID); err != nil {
		return err
	}
	if err := hs.history.Delete(ctx, profileID, contentID); err != nil {
		if errors.Is(err, errorvalues.ErrHistoryNotFound) {
			return err
		}
		return fmt.Errorf("history repository error: %w", err)
	}
	return nil
}

func (hs *HistoryService) ContinueWatching(ctx context.Context, caller entity.Identity, profileID uuid.UUID) ([]*entity.HistoryWithContent, error) {
	if _, err := ownedProfile(ctx, hs.profiles, caller, profileID); err != nil {
		return nil, err
	}
	records, err := hs.history.ListInProgress(ctx, profileID, ContinueWatchingSize)
	if err != nil {
		return nil, fmt.Errorf("history repository error: %w", err)
	}
	return hs.withContent(ctx, records)
}

// withContent joins records with their content in one query. Content of
// deleted items is left nil.
func (hs *HistoryService) withContent(ctx context.Context, records []*entity.ViewingHistory) ([]*entity.HistoryWithContent, error) {
	byID, err := contentByID(ctx, hs.content, records)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.HistoryWithContent, 0, len(records))
	for _, r := range records {
		result = append(result, &entity.HistoryWithContent{
			ViewingHistory: *r,
			Content:        byID[r.ContentID],
		})
	}
	return result, nil
}

func contentByID(ctx context.Context, repo repository.ContentRepositoryI, records []*entity.ViewingHistory) (map[int]*entity.Content, error) {
	seen := make(map[int]struct{}, len(records))
	ids := make([]int, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.ContentID]; ok {
			continue
		}
		seen[r.ContentID] = struct{}{}
		ids = append(ids, r.ContentID)
	}
	content, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("content repository error: %w", err)
	}
	byID := make(map[int]*entity.Content, len(content))
	for _, c := range content {
		byID[c.ID] = c
	}
	return byID, nil
}
