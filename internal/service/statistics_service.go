package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/flicks/internal/error_values"
	"github.com/limbo/flicks/internal/repository"
	"github.com/limbo/flicks/pkg/entity"
	"github.com/limbo/flicks/pkg/metrics"
)

const (
	StatisticsDays = 30
	dateLayout     = "2006-01-02"
)

type StatisticsService struct {
	profiles repository.ProfilesRepositoryI
	content  repository.ContentRepositoryI
	history  repository.HistoryRepositoryI
	now      func() time.Time
}

func NewStatisticsService(profilesRepo repository.ProfilesRepositoryI, contentRepo repository.ContentRepositoryI, historyRepo repository.HistoryRepositoryI) *StatisticsService {
	return NewStatisticsServiceWithClock(profilesRepo, contentRepo, historyRepo, time.Now)
}

// NewStatisticsServiceWithClock uses now for "today". Day boundaries follow
// the location of the returned time.
func NewStatisticsServiceWithClock(profilesRepo repository.ProfilesRepositoryI, contentRepo repository.ContentRepositoryI, historyRepo repository.HistoryRepositoryI, now func() time.Time) *StatisticsService {
	if profilesRepo == nil || contentRepo == nil || historyRepo == nil {
		log.Fatal("provided nil repository to statisticsService")
	}
	return &StatisticsService{
		profiles: profilesRepo,
		content:  contentRepo,
		history:  historyRepo,
		now:      now,
	}
}

func (ss *StatisticsService) ComputeStatistics(ctx context.Context, caller entity.Identity, userID uuid.UUID) (*entity.Statistics, error) {
	if !caller.CanActFor(userID) {
		return nil, errorvalues.ErrWrongOwner
	}
	start := time.Now()
	defer func() {
		metrics.StatisticsDuration.Observe(time.Since(start).Seconds())
	}()

	stats := &entity.Statistics{
		DailyViews:      []entity.ProfileDailyViews{},
		GenrePopularity: []entity.GenreCount{},
	}
	profiles, err := ss.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profiles repository error: %w", err)
	}
	if len(profiles) == 0 {
		return stats, nil
	}
	profileIDs := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		profileIDs = append(profileIDs, p.ID)
	}
	records, err := ss.history.ListByProfiles(ctx, profileIDs)
	if err != nil {
		return nil, fmt.Errorf("history repository error: %w", err)
	}
	content, err := contentByID(ctx, ss.content, records)
	if err != nil {
		return nil, err
	}
	stats.DailyViews = dailyViews(ss.now(), profiles, records)
	stats.GenrePopularity = genrePopularity(records, content)
	return stats, nil
}

// dateAxis returns the local midnight of the first day and the 30 date keys
// ending today, oldest first.
func dateAxis(now time.Time) (time.Time, []string) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	first := today.AddDate(0, 0, -(StatisticsDays - 1))
	dates := make([]string, 0, StatisticsDays)
	for i := range StatisticsDays {
		dates = append(dates, first.AddDate(0, 0, i).Format(dateLayout))
	}
	return first, dates
}

func dailyViews(now time.Time, profiles []*entity.Profile, records []*entity.ViewingHistory) []entity.ProfileDailyViews {
	first, dates := dateAxis(now)
	counts := make(map[uuid.UUID]map[string]int, len(profiles))
	for _, r := range records {
		watched := r.LastWatched.In(now.Location())
		if watched.Before(first) {
			continue
		}
		if counts[r.ProfileID] == nil {
			counts[r.ProfileID] = make(map[string]int)
		}
		counts[r.ProfileID][watched.Format(dateLayout)]++
	}
	result := make([]entity.ProfileDailyViews, 0, len(profiles))
	for _, p := range profiles {
		series := make([]entity.DailyCount, 0, len(dates))
		for _, d := range dates {
			series = append(series, entity.DailyCount{Date: d, Count: counts[p.ID][d]})
		}
		result = append(result, entity.ProfileDailyViews{
			ProfileID:   p.ID,
			ProfileName: p.Name,
			Dates:       series,
		})
	}
	return result
}

// genrePopularity skips rows whose content is no longer in the catalog.
func genrePopularity(records []*entity.ViewingHistory, content map[int]*entity.Content) []entity.GenreCount {
	result := make([]entity.GenreCount, 0)
	index := make(map[string]int)
	for _, r := range records {
		c, ok := content[r.ContentID]
		if !ok {
			continue
		}
		for _, g := range c.Genres {
			i, ok := index[g]
			if !ok {
				i = len(result)
				index[g] = i
				result = append(result, entity.GenreCount{Genre: g})
			}
			result[i].Count++
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}
