package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cealmeidanos/octofit/internal/models"
)

// LeaderboardActivityReader provides the activity history the totals are
// aggregated from.
type LeaderboardActivityReader interface {
	ListByUserEmail(email string) ([]models.Activity, error)
}

// LeaderboardEntryStore owns the derived leaderboard rows.
type LeaderboardEntryStore interface {
	DeleteAll() error
	Create(entry *models.LeaderboardEntry) error
	ListByCreation() ([]models.LeaderboardEntry, error)
	UpdateRank(entryID uint, rank int) error
}

// LeaderboardService rebuilds the leaderboard from scratch: delete all rows,
// recompute one row per user, then assign dense ranks in a single pass. Rows
// are a disposable view over activity data and are never updated in place.
type LeaderboardService struct {
	activities LeaderboardActivityReader
	entries    LeaderboardEntryStore
	now        func() time.Time

	rebuildMu sync.Mutex
}

func NewLeaderboardService(activities LeaderboardActivityReader, entries LeaderboardEntryStore) *LeaderboardService {
	return &LeaderboardService{
		activities: activities,
		entries:    entries,
		now:        time.Now,
	}
}

// Rebuild recomputes leaderboard rows for the given users. Only one rebuild
// runs at a time so the ranking pass sees a stable set of rows.
func (service *LeaderboardService) Rebuild(users []models.User) error {
	service.rebuildMu.Lock()
	defer service.rebuildMu.Unlock()

	if err := service.entries.DeleteAll(); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}

	for index := range users {
		user := &users[index]
		entry, err := service.aggregateUser(user)
		if err != nil {
			return fmt.Errorf("aggregate user %s: %w", user.Email, err)
		}
		if err := service.entries.Create(entry); err != nil {
			return fmt.Errorf("insert leaderboard entry for %s: %w", user.Email, err)
		}
	}

	if err := service.assignRanks(); err != nil {
		return fmt.Errorf("assign ranks: %w", err)
	}
	return nil
}

// aggregateUser builds an unranked entry from the user's activity history.
// A user with no activities still gets an entry with zero totals.
func (service *LeaderboardService) aggregateUser(user *models.User) (*models.LeaderboardEntry, error) {
	activities, err := service.activities.ListByUserEmail(user.Email)
	if err != nil {
		return nil, err
	}

	totalCalories := 0
	totalDuration := 0
	for _, activity := range activities {
		totalCalories += activity.Calories
		totalDuration += activity.Duration
	}

	return &models.LeaderboardEntry{
		UserEmail:       user.Email,
		UserName:        user.Name,
		Team:            user.TeamLabel(),
		TotalActivities: len(activities),
		TotalCalories:   totalCalories,
		TotalDuration:   totalDuration,
		LastUpdated:     service.now(),
	}, nil
}

// assignRanks orders all entries by total calories descending and persists
// dense 1-based ranks. The sort is stable over insertion order, so equal
// totals keep their creation order across repeated rebuilds.
func (service *LeaderboardService) assignRanks() error {
	entries, err := service.entries.ListByCreation()
	if err != nil {
		return err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalCalories > entries[j].TotalCalories
	})

	for index := range entries {
		if err := service.entries.UpdateRank(entries[index].ID, index+1); err != nil {
			return err
		}
	}
	return nil
}
