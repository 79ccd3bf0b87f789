package services

import (
	"testing"

	"github.com/cealmeidanos/octofit/internal/models"
)

type stubActivityReader struct {
	byEmail map[string][]models.Activity
}

func (stub *stubActivityReader) ListByUserEmail(email string) ([]models.Activity, error) {
	activities := stub.byEmail[email]
	result := make([]models.Activity, len(activities))
	copy(result, activities)
	return result, nil
}

type stubEntryStore struct {
	entries []models.LeaderboardEntry
	nextID  uint
}

func (stub *stubEntryStore) DeleteAll() error {
	stub.entries = nil
	return nil
}

func (stub *stubEntryStore) Create(entry *models.LeaderboardEntry) error {
	stub.nextID++
	entry.ID = stub.nextID
	stub.entries = append(stub.entries, *entry)
	return nil
}

func (stub *stubEntryStore) ListByCreation() ([]models.LeaderboardEntry, error) {
	result := make([]models.LeaderboardEntry, len(stub.entries))
	copy(result, stub.entries)
	return result, nil
}

func (stub *stubEntryStore) UpdateRank(entryID uint, rank int) error {
	for index := range stub.entries {
		if stub.entries[index].ID == entryID {
			value := rank
			stub.entries[index].Rank = &value
			return nil
		}
	}
	return nil
}

func (stub *stubEntryStore) byEmail(t *testing.T, email string) models.LeaderboardEntry {
	t.Helper()
	for _, entry := range stub.entries {
		if entry.UserEmail == email {
			return entry
		}
	}
	t.Fatalf("no leaderboard entry for %s", email)
	return models.LeaderboardEntry{}
}

func teamOf(name string) *string {
	return &name
}

func TestRebuildAggregatesPerUserTotals(t *testing.T) {
	reader := &stubActivityReader{byEmail: map[string][]models.Activity{
		"a@example.com": {
			{Calories: 300, Duration: 30},
			{Calories: 450, Duration: 60},
		},
	}}
	store := &stubEntryStore{}
	service := NewLeaderboardService(reader, store)

	users := []models.User{
		{Email: "a@example.com", Name: "Alice", Team: teamOf("Team Marvel")},
		{Email: "b@example.com", Name: "Bob"},
	}
	if err := service.Rebuild(users); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	alice := store.byEmail(t, "a@example.com")
	if alice.TotalActivities != 2 || alice.TotalCalories != 750 || alice.TotalDuration != 90 {
		t.Fatalf("unexpected totals for alice: %+v", alice)
	}
	if alice.Team != "Team Marvel" {
		t.Fatalf("expected team snapshot Team Marvel, got %q", alice.Team)
	}

	bob := store.byEmail(t, "b@example.com")
	if bob.TotalActivities != 0 || bob.TotalCalories != 0 || bob.TotalDuration != 0 {
		t.Fatalf("expected zero totals for user without activities, got %+v", bob)
	}
	if bob.Rank == nil {
		t.Fatal("expected zero-activity user to receive a rank")
	}
}

func TestRebuildAssignsDenseRanksByCalories(t *testing.T) {
	reader := &stubActivityReader{byEmail: map[string][]models.Activity{
		"low@example.com":  {{Calories: 100, Duration: 20}},
		"high@example.com": {{Calories: 300, Duration: 20}},
		"mid@example.com":  {{Calories: 200, Duration: 20}},
	}}
	store := &stubEntryStore{}
	service := NewLeaderboardService(reader, store)

	users := []models.User{
		{Email: "low@example.com", Name: "Low"},
		{Email: "high@example.com", Name: "High"},
		{Email: "mid@example.com", Name: "Mid"},
	}
	if err := service.Rebuild(users); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	seen := make(map[int]bool, len(store.entries))
	for _, entry := range store.entries {
		if entry.Rank == nil {
			t.Fatalf("entry %s has no rank", entry.UserEmail)
		}
		if seen[*entry.Rank] {
			t.Fatalf("duplicate rank %d", *entry.Rank)
		}
		seen[*entry.Rank] = true
	}
	for rank := 1; rank <= len(users); rank++ {
		if !seen[rank] {
			t.Fatalf("missing rank %d in %v", rank, seen)
		}
	}

	if got := *store.byEmail(t, "high@example.com").Rank; got != 1 {
		t.Fatalf("expected rank 1 for highest calories, got %d", got)
	}
	if got := *store.byEmail(t, "mid@example.com").Rank; got != 2 {
		t.Fatalf("expected rank 2 for middle calories, got %d", got)
	}
	if got := *store.byEmail(t, "low@example.com").Rank; got != 3 {
		t.Fatalf("expected rank 3 for lowest calories, got %d", got)
	}
}

func TestRebuildTiesKeepCreationOrderAcrossRebuilds(t *testing.T) {
	reader := &stubActivityReader{byEmail: map[string][]models.Activity{
		"first@example.com":  {{Calories: 1000, Duration: 60}},
		"second@example.com": {{Calories: 1000, Duration: 45}},
	}}
	store := &stubEntryStore{}
	service := NewLeaderboardService(reader, store)

	users := []models.User{
		{Email: "first@example.com", Name: "First"},
		{Email: "second@example.com", Name: "Second"},
	}

	for attempt := 0; attempt < 3; attempt++ {
		if err := service.Rebuild(users); err != nil {
			t.Fatalf("rebuild %d failed: %v", attempt, err)
		}

		first := store.byEmail(t, "first@example.com")
		second := store.byEmail(t, "second@example.com")
		if first.Rank == nil || second.Rank == nil {
			t.Fatalf("rebuild %d left unranked entries", attempt)
		}
		if *first.Rank != 1 || *second.Rank != 2 {
			t.Fatalf("rebuild %d: expected tie ranks 1 and 2 in creation order, got %d and %d",
				attempt, *first.Rank, *second.Rank)
		}
	}
}
