package services

import (
	"math/rand"
	"path/filepath"
	"sort"
	"testing"

	"github.com/cealmeidanos/octofit/internal/db"
	"github.com/cealmeidanos/octofit/internal/models"
)

func newTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "octofit-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db.NewRepositories(database)
}

func TestSeedDemoDataset(t *testing.T) {
	repositories := newTestRepositories(t)
	seeder := NewSeedService(repositories, rand.New(rand.NewSource(42)))

	summary, err := seeder.Seed()
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	t.Run("summary matches store counts", func(t *testing.T) {
		if summary.Teams != 2 || summary.Users != 10 || summary.Workouts != 7 || summary.LeaderboardEntries != 10 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		if summary.Activities < 50 || summary.Activities > 100 {
			t.Fatalf("expected 5-10 activities per user, got %d total", summary.Activities)
		}

		activityCount, err := repositories.Activities.Count()
		if err != nil {
			t.Fatalf("count activities: %v", err)
		}
		if int(activityCount) != summary.Activities {
			t.Fatalf("summary reports %d activities, store has %d", summary.Activities, activityCount)
		}

		entryCount, err := repositories.Leaderboard.Count()
		if err != nil {
			t.Fatalf("count leaderboard: %v", err)
		}
		if entryCount != 10 {
			t.Fatalf("expected 10 leaderboard entries, got %d", entryCount)
		}
	})

	t.Run("team members mirror user assignments", func(t *testing.T) {
		teams, err := repositories.Teams.List()
		if err != nil {
			t.Fatalf("list teams: %v", err)
		}
		if len(teams) != 2 {
			t.Fatalf("expected 2 teams, got %d", len(teams))
		}

		for _, team := range teams {
			users, err := repositories.Users.ListByTeam(team.Name)
			if err != nil {
				t.Fatalf("list users for %s: %v", team.Name, err)
			}
			expected := make([]string, 0, len(users))
			for _, user := range users {
				expected = append(expected, user.Email)
			}

			members := append([]string(nil), team.Members...)
			sort.Strings(members)
			sort.Strings(expected)
			if len(members) != 5 {
				t.Fatalf("expected 5 members in %s, got %d", team.Name, len(members))
			}
			for index := range members {
				if members[index] != expected[index] {
					t.Fatalf("team %s members %v do not mirror assignments %v", team.Name, team.Members, expected)
				}
			}
		}
	})

	t.Run("leaderboard totals match activity history", func(t *testing.T) {
		entries, err := repositories.Leaderboard.ListByCreation()
		if err != nil {
			t.Fatalf("list leaderboard: %v", err)
		}

		for _, entry := range entries {
			activities, err := repositories.Activities.ListByUserEmail(entry.UserEmail)
			if err != nil {
				t.Fatalf("list activities for %s: %v", entry.UserEmail, err)
			}

			calories := 0
			duration := 0
			for _, activity := range activities {
				calories += activity.Calories
				duration += activity.Duration
			}
			if entry.TotalActivities != len(activities) {
				t.Fatalf("%s: total_activities %d, expected %d", entry.UserEmail, entry.TotalActivities, len(activities))
			}
			if entry.TotalCalories != calories {
				t.Fatalf("%s: total_calories %d, expected %d", entry.UserEmail, entry.TotalCalories, calories)
			}
			if entry.TotalDuration != duration {
				t.Fatalf("%s: total_duration %d, expected %d", entry.UserEmail, entry.TotalDuration, duration)
			}
		}
	})

	t.Run("ranks are a dense permutation ordered by calories", func(t *testing.T) {
		entries, err := repositories.Leaderboard.ListByRank()
		if err != nil {
			t.Fatalf("list leaderboard: %v", err)
		}
		if len(entries) != 10 {
			t.Fatalf("expected 10 entries, got %d", len(entries))
		}

		for index, entry := range entries {
			if entry.Rank == nil {
				t.Fatalf("entry %s is unranked", entry.UserEmail)
			}
			if *entry.Rank != index+1 {
				t.Fatalf("expected rank %d at position %d, got %d", index+1, index, *entry.Rank)
			}
			if index > 0 && entries[index-1].TotalCalories < entry.TotalCalories {
				t.Fatalf("rank order violates calorie order at position %d", index)
			}
		}
	})

	t.Run("distance only on distance-bearing types", func(t *testing.T) {
		activities, err := repositories.Activities.List()
		if err != nil {
			t.Fatalf("list activities: %v", err)
		}

		for _, activity := range activities {
			if activity.Duration < 20 || activity.Duration > 120 {
				t.Fatalf("duration %d outside [20,120]", activity.Duration)
			}
			if activity.Calories < activity.Duration*5 || activity.Calories > activity.Duration*12 {
				t.Fatalf("calories %d outside expected range for duration %d", activity.Calories, activity.Duration)
			}

			if models.IsDistanceActivity(activity.ActivityType) {
				if activity.Distance == nil {
					t.Fatalf("%s activity is missing distance", activity.ActivityType)
				}
				if *activity.Distance < 1 || *activity.Distance > 20 {
					t.Fatalf("distance %f outside [1,20]", *activity.Distance)
				}
			} else if activity.Distance != nil {
				t.Fatalf("%s activity unexpectedly carries distance", activity.ActivityType)
			}
		}
	})

	t.Run("workout catalog round-trips ordered lists", func(t *testing.T) {
		workouts, err := repositories.Workouts.List()
		if err != nil {
			t.Fatalf("list workouts: %v", err)
		}
		if len(workouts) != 7 {
			t.Fatalf("expected 7 workouts, got %d", len(workouts))
		}

		catalog := models.DefaultWorkoutCatalog()
		for index, workout := range workouts {
			expected := catalog[index]
			if workout.Title != expected.Title {
				t.Fatalf("workout %d: title %q, expected %q", index, workout.Title, expected.Title)
			}
			if len(workout.EquipmentNeeded) != len(expected.EquipmentNeeded) {
				t.Fatalf("workout %q: equipment %v, expected %v", workout.Title, workout.EquipmentNeeded, expected.EquipmentNeeded)
			}
			for position := range expected.Instructions {
				if workout.Instructions[position] != expected.Instructions[position] {
					t.Fatalf("workout %q: instruction %d changed order", workout.Title, position)
				}
			}
		}
	})
}

func TestSeedIsReproducibleWithFixedSource(t *testing.T) {
	firstRepos := newTestRepositories(t)
	secondRepos := newTestRepositories(t)

	firstSummary, err := NewSeedService(firstRepos, rand.New(rand.NewSource(7))).Seed()
	if err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	secondSummary, err := NewSeedService(secondRepos, rand.New(rand.NewSource(7))).Seed()
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	if firstSummary != secondSummary {
		t.Fatalf("summaries differ for identical sources: %+v vs %+v", firstSummary, secondSummary)
	}

	firstEntries, err := firstRepos.Leaderboard.ListByCreation()
	if err != nil {
		t.Fatalf("list first leaderboard: %v", err)
	}
	secondEntries, err := secondRepos.Leaderboard.ListByCreation()
	if err != nil {
		t.Fatalf("list second leaderboard: %v", err)
	}

	for index := range firstEntries {
		first := firstEntries[index]
		second := secondEntries[index]
		if first.UserEmail != second.UserEmail ||
			first.TotalActivities != second.TotalActivities ||
			first.TotalCalories != second.TotalCalories ||
			first.TotalDuration != second.TotalDuration {
			t.Fatalf("entry %d differs between identical seeds: %+v vs %+v", index, first, second)
		}
	}
}
