package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cealmeidanos/octofit/internal/db"
	"github.com/cealmeidanos/octofit/internal/services"
)

// RunSeedCommand wipes and repopulates the database with the demo dataset.
// A non-zero seedValue pins the random source for reproducible datasets.
func RunSeedCommand(dbPath string, seedValue int64) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	seeder := services.NewSeedService(db.NewRepositories(database), rng)
	summary, err := seeder.Seed()
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	fmt.Println("Database populated successfully")
	fmt.Printf("Teams:               %d\n", summary.Teams)
	fmt.Printf("Users:               %d\n", summary.Users)
	fmt.Printf("Activities:          %d\n", summary.Activities)
	fmt.Printf("Leaderboard entries: %d\n", summary.LeaderboardEntries)
	fmt.Printf("Workouts:            %d\n", summary.Workouts)

	return nil
}
