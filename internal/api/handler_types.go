package api

import (
	"math/rand"
	"time"

	"github.com/cealmeidanos/octofit/internal/db"
	"github.com/cealmeidanos/octofit/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	repositories *db.Repositories
	leaderboard  *services.LeaderboardService
	teams        *services.TeamService
	seeder       *services.SeedService
}

func NewHandler(database *gorm.DB, secretKey string) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		repositories: repositories,
		leaderboard:  services.NewLeaderboardService(repositories.Activities, repositories.Leaderboard),
		teams:        services.NewTeamService(repositories.Teams, repositories.Users),
		seeder:       services.NewSeedService(repositories, rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}
