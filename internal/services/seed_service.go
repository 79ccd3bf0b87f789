package services

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cealmeidanos/octofit/internal/db"
	"github.com/cealmeidanos/octofit/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	TeamMarvel = "Team Marvel"
	TeamDC     = "Team DC"
)

// SeedSummary reports how many records a seed run inserted per collection.
type SeedSummary struct {
	Teams              int `json:"teams"`
	Users              int `json:"users"`
	Activities         int `json:"activities"`
	LeaderboardEntries int `json:"leaderboard_entries"`
	Workouts           int `json:"workouts"`
}

type seedUser struct {
	Email    string
	Name     string
	Password string
	Team     string
}

// SeedService wipes all five collections and repopulates them with the demo
// dataset: fixed teams, users and workouts, randomized activity history, and
// a freshly rebuilt leaderboard. The random source is injected so callers can
// pin it for reproducible runs. Seeding is all-or-nothing from the caller's
// perspective; a store failure aborts the run and requires a full re-seed.
type SeedService struct {
	repositories *db.Repositories
	leaderboard  *LeaderboardService
	teams        *TeamService
	rng          *rand.Rand
	now          func() time.Time
}

func NewSeedService(repositories *db.Repositories, rng *rand.Rand) *SeedService {
	return &SeedService{
		repositories: repositories,
		leaderboard:  NewLeaderboardService(repositories.Activities, repositories.Leaderboard),
		teams:        NewTeamService(repositories.Teams, repositories.Users),
		rng:          rng,
		now:          time.Now,
	}
}

func (service *SeedService) Seed() (SeedSummary, error) {
	if err := service.wipe(); err != nil {
		return SeedSummary{}, err
	}

	if err := service.createTeams(); err != nil {
		return SeedSummary{}, err
	}

	users, err := service.createUsers()
	if err != nil {
		return SeedSummary{}, err
	}

	if err := service.teams.SyncMembers(); err != nil {
		return SeedSummary{}, fmt.Errorf("sync team members: %w", err)
	}

	activityCount, err := service.createActivities(users)
	if err != nil {
		return SeedSummary{}, err
	}

	if err := service.leaderboard.Rebuild(users); err != nil {
		return SeedSummary{}, fmt.Errorf("rebuild leaderboard: %w", err)
	}

	workoutCount, err := service.createWorkouts()
	if err != nil {
		return SeedSummary{}, err
	}

	return SeedSummary{
		Teams:              2,
		Users:              len(users),
		Activities:         activityCount,
		LeaderboardEntries: len(users),
		Workouts:           workoutCount,
	}, nil
}

func (service *SeedService) wipe() error {
	wipes := []struct {
		name   string
		delete func() error
	}{
		{"users", service.repositories.Users.DeleteAll},
		{"teams", service.repositories.Teams.DeleteAll},
		{"activities", service.repositories.Activities.DeleteAll},
		{"leaderboard", service.repositories.Leaderboard.DeleteAll},
		{"workouts", service.repositories.Workouts.DeleteAll},
	}
	for _, wipe := range wipes {
		if err := wipe.delete(); err != nil {
			return fmt.Errorf("wipe %s: %w", wipe.name, err)
		}
	}
	return nil
}

func (service *SeedService) createTeams() error {
	teams := []models.Team{
		{
			Name:        TeamMarvel,
			Description: "Defenders of Earth and beyond",
			Members:     []string{},
			CreatedAt:   service.now(),
		},
		{
			Name:        TeamDC,
			Description: "Protectors of Justice",
			Members:     []string{},
			CreatedAt:   service.now(),
		},
	}
	for index := range teams {
		if err := service.repositories.Teams.Create(&teams[index]); err != nil {
			return fmt.Errorf("create team %s: %w", teams[index].Name, err)
		}
	}
	return nil
}

func (service *SeedService) createUsers() ([]models.User, error) {
	roster := seedRoster()
	users := make([]models.User, 0, len(roster))

	for _, seed := range roster {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash credential for %s: %w", seed.Email, err)
		}

		team := seed.Team
		user := models.User{
			Email:        seed.Email,
			Name:         seed.Name,
			PasswordHash: string(passwordHash),
			Team:         &team,
			CreatedAt:    service.now(),
		}
		if err := service.repositories.Users.Create(&user); err != nil {
			return nil, fmt.Errorf("create user %s: %w", seed.Email, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (service *SeedService) createActivities(users []models.User) (int, error) {
	catalog := models.ActivityTypes()
	created := 0

	for _, user := range users {
		activityCount := service.rng.Intn(6) + 5
		for i := 0; i < activityCount; i++ {
			activityType := catalog[service.rng.Intn(len(catalog))]
			duration := service.rng.Intn(101) + 20
			calories := duration * (service.rng.Intn(8) + 5)

			var distance *float64
			if models.IsDistanceActivity(activityType) {
				value := math.Round((1+service.rng.Float64()*19)*100) / 100
				distance = &value
			}

			daysAgo := service.rng.Intn(31)
			activity := models.Activity{
				UserEmail:    user.Email,
				UserName:     user.Name,
				ActivityType: activityType,
				Duration:     duration,
				Calories:     calories,
				Distance:     distance,
				Date:         service.now().AddDate(0, 0, -daysAgo),
				Notes:        fmt.Sprintf("%s session completed by %s", activityType, user.Name),
			}
			if err := service.repositories.Activities.Create(&activity); err != nil {
				return 0, fmt.Errorf("create activity for %s: %w", user.Email, err)
			}
			created++
		}
	}
	return created, nil
}

func (service *SeedService) createWorkouts() (int, error) {
	catalog := models.DefaultWorkoutCatalog()
	for index := range catalog {
		catalog[index].CreatedAt = service.now()
		if err := service.repositories.Workouts.Create(&catalog[index]); err != nil {
			return 0, fmt.Errorf("create workout %s: %w", catalog[index].Title, err)
		}
	}
	return len(catalog), nil
}

func seedRoster() []seedUser {
	return []seedUser{
		{Email: "tony.stark@marvel.com", Name: "Tony Stark", Password: "ironman123", Team: TeamMarvel},
		{Email: "steve.rogers@marvel.com", Name: "Steve Rogers", Password: "captainamerica123", Team: TeamMarvel},
		{Email: "natasha.romanoff@marvel.com", Name: "Natasha Romanoff", Password: "blackwidow123", Team: TeamMarvel},
		{Email: "bruce.banner@marvel.com", Name: "Bruce Banner", Password: "hulk123", Team: TeamMarvel},
		{Email: "thor.odinson@marvel.com", Name: "Thor Odinson", Password: "thor123", Team: TeamMarvel},
		{Email: "bruce.wayne@dc.com", Name: "Bruce Wayne", Password: "batman123", Team: TeamDC},
		{Email: "clark.kent@dc.com", Name: "Clark Kent", Password: "superman123", Team: TeamDC},
		{Email: "diana.prince@dc.com", Name: "Diana Prince", Password: "wonderwoman123", Team: TeamDC},
		{Email: "barry.allen@dc.com", Name: "Barry Allen", Password: "flash123", Team: TeamDC},
		{Email: "arthur.curry@dc.com", Name: "Arthur Curry", Password: "aquaman123", Team: TeamDC},
	}
}
