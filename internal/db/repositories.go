package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Teams       *TeamRepository
	Activities  *ActivityRepository
	Leaderboard *LeaderboardRepository
	Workouts    *WorkoutRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Teams:       NewTeamRepository(database),
		Activities:  NewActivityRepository(database),
		Leaderboard: NewLeaderboardRepository(database),
		Workouts:    NewWorkoutRepository(database),
	}
}
