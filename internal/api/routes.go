package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("", handler.APIRoot)
	api.Post("/seed", handler.AuthRequired, handler.SeedDatabase)

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)

	users := api.Group("/users")
	users.Get("", handler.ListUsers)
	users.Post("", handler.CreateUser)
	users.Get("/by_team", handler.UsersByTeam)
	users.Get("/:id", handler.GetUser)
	users.Put("/:id", handler.UpdateUser)
	users.Delete("/:id", handler.DeleteUser)

	teams := api.Group("/teams")
	teams.Get("", handler.ListTeams)
	teams.Post("", handler.CreateTeam)
	teams.Get("/:id", handler.GetTeam)
	teams.Get("/:id/members", handler.TeamMembers)
	teams.Put("/:id", handler.UpdateTeam)
	teams.Delete("/:id", handler.DeleteTeam)

	activities := api.Group("/activities")
	activities.Get("", handler.ListActivities)
	activities.Post("", handler.CreateActivity)
	activities.Get("/by_user", handler.ActivitiesByUser)
	activities.Get("/by_type", handler.ActivitiesByType)
	activities.Get("/:id", handler.GetActivity)
	activities.Put("/:id", handler.UpdateActivity)
	activities.Delete("/:id", handler.DeleteActivity)

	leaderboard := api.Group("/leaderboard")
	leaderboard.Get("", handler.ListLeaderboard)
	leaderboard.Post("", handler.CreateLeaderboardEntry)
	leaderboard.Post("/rebuild", handler.AuthRequired, handler.RebuildLeaderboard)
	leaderboard.Get("/top", handler.TopLeaderboard)
	leaderboard.Get("/by_team", handler.LeaderboardByTeam)
	leaderboard.Get("/:id", handler.GetLeaderboardEntry)
	leaderboard.Put("/:id", handler.UpdateLeaderboardEntry)
	leaderboard.Delete("/:id", handler.DeleteLeaderboardEntry)

	workouts := api.Group("/workouts")
	workouts.Get("", handler.ListWorkouts)
	workouts.Post("", handler.CreateWorkout)
	workouts.Get("/by_difficulty", handler.WorkoutsByDifficulty)
	workouts.Get("/by_type", handler.WorkoutsByType)
	workouts.Get("/:id", handler.GetWorkout)
	workouts.Put("/:id", handler.UpdateWorkout)
	workouts.Delete("/:id", handler.DeleteWorkout)
}
