package models

import "time"

const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Workout is a standalone catalog entry with no relationship to users.
type Workout struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"not null" json:"title"`
	Description      string    `json:"description"`
	Difficulty       string    `gorm:"index;not null" json:"difficulty"`
	Duration         int       `gorm:"not null" json:"duration"`
	CaloriesEstimate int       `gorm:"not null" json:"calories_estimate"`
	ActivityType     string    `gorm:"index;not null" json:"activity_type"`
	EquipmentNeeded  []string  `gorm:"serializer:json" json:"equipment_needed"`
	Instructions     []string  `gorm:"serializer:json" json:"instructions"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
}

// WorkoutDifficulties lists the accepted difficulty levels.
func WorkoutDifficulties() []string {
	return []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// IsWorkoutDifficulty reports whether value is a known difficulty level.
func IsWorkoutDifficulty(value string) bool {
	for _, difficulty := range WorkoutDifficulties() {
		if difficulty == value {
			return true
		}
	}
	return false
}

// DefaultWorkoutCatalog returns the built-in workout suggestions inserted by
// the seeder.
func DefaultWorkoutCatalog() []Workout {
	return []Workout{
		{
			Title:            "Super Soldier Strength Training",
			Description:      "Build strength like Captain America with this intense workout",
			Difficulty:       DifficultyAdvanced,
			Duration:         60,
			CaloriesEstimate: 600,
			ActivityType:     ActivityWeightlifting,
			EquipmentNeeded:  []string{"Barbell", "Dumbbells", "Pull-up bar"},
			Instructions: []string{
				"Warm-up: 10 minutes light cardio",
				"Bench press: 4 sets of 8-10 reps",
				"Squats: 4 sets of 8-10 reps",
				"Deadlifts: 3 sets of 6-8 reps",
				"Pull-ups: 3 sets to failure",
				"Cool-down: 10 minutes stretching",
			},
		},
		{
			Title:            "Speed Force Sprint Training",
			Description:      "Improve your speed and agility like The Flash",
			Difficulty:       DifficultyIntermediate,
			Duration:         45,
			CaloriesEstimate: 500,
			ActivityType:     ActivityRunning,
			EquipmentNeeded:  []string{"Running shoes", "Timer"},
			Instructions: []string{
				"Warm-up: 5 minutes jogging",
				"8x 100m sprints with 90 seconds rest",
				"4x 200m tempo runs with 2 minutes rest",
				"Cool-down: 5 minutes walking",
				"Stretching: 10 minutes",
			},
		},
		{
			Title:            "Warrior Yoga Flow",
			Description:      "Build flexibility and mental strength like Wonder Woman",
			Difficulty:       DifficultyBeginner,
			Duration:         30,
			CaloriesEstimate: 150,
			ActivityType:     ActivityYoga,
			EquipmentNeeded:  []string{"Yoga mat"},
			Instructions: []string{
				"Start in Mountain Pose",
				"Flow through Sun Salutations: 5 rounds",
				"Warrior I, II, and III poses: Hold each for 1 minute per side",
				"Tree pose: 1 minute per side",
				"End with Savasana: 5 minutes",
			},
		},
		{
			Title:            "Aquatic Endurance Training",
			Description:      "Build underwater endurance like Aquaman",
			Difficulty:       DifficultyIntermediate,
			Duration:         45,
			CaloriesEstimate: 400,
			ActivityType:     ActivitySwimming,
			EquipmentNeeded:  []string{"Pool", "Goggles"},
			Instructions: []string{
				"Warm-up: 200m easy swim",
				"10x 100m freestyle with 30 seconds rest",
				"5x 50m backstroke with 20 seconds rest",
				"5x 50m breaststroke with 20 seconds rest",
				"Cool-down: 200m easy swim",
			},
		},
		{
			Title:            "Dark Knight Combat Training",
			Description:      "Master combat fitness like Batman",
			Difficulty:       DifficultyAdvanced,
			Duration:         60,
			CaloriesEstimate: 700,
			ActivityType:     ActivityBoxing,
			EquipmentNeeded:  []string{"Boxing gloves", "Heavy bag", "Jump rope"},
			Instructions: []string{
				"Jump rope: 10 minutes",
				"Shadow boxing: 3 rounds of 3 minutes",
				"Heavy bag work: 5 rounds of 3 minutes",
				"Speed bag: 3 rounds of 2 minutes",
				"Core work: 15 minutes",
				"Cool-down: 10 minutes stretching",
			},
		},
		{
			Title:            "High-Tech HIIT",
			Description:      "Burn calories efficiently like Iron Man",
			Difficulty:       DifficultyIntermediate,
			Duration:         30,
			CaloriesEstimate: 400,
			ActivityType:     ActivityHIIT,
			EquipmentNeeded:  []string{"None"},
			Instructions: []string{
				"Warm-up: 5 minutes light movement",
				"Circuit (repeat 4 times):",
				"- Burpees: 30 seconds",
				"- Mountain climbers: 30 seconds",
				"- Jump squats: 30 seconds",
				"- High knees: 30 seconds",
				"- Rest: 1 minute",
				"Cool-down: 5 minutes stretching",
			},
		},
		{
			Title:            "Power Cycling Challenge",
			Description:      "Build leg strength and endurance",
			Difficulty:       DifficultyIntermediate,
			Duration:         60,
			CaloriesEstimate: 550,
			ActivityType:     ActivityCycling,
			EquipmentNeeded:  []string{"Bike", "Helmet"},
			Instructions: []string{
				"Warm-up: 10 minutes easy pace",
				"Main set: 40 minutes varied intensity",
				"- 5 minutes moderate pace",
				"- 2 minutes high intensity",
				"- Repeat 5 times",
				"Cool-down: 10 minutes easy pace",
			},
		},
	}
}
