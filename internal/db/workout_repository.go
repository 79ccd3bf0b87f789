package db

import (
	"github.com/cealmeidanos/octofit/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) Create(workout *models.Workout) error {
	return repo.database.Create(workout).Error
}

func (repo *WorkoutRepository) FindByID(workoutID uint) (models.Workout, error) {
	var workout models.Workout
	if err := repo.database.First(&workout, workoutID).Error; err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

func (repo *WorkoutRepository) List() ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.Order("id ASC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) ListByDifficulty(difficulty string) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.Where("difficulty = ?", difficulty).Order("id ASC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) ListByType(activityType string) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.Where("activity_type = ?", activityType).Order("id ASC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

// Save writes the full record. Used for updates so the JSON serializers on
// EquipmentNeeded and Instructions apply.
func (repo *WorkoutRepository) Save(workout *models.Workout) error {
	return repo.database.Save(workout).Error
}

func (repo *WorkoutRepository) Delete(workoutID uint) error {
	return repo.database.Delete(&models.Workout{}, workoutID).Error
}

func (repo *WorkoutRepository) DeleteAll() error {
	return repo.database.Where("1 = 1").Delete(&models.Workout{}).Error
}

func (repo *WorkoutRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Workout{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
