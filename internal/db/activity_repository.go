package db

import (
	"github.com/cealmeidanos/octofit/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) Create(activity *models.Activity) error {
	return repo.database.Create(activity).Error
}

func (repo *ActivityRepository) FindByID(activityID uint) (models.Activity, error) {
	var activity models.Activity
	if err := repo.database.First(&activity, activityID).Error; err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

// List returns activities newest first.
func (repo *ActivityRepository) List() ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.Order("date DESC, id DESC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) ListByUserEmail(email string) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.Where("user_email = ?", email).Order("id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) ListByType(activityType string) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.Where("activity_type = ?", activityType).Order("date DESC, id DESC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) UpdateByID(activityID uint, updates map[string]any) error {
	return repo.database.Model(&models.Activity{}).Where("id = ?", activityID).Updates(updates).Error
}

func (repo *ActivityRepository) Delete(activityID uint) error {
	return repo.database.Delete(&models.Activity{}, activityID).Error
}

func (repo *ActivityRepository) DeleteAll() error {
	return repo.database.Where("1 = 1").Delete(&models.Activity{}).Error
}

func (repo *ActivityRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Activity{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
