package db

import (
	"github.com/cealmeidanos/octofit/internal/models"
	"gorm.io/gorm"
)

type TeamRepository struct {
	database *gorm.DB
}

func NewTeamRepository(database *gorm.DB) *TeamRepository {
	return &TeamRepository{database: database}
}

func (repo *TeamRepository) Create(team *models.Team) error {
	return repo.database.Create(team).Error
}

func (repo *TeamRepository) FindByID(teamID uint) (models.Team, error) {
	var team models.Team
	if err := repo.database.First(&team, teamID).Error; err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (repo *TeamRepository) FindByName(name string) (models.Team, error) {
	var team models.Team
	if err := repo.database.Where("name = ?", name).First(&team).Error; err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (repo *TeamRepository) ExistsByName(name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Team{}).
		Where("name = ?", name).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *TeamRepository) List() ([]models.Team, error) {
	teams := make([]models.Team, 0)
	if err := repo.database.Order("id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (repo *TeamRepository) UpdateByID(teamID uint, updates map[string]any) error {
	return repo.database.Model(&models.Team{}).Where("id = ?", teamID).Updates(updates).Error
}

// UpdateMembers replaces the denormalized member-email list. Struct-based
// update so the JSON serializer on Members applies.
func (repo *TeamRepository) UpdateMembers(teamID uint, members []string) error {
	team := models.Team{ID: teamID, Members: members}
	return repo.database.Model(&team).Select("members").Updates(&team).Error
}

func (repo *TeamRepository) Delete(teamID uint) error {
	return repo.database.Delete(&models.Team{}, teamID).Error
}

func (repo *TeamRepository) DeleteAll() error {
	return repo.database.Where("1 = 1").Delete(&models.Team{}).Error
}

func (repo *TeamRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Team{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
