package db

import (
	"github.com/cealmeidanos/octofit/internal/models"
	"gorm.io/gorm"
)

type LeaderboardRepository struct {
	database *gorm.DB
}

func NewLeaderboardRepository(database *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{database: database}
}

func (repo *LeaderboardRepository) Create(entry *models.LeaderboardEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *LeaderboardRepository) FindByID(entryID uint) (models.LeaderboardEntry, error) {
	var entry models.LeaderboardEntry
	if err := repo.database.First(&entry, entryID).Error; err != nil {
		return models.LeaderboardEntry{}, err
	}
	return entry, nil
}

// ListByRank returns entries best rank first; unranked entries sort last.
func (repo *LeaderboardRepository) ListByRank() ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0)
	if err := repo.database.Order("rank IS NULL, rank ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByCreation returns entries in insertion order. The ranking pass depends
// on this ordering as its tie-break.
func (repo *LeaderboardRepository) ListByCreation() ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0)
	if err := repo.database.Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *LeaderboardRepository) ListTop(limit int) ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0)
	if err := repo.database.Order("rank IS NULL, rank ASC, id ASC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *LeaderboardRepository) ListByTeam(team string) ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0)
	if err := repo.database.Where("team = ?", team).Order("rank IS NULL, rank ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *LeaderboardRepository) UpdateRank(entryID uint, rank int) error {
	return repo.database.Model(&models.LeaderboardEntry{}).Where("id = ?", entryID).Update("rank", rank).Error
}

func (repo *LeaderboardRepository) UpdateByID(entryID uint, updates map[string]any) error {
	return repo.database.Model(&models.LeaderboardEntry{}).Where("id = ?", entryID).Updates(updates).Error
}

func (repo *LeaderboardRepository) Delete(entryID uint) error {
	return repo.database.Delete(&models.LeaderboardEntry{}, entryID).Error
}

func (repo *LeaderboardRepository) DeleteAll() error {
	return repo.database.Where("1 = 1").Delete(&models.LeaderboardEntry{}).Error
}

func (repo *LeaderboardRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.LeaderboardEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
