package repository

import (
	"errors"

	"github.com/DevConnect/devconnect_backend/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository プロフィールに関するデータベース操作を行うインターフェース
type ProfileRepository interface {
	FindByUserID(userID uint) (*models.Profile, error)
	List() ([]models.Profile, error)
	Upsert(profile *models.Profile) error
	DeleteByUserID(userID uint) error
	AddExperience(exp *models.Experience) error
	RemoveExperience(profileID, expID uint) error
	AddEducation(edu *models.Education) error
	RemoveEducation(profileID, eduID uint) error
}

// profileRepository ProfileRepositoryの実装
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository ProfileRepositoryを作成
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// 職歴・学歴は新しい順で返す
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("id DESC")
}

// FindByUserID ユーザーIDでプロフィールを検索
func (r *profileRepository) FindByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).
		Preload("User").
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst).
		First(&profile).Error; err != nil {
		return nil, err
	}

	// 職歴・学歴がない場合もJSONで空配列になるようにする
	if profile.Experience == nil {
		profile.Experience = []models.Experience{}
	}
	if profile.Education == nil {
		profile.Education = []models.Education{}
	}

	return &profile, nil
}

// List 全プロフィールを取得
func (r *profileRepository) List() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.
		Preload("User").
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst).
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Upsert ユーザーIDをキーにプロフィールを作成または更新
func (r *profileRepository) Upsert(profile *models.Profile) error {
	var existing models.Profile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Save(profile).Error
}

// DeleteByUserID ユーザーのプロフィールを削除（職歴・学歴も含む）
func (r *profileRepository) DeleteByUserID(userID uint) error {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := r.db.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&profile).Error
}

// AddExperience 職歴エントリを追加
func (r *profileRepository) AddExperience(exp *models.Experience) error {
	return r.db.Create(exp).Error
}

// RemoveExperience 職歴エントリを削除
// 該当エントリがなくてもエラーにしない
func (r *profileRepository) RemoveExperience(profileID, expID uint) error {
	return r.db.Where("profile_id = ? AND id = ?", profileID, expID).
		Delete(&models.Experience{}).Error
}

// AddEducation 学歴エントリを追加
func (r *profileRepository) AddEducation(edu *models.Education) error {
	return r.db.Create(edu).Error
}

// RemoveEducation 学歴エントリを削除
// 該当エントリがなくてもエラーにしない
func (r *profileRepository) RemoveEducation(profileID, eduID uint) error {
	return r.db.Where("profile_id = ? AND id = ?", profileID, eduID).
		Delete(&models.Education{}).Error
}
