package services

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/DevConnect/devconnect_backend/internal/models"
	"github.com/DevConnect/devconnect_backend/internal/repository"
	"github.com/DevConnect/devconnect_backend/internal/utils"

	"gorm.io/datatypes"
)

// ProfileService プロフィールに関するサービスインターフェース
type ProfileService interface {
	GetCurrent(userID uint) (*models.Profile, error)
	GetByUserID(userID uint) (*models.Profile, error)
	List() ([]models.Profile, error)
	Upsert(userID uint, input ProfileInput) (*models.Profile, error)
	DeleteAccount(userID uint) error
	AddExperience(userID uint, input ExperienceInput) (*models.Profile, error)
	DeleteExperience(userID, expID uint) (*models.Profile, error)
	AddEducation(userID uint, input EducationInput) (*models.Profile, error)
	DeleteEducation(userID, eduID uint) (*models.Profile, error)
}

// profileService ProfileServiceの実装
type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
}

// NewProfileService ProfileServiceを作成
func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
	}
}

// SkillList スキル一覧
// JSON配列とカンマ区切り文字列のどちらでも受け付ける
type SkillList []string

// UnmarshalJSON 配列またはカンマ区切り文字列からスキル一覧を復元する
func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parts := strings.Split(raw, ",")
	list = make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	*s = list
	return nil
}

// ProfileInput プロフィール作成・更新の入力
type ProfileInput struct {
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Website        string    `json:"website"`
	Bio            string    `json:"bio"`
	Skills         SkillList `json:"skills" binding:"required"`
	Status         string    `json:"status" binding:"required"`
	GithubUsername string    `json:"githubusername"`
	Youtube        string    `json:"youtube"`
	Twitter        string    `json:"twitter"`
	Instagram      string    `json:"instagram"`
	Linkedin       string    `json:"linkedin"`
	Facebook       string    `json:"facebook"`
}

// ExperienceInput 職歴エントリの入力
type ExperienceInput struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationInput 学歴エントリの入力
type EducationInput struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// GetCurrent 自分のプロフィールを取得
func (s *profileService) GetCurrent(userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, notFoundAs(err, ErrNoProfile)
	}
	return profile, nil
}

// GetByUserID ユーザーIDでプロフィールを取得
func (s *profileService) GetByUserID(userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, notFoundAs(err, ErrProfileNotFound)
	}
	return profile, nil
}

// List 全プロフィールを取得
func (s *profileService) List() ([]models.Profile, error) {
	return s.profileRepo.List()
}

// Upsert プロフィールを作成または更新
func (s *profileService) Upsert(userID uint, input ProfileInput) (*models.Profile, error) {
	// ユーザーが存在するか確認
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}

	profile := &models.Profile{
		UserID:         userID,
		Company:        input.Company,
		Location:       input.Location,
		Website:        utils.NormalizeURL(input.Website),
		Bio:            input.Bio,
		Status:         input.Status,
		GithubUsername: input.GithubUsername,
		Skills:         datatypes.JSONSlice[string](input.Skills),
		Social: models.Social{
			Youtube:   utils.NormalizeURL(input.Youtube),
			Twitter:   utils.NormalizeURL(input.Twitter),
			Instagram: utils.NormalizeURL(input.Instagram),
			Linkedin:  utils.NormalizeURL(input.Linkedin),
			Facebook:  utils.NormalizeURL(input.Facebook),
		},
	}

	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(userID)
}

// DeleteAccount プロフィール・投稿・ユーザーをまとめて削除
func (s *profileService) DeleteAccount(userID uint) error {
	if err := s.postRepo.DeleteByUserID(userID); err != nil {
		return err
	}
	if err := s.profileRepo.DeleteByUserID(userID); err != nil {
		return err
	}
	return s.userRepo.Delete(userID)
}

// AddExperience 職歴エントリを追加
func (s *profileService) AddExperience(userID uint, input ExperienceInput) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, notFoundAs(err, ErrNoProfile)
	}

	from, err := parseDate(input.From)
	if err != nil {
		return nil, ErrInvalidDate
	}
	to, err := parseOptionalDate(input.To)
	if err != nil {
		return nil, ErrInvalidDate
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        from,
		To:          to,
		Current:     input.Current,
		Description: input.Description,
	}

	if err := s.profileRepo.AddExperience(exp); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(userID)
}

// DeleteExperience 職歴エントリを削除
// 該当IDがなくても成功として扱う
func (s *profileService) DeleteExperience(userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, notFoundAs(err, ErrNoProfile)
	}

	if err := s.profileRepo.RemoveExperience(profile.ID, expID); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(userID)
}

// AddEducation 学歴エントリを追加
func (s *profileService) AddEducation(userID uint, input EducationInput) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, notFoundAs(err, ErrNoProfile)
	}

	from, err := parseDate(input.From)
	if err != nil {
		return nil, ErrInvalidDate
	}
	to, err := parseOptionalDate(input.To)
	if err != nil {
		return nil, ErrInvalidDate
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      input.Current,
		Description:  input.Description,
	}

	if err := s.profileRepo.AddEducation(edu); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(userID)
}

// DeleteEducation 学歴エントリを削除
// 該当IDがなくても成功として扱う
func (s *profileService) DeleteEducation(userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, notFoundAs(err, ErrNoProfile)
	}

	if err := s.profileRepo.RemoveEducation(profile.ID, eduID); err != nil {
		return nil, err
	}

	return s.profileRepo.FindByUserID(userID)
}

// parseDate "2006-01-02" またはRFC3339形式の日付を解析する
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// parseOptionalDate 空文字はnilとして扱う
func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
