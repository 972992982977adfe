package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DevConnect/devconnect_backend/internal/config"
)

// GithubService GitHub APIとの連携を管理するサービス
type GithubService interface {
	// ユーザーの公開リポジトリ一覧を取得する（新しい順で最大5件）
	GetUserRepos(username string) (json.RawMessage, error)
}

// githubService GithubServiceの実装
type githubService struct {
	config     *config.Config
	httpClient *http.Client
	baseURL    string
}

// NewGithubService GithubServiceを作成
func NewGithubService(cfg *config.Config) GithubService {
	return &githubService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: "https://api.github.com",
	}
}

// GetUserRepos ユーザーのリポジトリ一覧を取得
func (s *githubService) GetUserRepos(username string) (json.RawMessage, error) {
	// リクエストURLを構築
	query := url.Values{}
	query.Set("per_page", "5")
	query.Set("sort", "created:asc")
	if s.config.Github.ClientID != "" {
		query.Set("client_id", s.config.Github.ClientID)
		query.Set("client_secret", s.config.Github.ClientSecret)
	}

	reqURL := fmt.Sprintf("%s/users/%s/repos?%s", s.baseURL, url.PathEscape(username), query.Encode())

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "devconnect-backend")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoGithubProfile
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
