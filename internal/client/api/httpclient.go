package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
)

// HTTPClient is the Client implementation over plain HTTP.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a client for the backend rooted at baseURL
// (e.g. "http://127.0.0.1:5000/api"). A zero timeout defaults to 10s.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// envelope is the generic backend response. Endpoint-specific payload fields
// are all optional; every response carries at least success.
type envelope struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Token       string              `json:"token"`
	User        *models.UserProfile `json:"user"`
	Secret      string              `json:"secret"`
	IsFavorited bool                `json:"is_favorited"`
	Favorites   []models.Favorite   `json:"favorites"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type codeRequest struct {
	Code string `json:"code"`
}

type removeFavoriteRequest struct {
	MovieID int64 `json:"movie_id"`
}

// do issues one request and decodes the envelope. authed controls both the
// Authorization header and the 401 interpretation: an authenticated call
// answered with 401 means the token was rejected, while a 401 on login is an
// ordinary success:false rejection.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authed bool) (*envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	if authed && resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if !env.Success {
		return nil, &ServerError{Message: env.Message}
	}
	return &env, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, models.UserProfile, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, false)
	if err != nil {
		return "", models.UserProfile{}, err
	}
	if env.Token == "" || env.User == nil {
		return "", models.UserProfile{}, fmt.Errorf("%w: incomplete login payload", ErrUnavailable)
	}
	return env.Token, *env.User, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (string, models.UserProfile, error) {
	env, err := c.do(ctx, http.MethodPost, "/signup", signupRequest{Name: name, Email: email, Password: password}, false)
	if err != nil {
		return "", models.UserProfile{}, err
	}
	if env.Token == "" || env.User == nil {
		return "", models.UserProfile{}, fmt.Errorf("%w: incomplete signup payload", ErrUnavailable)
	}
	return env.Token, *env.User, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (models.UserProfile, error) {
	env, err := c.do(ctx, http.MethodGet, "/profile", nil, true)
	if err != nil {
		return models.UserProfile{}, err
	}
	if env.User == nil {
		return models.UserProfile{}, fmt.Errorf("%w: missing profile payload", ErrUnavailable)
	}
	return *env.User, nil
}

func (c *HTTPClient) SetupTwoFA(ctx context.Context) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/setup-2fa", nil, true)
	if err != nil {
		return "", err
	}
	if env.Secret == "" {
		return "", fmt.Errorf("%w: missing secret", ErrUnavailable)
	}
	return env.Secret, nil
}

func (c *HTTPClient) VerifyTwoFA(ctx context.Context, code string) error {
	_, err := c.do(ctx, http.MethodPost, "/verify-2fa", codeRequest{Code: code}, true)
	return err
}

func (c *HTTPClient) DisableTwoFA(ctx context.Context, code string) error {
	_, err := c.do(ctx, http.MethodPost, "/disable-2fa", codeRequest{Code: code}, true)
	return err
}

func (c *HTTPClient) CheckFavorite(ctx context.Context, movieID int64) (bool, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/favorites/check/%d", movieID), nil, true)
	if err != nil {
		return false, err
	}
	return env.IsFavorited, nil
}

func (c *HTTPClient) AddFavorite(ctx context.Context, fav models.Favorite) error {
	_, err := c.do(ctx, http.MethodPost, "/favorites/add", fav, true)
	return err
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, movieID int64) error {
	_, err := c.do(ctx, http.MethodPost, "/favorites/remove", removeFavoriteRequest{MovieID: movieID}, true)
	return err
}

func (c *HTTPClient) Favorites(ctx context.Context) ([]models.Favorite, error) {
	env, err := c.do(ctx, http.MethodGet, "/favorites", nil, true)
	if err != nil {
		return nil, err
	}
	return env.Favorites, nil
}
