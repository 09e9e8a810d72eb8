// Package imagesearch は Pexels の画像検索 API を呼び出すクライアントです。
package imagesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.pexels.com/v1"

var (
	// ErrMissingAPIKey は API キーが設定されていない場合のエラー
	ErrMissingAPIKey = errors.New("imagesearch: api key not set")
	// ErrNoResults は検索結果が0件の場合のエラー
	ErrNoResults = errors.New("no image found")
)

// StatusError はプロバイダが成功以外のステータスを返した場合のエラー
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Pexels API error: %s", e.Status)
}

// Photo は検索結果の先頭1件
type Photo struct {
	PageURL      string `json:"url"`
	ImageURL     string `json:"image_url"`
	Photographer string `json:"photographer"`
}

type searchResponse struct {
	Photos []struct {
		URL          string `json:"url"`
		Photographer string `json:"photographer"`
		Src          struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// Client は Pexels 検索クライアント
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL は接続先を差し替えます (テスト用)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient は HTTP クライアントを差し替えます
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchOne は query で1件だけ検索します。0件なら ErrNoResults。
func (c *Client) SearchOne(ctx context.Context, query string) (*Photo, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("imagesearch.SearchOne: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagesearch.SearchOne: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("imagesearch.SearchOne: decode response: %w", err)
	}
	if len(body.Photos) == 0 {
		return nil, ErrNoResults
	}

	first := body.Photos[0]
	return &Photo{
		PageURL:      first.URL,
		ImageURL:     first.Src.Large,
		Photographer: first.Photographer,
	}, nil
}
