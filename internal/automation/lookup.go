package automation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/victoreder/admin-hublabel-sub000/internal/config"
)

// ErrNoAssetURL indicates the workflow document contained no usable link.
var ErrNoAssetURL = fmt.Errorf("no asset url found in workflow document")

// LookupService discovers changelog asset links inside workflow-automation
// documents, caching results in Redis by workflow id.
type LookupService struct {
	baseURL    string
	apiKey     string
	exclude    string
	cacheTTL   time.Duration
	httpClient *http.Client
	cache      *redis.Client
	logger     *zap.Logger
}

// NewLookupService builds the service. cache may be nil; lookups then always
// hit the automation API.
func NewLookupService(cfg config.AutomationConfig, cache *redis.Client, logger *zap.Logger) *LookupService {
	return &LookupService{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		exclude:    cfg.ExcludeSubstring,
		cacheTTL:   cfg.CacheTTL(),
		httpClient: &http.Client{Timeout: 20 * time.Second},
		cache:      cache,
		logger:     logger,
	}
}

// AssetURL returns the discovered asset link for a workflow id.
func (s *LookupService) AssetURL(ctx context.Context, workflowID string) (string, error) {
	cacheKey := "automation:asset:" + workflowID

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			return cached, nil
		}
		if err != nil && err != redis.Nil {
			s.logger.Warn("automation cache read failed", zap.Error(err))
		}
	}

	doc, err := s.fetchWorkflow(ctx, workflowID)
	if err != nil {
		return "", err
	}

	url, ok := FindAssetURL(doc, s.exclude)
	if !ok {
		return "", ErrNoAssetURL
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, url, s.cacheTTL).Err(); err != nil {
			s.logger.Warn("automation cache write failed", zap.Error(err))
		}
	}
	return url, nil
}

func (s *LookupService) fetchWorkflow(ctx context.Context, workflowID string) (any, error) {
	endpoint := fmt.Sprintf("%s/workflow/%s", s.baseURL, workflowID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Token "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("automation api returned status %d", resp.StatusCode)
	}

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode workflow document: %w", err)
	}
	return doc, nil
}
