package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/victoreder/admin-hublabel-sub000/internal/config"
	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
)

// Store abstracts the hosted blob storage used for ticket attachments.
type Store interface {
	Upload(ctx context.Context, filename string, data []byte, contentType string) (domain.Arquivo, error)
	RemoveAll(ctx context.Context, urls []string)
}

// publicURLPattern matches the fixed public object URL shape of the hosted
// storage: .../storage/v1/object/public/<bucket>/<path>.
var publicURLPattern = regexp.MustCompile(`/storage/v1/object/public/([^/]+)/(.+)$`)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Client talks to the storage REST API of the hosted database project.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a storage client from config.
func NewClient(cfg config.StorageConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		bucket:     cfg.Bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Upload stores data under a millisecond-timestamped object path and returns
// the attachment reference with its public URL.
func (c *Client) Upload(ctx context.Context, filename string, data []byte, contentType string) (domain.Arquivo, error) {
	objectPath := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFilename(filename))

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return domain.Arquivo{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Arquivo{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Arquivo{}, fmt.Errorf("storage upload failed: status %d: %s", resp.StatusCode, string(body))
	}

	return domain.Arquivo{
		Name: filename,
		URL:  c.PublicURL(objectPath),
	}, nil
}

// PublicURL builds the public object URL for a path in the configured bucket.
func (c *Client) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectPath)
}

// RemoveAll deletes the objects behind the given public URLs. URLs that do not
// match the public URL pattern are skipped; failures are logged and swallowed.
func (c *Client) RemoveAll(ctx context.Context, urls []string) {
	for _, url := range urls {
		bucket, objectPath, ok := ParsePublicURL(url)
		if !ok {
			continue
		}
		if err := c.remove(ctx, bucket, objectPath); err != nil {
			c.logger.Warn("storage object removal failed",
				zap.String("bucket", bucket),
				zap.String("path", objectPath),
				zap.Error(err))
		}
	}
}

func (c *Client) remove(ctx context.Context, bucket, objectPath string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage remove failed: status %d", resp.StatusCode)
	}
	return nil
}

// ParsePublicURL extracts (bucket, path) from a public object URL. ok is false
// when the URL does not have the expected shape.
func ParsePublicURL(url string) (bucket, objectPath string, ok bool) {
	match := publicURLPattern.FindStringSubmatch(url)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}

// SanitizeFilename replaces characters unsafe for object paths.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if name == "" {
		return "arquivo"
	}
	return name
}
