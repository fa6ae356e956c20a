package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/repository"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// VersionService manages changelog entries.
type VersionService struct {
	versions repository.VersionRepository
}

// VersionInput describes create/edit payloads.
type VersionInput struct {
	Versao       string
	Descricao    string
	LinkDownload string
}

// NewVersionService constructs the service.
func NewVersionService(versions repository.VersionRepository) *VersionService {
	return &VersionService{versions: versions}
}

// Create stores a new changelog entry with a fresh share token.
func (s *VersionService) Create(ctx context.Context, input VersionInput) (*domain.Version, error) {
	if strings.TrimSpace(input.Versao) == "" {
		return nil, apperrors.NewValidationError("versao obrigatória", nil)
	}
	version := &domain.Version{
		Versao:       strings.TrimSpace(input.Versao),
		Descricao:    input.Descricao,
		LinkDownload: input.LinkDownload,
		ShareToken:   uuid.NewString(),
	}
	if err := s.versions.Create(ctx, version); err != nil {
		return nil, err
	}
	return version, nil
}

// Update edits an existing entry; the share token is immutable.
func (s *VersionService) Update(ctx context.Context, id string, input VersionInput) (*domain.Version, error) {
	if strings.TrimSpace(input.Versao) == "" {
		return nil, apperrors.NewValidationError("versao obrigatória", nil)
	}
	version, err := s.versions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	version.Versao = strings.TrimSpace(input.Versao)
	version.Descricao = input.Descricao
	version.LinkDownload = input.LinkDownload
	if err := s.versions.Update(ctx, version); err != nil {
		return nil, err
	}
	return version, nil
}

// List returns entries newest first.
func (s *VersionService) List(ctx context.Context) ([]domain.Version, error) {
	return s.versions.List(ctx)
}

// Get returns one entry.
func (s *VersionService) Get(ctx context.Context, id string) (*domain.Version, error) {
	return s.versions.GetByID(ctx, id)
}

// GetByShareToken resolves the public changelog lookup.
func (s *VersionService) GetByShareToken(ctx context.Context, token string) (*domain.Version, error) {
	return s.versions.GetByShareToken(ctx, token)
}

// Delete removes an entry.
func (s *VersionService) Delete(ctx context.Context, id string) error {
	return s.versions.Delete(ctx, id)
}

// SuggestNext proposes the next version string based on the latest entry.
func (s *VersionService) SuggestNext(ctx context.Context) (string, error) {
	latest, err := s.versions.GetLatest(ctx)
	if err != nil {
		if err == pgx.ErrNoRows {
			return NextVersion(""), nil
		}
		return "", err
	}
	return NextVersion(latest.Versao), nil
}

// NextVersion increments the last numeric segment of a dotted version string.
// An empty or non-numeric input yields "1.0.0".
func NextVersion(latest string) string {
	latest = strings.TrimSpace(latest)
	if latest == "" {
		return "1.0.0"
	}
	parts := strings.Split(latest, ".")
	last := parts[len(parts)-1]
	n, err := strconv.Atoi(last)
	if err != nil {
		return "1.0.0"
	}
	parts[len(parts)-1] = strconv.Itoa(n + 1)
	return strings.Join(parts, ".")
}
