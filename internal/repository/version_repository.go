package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
)

// VersionRepository encapsulates changelog entry persistence.
type VersionRepository interface {
	Create(ctx context.Context, version *domain.Version) error
	Update(ctx context.Context, version *domain.Version) error
	GetByID(ctx context.Context, id string) (*domain.Version, error)
	GetByShareToken(ctx context.Context, token string) (*domain.Version, error)
	GetLatest(ctx context.Context) (*domain.Version, error)
	List(ctx context.Context) ([]domain.Version, error)
	Delete(ctx context.Context, id string) error
}

type versionRepository struct {
	pool *pgxpool.Pool
}

// NewVersionRepository instantiates repository.
func NewVersionRepository(pool *pgxpool.Pool) VersionRepository {
	return &versionRepository{pool: pool}
}

func (r *versionRepository) Create(ctx context.Context, version *domain.Version) error {
	const query = `
        INSERT INTO versions (versao, descricao, link_download, share_token)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		version.Versao,
		version.Descricao,
		version.LinkDownload,
		version.ShareToken,
	).Scan(&version.ID, &version.CreatedAt)
}

func (r *versionRepository) Update(ctx context.Context, version *domain.Version) error {
	const query = `
        UPDATE versions SET versao=$1, descricao=$2, link_download=$3
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		version.Versao,
		version.Descricao,
		version.LinkDownload,
		version.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *versionRepository) GetByID(ctx context.Context, id string) (*domain.Version, error) {
	const query = `
        SELECT id, versao, descricao, link_download, share_token, created_at
        FROM versions WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *versionRepository) GetByShareToken(ctx context.Context, token string) (*domain.Version, error) {
	const query = `
        SELECT id, versao, descricao, link_download, share_token, created_at
        FROM versions WHERE share_token=$1`
	return r.fetchSingle(ctx, query, token)
}

func (r *versionRepository) GetLatest(ctx context.Context) (*domain.Version, error) {
	const query = `
        SELECT id, versao, descricao, link_download, share_token, created_at
        FROM versions ORDER BY created_at DESC LIMIT 1`
	var version domain.Version
	if err := r.pool.QueryRow(ctx, query).Scan(
		&version.ID,
		&version.Versao,
		&version.Descricao,
		&version.LinkDownload,
		&version.ShareToken,
		&version.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *versionRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Version, error) {
	var version domain.Version
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&version.ID,
		&version.Versao,
		&version.Descricao,
		&version.LinkDownload,
		&version.ShareToken,
		&version.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *versionRepository) List(ctx context.Context) ([]domain.Version, error) {
	const query = `
        SELECT id, versao, descricao, link_download, share_token, created_at
        FROM versions ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Version
	for rows.Next() {
		var version domain.Version
		if err := rows.Scan(
			&version.ID,
			&version.Versao,
			&version.Descricao,
			&version.LinkDownload,
			&version.ShareToken,
			&version.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, version)
	}
	return result, rows.Err()
}

func (r *versionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM versions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
