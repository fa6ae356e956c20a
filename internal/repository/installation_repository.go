package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
)

// InstallationRepository encapsulates installation ticket persistence.
type InstallationRepository interface {
	Create(ctx context.Context, inst *domain.Installation) error
	Update(ctx context.Context, inst *domain.Installation) error
	UpdateStatus(ctx context.Context, id string, status domain.InstallationStatus, clearColetar bool) error
	GetByID(ctx context.Context, id string) (*domain.Installation, error)
	List(ctx context.Context) ([]domain.Installation, error)
	Delete(ctx context.Context, id string) error
}

type installationRepository struct {
	pool *pgxpool.Pool
}

// NewInstallationRepository instantiates repository.
func NewInstallationRepository(pool *pgxpool.Pool) InstallationRepository {
	return &installationRepository{pool: pool}
}

func (r *installationRepository) Create(ctx context.Context, inst *domain.Installation) error {
	const query = `
        INSERT INTO installations (telefone, dominio, status, prioridade, coletar_acessos, acessos, arquivos)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		inst.Telefone,
		inst.Dominio,
		inst.Status,
		inst.Prioridade,
		inst.ColetarAcessos,
		inst.Acessos,
		inst.Arquivos,
	).Scan(&inst.ID, &inst.CreatedAt, &inst.UpdatedAt)
}

func (r *installationRepository) Update(ctx context.Context, inst *domain.Installation) error {
	const query = `
        UPDATE installations SET telefone=$1, dominio=$2, prioridade=$3, coletar_acessos=$4,
            acessos=$5, arquivos=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		inst.Telefone,
		inst.Dominio,
		inst.Prioridade,
		inst.ColetarAcessos,
		inst.Acessos,
		inst.Arquivos,
		inst.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateStatus writes only the status column, optionally clearing the
// collect-access flag in the same row update.
func (r *installationRepository) UpdateStatus(ctx context.Context, id string, status domain.InstallationStatus, clearColetar bool) error {
	query := `UPDATE installations SET status=$1, updated_at=NOW() WHERE id=$2`
	if clearColetar {
		query = `UPDATE installations SET status=$1, coletar_acessos=FALSE, updated_at=NOW() WHERE id=$2`
	}
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *installationRepository) GetByID(ctx context.Context, id string) (*domain.Installation, error) {
	const query = `
        SELECT id, telefone, dominio, status, prioridade, coletar_acessos, acessos, arquivos, created_at, updated_at
        FROM installations WHERE id=$1`
	var inst domain.Installation
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&inst.ID,
		&inst.Telefone,
		&inst.Dominio,
		&inst.Status,
		&inst.Prioridade,
		&inst.ColetarAcessos,
		&inst.Acessos,
		&inst.Arquivos,
		&inst.CreatedAt,
		&inst.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *installationRepository) List(ctx context.Context) ([]domain.Installation, error) {
	const query = `
        SELECT id, telefone, dominio, status, prioridade, coletar_acessos, acessos, arquivos, created_at, updated_at
        FROM installations ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Installation
	for rows.Next() {
		var inst domain.Installation
		if err := rows.Scan(
			&inst.ID,
			&inst.Telefone,
			&inst.Dominio,
			&inst.Status,
			&inst.Prioridade,
			&inst.ColetarAcessos,
			&inst.Acessos,
			&inst.Arquivos,
			&inst.CreatedAt,
			&inst.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, inst)
	}
	return result, rows.Err()
}

func (r *installationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM installations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
