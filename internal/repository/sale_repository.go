package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
)

// SaleRepository encapsulates sale record persistence.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	Update(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
	Delete(ctx context.Context, id string) error
}

type saleRepository struct {
	pool *pgxpool.Pool
}

// NewSaleRepository instantiates repository.
func NewSaleRepository(pool *pgxpool.Pool) SaleRepository {
	return &saleRepository{pool: pool}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	const query = `
        INSERT INTO sales (cliente, valor_cents, data, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		sale.Cliente,
		sale.ValorCents,
		sale.Data,
		sale.Status,
	).Scan(&sale.ID, &sale.CreatedAt)
}

func (r *saleRepository) Update(ctx context.Context, sale *domain.Sale) error {
	const query = `
        UPDATE sales SET cliente=$1, valor_cents=$2, data=$3, status=$4
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		sale.Cliente,
		sale.ValorCents,
		sale.Data,
		sale.Status,
		sale.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	const query = `
        SELECT id, cliente, valor_cents, data, status, created_at
        FROM sales WHERE id=$1`
	var sale domain.Sale
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&sale.ID,
		&sale.Cliente,
		&sale.ValorCents,
		&sale.Data,
		&sale.Status,
		&sale.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	const query = `
        SELECT id, cliente, valor_cents, data, status, created_at
        FROM sales ORDER BY data DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Sale
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.Cliente,
			&sale.ValorCents,
			&sale.Data,
			&sale.Status,
			&sale.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, sale)
	}
	return result, rows.Err()
}

func (r *saleRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
