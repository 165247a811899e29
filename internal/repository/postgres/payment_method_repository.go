package postgres

import (
	"context"
	"errors"
	"fmt"

	"escrow-service/internal/model"
	"escrow-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepositoryImpl)(nil)

type PaymentMethodRepositoryImpl struct {
	*TransactionManager
}

func NewPaymentMethodRepository(pool *pgxpool.Pool) repository.PaymentMethodRepository {
	return &PaymentMethodRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const paymentMethodColumns = `id, user_id, name, type, details, address, created_at`

func scanPaymentMethod(row rowScanner) (*model.PaymentMethod, error) {
	pm := &model.PaymentMethod{}
	if err := row.Scan(&pm.ID, &pm.UserID, &pm.Name, &pm.Type, &pm.Details, &pm.Address, &pm.CreatedAt); err != nil {
		return nil, err
	}
	return pm, nil
}

func (r *PaymentMethodRepositoryImpl) InsertPaymentMethod(ctx context.Context, method *model.PaymentMethod) error {
	query := `
        INSERT INTO payment_methods (user_id, name, type, details, address)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, method.UserID, method.Name, method.Type, method.Details, method.Address).
		Scan(&method.ID, &method.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepositoryImpl) GetPaymentMethodsByUser(ctx context.Context, userID int64) ([]*model.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods: %w", err)
	}
	methods, err := collectRows(rows, scanPaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment method: %w", err)
	}
	return methods, nil
}

func (r *PaymentMethodRepositoryImpl) GetPaymentMethodByName(ctx context.Context, userID int64, name string) (*model.PaymentMethod, error) {
	query := `
        SELECT ` + paymentMethodColumns + `
        FROM payment_methods
        WHERE user_id = $1 AND lower(replace(name, '_', ' ')) = lower(replace($2, '_', ' '))
        ORDER BY id
        LIMIT 1`

	pm, err := scanPaymentMethod(r.pool.QueryRow(ctx, query, userID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}
	return pm, nil
}
