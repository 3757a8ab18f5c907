package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopease/helpdesk/internal/domain"
)

// NotificationRepository defines persistence access for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Notification, error)
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a Postgres-backed implementation.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	const query = `
        INSERT INTO notifications (customerid, type, message)
        VALUES ($1, $2, $3)
        RETURNING notificationid, sentat`

	return r.pool.QueryRow(ctx, query,
		notification.CustomerID,
		notification.Type,
		notification.Message,
	).Scan(&notification.ID, &notification.SentAt)
}

func (r *notificationRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Notification, error) {
	const query = `
        SELECT notificationid, customerid, type, message, sentat
        FROM notifications WHERE customerid=$1 ORDER BY sentat DESC`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notification
	for rows.Next() {
		var notification domain.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.CustomerID,
			&notification.Type,
			&notification.Message,
			&notification.SentAt,
		); err != nil {
			return nil, err
		}
		result = append(result, notification)
	}
	return result, rows.Err()
}
