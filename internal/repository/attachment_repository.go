package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopease/helpdesk/internal/domain"
)

// AttachmentRepository defines persistence access for ticket attachments.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	ListByTicket(ctx context.Context, ticketID int64) ([]domain.Attachment, error)
	DeleteByTicket(ctx context.Context, ticketID int64) error
}

type attachmentRepository struct {
	pool *pgxpool.Pool
}

// NewAttachmentRepository returns a Postgres-backed implementation.
func NewAttachmentRepository(pool *pgxpool.Pool) AttachmentRepository {
	return &attachmentRepository{pool: pool}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	const query = `
        INSERT INTO attachments (ticketid, type, filepath, transcription)
        VALUES ($1, $2, $3, $4)
        RETURNING attachmentid`

	return r.pool.QueryRow(ctx, query,
		attachment.TicketID,
		attachment.Type,
		attachment.FilePath,
		attachment.Transcription,
	).Scan(&attachment.ID)
}

func (r *attachmentRepository) ListByTicket(ctx context.Context, ticketID int64) ([]domain.Attachment, error) {
	const query = `
        SELECT attachmentid, ticketid, type, filepath, transcription
        FROM attachments WHERE ticketid=$1 ORDER BY attachmentid`

	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Attachment
	for rows.Next() {
		var attachment domain.Attachment
		if err := rows.Scan(
			&attachment.ID,
			&attachment.TicketID,
			&attachment.Type,
			&attachment.FilePath,
			&attachment.Transcription,
		); err != nil {
			return nil, err
		}
		result = append(result, attachment)
	}
	return result, rows.Err()
}

func (r *attachmentRepository) DeleteByTicket(ctx context.Context, ticketID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM attachments WHERE ticketid=$1`, ticketID)
	return err
}
