package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"luxe-estates/internal/models"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	message.Prepare()

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.ReceivedAt = time.Now()

	query := `
		INSERT INTO contact_messages (id, name, email, phone, message, is_read, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Phone,
		message.Message,
		message.IsRead,
		message.ReceivedAt,
	)

	return err
}
