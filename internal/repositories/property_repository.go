package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"luxe-estates/internal/models"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	if property.InteriorImages == nil {
		property.InteriorImages = []string{}
	}

	query := `
		INSERT INTO properties
			(id, title, description, location, price, bedrooms, bathrooms, sqft,
			 property_type, transaction_type, main_image, interior_images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query,
		property.ID,
		property.Title,
		property.Description,
		property.Location,
		property.Price,
		property.Bedrooms,
		property.Bathrooms,
		property.Sqft,
		property.PropertyType,
		property.TransactionType,
		property.MainImage,
		property.InteriorImages,
		property.CreatedAt,
		property.UpdatedAt,
	)

	return err
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]models.Property, error) {
	query := `SELECT id, title, description, location, price, bedrooms, bathrooms, sqft,
			property_type, transaction_type, main_image, interior_images, created_at, updated_at
		FROM properties ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var p models.Property
		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Location,
			&p.Price,
			&p.Bedrooms,
			&p.Bathrooms,
			&p.Sqft,
			&p.PropertyType,
			&p.TransactionType,
			&p.MainImage,
			&p.InteriorImages,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	return properties, rows.Err()
}

// ExistsByTitle reports whether a listing with the title is already present.
// The seed command uses it to stay idempotent.
func (r *PropertyRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM properties WHERE title = $1)`, title).Scan(&exists)
	if err != nil && err != pgx.ErrNoRows {
		return false, err
	}
	return exists, nil
}
