package store

import (
	"context"

	"dukaan/internal/models"
)

// OrderStore persists confirmed orders keyed by document id. Save is a
// full-document overwrite: re-confirming the same id replaces the record,
// which is what makes client-side retries of a whole confirmation safe.
type OrderStore interface {
	Save(ctx context.Context, id string, rec *models.OrderRecord) error
	Get(ctx context.Context, id string) (*models.OrderRecord, error)
	List(ctx context.Context, limit int) (map[string]*models.OrderRecord, error)
	NewID() string
}
