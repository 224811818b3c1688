package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukaan/config"
	"dukaan/internal/database"
	"dukaan/internal/models"
)

func auditRepo(t *testing.T) *AuditLogRepository {
	t.Helper()
	db, err := database.NewDB(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return NewAuditLogRepository(db)
}

func TestAuditLogRepository(t *testing.T) {
	repo := auditRepo(t)

	require.NoError(t, repo.Create(&models.AuditLog{
		Action:     "CONFIRMATION_DENIED",
		Reason:     "INVALID_SIGNATURE",
		GatewayRef: "order_1",
		Amount:     10000,
		IP:         "203.0.113.9",
	}))
	require.NoError(t, repo.Create(&models.AuditLog{
		Action:     "ORDER_CONFIRMED",
		DocumentID: "order_2",
		GatewayRef: "order_2",
		Amount:     5000,
	}))

	denied, err := repo.ListByAction("CONFIRMATION_DENIED", 10)
	require.NoError(t, err)
	require.Len(t, denied, 1)
	assert.Equal(t, "INVALID_SIGNATURE", denied[0].Reason)
	assert.Equal(t, "order_1", denied[0].GatewayRef)
	assert.False(t, denied[0].CreatedAt.IsZero())

	confirmed, err := repo.ListByAction("ORDER_CONFIRMED", 10)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "order_2", confirmed[0].DocumentID)
}
