package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukaan/config"
	"dukaan/internal/database"
	"dukaan/internal/models"
	"dukaan/internal/store"
	"dukaan/pkg/payment"
)

type memStore struct {
	saved map[string]*models.OrderRecord
	idSeq int
}

func (s *memStore) Save(ctx context.Context, id string, rec *models.OrderRecord) error {
	cp := *rec
	s.saved[id] = &cp
	return nil
}

func (s *memStore) Get(ctx context.Context, id string) (*models.OrderRecord, error) {
	rec, ok := s.saved[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return rec, nil
}

func (s *memStore) List(ctx context.Context, limit int) (map[string]*models.OrderRecord, error) {
	return s.saved, nil
}

func (s *memStore) NewID() string {
	s.idSeq++
	return fmt.Sprintf("doc_%d", s.idSeq)
}

var _ store.OrderStore = (*memStore)(nil)

func TestSetup(t *testing.T) {
	cfg := config.Load()
	cfg.Razorpay.KeySecret = "router_test_secret"
	db, err := database.NewDB(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	r := Setup(cfg, payment.NewStubGateway(), &memStore{saved: map[string]*models.OrderRecord{}}, nil, db)

	t.Run("health endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin routes are guarded", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("payment routes exist", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/payments/orders", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
