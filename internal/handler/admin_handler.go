package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"dukaan/config"
	"dukaan/internal/auth"
	"dukaan/internal/domain"
	"dukaan/internal/store"
)

type AdminHandler struct {
	cfg   *config.Config
	store store.OrderStore
}

func NewAdminHandler(cfg *config.Config, orderStore store.OrderStore) *AdminHandler {
	return &AdminHandler{cfg: cfg, store: orderStore}
}

// Login checks the configured admin credential and issues an access token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}
	if h.cfg.Admin.PasswordHash == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin login disabled"})
		return
	}
	if req.Email != h.cfg.Admin.Email ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.Admin.PasswordHash), []byte(req.Password)) != nil {
		log.Printf("[Admin] failed login attempt email=%s ip=%s", req.Email, c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	token, err := auth.GenerateAccessToken(&h.cfg.JWT, req.Email, domain.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"expires_in":   int64(h.cfg.JWT.AccessExpiry.Seconds()),
	})
}

// GetOrder returns one persisted order document by id.
func (h *AdminHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"document_id": id, "order": rec})
}

// ListOrders returns the most recent order documents.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	orders, err := h.store.List(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[Admin] list orders failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}
