package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dukaan/internal/domain"
	"dukaan/internal/middleware"
	"dukaan/internal/models"
	"dukaan/internal/repository"
	"dukaan/internal/service"
)

type OrderHandler struct {
	svc       *service.OrderService
	auditRepo *repository.AuditLogRepository
}

func NewOrderHandler(svc *service.OrderService, auditRepo *repository.AuditLogRepository) *OrderHandler {
	return &OrderHandler{svc: svc, auditRepo: auditRepo}
}

// Initiate creates a pending gateway order for the requested amount (paise)
// and returns the gateway's order id to the caller. No local persistence.
func (h *OrderHandler) Initiate(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  string(domain.ErrInvalidAmount),
			"error": "amount must be a positive integer in paise",
		})
		return
	}
	order, err := h.svc.Initiate(c.Request.Context(), req.Amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.audit(&models.AuditLog{
		Action:     domain.AuditOrderInitiated,
		UserID:     req.UserID,
		GatewayRef: order.ID,
		Amount:     order.Amount,
		IP:         c.ClientIP(),
	})
	c.JSON(http.StatusOK, gin.H{
		"order_id": order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
	})
}

// Confirm validates a completed payment and persists the order document.
// An Authorization bearer token is optional; when present it must verify
// and match the payload user.
func (h *OrderHandler) Confirm(c *gin.Context) {
	var req models.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  string(domain.ErrMissingField),
			"error": "invalid confirmation payload",
		})
		return
	}
	token := middleware.BearerToken(c)
	docID, err := h.svc.Confirm(c.Request.Context(), &req, token)
	if err != nil {
		h.audit(&models.AuditLog{
			Action:     domain.AuditConfirmationDenied,
			Reason:     string(domain.KindOf(err)),
			UserID:     req.UserID,
			GatewayRef: req.RazorpayOrderID,
			Amount:     req.Total,
			IP:         c.ClientIP(),
		})
		h.fail(c, err)
		return
	}
	h.audit(&models.AuditLog{
		Action:     domain.AuditOrderConfirmed,
		UserID:     req.UserID,
		DocumentID: docID,
		GatewayRef: req.RazorpayOrderID,
		Amount:     req.Total,
		IP:         c.ClientIP(),
	})
	c.JSON(http.StatusOK, gin.H{
		"document_id":    docID,
		"payment_status": domain.PaymentStatusPaid,
	})
}

// fail maps an error kind to its HTTP status. Only the safe taxonomy message
// goes out; the wrapped cause stays in the logs.
func (h *OrderHandler) fail(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	if domain.IsTrustError(err) {
		log.Printf("[Order] trust rejection %s ip=%s: %v", kind, c.ClientIP(), err)
	} else {
		log.Printf("[Order] request failed %s: %v", kind, err)
	}
	c.JSON(statusFor(kind), gin.H{
		"code":  string(kind),
		"error": domain.MessageOf(err),
	})
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrInvalidAmount, domain.ErrMissingField,
		domain.ErrInvalidSignature, domain.ErrAmountMismatch:
		return http.StatusBadRequest
	case domain.ErrUnauthenticated:
		return http.StatusUnauthorized
	case domain.ErrIdentityMismatch:
		return http.StatusForbidden
	case domain.ErrGatewayUnavailable, domain.ErrGatewayVerificationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *OrderHandler) audit(entry *models.AuditLog) {
	if h.auditRepo == nil {
		return
	}
	if err := h.auditRepo.Create(entry); err != nil {
		log.Printf("[Audit] write failed action=%s: %v", entry.Action, err)
	}
}
