package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"dukaan/config"
	"dukaan/internal/domain"
	"dukaan/internal/identity"
	"dukaan/internal/models"
	"dukaan/internal/store"
	"dukaan/pkg/payment"
)

// OrderService owns the two checkout operations: creating a pending gateway
// order and validating a client-submitted payment confirmation before it is
// persisted. Confirmation runs a fixed pipeline — input validation, optional
// identity binding, signature verification, amount reconciliation against the
// gateway, then an idempotent write keyed by the resolved document id. Every
// stage fails closed: no record is written unless all enabled checks pass.
type OrderService struct {
	gateway       payment.Gateway
	store         store.OrderStore
	verifier      identity.Verifier // nil disables bearer-token verification
	signingSecret string
	currency      string
	verifyAmounts bool
}

func NewOrderService(cfg *config.Config, gateway payment.Gateway, orderStore store.OrderStore, verifier identity.Verifier) *OrderService {
	return &OrderService{
		gateway:       gateway,
		store:         orderStore,
		verifier:      verifier,
		signingSecret: cfg.Razorpay.KeySecret,
		currency:      cfg.Payment.Currency,
		verifyAmounts: cfg.Payment.VerifyAmounts,
	}
}

// Initiate creates one pending gateway order for amount (paise) and returns
// the gateway's representation verbatim. Nothing is persisted locally.
func (s *OrderService) Initiate(ctx context.Context, amount int64) (*payment.GatewayOrder, error) {
	if amount <= 0 {
		return nil, domain.NewError(domain.ErrInvalidAmount, "amount must be a positive integer in paise")
	}
	receipt := "d-" + uuid.New().String()
	order, err := s.gateway.CreateOrder(ctx, amount, s.currency, receipt)
	if err != nil {
		return nil, domain.WrapError(domain.ErrGatewayUnavailable, "payment gateway is unavailable", err)
	}
	return order, nil
}

// Confirm validates a completed payment and persists the order. bearerToken
// is the raw Authorization credential, empty when the caller sent none: a
// present token must verify and match the claimed user, an absent token is
// tolerated (guest checkout) and only logged. Returns the final document id.
func (s *OrderService) Confirm(ctx context.Context, req *models.ConfirmOrderRequest, bearerToken string) (string, error) {
	if req.Total <= 0 {
		return "", domain.NewError(domain.ErrMissingField, "total must be a positive integer in paise")
	}

	if err := s.checkIdentity(ctx, req, bearerToken); err != nil {
		return "", err
	}

	if !payment.VerifySignature(s.signingSecret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		log.Printf("[Confirm] signature rejected order=%s payment=%s", req.RazorpayOrderID, req.RazorpayPaymentID)
		return "", domain.NewError(domain.ErrInvalidSignature, "payment signature verification failed")
	}

	if s.verifyAmounts {
		if err := s.reconcileAmount(ctx, req); err != nil {
			return "", err
		}
	}

	docID := s.resolveDocumentID(req)
	rec := buildRecord(req, s.currency)
	if err := s.store.Save(ctx, docID, rec); err != nil {
		return "", domain.WrapError(domain.ErrPersistenceFailure, "failed to save order", err)
	}
	log.Printf("[Confirm] order persisted doc=%s gateway_order=%s total=%d", docID, req.RazorpayOrderID, req.Total)
	return docID, nil
}

func (s *OrderService) checkIdentity(ctx context.Context, req *models.ConfirmOrderRequest, bearerToken string) error {
	if bearerToken == "" {
		log.Printf("[Confirm] no bearer token for order=%s, proceeding as guest", req.RazorpayOrderID)
		return nil
	}
	if s.verifier == nil {
		log.Printf("[Confirm] bearer token present but identity verification not configured")
		return nil
	}
	subject, err := s.verifier.Verify(ctx, bearerToken)
	if err != nil {
		return domain.WrapError(domain.ErrUnauthenticated, "credential verification failed", err)
	}
	if req.UserID != "" && subject != req.UserID {
		log.Printf("[Confirm] identity mismatch subject=%s claimed=%s", subject, req.UserID)
		return domain.NewError(domain.ErrIdentityMismatch, "authenticated user does not match order user")
	}
	return nil
}

// reconcileAmount fetches the gateway's own record of the order and requires
// the client-claimed total to match it exactly. An unreachable gateway
// rejects the confirmation rather than trusting the claim.
func (s *OrderService) reconcileAmount(ctx context.Context, req *models.ConfirmOrderRequest) error {
	order, err := s.gateway.FetchOrder(ctx, req.RazorpayOrderID)
	if err != nil {
		return domain.WrapError(domain.ErrGatewayVerificationFailed, "could not verify order with gateway", err)
	}
	if order.Amount != req.Total {
		log.Printf("[Confirm] amount mismatch order=%s gateway=%d claimed=%d", req.RazorpayOrderID, order.Amount, req.Total)
		return domain.NewError(domain.ErrAmountMismatch,
			fmt.Sprintf("claimed total %d does not match gateway amount %d", req.Total, order.Amount))
	}
	return nil
}

// resolveDocumentID picks the persisted document key: client order id, then
// gateway order id, then a freshly generated id — first non-blank wins.
func (s *OrderService) resolveDocumentID(req *models.ConfirmOrderRequest) string {
	if id := strings.TrimSpace(req.OrderID); id != "" {
		return id
	}
	if id := strings.TrimSpace(req.RazorpayOrderID); id != "" {
		return id
	}
	return s.store.NewID()
}

// buildRecord maps the payload into the normalized persisted shape. Absent
// numerics stay zero and absent strings stay empty; CreatedAt is left at its
// zero value so the store assigns the server timestamp.
func buildRecord(req *models.ConfirmOrderRequest, currency string) *models.OrderRecord {
	items := req.Items
	if items == nil {
		items = []models.OrderItem{}
	}
	return &models.OrderRecord{
		UserID:           req.UserID,
		Subtotal:         req.Subtotal,
		Shipping:         req.Shipping,
		TotalAmount:      req.Total,
		Currency:         currency,
		GatewayOrderID:   req.RazorpayOrderID,
		GatewayPaymentID: req.RazorpayPaymentID,
		Customer:         req.Customer,
		Items:            items,
		PaymentStatus:    domain.PaymentStatusPaid,
	}
}
