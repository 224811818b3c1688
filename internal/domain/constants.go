package domain

const (
	PaymentStatusPaid = "Paid"
)

const (
	RoleAdmin = "ADMIN"
)

// Audit actions recorded for every confirmation attempt.
const (
	AuditOrderInitiated     = "ORDER_INITIATED"
	AuditOrderConfirmed     = "ORDER_CONFIRMED"
	AuditConfirmationDenied = "CONFIRMATION_DENIED"
)
