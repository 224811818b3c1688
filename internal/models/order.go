package models

import "time"

// All monetary fields are integers in paise. The gateway's Orders API takes
// paise natively, so no conversion happens anywhere in the service.

type CreateOrderRequest struct {
	Amount int64       `json:"amount" binding:"required,min=1"`
	UserID string      `json:"user_id"`
	Items  []OrderItem `json:"items"`
}

type CustomerInfo struct {
	Name    string `json:"name" firestore:"name"`
	Phone   string `json:"phone" firestore:"phone"`
	Address string `json:"address" firestore:"address"`
	City    string `json:"city" firestore:"city"`
	State   string `json:"state" firestore:"state"`
	Pincode string `json:"pincode" firestore:"pincode"`
}

type OrderItem struct {
	Name     string `json:"name" firestore:"name"`
	Quantity int64  `json:"quantity" firestore:"quantity"`
	Price    int64  `json:"price" firestore:"price"`
}

// ConfirmOrderRequest is the client-submitted confirmation payload. Every
// field is untrusted until the signature check (and amount reconciliation)
// passes. Gateway identifiers are deliberately not `binding:"required"`:
// their absence must fail signature verification, not input validation.
type ConfirmOrderRequest struct {
	OrderID           string       `json:"order_id"`
	UserID            string       `json:"user_id"`
	Subtotal          int64        `json:"subtotal"`
	Shipping          int64        `json:"shipping"`
	Total             int64        `json:"total"`
	RazorpayOrderID   string       `json:"razorpay_order_id"`
	RazorpayPaymentID string       `json:"razorpay_payment_id"`
	RazorpaySignature string       `json:"razorpay_signature"`
	Customer          CustomerInfo `json:"customer"`
	Items             []OrderItem  `json:"items"`
}

// OrderRecord is the persisted order document. CreatedAt carries the
// serverTimestamp tag: the store assigns it at write time, so a client
// cannot backdate an order. Records are written once per confirmation and
// never mutated afterwards; a re-confirmation overwrites the whole document.
type OrderRecord struct {
	UserID           string       `json:"user_id" firestore:"userId"`
	Subtotal         int64        `json:"subtotal" firestore:"subtotal"`
	Shipping         int64        `json:"shipping" firestore:"shipping"`
	TotalAmount      int64        `json:"total_amount" firestore:"totalAmount"`
	Currency         string       `json:"currency" firestore:"currency"`
	GatewayOrderID   string       `json:"razorpay_order_id" firestore:"razorpayOrderId"`
	GatewayPaymentID string       `json:"razorpay_payment_id" firestore:"razorpayPaymentId"`
	Customer         CustomerInfo `json:"customer" firestore:"customer"`
	Items            []OrderItem  `json:"items" firestore:"items"`
	PaymentStatus    string       `json:"payment_status" firestore:"paymentStatus"`
	CreatedAt        time.Time    `json:"created_at" firestore:"createdAt,serverTimestamp"`
}
