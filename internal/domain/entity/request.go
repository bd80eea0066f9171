package entity

import (
	"time"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed.
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestApproved, RequestRejected:
		return true
	}
	return false
}

// CanTransitionTo allows only pending -> approved and pending -> rejected.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestPending:
		return next == RequestApproved || next == RequestRejected
	case RequestApproved, RequestRejected:
		return false
	}
	return false
}

// ProductRequest is a buyer's ask to purchase a quantity of a product. Names and
// prices are snapshots taken at creation and never recomputed.
type ProductRequest struct {
	ID           string        `json:"id" firestore:"id"`
	BuyerID      string        `json:"buyer_id" firestore:"buyerId"`
	BuyerName    string        `json:"buyer_name" firestore:"buyerName"`
	SellerID     string        `json:"seller_id" firestore:"sellerId"`
	ProductID    string        `json:"product_id" firestore:"productId"`
	ProductName  string        `json:"product_name" firestore:"productName"`
	ProductPrice float64       `json:"product_price" firestore:"productPrice"`
	Quantity     int           `json:"quantity" firestore:"quantity"`
	TotalPrice   float64       `json:"total_price" firestore:"totalPrice"`
	Message      string        `json:"message" firestore:"message"`
	Status       RequestStatus `json:"status" firestore:"status"`
	CreatedAt    time.Time     `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time     `json:"updated_at" firestore:"updatedAt"`
	RespondedAt  *time.Time    `json:"responded_at,omitempty" firestore:"respondedAt,omitempty"`
}

// RequestStatusChanged is published whenever a seller answers a request.
type RequestStatusChanged struct {
	RequestID  string        `json:"request_id"`
	BuyerID    string        `json:"buyer_id"`
	SellerID   string        `json:"seller_id"`
	ProductID  string        `json:"product_id"`
	Quantity   int           `json:"quantity"`
	Status     RequestStatus `json:"status"`
	OccurredAt time.Time     `json:"occurred_at"`
}
