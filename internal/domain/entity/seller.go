package entity

import (
	"time"
)

type Seller struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"user_id" firestore:"userId"`
	BusinessName string    `json:"business_name" firestore:"businessName"`
	Description  string    `json:"description" firestore:"description"`
	Phone        string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Location     Location  `json:"location" firestore:"location"`
	Geohash      string    `json:"geohash" firestore:"geohash"`
	Rating       float64   `json:"rating" firestore:"rating"`
	ReviewCount  int       `json:"review_count" firestore:"reviewCount"`
	Categories   []string  `json:"categories" firestore:"categories"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

// SellerWithDistance is a nearby search hit.
type SellerWithDistance struct {
	*Seller
	Distance float64 `json:"distance"`
}
