package entity

import (
	"time"
)

// ProductReview is a buyer's rating of a product, at most one per buyer and product.
type ProductReview struct {
	ID          string    `json:"id" firestore:"id"`
	ProductID   string    `json:"product_id" firestore:"productId"`
	BuyerID     string    `json:"buyer_id" firestore:"buyerId"`
	BuyerName   string    `json:"buyer_name" firestore:"buyerName"`
	BuyerAvatar string    `json:"buyer_avatar,omitempty" firestore:"buyerAvatar,omitempty"`
	Rating      int       `json:"rating" firestore:"rating"` // 1-5
	Comment     string    `json:"comment" firestore:"comment"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
