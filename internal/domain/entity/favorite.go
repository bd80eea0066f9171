package entity

import (
	"fmt"
	"time"
)

type Favorite struct {
	ID        string    `json:"id" firestore:"id"`
	BuyerID   string    `json:"buyer_id" firestore:"buyerId"`
	ProductID string    `json:"product_id" firestore:"productId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// FavoriteID is the document key of a buyer/product pair.
func FavoriteID(buyerID, productID string) string {
	return fmt.Sprintf("%s_%s", buyerID, productID)
}
