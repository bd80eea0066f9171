package entity

import (
	"time"
)

type Product struct {
	ID          string    `json:"id" firestore:"id"`
	SellerID    string    `json:"seller_id" firestore:"sellerId"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Price       float64   `json:"price" firestore:"price"`
	Category    string    `json:"category" firestore:"category"`
	Tags        []string  `json:"tags" firestore:"tags"`
	Images      []string  `json:"images" firestore:"images"`
	InStock     bool      `json:"in_stock" firestore:"inStock"`
	Quantity    *int      `json:"quantity,omitempty" firestore:"quantity,omitempty"`
	Rating      float64   `json:"rating" firestore:"rating"`
	ReviewCount int       `json:"review_count" firestore:"reviewCount"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// SetQuantity stores q and keeps InStock equal to q > 0.
func (p *Product) SetQuantity(q int) {
	if q < 0 {
		q = 0
	}
	p.Quantity = &q
	p.InStock = q > 0
}

// Decrement removes n units, floored at zero. Products that do not track a
// quantity are left as they are.
func (p *Product) Decrement(n int) {
	if p.Quantity == nil {
		return
	}
	p.SetQuantity(*p.Quantity - n)
}

func (p *Product) HasQuantity() bool {
	return p.Quantity != nil
}
