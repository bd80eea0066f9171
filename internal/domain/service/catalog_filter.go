package service

import (
	"strings"

	"golang.org/x/text/cases"

	"localmarket/internal/domain/entity"
)

// ProductFilter narrows a product list. Zero values mean "no constraint".
type ProductFilter struct {
	Category    string
	MinPrice    *float64
	MaxPrice    *float64
	InStock     *bool
	SearchQuery string
}

func (f ProductFilter) IsEmpty() bool {
	return f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil && f.InStock == nil &&
		strings.TrimSpace(f.SearchQuery) == ""
}

// FilterProducts keeps the products matching every set predicate, preserving order.
func FilterProducts(products []*entity.Product, f ProductFilter) []*entity.Product {
	if f.IsEmpty() {
		return products
	}

	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(f.SearchQuery))

	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		if query != "" && !matchesText(fold, p, query) {
			continue
		}
		matched = append(matched, p)
	}

	return matched
}

func matchesText(fold cases.Caser, p *entity.Product, query string) bool {
	if strings.Contains(fold.String(p.Name), query) || strings.Contains(fold.String(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(fold.String(tag), query) {
			return true
		}
	}
	return false
}
