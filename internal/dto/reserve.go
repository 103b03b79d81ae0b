package dto

import (
	"time"

	"shopcart/internal/domain"
)

type ReserveDTO struct {
	ID          int64         `json:"id"`
	Description string        `json:"description"`
	Customer    CustomerDTO   `json:"customer"`
	CartItems   []CartItemDTO `json:"cartItems"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type CustomerDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CartItemDTO struct {
	ID        int64       `json:"id"`
	ProductID int64       `json:"productId"`
	Quantity  int         `json:"quantity"`
	Product   *ProductDTO `json:"product,omitempty"`
}

func NewReserveDTO(r domain.Reserve) ReserveDTO {
	items := make([]CartItemDTO, 0, len(r.CartItems))
	for _, item := range r.CartItems {
		itemDTO := CartItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if item.Product != nil {
			p := NewProductDTO(*item.Product)
			itemDTO.Product = &p
		}
		items = append(items, itemDTO)
	}

	return ReserveDTO{
		ID:          r.ID,
		Description: r.Description,
		Customer: CustomerDTO{
			ID:    r.Customer.ID,
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
		},
		CartItems: items,
		CreatedAt: r.CreatedAt,
	}
}
