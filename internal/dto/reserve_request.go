package dto

type ReserveRequest struct {
	CustomerName  string            `json:"customerName" validate:"required,max=100"`
	CustomerEmail string            `json:"customerEmail" validate:"required,email,max=150"`
	Description   string            `json:"description" validate:"max=255"`
	CartItems     []CartItemRequest `json:"cartItems" validate:"required,min=1,max=100,dive"`
}

type CartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0,lte=10000"`
}
