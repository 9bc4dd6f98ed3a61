package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para registrar un producto.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateProductRequest campos editables de un producto; nil = sin cambio.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Quantity *int             `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

// ProductResponse representación de salida de un producto.
type ProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
