package postgres

import (
	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
)

// Descriptores de mapeo de las cuatro entidades. Solo declaran tabla, clave
// primaria y correspondencia atributo-columna; todo el comportamiento CRUD
// lo aporta el Mapper.

func clientMapping() Mapping[entity.Client] {
	return Mapping[entity.Client]{
		Table:       "client",
		PK:          Column[entity.Client]{Name: "id", Ref: func(c *entity.Client) any { return &c.ID }},
		PKGenerated: true,
		Columns: []Column[entity.Client]{
			{Name: "last_name", Ref: func(c *entity.Client) any { return &c.LastName }},
			{Name: "first_name", Ref: func(c *entity.Client) any { return &c.FirstName }},
			{Name: "email", Ref: func(c *entity.Client) any { return &c.Email }},
			{Name: "age", Ref: func(c *entity.Client) any { return &c.Age }},
			{Name: "address", Ref: func(c *entity.Client) any { return &c.Address }},
		},
	}
}

func productMapping() Mapping[entity.Product] {
	return Mapping[entity.Product]{
		Table:       "product",
		PK:          Column[entity.Product]{Name: "productId", Ref: func(p *entity.Product) any { return &p.ID }},
		PKGenerated: true,
		Columns: []Column[entity.Product]{
			{Name: "productName", Ref: func(p *entity.Product) any { return &p.Name }},
			{Name: "quantity", Ref: func(p *entity.Product) any { return &p.Quantity }},
			{Name: "price", Ref: func(p *entity.Product) any { return &p.Price }},
		},
	}
}

// orderMapping: la clave la aporta el caller (se valida su unicidad antes de
// insertar), por eso PKGenerated es false y el INSERT la incluye.
func orderMapping() Mapping[entity.Order] {
	return Mapping[entity.Order]{
		Table: "order_table",
		PK:    Column[entity.Order]{Name: "orderId", Ref: func(o *entity.Order) any { return &o.ID }},
		Columns: []Column[entity.Order]{
			{Name: "clientId", Ref: func(o *entity.Order) any { return &o.ClientID }},
			{Name: "productId", Ref: func(o *entity.Order) any { return &o.ProductID }},
			{Name: "date", Ref: func(o *entity.Order) any { return &o.Date }},
			{Name: "quantity", Ref: func(o *entity.Order) any { return &o.Quantity }},
		},
	}
}

// billMapping: la tabla histórica de facturas se llama "log" y la columna
// del importe se llama "price"; el descriptor absorbe ambas rarezas.
func billMapping() Mapping[entity.Bill] {
	return Mapping[entity.Bill]{
		Table:       "log",
		PK:          Column[entity.Bill]{Name: "billId", Ref: func(b *entity.Bill) any { return &b.ID }},
		PKGenerated: true,
		Columns: []Column[entity.Bill]{
			{Name: "price", Ref: func(b *entity.Bill) any { return &b.Amount }},
			{Name: "date", Ref: func(b *entity.Bill) any { return &b.Date }},
			{Name: "orderId", Ref: func(b *entity.Bill) any { return &b.OrderID }},
		},
	}
}
