package entity

import "time"

// Order representa un pedido de un producto por parte de un cliente.
// El ID lo aporta el caller y debe ser único; un pedido nunca se edita
// ni se borra una vez creado.
type Order struct {
	ID        int64
	ClientID  int64
	ProductID int64
	Date      time.Time
	Quantity  int
}
