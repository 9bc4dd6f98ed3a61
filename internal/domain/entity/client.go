package entity

// Client representa un cliente registrado en el sistema.
// Invariante: LastName y FirstName no vacíos; Email sintácticamente válido.
type Client struct {
	ID        int64
	LastName  string
	FirstName string
	Email     string
	Age       int
	Address   string
}
