package dto

// CreateClientRequest entrada para registrar un cliente.
type CreateClientRequest struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Address   string `json:"address"`
}

// UpdateClientRequest campos editables de un cliente; nil = sin cambio.
type UpdateClientRequest struct {
	LastName  *string `json:"last_name"`
	FirstName *string `json:"first_name"`
	Email     *string `json:"email"`
	Age       *int    `json:"age"`
	Address   *string `json:"address"`
}

// ClientResponse representación de salida de un cliente.
type ClientResponse struct {
	ID        int64  `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Address   string `json:"address"`
}
