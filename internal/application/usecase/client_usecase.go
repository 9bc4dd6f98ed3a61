package usecase

import (
	"context"
	"net/mail"
	"strings"

	"github.com/CalinaBorzan/Orders-Management/internal/application/dto"
	"github.com/CalinaBorzan/Orders-Management/internal/domain"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// ListAll lista todos los clientes.
func (uc *ClientUseCase) ListAll(ctx context.Context) ([]*dto.ClientResponse, error) {
	clients, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		list = append(list, toClientResponse(c))
	}
	return list, nil
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// Create registra un cliente nuevo tras validar sus campos. El ID lo asigna
// el almacén y queda escrito en la respuesta.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client := &entity.Client{
		LastName:  in.LastName,
		FirstName: in.FirstName,
		Email:     in.Email,
		Age:       in.Age,
		Address:   in.Address,
	}
	if err := validateClient(client); err != nil {
		return nil, err
	}
	if err := uc.repo.Insert(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update edita un cliente existente; (nil, nil) si no existe.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.LastName != nil {
		client.LastName = *in.LastName
	}
	if in.FirstName != nil {
		client.FirstName = *in.FirstName
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Age != nil {
		client.Age = *in.Age
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if err := validateClient(client); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente por ID e indica si existía. Un cliente con
// pedidos asociados produce ConstraintError (clave foránea).
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// validateClient nombre y apellido obligatorios, email sintácticamente válido.
func validateClient(c *entity.Client) error {
	if strings.TrimSpace(c.LastName) == "" || strings.TrimSpace(c.FirstName) == "" {
		return domain.NewValidationError("nombre y apellido del cliente son obligatorios")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return domain.NewValidationError("email inválido")
	}
	return nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		LastName:  c.LastName,
		FirstName: c.FirstName,
		Email:     c.Email,
		Age:       c.Age,
		Address:   c.Address,
	}
}
