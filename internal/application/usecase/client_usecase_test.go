package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CalinaBorzan/Orders-Management/internal/application/dto"
	"github.com/CalinaBorzan/Orders-Management/internal/application/usecase"
	"github.com/CalinaBorzan/Orders-Management/internal/domain"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
)

// fakeClientRepo repositorio en memoria con asignación secuencial de IDs,
// como haría la columna serial.
type fakeClientRepo struct {
	clients map[int64]*entity.Client
	nextID  int64
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int64]*entity.Client{}}
}

func (r *fakeClientRepo) FindAll(context.Context) ([]*entity.Client, error) {
	list := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id int64) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) Insert(_ context.Context, c *entity.Client) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return &domain.PersistenceError{Op: "update client", Err: domain.ErrNotFound}
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := r.clients[id]
	delete(r.clients, id)
	return ok, nil
}

func validClient() dto.CreateClientRequest {
	return dto.CreateClientRequest{
		LastName:  "Pop",
		FirstName: "Ana",
		Email:     "ana@example.com",
		Age:       30,
		Address:   "Calle 1",
	}
}

func TestClientUseCase_Create(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo())

	resp, err := uc.Create(context.Background(), validClient())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID, "el ID asignado por el almacén viaja en la respuesta")
	assert.Equal(t, "Ana", resp.FirstName)
}

func TestClientUseCase_Create_Validacion(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo())

	cases := []struct {
		name   string
		mutate func(*dto.CreateClientRequest)
		reason string
	}{
		{"sin apellido", func(in *dto.CreateClientRequest) { in.LastName = "  " }, "nombre y apellido del cliente son obligatorios"},
		{"sin nombre", func(in *dto.CreateClientRequest) { in.FirstName = "" }, "nombre y apellido del cliente son obligatorios"},
		{"email malformado", func(in *dto.CreateClientRequest) { in.Email = "no-es-un-email" }, "email inválido"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validClient()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.reason, vErr.Reason)
		})
	}
}

func TestClientUseCase_Update(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	created, err := uc.Create(context.Background(), validClient())
	require.NoError(t, err)

	email := "ana.pop@example.com"
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateClientRequest{Email: &email})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, "Pop", updated.LastName, "los campos no enviados se conservan")
}

func TestClientUseCase_Update_NoExiste(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo())

	updated, err := uc.Update(context.Background(), 99, dto.UpdateClientRequest{})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestClientUseCase_Delete(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	created, err := uc.Create(context.Background(), validClient())
	require.NoError(t, err)

	deleted, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClientUseCase_GetByID_NoExiste(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo())

	resp, err := uc.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, resp)
}
