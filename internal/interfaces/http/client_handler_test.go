package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CalinaBorzan/Orders-Management/internal/application/dto"
	"github.com/CalinaBorzan/Orders-Management/internal/application/usecase"
	"github.com/CalinaBorzan/Orders-Management/internal/domain"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
	httpiface "github.com/CalinaBorzan/Orders-Management/internal/interfaces/http"
)

// fakeClientRepo repositorio en memoria; deleteErr permite simular la
// violación de clave foránea al borrar.
type fakeClientRepo struct {
	clients   map[int64]*entity.Client
	nextID    int64
	deleteErr error
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
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id int64) (bool, error) {
	if r.deleteErr != nil {
		return false, r.deleteErr
	}
	_, ok := r.clients[id]
	delete(r.clients, id)
	return ok, nil
}

func newTestApp(repo *fakeClientRepo) *fiber.App {
	app := fiber.New()
	clients := app.Group("/api/clients")
	h := httpiface.NewClientHandler(usecase.NewClientUseCase(repo))
	clients.Get("/", h.List)
	clients.Post("/", h.Create)
	clients.Get("/:id", h.GetByID)
	clients.Put("/:id", h.Update)
	clients.Delete("/:id", h.Delete)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestClientHandler_Create(t *testing.T) {
	repo := &fakeClientRepo{clients: map[int64]*entity.Client{}}
	app := newTestApp(repo)

	resp := postJSON(t, app, "/api/clients/", dto.CreateClientRequest{
		LastName: "Pop", FirstName: "Ana", Email: "ana@example.com", Age: 30, Address: "Calle 1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.ClientResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "ana@example.com", out.Email)
}

func TestClientHandler_Create_Validacion(t *testing.T) {
	repo := &fakeClientRepo{clients: map[int64]*entity.Client{}}
	app := newTestApp(repo)

	resp := postJSON(t, app, "/api/clients/", dto.CreateClientRequest{
		LastName: "Pop", FirstName: "Ana", Email: "no-es-un-email",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "email inválido", out.Message)
}

func TestClientHandler_GetByID_NoExiste(t *testing.T) {
	repo := &fakeClientRepo{clients: map[int64]*entity.Client{}}
	app := newTestApp(repo)

	req, err := http.NewRequest(http.MethodGet, "/api/clients/42", nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestClientHandler_Delete_Conflicto(t *testing.T) {
	repo := &fakeClientRepo{
		clients: map[int64]*entity.Client{
			1: {ID: 1, LastName: "Pop", FirstName: "Ana", Email: "ana@example.com"},
		},
		deleteErr: &domain.ConstraintError{Op: "delete client", Code: "23503", Err: fmt.Errorf("fk violation")},
	}
	app := newTestApp(repo)

	req, err := http.NewRequest(http.MethodDelete, "/api/clients/1", nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "CONSTRAINT", out.Code)
	assert.Equal(t, "el recurso aún está referenciado por otros registros", out.Message)
}

func TestClientHandler_Delete(t *testing.T) {
	repo := &fakeClientRepo{clients: map[int64]*entity.Client{
		1: {ID: 1, LastName: "Pop", FirstName: "Ana", Email: "ana@example.com"},
	}}
	app := newTestApp(repo)

	req, err := http.NewRequest(http.MethodDelete, "/api/clients/1", nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestClientHandler_IDInvalido(t *testing.T) {
	repo := &fakeClientRepo{clients: map[int64]*entity.Client{}}
	app := newTestApp(repo)

	req, err := http.NewRequest(http.MethodGet, "/api/clients/abc", nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
