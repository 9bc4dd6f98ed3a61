package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CalinaBorzan/Orders-Management/internal/application/dto"
	"github.com/CalinaBorzan/Orders-Management/internal/domain"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo baja por
// pedidos (transacción del orquestador); aquí se fija el stock inicial y
// se corrige vía edición.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// ListAll lista todos los productos.
func (uc *ProductUseCase) ListAll(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		list = append(list, toProductResponse(p))
	}
	return list, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create registra un producto nuevo tras validar sus campos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:     in.Name,
		Quantity: in.Quantity,
		Price:    in.Price,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edita un producto existente; (nil, nil) si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID e indica si existía. Un producto con
// pedidos asociados produce ConstraintError (clave foránea).
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// validateProduct nombre no vacío, stock y precio no negativos.
func validateProduct(p *entity.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("el nombre del producto es obligatorio")
	}
	if p.Quantity < 0 {
		return domain.NewValidationError("la cantidad no puede ser negativa")
	}
	if p.Price.LessThan(decimal.Zero) {
		return domain.NewValidationError("el precio no puede ser negativo")
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: p.Quantity,
		Price:    p.Price,
	}
}
