package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/CalinaBorzan/Orders-Management/internal/application/dto"
	"github.com/CalinaBorzan/Orders-Management/internal/domain"
)

// writeError traduce los errores de dominio a respuestas HTTP:
//
//	ValidationError  -> 400 VALIDATION (motivo corregible por el caller)
//	ConstraintError  -> 409 CONSTRAINT (FK o unicidad en el almacén)
//	ErrNotFound      -> 404 NOT_FOUND
//	TransactionError -> se inspecciona la causa; ConstraintError interno
//	                    sigue siendo 409, el resto 500 TRANSACTION
//	otro             -> 500 INTERNAL
func writeError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: vErr.Reason,
		})
	}

	var cErr *domain.ConstraintError
	if errors.As(err, &cErr) {
		msg := "la operación viola una restricción de integridad"
		if cErr.Code == "23503" {
			msg = "el recurso aún está referenciado por otros registros"
		}
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONSTRAINT", Message: msg,
		})
	}

	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "el recurso no existe",
		})
	}

	var tErr *domain.TransactionError
	if errors.As(err, &tErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "TRANSACTION", Message: "la operación fue revertida",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}

// parseID lee el parámetro :id de la ruta como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return int64(id), nil
}
