package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/esign-api/internal/application/dto"
	"github.com/jhoicas/esign-api/internal/application/signing"
)

// SignerHandler maneja las peticiones HTTP para los firmantes de un documento.
type SignerHandler struct {
	uc *signing.SignerUseCase
}

// NewSignerHandler construye el handler inyectando el caso de uso.
func NewSignerHandler(uc *signing.SignerUseCase) *SignerHandler {
	return &SignerHandler{uc: uc}
}

// List godoc
// @Summary      Listar firmantes de un documento
// @Tags         signers
// @Produce      json
// @Param        document_id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.SignerListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/documents/{document_id}/signers [get]
func (h *SignerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Params("document_id"), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar un firmante local a un documento
// @Tags         signers
// @Accept       json
// @Produce      json
// @Param        document_id  path  string                   true  "ID del documento"
// @Param        body         body  dto.CreateSignerRequest  true  "Firmante"
// @Success      201  {object}  dto.SignerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/documents/{document_id}/signers [post]
func (h *SignerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSignerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Title: "Entrada inválida", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Params("document_id"), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener un firmante
// @Tags         signers
// @Produce      json
// @Param        document_id  path  string  true  "ID del documento"
// @Param        id           path  string  true  "ID del firmante"
// @Success      200  {object}  dto.SignerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/documents/{document_id}/signers/{id} [get]
func (h *SignerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar un firmante
// @Tags         signers
// @Accept       json
// @Produce      json
// @Param        document_id  path  string                   true  "ID del documento"
// @Param        id           path  string                   true  "ID del firmante"
// @Param        body         body  dto.UpdateSignerRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.SignerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/documents/{document_id}/signers/{id} [put]
func (h *SignerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSignerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Title: "Entrada inválida", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un firmante
// @Tags         signers
// @Param        document_id  path  string  true  "ID del documento"
// @Param        id           path  string  true  "ID del firmante"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/documents/{document_id}/signers/{id} [delete]
func (h *SignerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetCompanyID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
