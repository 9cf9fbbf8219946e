package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-local/internal/application/dto"
	"github.com/jhoicas/Inventario-local/internal/application/session"
	"github.com/jhoicas/Inventario-local/internal/domain"
)

// SessionHandler maneja las peticiones HTTP de la sesión de almacenes.
type SessionHandler struct {
	uc *session.SessionUseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *session.SessionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// List godoc
// @Summary      Listar almacenes disponibles
// @Tags         stores
// @Produce      json
// @Success      200  {array}  dto.StoreResponse
// @Router       /api/stores [get]
func (h *SessionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear un almacén nuevo (no lo activa)
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "Nombre del almacén"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre de almacén inválido o ya en uso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Switch godoc
// @Summary      Activar un almacén existente
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchStoreRequest  true  "Nombre del almacén"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/switch [post]
func (h *SessionHandler) Switch(c *fiber.Ctx) error {
	var in dto.SwitchStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Switch(in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre de almacén inválido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "almacén no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "almacén activado"})
}

// Disconnect godoc
// @Summary      Cerrar el almacén activo
// @Tags         stores
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/stores/disconnect [post]
func (h *SessionHandler) Disconnect(c *fiber.Ctx) error {
	if err := h.uc.Disconnect(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "sesión desconectada"})
}

// Current godoc
// @Summary      Almacén activo de la sesión
// @Tags         stores
// @Produce      json
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/current [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_STORE", Message: "ningún almacén activo"})
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Estado de conexión de la sesión
// @Tags         stores
// @Produce      json
// @Success      200  {object}  dto.StoreStatusResponse
// @Router       /api/stores/status [get]
func (h *SessionHandler) Status(c *fiber.Ctx) error {
	return c.JSON(dto.StoreStatusResponse{Connected: h.uc.IsConnected()})
}

// Delete godoc
// @Summary      Eliminar el archivo de un almacén no activo
// @Tags         stores
// @Produce      json
// @Param        name  path  string  true  "Nombre del almacén"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stores/{name} [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.uc.Delete(name); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre de almacén inválido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "almacén no encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "no se puede eliminar el almacén activo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "almacén eliminado"})
}
