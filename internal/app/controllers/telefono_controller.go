package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"telefono-http-service/internal/app/metrics"
	"telefono-http-service/internal/domain/models"
	"telefono-http-service/internal/domain/services"
	"telefono-http-service/internal/domain/services/container"
	"telefono-http-service/internal/error/code"
	"telefono-http-service/internal/error/response"
	Logger "telefono-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// InterfaceTelefonoController lists the phone endpoints
type InterfaceTelefonoController interface {
	GetTelefonos()
	GetTelefono()
	CreateTelefono()
	UpdateTelefono()
	DeleteTelefono()
}

// TelefonoController handles phone record requests
type TelefonoController struct {
	Ctx       *gin.Context
	Telefonos services.InterfaceTelefonoService
	Usuarios  services.UserLookup
	BaseURL   string
}

// NewTelefonoController creates a phone controller for one request
func NewTelefonoController(ctx *gin.Context, container *container.ServiceContainer) *TelefonoController {
	return &TelefonoController{
		Ctx:       ctx,
		Telefonos: container.Telefonos(),
		Usuarios:  container.UserLookup(),
		BaseURL:   container.Config().PublicBaseURL,
	}
}

// UsuarioRef is the nested reference to the owning user
type UsuarioRef struct {
	ID uint `json:"id" example:"1"`
}

// TelefonoRequest is the body of create and update requests. Any id in the
// body is ignored.
type TelefonoRequest struct {
	Numero    string      `json:"numero" example:"+34600123456"`
	Tipo      string      `json:"tipo" example:"movil"`
	UsuarioID uint        `json:"usuario_id" example:"1"`
	Usuario   *UsuarioRef `json:"usuario"`
}

func (r *TelefonoRequest) toModel() *models.Telefono {
	telefono := &models.Telefono{
		Numero:    r.Numero,
		Tipo:      models.TipoTelefono(r.Tipo),
		UsuarioID: r.UsuarioID,
	}
	if r.Usuario != nil && r.Usuario.ID != 0 {
		telefono.UsuarioID = r.Usuario.ID
	}
	return telefono
}

// GetTelefonos lists every phone
// @Summary      List phones
// @Tags         Telefono
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /telefonos [get]
func (c *TelefonoController) GetTelefonos() {
	Logger.Info("listing phones")

	telefonos, err := c.Telefonos.GetAllTelefonos(c.Ctx.Request.Context())
	if err != nil {
		Logger.Error("could not list phones: %+v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.OK(c.Ctx, "phone list", telefonos)
}

// GetTelefono returns one phone
// @Summary      Get a phone
// @Tags         Telefono
// @Produce      json
// @Param        id path int true "phone id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /telefonos/{id} [get]
func (c *TelefonoController) GetTelefono() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	Logger.Info("getting phone %d", id)

	telefono, err := c.Telefonos.GetTelefonoByID(c.Ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTelefonoNotFound) {
			response.FailWithMessage(c.Ctx, code.ErrTelefonoNotFound, fmt.Sprintf("phone %d does not exist", id), nil)
			return
		}
		Logger.Error("could not get phone %d: %+v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.OK(c.Ctx, fmt.Sprintf("phone information %d", id), telefono)
}

// CreateTelefono creates a phone for an existing user
// @Summary      Create a phone
// @Description  The referenced usuario must exist
// @Tags         Telefono
// @Accept       json
// @Produce      json
// @Param        request body TelefonoRequest true "phone"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response "rejected by the store, message holds the reason"
// @Failure      404  {object}  response.Response "referenced user does not exist"
// @Failure      503  {object}  response.Response "user lookup unavailable"
// @Router       /telefonos [post]
func (c *TelefonoController) CreateTelefono() {
	Logger.Info("creating phone")

	var req TelefonoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	telefono := req.toModel()
	ctx := c.Ctx.Request.Context()

	exists, err := c.Usuarios.UserExists(ctx, telefono.UsuarioID)
	if err != nil {
		Logger.Error("could not verify usuario %d: %+v", telefono.UsuarioID, err)
		response.Fail(c.Ctx, code.ErrUserLookupFailed, nil)
		return
	}
	if !exists {
		metrics.TelefonosRejected.WithLabelValues(metrics.ReasonUnknownUser).Inc()
		response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		return
	}

	if err := c.Telefonos.CreateTelefono(ctx, telefono); err != nil {
		Logger.Warning("phone rejected by the store: %v", err)
		metrics.TelefonosRejected.WithLabelValues(metrics.ReasonStore).Inc()
		response.FailWithMessage(c.Ctx, code.ErrTelefonoInvalid, err.Error(), nil)
		return
	}

	metrics.TelefonosCreated.Inc()

	c.Ctx.Header("Location", fmt.Sprintf("%s/telefonos/%d", c.BaseURL, telefono.ID))
	response.Success(c.Ctx, http.StatusCreated, "phone created successfully", telefono)
}

// UpdateTelefono replaces an existing phone. The id always comes from the path.
// @Summary      Update a phone
// @Tags         Telefono
// @Accept       json
// @Produce      json
// @Param        id path int true "phone id"
// @Param        request body TelefonoRequest true "phone"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /telefonos/{id} [put]
func (c *TelefonoController) UpdateTelefono() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	Logger.Info("updating phone %d", id)

	ctx := c.Ctx.Request.Context()

	existing, err := c.Telefonos.GetTelefonoByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrTelefonoNotFound) {
			response.Fail(c.Ctx, code.ErrTelefonoNotFound, nil)
			return
		}
		Logger.Error("could not get phone %d: %+v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	var req TelefonoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	telefono := req.toModel()
	telefono.ID = existing.ID
	if telefono.UsuarioID == 0 {
		telefono.UsuarioID = existing.UsuarioID
	}

	if err := c.Telefonos.UpdateTelefono(ctx, telefono); err != nil {
		if isValidationError(err) {
			response.FailWithMessage(c.Ctx, code.ErrTelefonoInvalid, err.Error(), nil)
			return
		}
		Logger.Error("could not update phone %d: %+v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.OK(c.Ctx, "phone updated successfully", telefono)
}

// DeleteTelefono removes a phone. Missing ids are not reported.
// @Summary      Delete a phone
// @Tags         Telefono
// @Param        id path int true "phone id"
// @Success      200  {object}  response.Response "data.status is 204"
// @Failure      400  {object}  response.Response
// @Router       /telefonos/{id} [delete]
func (c *TelefonoController) DeleteTelefono() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	Logger.Info("deleting phone %d", id)

	if err := c.Telefonos.DeleteTelefono(c.Ctx.Request.Context(), id); err != nil {
		Logger.Error("could not delete phone %d: %+v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	metrics.TelefonosDeleted.Inc()
	response.Success(c.Ctx, http.StatusNoContent, "phone deleted successfully", nil)
}

func (c *TelefonoController) parseID() (uint, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ParamError(c.Ctx, "invalid phone id")
		return 0, false
	}
	return uint(id), true
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidNumero) ||
		errors.Is(err, services.ErrInvalidTipo) ||
		errors.Is(err, services.ErrMissingUsuario)
}

// HandleTelefonoFunc returns a gin handler dispatching to a phone controller method
func HandleTelefonoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTelefonoController(ctx, container)

		switch method {
		case "getTelefonos":
			controller.GetTelefonos()
		case "getTelefono":
			controller.GetTelefono()
		case "createTelefono":
			controller.CreateTelefono()
		case "updateTelefono":
			controller.UpdateTelefono()
		case "deleteTelefono":
			controller.DeleteTelefono()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}
