package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"telefono-http-service/internal/domain/models"
	"telefono-http-service/internal/domain/services"
	"telefono-http-service/internal/domain/services/container"
	"telefono-http-service/internal/error/code"
	"telefono-http-service/internal/error/response"
	Logger "telefono-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// UsuarioController handles user requests
type UsuarioController struct {
	Ctx      *gin.Context
	Usuarios services.InterfaceUsuarioService
	BaseURL  string
}

// NewUsuarioController creates a user controller for one request
func NewUsuarioController(ctx *gin.Context, container *container.ServiceContainer) *UsuarioController {
	return &UsuarioController{
		Ctx:      ctx,
		Usuarios: container.Usuarios(),
		BaseURL:  container.Config().PublicBaseURL,
	}
}

// UsuarioRequest is the body of a create request
type UsuarioRequest struct {
	Nombre string `json:"nombre" binding:"required" example:"Ana"`
	Email  string `json:"email" binding:"omitempty,email" example:"ana@example.com"`
}

// GetUsuarios lists every user
// @Summary      List users
// @Tags         Usuario
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /usuarios [get]
func (c *UsuarioController) GetUsuarios() {
	usuarios, err := c.Usuarios.GetAllUsuarios(c.Ctx.Request.Context())
	if err != nil {
		Logger.Error("could not list usuarios: %+v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.OK(c.Ctx, "user list", usuarios)
}

// GetUsuario returns one user with its phones
// @Summary      Get a user
// @Tags         Usuario
// @Produce      json
// @Param        id path int true "user id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /usuarios/{id} [get]
func (c *UsuarioController) GetUsuario() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ParamError(c.Ctx, "invalid user id")
		return
	}

	usuario, err := c.Usuarios.GetUsuarioByID(c.Ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUsuarioNotFound) {
			response.FailWithMessage(c.Ctx, code.ErrUserNotFound, fmt.Sprintf("user %d does not exist", id), nil)
			return
		}
		Logger.Error("could not get usuario %d: %+v", id, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.OK(c.Ctx, fmt.Sprintf("user information %d", id), usuario)
}

// CreateUsuario creates a user
// @Summary      Create a user
// @Tags         Usuario
// @Accept       json
// @Produce      json
// @Param        request body UsuarioRequest true "user"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /usuarios [post]
func (c *UsuarioController) CreateUsuario() {
	var req UsuarioRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error(), nil)
		return
	}

	usuario := &models.Usuario{
		Nombre: req.Nombre,
		Email:  req.Email,
	}

	if err := c.Usuarios.CreateUsuario(c.Ctx.Request.Context(), usuario); err != nil {
		Logger.Warning("usuario rejected: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrUserInvalid, err.Error(), nil)
		return
	}

	c.Ctx.Header("Location", fmt.Sprintf("%s/usuarios/%d", c.BaseURL, usuario.ID))
	response.Success(c.Ctx, http.StatusCreated, "user created successfully", usuario)
}

// HandleUsuarioFunc returns a gin handler dispatching to a user controller method
func HandleUsuarioFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUsuarioController(ctx, container)

		switch method {
		case "getUsuarios":
			controller.GetUsuarios()
		case "getUsuario":
			controller.GetUsuario()
		case "createUsuario":
			controller.CreateUsuario()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}
