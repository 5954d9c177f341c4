package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/banco-cliente/internal/application/auth"
	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/usecase"
)

// AuthHandler maneja login, registro de usuarios y perfil del token.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	users        *usecase.UserUseCase
	registration *usecase.RegistrationUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, users *usecase.UserUseCase, registration *usecase.RegistrationUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, users: users, registration: registration}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Responde con la variante {success, data, message}. Limitado por IP.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.SuccessEnvelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.SuccessEnvelope
// @Failure      403   {object}  dto.SuccessEnvelope
// @Failure      429   {object}  dto.SuccessEnvelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return authFail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return authFail(c, fiber.StatusBadRequest, "Usuario y contraseña son requeridos.")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		status, msg := statusFor(err)
		return authFail(c, status, msg)
	}
	return authOK(c, fiber.StatusOK, out, "")
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "username, password, role"
// @Success      201   {object}  dto.SuccessEnvelope{data=dto.UserResponse}
// @Failure      400   {object}  dto.SuccessEnvelope
// @Failure      403   {object}  dto.SuccessEnvelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return authFail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	user, err := h.uc.RegisterUser(in)
	if err != nil {
		status, msg := statusFor(err)
		return authFail(c, status, msg)
	}
	return authOK(c, fiber.StatusCreated, user, "Usuario registrado correctamente.")
}

// RegisterBorrower godoc
// @Summary      Autorregistro de prestatario
// @Description  Crea el prestatario y su usuario PRESTATARIO en una sola operación.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterBorrowerRequest  true  "credenciales y ficha del prestatario"
// @Success      201   {object}  dto.SuccessEnvelope{data=dto.RegistrationResponse}
// @Failure      400   {object}  dto.SuccessEnvelope
// @Router       /api/auth/register-prestatario [post]
func (h *AuthHandler) RegisterBorrower(c *fiber.Ctx) error {
	var in dto.RegisterBorrowerRequest
	if err := c.BodyParser(&in); err != nil {
		return authFail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.registration.RegisterBorrower(c.UserContext(), in)
	if err != nil {
		status, msg := statusFor(err)
		return authFail(c, status, msg)
	}
	return authOK(c, fiber.StatusCreated, out, "Prestatario y usuario registrados correctamente.")
}

// RegisterEmployee godoc
// @Summary      Autorregistro de empleado
// @Description  Crea el empleado y su usuario EMPLEADO en una sola operación.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterEmployeeRequest  true  "credenciales y ficha del empleado"
// @Success      201   {object}  dto.SuccessEnvelope{data=dto.RegistrationResponse}
// @Failure      400   {object}  dto.SuccessEnvelope
// @Router       /api/auth/register-empleado [post]
func (h *AuthHandler) RegisterEmployee(c *fiber.Ctx) error {
	var in dto.RegisterEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return authFail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	out, err := h.registration.RegisterEmployee(c.UserContext(), in)
	if err != nil {
		status, msg := statusFor(err)
		return authFail(c, status, msg)
	}
	return authOK(c, fiber.StatusCreated, out, "Empleado y usuario registrados correctamente.")
}

// Me godoc
// @Summary      Usuario dueño del token
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessEnvelope{data=dto.UserResponse}
// @Failure      401  {object}  dto.SuccessEnvelope
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.GetByID(GetIdentity(c).ID)
	if err != nil {
		return authFail(c, fiber.StatusInternalServerError, msgInternal)
	}
	if user == nil {
		return authFail(c, fiber.StatusNotFound, "Usuario no encontrado.")
	}
	return authOK(c, fiber.StatusOK, user, "")
}
