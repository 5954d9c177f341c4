package auth

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
	"github.com/jhoicas/banco-cliente/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Mensajes visibles del login.
const (
	MsgBadCredentials = "Usuario o contraseña incorrectos."
	MsgInactiveUser   = "El usuario se encuentra inactivo."
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	borrowerRepo repository.BorrowerRepository
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	borrowerRepo repository.BorrowerRepository,
	employeeRepo repository.EmployeeRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, borrowerRepo: borrowerRepo, employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Un PRESTATARIO debe apuntar a un prestatario existente; un EMPLEADO o ADMIN puede apuntar a su ficha.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.NewRuleError(domain.ErrInvalidInput, "", "Usuario y contraseña son obligatorios.")
	}
	role := entity.Role(in.Role)
	switch role {
	case entity.RoleEmployee, entity.RoleAdmin:
		if in.EmployeeID != nil {
			e, err := uc.employeeRepo.GetByID(*in.EmployeeID)
			if err != nil {
				return nil, err
			}
			if e == nil {
				return nil, domain.NewRuleError(domain.ErrNotFound, "", "Empleado no encontrado.")
			}
		}
	case entity.RoleBorrower:
		if in.BorrowerID == nil {
			return nil, domain.NewRuleError(domain.ErrInvalidInput, "", "Un usuario PRESTATARIO requiere id_prestatario.")
		}
		b, err := uc.borrowerRepo.GetByID(*in.BorrowerID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, domain.NewRuleError(domain.ErrNotFound, "", "Prestatario no encontrado.")
		}
	default:
		return nil, domain.NewRuleError(domain.ErrInvalidInput, "", "Rol inválido.")
	}
	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewRuleError(domain.ErrConflict, "", "El usuario ya existe.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if role == entity.RoleBorrower {
		user.BorrowerID = in.BorrowerID
	} else {
		user.EmployeeID = in.EmployeeID
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica usuario/password y genera el JWT con id, username, role e id_prestatario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewRuleError(domain.ErrUnauthorized, "", MsgBadCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.NewRuleError(domain.ErrUnauthorized, "", MsgBadCredentials)
	}
	if !user.Active {
		return nil, domain.NewRuleError(domain.ErrForbidden, "", MsgInactiveUser)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		ID:            user.ID,
		Username:      user.Username,
		Role:          string(user.Role),
		IDPrestatario: user.BorrowerID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       string(u.Role),
		BorrowerID: u.BorrowerID,
		EmployeeID: u.EmployeeID,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
	}
}
