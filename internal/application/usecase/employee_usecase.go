package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/application/auth"
	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// EmployeeUseCase ABM de empleados (solo administradores).
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employees repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees}
}

// List todos los empleados.
func (uc *EmployeeUseCase) List() ([]dto.EmployeeResponse, error) {
	list, err := uc.employees.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Get empleado por id.
func (uc *EmployeeUseCase) Get(id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.byID(id)
	if err != nil {
		return nil, err
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

// Create registra un empleado.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e := newEmployee(in)
	if reason := validateEmployee(e); reason != "" {
		return nil, invalid(reason)
	}
	if err := uc.employees.Create(e); err != nil {
		return nil, err
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

// Update aplica los campos presentes.
func (uc *EmployeeUseCase) Update(id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.byID(id)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		e.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		e.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Position != nil {
		e.Position = in.Position
	}
	if in.Salary != nil {
		e.Salary = in.Salary
	}
	if in.Age != nil {
		e.Age = in.Age
	}
	if reason := validateEmployee(e); reason != "" {
		return nil, invalid(reason)
	}
	if err := uc.employees.Update(e); err != nil {
		return nil, err
	}
	out := toEmployeeResponse(e)
	return &out, nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(id int64) error {
	if _, err := uc.byID(id); err != nil {
		return err
	}
	return uc.employees.Delete(id)
}

func (uc *EmployeeUseCase) byID(id int64) (*entity.Employee, error) {
	e, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, notFound("Empleado no encontrado.")
	}
	return e, nil
}

func newEmployee(in dto.CreateEmployeeRequest) *entity.Employee {
	return &entity.Employee{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Position:  in.Position,
		Salary:    in.Salary,
		Age:       in.Age,
	}
}

func validateEmployee(e *entity.Employee) string {
	switch {
	case e.FirstName == "":
		return "El nombre es obligatorio."
	case e.LastName == "":
		return "El apellido es obligatorio."
	case e.Salary != nil && e.Salary.LessThan(decimal.Zero):
		return "El salario no puede ser negativo."
	case e.Age != nil && (*e.Age < 18 || *e.Age > 100):
		return "La edad debe estar entre 18 y 100."
	}
	return ""
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Position:  e.Position,
		Salary:    e.Salary,
		Age:       e.Age,
	}
}

// RegistrationUseCase autorregistro: crea la ficha y el usuario que la referencia en una sola operación.
type RegistrationUseCase struct {
	auth      *auth.AuthUseCase
	users     repository.UserRepository
	borrowers repository.BorrowerRepository
	employees repository.EmployeeRepository
	tx        TxRunner
	now       Clock
}

// NewRegistrationUseCase construye el caso de uso. now nil = reloj del sistema.
func NewRegistrationUseCase(
	authUC *auth.AuthUseCase,
	users repository.UserRepository,
	borrowers repository.BorrowerRepository,
	employees repository.EmployeeRepository,
	tx TxRunner,
	now Clock,
) *RegistrationUseCase {
	return &RegistrationUseCase{auth: authUC, users: users, borrowers: borrowers, employees: employees, tx: tx, now: now.orNow()}
}

// RegisterBorrower alta de prestatario más usuario PRESTATARIO.
func (uc *RegistrationUseCase) RegisterBorrower(ctx context.Context, in dto.RegisterBorrowerRequest) (*dto.RegistrationResponse, error) {
	b := &entity.Borrower{
		CI:           strings.TrimSpace(in.Borrower.CI),
		FirstName:    strings.TrimSpace(in.Borrower.FirstName),
		LastName:     strings.TrimSpace(in.Borrower.LastName),
		Address:      in.Borrower.Address,
		Email:        in.Borrower.Email,
		Phone:        in.Borrower.Phone,
		BirthDate:    in.Borrower.BirthDate,
		ClientStatus: "ACTIVO",
		RegisteredAt: uc.now.today(),
		RegisteredBy: strings.TrimSpace(in.Username),
	}
	if reason := validateBorrower(b); reason != "" {
		return nil, invalid(reason)
	}
	var user *dto.UserResponse
	err := uc.tx.Run(ctx, func() error {
		if err := uc.checkCredentials(in.Username, in.Password); err != nil {
			return err
		}
		existing, err := uc.borrowers.GetByCI(b.CI)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewRuleError(domain.ErrConflict, "", "Ya existe un prestatario con la cédula "+b.CI+".")
		}
		if err := uc.borrowers.Create(b); err != nil {
			return err
		}
		user, err = uc.auth.RegisterUser(dto.RegisterRequest{
			Username: in.Username, Password: in.Password, Role: string(entity.RoleBorrower), BorrowerID: &b.ID,
		})
		if err != nil {
			_ = uc.borrowers.Delete(b.ID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	borrower := toBorrowerResponse(b)
	return &dto.RegistrationResponse{
		User:     dto.RegisteredUser{Username: user.Username, Role: user.Role, BorrowerID: user.BorrowerID},
		Borrower: &borrower,
	}, nil
}

// RegisterEmployee alta de empleado más usuario EMPLEADO.
func (uc *RegistrationUseCase) RegisterEmployee(ctx context.Context, in dto.RegisterEmployeeRequest) (*dto.RegistrationResponse, error) {
	e := newEmployee(in.Employee)
	if reason := validateEmployee(e); reason != "" {
		return nil, invalid(reason)
	}
	var user *dto.UserResponse
	err := uc.tx.Run(ctx, func() error {
		if err := uc.checkCredentials(in.Username, in.Password); err != nil {
			return err
		}
		if err := uc.employees.Create(e); err != nil {
			return err
		}
		var err error
		user, err = uc.auth.RegisterUser(dto.RegisterRequest{
			Username: in.Username, Password: in.Password, Role: string(entity.RoleEmployee), EmployeeID: &e.ID,
		})
		if err != nil {
			_ = uc.employees.Delete(e.ID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	employee := toEmployeeResponse(e)
	return &dto.RegistrationResponse{
		User:     dto.RegisteredUser{Username: user.Username, Role: user.Role, EmployeeID: user.EmployeeID},
		Employee: &employee,
	}, nil
}

// checkCredentials rechaza antes de crear la ficha lo que RegisterUser rechazaría después.
func (uc *RegistrationUseCase) checkCredentials(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return invalid("Usuario y contraseña son obligatorios.")
	}
	existing, err := uc.users.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.NewRuleError(domain.ErrConflict, "", "El usuario ya existe.")
	}
	return nil
}
