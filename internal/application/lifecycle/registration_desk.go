package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// Credentials datos de acceso del formulario de autorregistro.
type Credentials struct {
	Secret   string
	Username string
	Password string
	Confirm  string
}

// RegistrationDesk autorregistro público: palabra secreta, credenciales y alta conjunta de ficha y usuario.
type RegistrationDesk struct {
	api      ports.RegistrationAPI
	secret   string
	notifier ports.Notifier
}

// NewRegistrationDesk compone la vista. secret es la clave que entrega el administrador.
func NewRegistrationDesk(api ports.RegistrationAPI, secret string, notifier ports.Notifier) *RegistrationDesk {
	return &RegistrationDesk{api: api, secret: secret, notifier: notifier}
}

// Unlock compara la palabra secreta sin recortar espacios.
func (d *RegistrationDesk) Unlock(word string) error {
	if word != d.secret {
		d.notifier.Enqueue(MsgWrongSecret, entity.SeverityError)
		return fmt.Errorf("lifecycle: palabra secreta: %w", domain.ErrForbidden)
	}
	return nil
}

func (d *RegistrationDesk) check(c Credentials) error {
	if err := d.Unlock(c.Secret); err != nil {
		return err
	}
	if strings.TrimSpace(c.Username) == "" || c.Password == "" || c.Confirm == "" {
		d.notifier.Enqueue(MsgMissingCredentials, entity.SeverityError)
		return fmt.Errorf("lifecycle: credenciales: %w", domain.ErrInvalidInput)
	}
	if c.Password != c.Confirm {
		d.notifier.Enqueue(MsgPasswordMismatch, entity.SeverityError)
		return fmt.Errorf("lifecycle: confirmación: %w", domain.ErrInvalidInput)
	}
	return nil
}

// RegisterBorrower crea prestatario y usuario PRESTATARIO. El registro queda a nombre del propio usuario.
func (d *RegistrationDesk) RegisterBorrower(ctx context.Context, c Credentials, b dto.CreateBorrowerRequest) (*entity.Registration, error) {
	if err := d.check(c); err != nil {
		return nil, err
	}
	b.RegisteredBy = c.Username
	reg, err := d.api.RegisterBorrower(ctx, dto.RegisterBorrowerRequest{Username: c.Username, Password: c.Password, Borrower: b})
	if err != nil {
		return nil, err
	}
	d.notifier.Enqueue(MsgBorrowerRegistered, entity.SeveritySuccess)
	return reg, nil
}

// RegisterEmployee crea empleado y usuario EMPLEADO.
func (d *RegistrationDesk) RegisterEmployee(ctx context.Context, c Credentials, e dto.CreateEmployeeRequest) (*entity.Registration, error) {
	if err := d.check(c); err != nil {
		return nil, err
	}
	reg, err := d.api.RegisterEmployee(ctx, dto.RegisterEmployeeRequest{Username: c.Username, Password: c.Password, Employee: e})
	if err != nil {
		return nil, err
	}
	d.notifier.Enqueue(MsgEmployeeRegistered, entity.SeveritySuccess)
	return reg, nil
}
