package memory

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// SeedUser credenciales de demostración.
type SeedUser struct {
	Username string
	Password string
	Role     entity.Role
	// BorrowerCI liga el usuario PRESTATARIO a su prestatario.
	BorrowerCI string
}

// DemoBorrowers prestatarios iniciales del sandbox.
var DemoBorrowers = []entity.Borrower{
	{CI: "4567891", FirstName: "Ana", LastName: "Pérez", Email: "ana.perez@example.com", Phone: "70011223", ClientStatus: "ACTIVO", RegisteredBy: "seed"},
	{CI: "5678912", FirstName: "Luis", LastName: "Gómez", Email: "luis.gomez@example.com", Phone: "70044556", ClientStatus: "ACTIVO", RegisteredBy: "seed"},
}

// DemoUsers usuarios iniciales del sandbox, uno por rol.
var DemoUsers = []SeedUser{
	{Username: "admin", Password: "admin123", Role: entity.RoleAdmin},
	{Username: "empleado", Password: "empleado123", Role: entity.RoleEmployee},
	{Username: "ana", Password: "ana123", Role: entity.RoleBorrower, BorrowerCI: "4567891"},
	{Username: "luis", Password: "luis123", Role: entity.RoleBorrower, BorrowerCI: "5678912"},
}

// Seed carga prestatarios y usuarios. cost permite abaratar bcrypt en tests.
func Seed(db *DB, borrowers []entity.Borrower, users []SeedUser, cost int, now time.Time) error {
	return SeedRepositories(NewBorrowerRepository(db), NewUserRepository(db), borrowers, users, cost, now)
}

// SeedRepositories carga los mismos datos sobre cualquier persistencia.
func SeedRepositories(borrowerRepo repository.BorrowerRepository, userRepo repository.UserRepository,
	borrowers []entity.Borrower, users []SeedUser, cost int, now time.Time) error {
	ids := map[string]int64{}
	for _, b := range borrowers {
		b := b
		if b.RegisteredAt == "" {
			b.RegisteredAt = now.Format("2006-01-02")
		}
		if err := borrowerRepo.Create(&b); err != nil {
			return fmt.Errorf("seed borrower %s: %w", b.CI, err)
		}
		ids[b.CI] = b.ID
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
		user := &entity.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         u.Role,
			Active:       true,
			CreatedAt:    now,
		}
		if u.BorrowerCI != "" {
			id, ok := ids[u.BorrowerCI]
			if !ok {
				return fmt.Errorf("seed user %s: prestatario %s inexistente", u.Username, u.BorrowerCI)
			}
			user.BorrowerID = &id
		}
		if err := userRepo.Create(user); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}
	return nil
}
