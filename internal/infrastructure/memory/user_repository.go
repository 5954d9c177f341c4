package memory

import (
	"fmt"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios del sandbox.
type UserRepo struct {
	db *DB
}

// NewUserRepository construye el repositorio.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un usuario; el username es único.
func (r *UserRepo) Create(user *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users.all() {
		if u.Username == user.Username {
			return fmt.Errorf("insert user: username %q duplicado", user.Username)
		}
	}
	user.ID = r.db.users.insert(user.ID, *user)
	r.db.users.rows[user.ID] = *user
	return nil
}

// GetByID obtiene un usuario por id.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users.get(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByUsername obtiene un usuario por nombre de usuario.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, u := range r.db.users.all() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}
