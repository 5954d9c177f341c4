package session

import (
	"context"
	"sync"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	pkgjwt "github.com/jhoicas/banco-cliente/pkg/jwt"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// TokenKey clave persistida del bearer token.
const TokenKey = "banco_token"

// State estado de la sesión.
type State string

const (
	Anonymous     State = "ANONYMOUS"
	Authenticated State = "AUTHENTICATED"
)

// DecodeIdentity deriva la identidad del token sin verificar firma.
// Token vacío o indecodificable devuelve nil; nunca entra en pánico.
func DecodeIdentity(token string) *entity.Identity {
	if token == "" {
		return nil
	}
	claims, err := pkgjwt.Decode(token)
	if err != nil {
		return nil
	}
	id := &entity.Identity{
		ID:       claims.ID,
		Username: claims.Username,
		Role:     entity.Role(claims.Role),
	}
	if claims.IDPrestatario != nil {
		v := *claims.IDPrestatario
		id.BorrowerID = &v
	}
	return id
}

// Store fuente única de verdad del token y la identidad. Los demás componentes solo la leen.
type Store struct {
	mu       sync.RWMutex
	kv       ports.KeyValueStore
	auth     ports.Authenticator
	log      *logger.Logger
	token    string
	identity *entity.Identity
	loading  bool
	errMsg   string
}

var (
	_ ports.TokenSource       = (*Store)(nil)
	_ ports.SessionTerminator = (*Store)(nil)
	_ ports.IdentitySource    = (*Store)(nil)
)

// NewStore construye la sesión en estado ANONYMOUS. Llamar HydrateFromStorage al iniciar.
func NewStore(kv ports.KeyValueStore, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{kv: kv, log: log.Named("session")}
}

// SetAuthenticator inyecta el colaborador de login. Debe llamarse antes de Login.
func (s *Store) SetAuthenticator(auth ports.Authenticator) {
	s.mu.Lock()
	s.auth = auth
	s.mu.Unlock()
}

// Login autentica y, si tiene éxito, guarda y persiste el token.
// Ante una falla el estado queda ANONYMOUS y el mensaje traducido queda en Err().
// Dos logins simultáneos no se serializan: gana el último en escribir.
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.mu.Lock()
	auth := s.auth
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	if auth == nil {
		s.fail(domain.ErrNoAuthenticator.Error())
		return domain.ErrNoAuthenticator
	}

	token, err := auth.Login(ctx, username, password)
	if err != nil {
		s.fail(err.Error())
		return err
	}

	identity := DecodeIdentity(token)
	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.loading = false
	s.mu.Unlock()

	if err := s.kv.Set(TokenKey, token); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo persistir el token")
	}
	ev := s.log.Info().Str("username", username)
	if identity != nil {
		ev = ev.Str("rol", string(identity.Role))
	}
	ev.Msg("sesión iniciada")
	return nil
}

func (s *Store) fail(msg string) {
	s.mu.Lock()
	s.loading = false
	s.errMsg = msg
	s.mu.Unlock()
}

// Logout limpia token, identidad y almacenamiento. Idempotente.
func (s *Store) Logout() {
	s.mu.Lock()
	had := s.token != ""
	s.token = ""
	s.identity = nil
	s.mu.Unlock()

	if err := s.kv.Delete(TokenKey); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo borrar el token persistido")
	}
	if had {
		s.log.Info().Msg("sesión cerrada")
	}
}

// HydrateFromStorage reconstruye el estado desde el almacenamiento persistido.
// Un token presente pero indecodificable se conserva con identidad nil.
func (s *Store) HydrateFromStorage() error {
	token, ok, err := s.kv.Get(TokenKey)
	if err != nil {
		return err
	}
	if !ok {
		token = ""
	}
	identity := DecodeIdentity(token)
	if token != "" && identity == nil {
		s.log.Warn().Msg("token persistido indecodificable: se conserva sin identidad")
	}
	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.mu.Unlock()
	return nil
}

// Token bearer vigente ("" si no hay).
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity copia de la identidad actual; nil si no hay o no se pudo decodificar.
func (s *Store) Identity() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	cp := *s.identity
	return &cp
}

// State ANONYMOUS o AUTHENTICATED según haya token.
func (s *Store) State() State {
	if s.Token() == "" {
		return Anonymous
	}
	return Authenticated
}

// Loading indica un login en curso.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err último mensaje de error de login ("" si no hay).
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *Store) role() entity.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return entity.RoleNone
	}
	return s.identity.Role
}

// IsEmployee EMPLEADO o ADMIN.
func (s *Store) IsEmployee() bool { return s.role().Satisfies(entity.RoleEmployee) }

// IsBorrower rol PRESTATARIO.
func (s *Store) IsBorrower() bool { return s.role() == entity.RoleBorrower }

// IsAdmin rol ADMIN.
func (s *Store) IsAdmin() bool { return s.role() == entity.RoleAdmin }
