package ports

// KeyValueStore almacenamiento persistente de strings planos por clave fija
// (token de sesión y preferencia de tema). Sin serialización estructurada.
type KeyValueStore interface {
	// Get devuelve el valor y si existía.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
