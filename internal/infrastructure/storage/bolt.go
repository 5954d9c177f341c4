package storage

import (
	"fmt"
	"os"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
)

const (
	fileMode   os.FileMode = 0600
	bucketName             = "cliente"
)

// Bolt KeyValueStore persistido en un archivo bbolt (equivalente al localStorage del navegador).
type Bolt struct {
	db *bolt.DB
}

var _ ports.KeyValueStore = (*Bolt)(nil)

// OpenBolt abre (o crea) el archivo y asegura el bucket.
func OpenBolt(path string) (*Bolt, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage: ruta vacía")
	}
	db, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("storage: abrir %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: crear bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v != nil {
			// v solo es válido dentro de la transacción
			value, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("storage: leer %s: %w", key, err)
	}
	return value, found, nil
}

func (b *Bolt) Set(key, value string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	return nil
}

func (b *Bolt) Delete(key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("storage: borrar %s: %w", key, err)
	}
	return nil
}

// Close libera el archivo.
func (b *Bolt) Close() error { return b.db.Close() }
