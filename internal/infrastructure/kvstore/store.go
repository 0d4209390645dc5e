// Package kvstore implementa el store persistente del sistema: colecciones
// con nombre que guardan un arreglo JSON bajo una clave fija, con lectura
// get(clave, default) y escritura set(clave, valor) completas. Sin
// transacciones ni bloqueo: cada mutación lee la colección entera, la
// modifica en memoria y la reescribe (last-writer-wins; el sistema tiene un
// único escritor activo).
//
// El respaldo físico es un archivo SQLite local con una sola tabla kv.
package kvstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	_ "modernc.org/sqlite"
)

// Claves fijas de las colecciones. No hay otras claves en el store.
const (
	KeyUsers             = "dwoms_users"
	KeySessions          = "dwoms_sessions"
	KeyProductionEntries = "dwoms_production_entries"
	KeyTasks             = "dwoms_tasks"
	KeyInventory         = "dwoms_inventory"
)

// Store acceso clave-valor con serialización JSON.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) el archivo del store y garantiza el esquema kv.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kvstore: abrir %q: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("kvstore: crear esquema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra el archivo del store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get deserializa el valor JSON de key en dest. Clave ausente o valor
// corrupto dejan dest con el default del caller y no son un error: la
// corrupción se trata como ausencia y nunca se propaga al usuario.
// Solo fallos de infraestructura (I/O del archivo) devuelven error.
func (s *Store) Get(key string, dest interface{}) error {
	var raw []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("kvstore: leer %q: %w", key, err)
	}
	// Se deserializa sobre un temporal: si el JSON es inválido o no coincide
	// con el tipo de dest, el caller conserva su default intacto en lugar de
	// un valor llenado a medias.
	tmp := reflect.New(reflect.TypeOf(dest).Elem())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		return nil
	}
	reflect.ValueOf(dest).Elem().Set(tmp.Elem())
	return nil
}

// Set serializa value como JSON y lo escribe bajo key (upsert completo).
func (s *Store) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore: serializar %q: %w", key, err)
	}
	_, err = s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	if err != nil {
		return fmt.Errorf("kvstore: escribir %q: %w", key, err)
	}
	return nil
}
