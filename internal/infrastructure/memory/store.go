// Package memory implementa los repositorios en memoria. Reproduce las restricciones
// UNIQUE y de clave foránea del esquema SQL; se usa en tests y con DB_DRIVER=memory.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// Store tablas compartidas por todos los repositorios en memoria.
type Store struct {
	mu  sync.RWMutex
	seq int64

	regions      map[int64]entity.Region
	provinces    map[int64]entity.Province
	supermarkets map[int64]entity.Supermarket
	locations    map[int64]entity.Location
	categories   map[int64]entity.Category
	products     map[int64]entity.Product
	tickets      map[int64]entity.Ticket
	// ticketProducts ticket_id → product_ids en orden de inserción.
	ticketProducts map[int64][]int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		regions:        map[int64]entity.Region{},
		provinces:      map[int64]entity.Province{},
		supermarkets:   map[int64]entity.Supermarket{},
		locations:      map[int64]entity.Location{},
		categories:     map[int64]entity.Category{},
		products:       map[int64]entity.Product{},
		tickets:        map[int64]entity.Ticket{},
		ticketProducts: map[int64][]int64{},
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func duplicate(table, key string) error {
	return fmt.Errorf("%s: %s: %w", table, key, domain.ErrDuplicate)
}

func inUse(table string) error {
	return fmt.Errorf("%s: %w", table, domain.ErrInUse)
}

func missingRef(table string, id int64) error {
	return fmt.Errorf("%s %d no existe: %w", table, id, domain.ErrNotFound)
}

// sortedIDs devuelve las claves ordenadas (equivalente a ORDER BY id).
func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// window aplica LIMIT/OFFSET a ids ya ordenados.
func window(ids []int64, limit, offset int) []int64 {
	if offset >= len(ids) {
		return nil
	}
	ids = ids[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return ids
}
