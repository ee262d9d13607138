// Package memory provides an in-memory repository adapter.
// It keeps everything in a mutex guarded map, which makes it
// the reference adapter for tests, demos and prototyping.
package memory

import (
	"context"
	"fmt"
	"iter"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	uuid "github.com/satori/go.uuid"

	"go.llib.dev/exemplar/enterprise/repository"
)

// NewMemory returns an empty in-memory store.
// Repositories of different entity types can share one Memory,
// each working within its own namespace.
func NewMemory() *Memory {
	return &Memory{namespaces: map[string]map[string]any{}}
}

// Memory is a concurrency safe, namespaced key value store.
type Memory struct {
	mutex      sync.RWMutex
	namespaces map[string]map[string]any
}

func (m *Memory) set(namespace, key string, value any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	table, ok := m.namespaces[namespace]
	if !ok {
		table = map[string]any{}
		m.namespaces[namespace] = table
	}
	table[key] = value
}

func (m *Memory) get(namespace, key string) (any, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	value, ok := m.namespaces[namespace][key]
	return value, ok
}

func (m *Memory) del(namespace, key string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	table, ok := m.namespaces[namespace]
	if !ok {
		return false
	}
	if _, ok := table[key]; !ok {
		return false
	}
	delete(table, key)
	return true
}

func (m *Memory) drop(namespace string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.namespaces, namespace)
}

// keys returns the storage keys of a namespace in lexical order,
// which keeps listing operations stable between runs.
func (m *Memory) keys(namespace string) []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	var keys []string
	for key := range m.namespaces[namespace] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// NewRepository returns a Repository that stores entities in the given Memory,
// within a namespace derived from the entity type name.
func NewRepository[ENT, ID any](m *Memory) *Repository[ENT, ID] {
	return &Repository[ENT, ID]{Memory: m}
}

// Repository is a generic in-memory implementation of the repository role interfaces.
type Repository[ENT, ID any] struct {
	// Memory is the backing store, possibly shared with other repositories.
	Memory *Memory
	// Namespace partitions the backing store.
	//
	// default: the entity type name
	Namespace string
	// MakeID overrides how identifiers are made for entities created without one.
	//
	// default: MakeID
	MakeID func(ctx context.Context) (ID, error)
}

func (r *Repository[ENT, ID]) Create(ctx context.Context, ptr *ENT) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ptr == nil {
		return fmt.Errorf("memory: nil entity pointer given to Create")
	}
	id, ok := repository.LookupID[ID](*ptr)
	if !ok {
		newID, err := r.mkID(ctx)
		if err != nil {
			return err
		}
		if err := repository.SetID(ptr, newID); err != nil {
			return err
		}
		id = newID
	}
	key := idToKey(id)
	if _, found := r.Memory.get(r.namespace(), key); found {
		return repository.ErrAlreadyExists.F(`%T already exists with id: %v`, *new(ENT), id)
	}
	r.Memory.set(r.namespace(), key, *ptr)
	return nil
}

func (r *Repository[ENT, ID]) FindByID(ctx context.Context, id ID) (ent ENT, found bool, err error) {
	if err := ctx.Err(); err != nil {
		return ent, false, err
	}
	value, ok := r.Memory.get(r.namespace(), idToKey(id))
	if !ok {
		return ent, false, nil
	}
	return value.(ENT), true, nil
}

func (r *Repository[ENT, ID]) FindAll(ctx context.Context) iter.Seq2[ENT, error] {
	return func(yield func(ENT, error) bool) {
		var zero ENT
		if err := ctx.Err(); err != nil {
			yield(zero, err)
			return
		}
		for _, key := range r.Memory.keys(r.namespace()) {
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}
			value, ok := r.Memory.get(r.namespace(), key)
			if !ok { // deleted since the keys were listed
				continue
			}
			if !yield(value.(ENT), nil) {
				return
			}
		}
	}
}

func (r *Repository[ENT, ID]) Update(ctx context.Context, ptr *ENT) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ptr == nil {
		return fmt.Errorf("memory: nil entity pointer given to Update")
	}
	id, ok := repository.LookupID[ID](*ptr)
	if !ok {
		return repository.ErrMissingID.F(`%T given to Update without identifier`, *new(ENT))
	}
	key := idToKey(id)
	if _, found := r.Memory.get(r.namespace(), key); !found {
		return errNotFound[ENT](id)
	}
	r.Memory.set(r.namespace(), key, *ptr)
	return nil
}

func (r *Repository[ENT, ID]) DeleteByID(ctx context.Context, id ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.Memory.del(r.namespace(), idToKey(id)) {
		return errNotFound[ENT](id)
	}
	return nil
}

func (r *Repository[ENT, ID]) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.Memory.drop(r.namespace())
	return nil
}

func (r *Repository[ENT, ID]) namespace() string {
	if r.Namespace != "" {
		return r.Namespace
	}
	return reflect.TypeOf(*new(ENT)).String()
}

func (r *Repository[ENT, ID]) mkID(ctx context.Context) (ID, error) {
	if r.MakeID != nil {
		return r.MakeID(ctx)
	}
	return MakeID[ID](ctx)
}

// MakeID is the default identifier generator of the adapter.
// String based identifier types receive a fresh UUID,
// integer based ones a process local serial number.
func MakeID[ID any](ctx context.Context) (ID, error) {
	var zero ID
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	rt := reflect.TypeOf(zero)
	if rt == nil {
		return zero, fmt.Errorf("memory: no default identifier generator for interface types")
	}
	id := reflect.New(rt).Elem()
	switch rt.Kind() {
	case reflect.String:
		id.SetString(uuid.NewV4().String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		id.SetInt(atomic.AddInt64(&serial, 1))
	default:
		return zero, fmt.Errorf("memory: no default identifier generator for %s, set Repository.MakeID", rt)
	}
	return id.Interface().(ID), nil
}

var serial int64

func idToKey[ID any](id ID) string { return fmt.Sprintf("%v", id) }

func errNotFound[ENT any](id any) error {
	return repository.ErrNotFound.F(`%T entity not found by id: %v`, *new(ENT), id)
}
