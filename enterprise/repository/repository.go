// Package repository demonstrates the Repository pattern: the domain layer
// talks to persistence through narrow role interfaces, while the concrete
// storage technology stays swappable behind them.
//
// The role interfaces are generic, so a single adapter implementation can
// serve any entity type. The repository/memory and repository/bolt
// subpackages provide two such adapters, and repository/repositorycontract
// holds the behavior suite both of them have to satisfy.
//
// Entities mark their external identifier with the `ext:"ID"` struct tag.
// Adapters locate and assign identifiers through LookupID and SetID,
// which keeps the entity types free of storage aware methods.
package repository

import (
	"context"
	"fmt"
	"iter"
	"time"

	"go.llib.dev/exemplar/pkg/errorkit"
)

const (
	// ErrNotFound is returned when an operation references an entity
	// that is not present in the repository.
	ErrNotFound errorkit.Error = "entity not found"
	// ErrAlreadyExists is returned when Create receives an entity
	// whose identifier is already taken.
	ErrAlreadyExists errorkit.Error = "entity already exists"
	// ErrMissingID is returned when an operation requires an identifier,
	// but the entity carries none.
	ErrMissingID errorkit.Error = "entity has no identifier"
)

// Creator saves a new entity in the repository.
// The entity travels as a pointer so the repository can assign
// storage managed fields, most importantly the identifier.
type Creator[ENT any] interface {
	Create(ctx context.Context, ptr *ENT) error
}

// ByIDFinder retrieves a single entity by its identifier.
// A miss is reported through the found return value rather than an error,
// so callers are forced to handle the absent case explicitly.
type ByIDFinder[ENT, ID any] interface {
	FindByID(ctx context.Context, id ID) (ent ENT, found bool, err error)
}

// AllFinder lists every entity stored in the repository.
// Iteration failures surface through the error side of the sequence.
type AllFinder[ENT any] interface {
	FindAll(ctx context.Context) iter.Seq2[ENT, error]
}

// Updater overwrites an already stored entity with the received values.
// The entity must carry the identifier of the stored record.
type Updater[ENT any] interface {
	Update(ctx context.Context, ptr *ENT) error
}

// ByIDDeleter removes a single entity by its identifier.
type ByIDDeleter[ID any] interface {
	DeleteByID(ctx context.Context, id ID) error
}

// AllDeleter removes every entity from the repository.
type AllDeleter interface {
	DeleteAll(ctx context.Context) error
}

// OrderRepository is the composed persistence port of the Order aggregate.
// The domain layer depends on this interface, never on a concrete adapter.
type OrderRepository interface {
	Creator[Order]
	ByIDFinder[Order, OrderID]
	AllFinder[Order]
	Updater[Order]
	ByIDDeleter[OrderID]
	AllDeleter
}

// OrderID is the external identifier of an Order.
type OrderID string

// Order is the aggregate that the package examples persist.
type Order struct {
	ID        OrderID `ext:"ID"`
	Reference string
	Total     Money
	PlacedAt  time.Time
}

// Money is an amount of a given currency, kept in cents to avoid floats.
type Money struct {
	Cents    int
	Currency string
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.Cents/100, m.Cents%100, m.Currency)
}
