// Package bolt provides a BoltDB backed repository adapter.
// Each repository owns one bucket in the database file, named after its
// namespace, and entities travel in and out as JSON documents.
package bolt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"reflect"

	boltdb "github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"

	"go.llib.dev/exemplar/enterprise/repository"
)

// Open opens the BoltDB file at the given path, creating it when needed.
// The returned DB must be closed, as BoltDB holds an exclusive lock on the file.
func Open(path string) (*DB, error) {
	conn, err := boltdb.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}
	return &DB{conn: conn}, nil
}

// DB wraps a bolt connection that repositories of different entity types can share.
type DB struct {
	conn *boltdb.DB
}

// Close releases the database file and its lock.
func (db *DB) Close() error { return db.conn.Close() }

// NewRepository returns a Repository that stores entities in the given DB,
// within a bucket named after the entity type.
func NewRepository[ENT, ID any](db *DB) *Repository[ENT, ID] {
	return &Repository[ENT, ID]{DB: db}
}

// Repository is a generic BoltDB implementation of the repository role interfaces.
type Repository[ENT, ID any] struct {
	// DB is the backing database, possibly shared with other repositories.
	DB *DB
	// Namespace names the bucket of this repository.
	//
	// default: the entity type name
	Namespace string
	// MakeID overrides how identifiers are made for entities created without one.
	//
	// default: a fresh UUID for string based identifier types
	MakeID func(ctx context.Context) (ID, error)
}

func (r *Repository[ENT, ID]) Create(ctx context.Context, ptr *ENT) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ptr == nil {
		return fmt.Errorf("bolt: nil entity pointer given to Create")
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
	data, err := json.Marshal(*ptr)
	if err != nil {
		return fmt.Errorf("bolt: encode %T: %w", *ptr, err)
	}
	key := []byte(idToKey(id))
	return r.DB.conn.Update(func(tx *boltdb.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(r.bucketName())
		if err != nil {
			return err
		}
		if bucket.Get(key) != nil {
			return repository.ErrAlreadyExists.F(`%T already exists with id: %v`, *new(ENT), id)
		}
		return bucket.Put(key, data)
	})
}

func (r *Repository[ENT, ID]) FindByID(ctx context.Context, id ID) (ent ENT, found bool, err error) {
	if err := ctx.Err(); err != nil {
		return ent, false, err
	}
	err = r.DB.conn.View(func(tx *boltdb.Tx) error {
		bucket := tx.Bucket(r.bucketName())
		if bucket == nil {
			return nil
		}
		data := bucket.Get([]byte(idToKey(id)))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &ent)
	})
	if err != nil {
		var zero ENT
		return zero, false, err
	}
	return ent, found, nil
}

// FindAll yields the bucket content in key order.
// The records are snapshotted within a single read transaction,
// so the sequence observes a consistent state of the bucket.
func (r *Repository[ENT, ID]) FindAll(ctx context.Context) iter.Seq2[ENT, error] {
	return func(yield func(ENT, error) bool) {
		var zero ENT
		if err := ctx.Err(); err != nil {
			yield(zero, err)
			return
		}
		var records [][]byte
		err := r.DB.conn.View(func(tx *boltdb.Tx) error {
			bucket := tx.Bucket(r.bucketName())
			if bucket == nil {
				return nil
			}
			return bucket.ForEach(func(_, value []byte) error {
				data := make([]byte, len(value))
				copy(data, value)
				records = append(records, data)
				return nil
			})
		})
		if err != nil {
			yield(zero, err)
			return
		}
		for _, data := range records {
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}
			var ent ENT
			if err := json.Unmarshal(data, &ent); err != nil {
				yield(zero, fmt.Errorf("bolt: decode %T: %w", ent, err))
				return
			}
			if !yield(ent, nil) {
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
		return fmt.Errorf("bolt: nil entity pointer given to Update")
	}
	id, ok := repository.LookupID[ID](*ptr)
	if !ok {
		return repository.ErrMissingID.F(`%T given to Update without identifier`, *new(ENT))
	}
	data, err := json.Marshal(*ptr)
	if err != nil {
		return fmt.Errorf("bolt: encode %T: %w", *ptr, err)
	}
	key := []byte(idToKey(id))
	return r.DB.conn.Update(func(tx *boltdb.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(r.bucketName())
		if err != nil {
			return err
		}
		if bucket.Get(key) == nil {
			return errNotFound[ENT](id)
		}
		return bucket.Put(key, data)
	})
}

func (r *Repository[ENT, ID]) DeleteByID(ctx context.Context, id ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := []byte(idToKey(id))
	return r.DB.conn.Update(func(tx *boltdb.Tx) error {
		bucket := tx.Bucket(r.bucketName())
		if bucket == nil || bucket.Get(key) == nil {
			return errNotFound[ENT](id)
		}
		return bucket.Delete(key)
	})
}

func (r *Repository[ENT, ID]) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.DB.conn.Update(func(tx *boltdb.Tx) error {
		err := tx.DeleteBucket(r.bucketName())
		if errors.Is(err, boltdb.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}

func (r *Repository[ENT, ID]) bucketName() []byte {
	if r.Namespace != "" {
		return []byte(r.Namespace)
	}
	return []byte(reflect.TypeOf(*new(ENT)).String())
}

func (r *Repository[ENT, ID]) mkID(ctx context.Context) (ID, error) {
	if r.MakeID != nil {
		return r.MakeID(ctx)
	}
	var zero ID
	rt := reflect.TypeOf(zero)
	if rt == nil || rt.Kind() != reflect.String {
		return zero, fmt.Errorf("bolt: no default identifier generator for %T, set Repository.MakeID", zero)
	}
	id := reflect.New(rt).Elem()
	id.SetString(uuid.NewV4().String())
	return id.Interface().(ID), nil
}

func idToKey[ID any](id ID) string { return fmt.Sprintf("%v", id) }

func errNotFound[ENT any](id any) error {
	return repository.ErrNotFound.F(`%T entity not found by id: %v`, *new(ENT), id)
}
