package repository

import (
	"fmt"
	"reflect"
	"strings"
)

// LookupID returns the external identifier of the entity.
// The identifier field is located by the `ext:"ID"` struct tag,
// falling back to the conventional ID field name when no tag is present.
// A zero valued identifier reports false, the same as a missing field.
func LookupID[ID any](ent any) (ID, bool) {
	var zero ID
	field, ok := idFieldOf(baseValueOf(ent))
	if !ok || field.IsZero() {
		return zero, false
	}
	id, ok := field.Interface().(ID)
	if !ok {
		return zero, false
	}
	return id, true
}

// SetID assigns the given identifier on the entity behind the pointer.
func SetID[ID any](ptr any, id ID) error {
	if ptr == nil {
		return fmt.Errorf("repository: nil given to SetID[%T]", id)
	}
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("repository: SetID expects a non nil entity pointer, got %T", ptr)
	}
	field, ok := idFieldOf(rv.Elem())
	if !ok {
		return fmt.Errorf("repository: no identifier field on %s", rv.Elem().Type())
	}
	if !field.CanSet() || field.Type() != reflect.TypeOf(id) {
		return fmt.Errorf("repository: identifier field of %s cannot hold %T", rv.Elem().Type(), id)
	}
	field.Set(reflect.ValueOf(id))
	return nil
}

func baseValueOf(ent any) reflect.Value {
	val := reflect.ValueOf(ent)
	for val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	return val
}

func idFieldOf(val reflect.Value) (reflect.Value, bool) {
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	T := val.Type()
	for i := 0; i < T.NumField(); i++ {
		if strings.EqualFold(T.Field(i).Tag.Get("ext"), "id") {
			return val.Field(i), true
		}
	}
	if field := val.FieldByName("ID"); field.IsValid() {
		return field, true
	}
	return reflect.Value{}, false
}
