package logging

import (
	"fmt"
	"reflect"
)

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(l *Logger, e entry)
}

// Field creates a single key value pair based logging detail.
// It will enrich the log entry with a value in the key you gave.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e entry) {
	val := l.toFieldValue(f.Value)
	if _, ok := val.(nullLoggingDetail); ok {
		return
	}
	e[l.getKeyFormatter()(f.Key)] = val
}

// Fields is a collection of field that you can add to your logging record.
// It will enrich the log entry with a value in the key you gave.
type Fields map[string]any

func (fields Fields) addTo(l *Logger, e entry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

// ErrField creates a logging detail that describes an error value under the "error" key.
func ErrField(err error) Detail {
	if err == nil {
		return nullLoggingDetail{}
	}
	return Field("error", Fields{
		"message": err.Error(),
	})
}

func (l *Logger) toFieldValue(val any) any {
	if val == nil {
		return nil
	}
	rv := reflect.ValueOf(val)
	switch val := rv.Interface().(type) {
	case entry:
		vs := map[string]any{}
		for k, v := range val {
			vs[l.getKeyFormatter()(k)] = l.toFieldValue(v)
		}
		return vs

	case field:
		le := entry{}
		val.addTo(l, le)
		return l.toFieldValue(le)

	case Fields:
		le := entry{}
		val.addTo(l, le)
		return l.toFieldValue(le)

	case []Detail:
		le := entry{}
		for _, v := range val {
			v.addTo(l, le)
		}
		return l.toFieldValue(le)

	case error:
		return l.toFieldValue(Fields{"message": val.Error()})

	default:
		switch rv.Kind() {
		case reflect.Pointer:
			if rv.IsNil() {
				return nil
			}
			return l.toFieldValue(rv.Elem().Interface())

		case reflect.Map:
			if rv.Type().Key().Kind() != reflect.String {
				l.Warn(nil, fmt.Sprintf("unsupported map type for logging field: %T", rv.Interface()))
				return nullLoggingDetail{}
			}

			vs := map[string]any{}
			for _, key := range rv.MapKeys() {
				vs[l.getKeyFormatter()(key.String())] = l.toFieldValue(rv.MapIndex(key).Interface())
			}

			return vs

		default:
			return rv.Interface()
		}
	}
}

type entry map[string]any

func (e entry) addTo(l *Logger, oth entry) { oth.Merge(e) }

func (e entry) Merge(oth entry) entry {
	for k, v := range oth {
		e[k] = v
	}
	return e
}

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(*Logger, entry) {}
