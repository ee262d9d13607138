// Package publishedlanguage demonstrates the published language idiom:
// a versioned event schema shared between bounded contexts.
//
// The producing context encodes messages into self-describing envelopes.
// The consuming context decodes them through its own Registry, and a chain
// of upcasters lifts old schema versions to the newest one on the way in,
// so consumers only ever program against the latest shape.
package publishedlanguage

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	uuid "github.com/satori/go.uuid"

	"go.llib.dev/exemplar/pkg/errorkit"
)

// Message is what producing and consuming code works with.
// Implementations are plain structs that name their schema.
type Message interface {
	MessageName() string
	MessageVersion() int
}

// Envelope is the wire form of a message, the published language itself.
type Envelope struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Version int             `json:"version"`
	Payload json.RawMessage `json:"payload"`
}

const (
	ErrUnknownMessage   errorkit.Error = "message name is not part of the published language"
	ErrUnknownVersion   errorkit.Error = "message version has no registered schema"
	ErrMalformedPayload errorkit.Error = "message payload does not match its schema"
	ErrNoUpcastPath     errorkit.Error = "no upcast path leads to the newest version"
	ErrUpcastCycle      errorkit.Error = "upcast chain revisits an already seen version"
	ErrInvalidSchema    errorkit.Error = "message schema registration is invalid"
)

type schemaKey struct {
	Name    string
	Version int
}

// Registry holds one context's view of the published language:
// the payload schemas it can parse and the upcasts it applies.
type Registry struct {
	schemas map[schemaKey]reflect.Type
	upcasts map[schemaKey]func(Message) (Message, error)
}

// Register teaches the registry the schema of one message version,
// using the given prototype value as the payload shape.
func (r *Registry) Register(prototype Message) error {
	if prototype == nil {
		return ErrInvalidSchema.F("nil prototype")
	}
	rt := reflect.TypeOf(prototype)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return ErrInvalidSchema.F("prototype must be a struct, got %T", prototype)
	}
	if prototype.MessageName() == "" {
		return ErrInvalidSchema.F("message name is empty on %T", prototype)
	}
	if prototype.MessageVersion() <= 0 {
		return ErrInvalidSchema.F("message version must be positive on %T", prototype)
	}
	if r.schemas == nil {
		r.schemas = make(map[schemaKey]reflect.Type)
	}
	r.schemas[schemaKey{Name: prototype.MessageName(), Version: prototype.MessageVersion()}] = rt
	return nil
}

// Upcast teaches the registry how to lift a message of the given version
// to a newer one. Decode applies upcasts until the newest registered
// version is reached.
func (r *Registry) Upcast(name string, fromVersion int, lift func(Message) (Message, error)) {
	if r.upcasts == nil {
		r.upcasts = make(map[schemaKey]func(Message) (Message, error))
	}
	r.upcasts[schemaKey{Name: name, Version: fromVersion}] = lift
}

// Encode wraps the message into an addressed envelope.
func (r *Registry) Encode(msg Message) (Envelope, error) {
	if _, ok := r.schemas[schemaKey{Name: msg.MessageName(), Version: msg.MessageVersion()}]; !ok {
		return Envelope{}, ErrUnknownVersion.F("%s v%d", msg.MessageName(), msg.MessageVersion())
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		ID:      uuid.NewV4().String(),
		Name:    msg.MessageName(),
		Version: msg.MessageVersion(),
		Payload: payload,
	}, nil
}

// Decode parses the envelope's payload and lifts it to the newest version
// this registry knows for the message name.
func (r *Registry) Decode(envelope Envelope) (Message, error) {
	latest, known := r.latest(envelope.Name)
	if !known {
		return nil, ErrUnknownMessage.F("%q", envelope.Name)
	}
	rt, ok := r.schemas[schemaKey{Name: envelope.Name, Version: envelope.Version}]
	if !ok {
		return nil, ErrUnknownVersion.F("%s v%d", envelope.Name, envelope.Version)
	}
	ptr := reflect.New(rt)
	if err := json.Unmarshal(envelope.Payload, ptr.Interface()); err != nil {
		return nil, ErrMalformedPayload.F("%s v%d: %s", envelope.Name, envelope.Version, err)
	}
	msg, ok := ptr.Elem().Interface().(Message)
	if !ok {
		return nil, ErrInvalidSchema.F("%s does not implement Message by value", rt)
	}
	return r.lift(msg, latest)
}

// DecodeJSON is Decode over the raw wire bytes of an envelope.
func (r *Registry) DecodeJSON(raw []byte) (Message, error) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, ErrMalformedPayload.F("envelope: %s", err)
	}
	return r.Decode(envelope)
}

func (r *Registry) lift(msg Message, latest int) (Message, error) {
	visited := map[int]struct{}{msg.MessageVersion(): {}}
	for msg.MessageVersion() != latest {
		upcast, ok := r.upcasts[schemaKey{Name: msg.MessageName(), Version: msg.MessageVersion()}]
		if !ok {
			return nil, ErrNoUpcastPath.F("%s v%d, newest is v%d",
				msg.MessageName(), msg.MessageVersion(), latest)
		}
		lifted, err := upcast(msg)
		if err != nil {
			return nil, err
		}
		if _, seen := visited[lifted.MessageVersion()]; seen {
			return nil, ErrUpcastCycle.F("%s v%d appears twice",
				lifted.MessageName(), lifted.MessageVersion())
		}
		visited[lifted.MessageVersion()] = struct{}{}
		msg = lifted
	}
	return msg, nil
}

// Versions lists the registered versions of a message name in ascending order.
func (r *Registry) Versions(name string) []int {
	var versions []int
	for key := range r.schemas {
		if key.Name == name {
			versions = append(versions, key.Version)
		}
	}
	sort.Ints(versions)
	return versions
}

func (r *Registry) latest(name string) (int, bool) {
	versions := r.Versions(name)
	if len(versions) == 0 {
		return 0, false
	}
	return versions[len(versions)-1], true
}

func (e Envelope) String() string {
	return fmt.Sprintf("%s v%d (%s)", e.Name, e.Version, e.ID)
}
