package physics

import (
	"errors"
	"fmt"
)

// Recoverable lookup failures. Invariant violations (buffer length
// mismatch, dereferencing an unattached coolant loop) are programmer
// errors and panic instead: continuing would read a misinterpreted
// buffer layout.
var (
	// ErrNoEntity indicates an entity name absent from the name table.
	ErrNoEntity = errors.New("physics: entity not found")

	// ErrNoSuchField indicates a field name with no buffer column.
	ErrNoSuchField = errors.New("physics: no such mutable field")

	// ErrNoSubsystem indicates a subsystem name absent from its registry.
	ErrNoSubsystem = errors.New("physics: subsystem not found")

	// ErrIndexRange indicates an integer index outside a collection.
	ErrIndexRange = errors.New("physics: index out of range")
)

func noEntity(name string) error {
	return fmt.Errorf("%w: %q", ErrNoEntity, name)
}

func noSubsystem(kind, name string) error {
	return fmt.Errorf("%w: %s %q", ErrNoSubsystem, kind, name)
}

func indexRange(kind string, index, size int) error {
	return fmt.Errorf("%w: %s index %d (size %d)", ErrIndexRange, kind, index, size)
}
