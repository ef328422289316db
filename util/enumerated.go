package util

import (
	"fmt"
	"io"
	"sync"
)

// EnumSet numbers values in the order they are first added. It is safe for
// concurrent use.
type EnumSet[T comparable] struct {
	mu     sync.RWMutex
	Enum   map[T]int
	Index  []T
	Frozen bool
}

// Add returns the index of value, and whether it was new. Adding an unknown
// value to a frozen set panics.
func (e *EnumSet[T]) Add(value T) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	enum, exists := e.Enum[value]
	if exists {
		return enum, false
	}
	if e.Frozen {
		panic(fmt.Sprintf("cannot add %v to frozen enum set", value))
	}
	enum = len(e.Index)
	e.Enum[value] = enum
	e.Index = append(e.Index, value)
	return enum, true
}

func (e *EnumSet[T]) IndexOf(value T) (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	enum, exists := e.Enum[value]
	return enum, exists
}

func (e *EnumSet[T]) ValueOf(index int) T {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if index < 0 || len(e.Index) <= index {
		panic(fmt.Sprintf("unknown index requested: %v of %v", index, len(e.Index)))
	}
	return e.Index[index]
}

func (e *EnumSet[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.Index)
}

// Values returns a copy of the values in index order
func (e *EnumSet[T]) Values() []T {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]T(nil), e.Index...)
}

// Write prints one value per line, in index order, in the format read by
// conf.Read.
func (e *EnumSet[T]) Write(writer io.Writer) error {
	for _, v := range e.Values() {
		if _, err := fmt.Fprintln(writer, v); err != nil {
			return err
		}
	}
	return nil
}

func NewEnumSet[T comparable](capacity int) *EnumSet[T] {
	return &EnumSet[T]{
		Enum:  make(map[T]int, capacity),
		Index: make([]T, 0, capacity),
	}
}
