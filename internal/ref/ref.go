// Package ref provides handle holders that let several independent owners
// observe the same underlying element.
package ref

import (
	"errors"

	inputkiterrors "github.com/alexisbeaulieu97/inputkit/pkg/errors"
)

// Holder receives the current underlying handle. Set is called once per
// render with the live handle and once on teardown with the zero value.
type Holder[T any] interface {
	Set(v T) error
}

// Ref is a plain mutable cell holding the current handle.
type Ref[T any] struct {
	Current T
}

// New creates an empty Ref.
func New[T any]() *Ref[T] {
	return &Ref[T]{}
}

// Set stores v as the current handle.
func (r *Ref[T]) Set(v T) error {
	r.Current = v
	return nil
}

// Func adapts a callback into a Holder.
type Func[T any] func(v T)

// Set invokes the callback with v.
func (f Func[T]) Set(v T) error {
	f(v)
	return nil
}

// FuncE adapts a callback that may reject the write.
type FuncE[T any] func(v T) error

// Set invokes the callback with v.
func (f FuncE[T]) Set(v T) error {
	return f(v)
}

// Merged forwards every write to a fixed, ordered list of holders.
type Merged[T any] struct {
	holders []Holder[T]
}

// Merge unifies holders into one. Nil holders are skipped; the order of the
// remaining holders is preserved exactly as supplied.
func Merge[T any](holders ...Holder[T]) *Merged[T] {
	kept := make([]Holder[T], 0, len(holders))
	for _, h := range holders {
		if isNil(h) {
			continue
		}
		kept = append(kept, h)
	}
	return &Merged[T]{holders: kept}
}

// Set writes v into every holder in order. Every holder is written even when
// an earlier one fails; failures are returned joined, each as a RefError.
func (m *Merged[T]) Set(v T) error {
	var errs []error
	for i, h := range m.holders {
		if err := h.Set(v); err != nil {
			errs = append(errs, inputkiterrors.NewRefError(i, err))
		}
	}
	return errors.Join(errs...)
}

// Release clears every holder by writing the zero value.
func (m *Merged[T]) Release() error {
	var zero T
	return m.Set(zero)
}

// Len reports how many holders receive writes.
func (m *Merged[T]) Len() int {
	return len(m.holders)
}

func isNil[T any](h Holder[T]) bool {
	if h == nil {
		return true
	}
	switch v := h.(type) {
	case *Ref[T]:
		return v == nil
	case Func[T]:
		return v == nil
	case FuncE[T]:
		return v == nil
	case *Merged[T]:
		return v == nil
	}
	return false
}
