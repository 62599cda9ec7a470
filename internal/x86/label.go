package x86

import (
	"fmt"
	"sync/atomic"
)

// Label identifies a branch target or a function entry point.
// Labels come in two flavors: generated labels carry a unique number minted
// by a LabelAllocator, given labels carry a fixed symbol chosen by the caller
// (well-known entry points like "main").
// Labels are immutable values and cheap to copy.
type Label struct {
	generated bool
	id        uint64
	name      string
}

// GivenLabel wraps a fixed, caller-chosen symbolic name.
func GivenLabel(name string) Label {
	return Label{name: name}
}

// String renders the label the way it appears in the emitted assembly:
// ".L<id>" for generated labels, the raw symbol for given ones.
func (l Label) String() string {
	if l.generated {
		return fmt.Sprintf(".L%d", l.id)
	}
	return l.name
}

// LabelAllocator mints generated labels with run-wide unique numbers.
// A single allocator is shared by every function compiled in one session:
// the final program concatenates all their instruction streams into one flat
// label namespace, so a colliding pair would silently corrupt control flow.
//
// The counter is atomic, so functions compiled concurrently may share one
// allocator. No ordering is promised among concurrent calls, only that no
// two labels ever share a number.
type LabelAllocator struct {
	count atomic.Uint64
}

// NewLabelAllocator returns a fresh allocator starting at label 0.
func NewLabelAllocator() *LabelAllocator {
	return &LabelAllocator{}
}

// Fresh returns a generated label whose number has never been handed out by
// this allocator before.
func (a *LabelAllocator) Fresh() Label {
	return Label{generated: true, id: a.count.Add(1) - 1}
}
