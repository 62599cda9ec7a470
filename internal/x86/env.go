package x86

import "github.com/doctorn/slang/internal/diag"

// Binding pairs a variable name with the stack slot it lives in.
type Binding struct {
	Name string
	Loc  Location
}

// Environment tracks the stack-resident locals of one function: an ordered
// list of name-to-slot bindings plus the cumulative bytes reserved below the
// frame base. Later bindings shadow earlier ones with the same name, so
// lookup scans newest-first. The list only ever grows; slots are never
// reclaimed within a function.
type Environment struct {
	bindings  []Binding
	allocated int64
}

// NewEnvironment returns an empty environment for a fresh function.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Allocate reserves an 8-byte slot below the frame base for name, records
// the binding, and returns the slot's location.
func (e *Environment) Allocate(name string) Location {
	e.allocated += 8
	loc := Deref(Rbp(), -e.allocated)
	e.bindings = append(e.bindings, Binding{Name: name, Loc: loc})
	return loc
}

// Get returns the newest binding for name. An earlier name-resolution pass
// guarantees every referenced name was bound, so a miss here is a compiler
// bug and aborts the run.
func (e *Environment) Get(name string) Location {
	for i := len(e.bindings) - 1; i >= 0; i-- {
		if e.bindings[i].Name == name {
			return e.bindings[i].Loc
		}
	}
	diag.Violationf("unbound variable %q", name)
	return Location{}
}

// Bindings returns the full binding list in allocation order. Callers get a
// copy; the environment's own list stays private.
func (e *Environment) Bindings() []Binding {
	out := make([]Binding, len(e.bindings))
	copy(out, e.bindings)
	return out
}

// Allocated reports the total bytes reserved so far.
func (e *Environment) Allocated() int64 {
	return e.allocated
}
