// Package env implements twig's environment chain as an arena of frames
// addressed by integer handle, an alternative to pointer-linked frames
// with shared ownership. A Function value stores the integer handle of
// its defining frame rather than a frame pointer, so a closure a script
// stores back into its own defining frame is an ordinary handle cycle
// the Go garbage collector handles without special-casing.
package env

import "github.com/arourke/twig/internal/value"

const noParent = -1

// Frame is one link in the environment chain: a name→value mapping and
// a name→field-list mapping for struct declarations (spec.md §3),
// plus the handle of its parent frame.
type Frame struct {
	words   []string
	values  []value.Value
	structs map[string][]string
	parent  int
}

// Arena owns every frame ever created during a run and hands out stable
// integer handles to them.
type Arena struct {
	frames []*Frame
}

// NewArena creates an arena containing a single root frame (no parent)
// and returns the arena plus the root frame's handle.
func NewArena() (*Arena, int) {
	a := &Arena{}
	root := a.newFrame(noParent)
	return a, root
}

func (a *Arena) newFrame(parent int) int {
	f := &Frame{parent: parent, structs: make(map[string][]string)}
	a.frames = append(a.frames, f)
	return len(a.frames) - 1
}

// Child creates a new frame whose parent is parentHandle and returns its
// handle. Used for let bodies, for loops (one frame per loop), while
// iterations, and function calls.
func (a *Arena) Child(parentHandle int) int {
	return a.newFrame(parentHandle)
}

func (a *Arena) frame(handle int) *Frame {
	return a.frames[handle]
}

// Lookup walks from handle up through parents, returning the first
// binding found (spec.md §4.4).
func (a *Arena) Lookup(handle int, name string) (value.Value, bool) {
	for handle != noParent {
		f := a.frame(handle)
		for i, w := range f.words {
			if w == name {
				return f.values[i], true
			}
		}
		handle = f.parent
	}
	return value.Nil, false
}

// Declare writes name into the frame at handle. Returns false if name is
// already bound *in that frame* (not in an ancestor) — spec.md's `var`
// collision rule.
func (a *Arena) Declare(handle int, name string, v value.Value) bool {
	f := a.frame(handle)
	for _, w := range f.words {
		if w == name {
			return false
		}
	}
	f.words = append(f.words, name)
	f.values = append(f.values, v)
	return true
}

// ForceDeclare writes name into the frame at handle, overwriting any
// existing same-frame binding instead of failing. Used by `fn`, which
// spec.md §4.5 permits to redefine a name in the current frame.
func (a *Arena) ForceDeclare(handle int, name string, v value.Value) {
	f := a.frame(handle)
	for i, w := range f.words {
		if w == name {
			f.values[i] = v
			return
		}
	}
	f.words = append(f.words, name)
	f.values = append(f.values, v)
}

// Assign walks from handle up through parents and overwrites the first
// binding found. Returns false if no binding exists anywhere in the
// chain (spec.md §4.4's `assign` failure case).
func (a *Arena) Assign(handle int, name string, v value.Value) bool {
	for handle != noParent {
		f := a.frame(handle)
		for i, w := range f.words {
			if w == name {
				f.values[i] = v
				return true
			}
		}
		handle = f.parent
	}
	return false
}

// DeclareStruct records a structure's field list in the frame at
// handle.
func (a *Arena) DeclareStruct(handle int, name string, fields []string) {
	a.frame(handle).structs[name] = fields
}

// FindStruct walks from handle up through parents looking for a
// structure declaration.
func (a *Arena) FindStruct(handle int, name string) ([]string, bool) {
	for handle != noParent {
		f := a.frame(handle)
		if fields, ok := f.structs[name]; ok {
			return fields, true
		}
		handle = f.parent
	}
	return nil, false
}
