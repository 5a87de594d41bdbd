// Package tables implements the ordered symbol table used by the assembler
// for both label bindings and relocation records.
package tables

import (
	"errors"
	"fmt"
	"io"
)

// Mode controls whether a table enforces name uniqueness on insert.
type Mode int

const (
	// NonUnique allows the same name to be inserted more than once.
	// Relocation tables use this mode.
	NonUnique Mode = iota
	// UniqueName rejects an insert whose name is already present.
	// Label tables use this mode.
	UniqueName
)

const initialCap = 5

var (
	ErrMisaligned    = errors.New("address is not a multiple of 4")
	ErrDuplicateName = errors.New("name already exists in table")
)

// Symbol is one name/address binding. The address is a byte offset from the
// first instruction of the text segment.
type Symbol struct {
	Name string
	Addr uint32
}

// SymbolTable is an insertion-ordered collection of symbols. Entries are only
// ever appended; insertion order is what Serialize emits.
type SymbolTable struct {
	syms []Symbol
	mode Mode
}

// NewSymbolTable returns an empty table operating in the given mode.
func NewSymbolTable(mode Mode) *SymbolTable {
	return &SymbolTable{
		syms: make([]Symbol, 0, initialCap),
		mode: mode,
	}
}

// Add appends a symbol binding NAME to ADDR. The address must be
// word-aligned. In UniqueName mode a name collision rejects the insert and
// leaves the table unchanged. The stored name is an independent copy; Go
// strings are immutable so retaining name here never aliases caller storage.
func (t *SymbolTable) Add(name string, addr uint32) error {
	if addr%4 != 0 {
		return fmt.Errorf("symbol %q at %d: %w", name, addr, ErrMisaligned)
	}
	if t.mode == UniqueName {
		for _, s := range t.syms {
			if s.Name == name {
				return fmt.Errorf("symbol %q: %w", name, ErrDuplicateName)
			}
		}
	}
	if len(t.syms) == cap(t.syms) {
		// Doubling growth, kept from the original container.
		grown := make([]Symbol, len(t.syms), cap(t.syms)*2)
		copy(grown, t.syms)
		t.syms = grown
	}
	t.syms = append(t.syms, Symbol{Name: name, Addr: addr})
	return nil
}

// Lookup returns the address of the first entry named NAME in insertion
// order. The second return is false if the name was never inserted.
func (t *SymbolTable) Lookup(name string) (uint32, bool) {
	for _, s := range t.syms {
		if s.Name == name {
			return s.Addr, true
		}
	}
	return 0, false
}

// Len returns the number of entries.
func (t *SymbolTable) Len() int {
	return len(t.syms)
}

// Symbols returns the entries in insertion order.
func (t *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, len(t.syms))
	copy(out, t.syms)
	return out
}

// Serialize writes every entry as "<decimal address>\t<name>\n" in insertion
// order, with no header, footer, or extra whitespace.
func (t *SymbolTable) Serialize(w io.Writer) error {
	for _, s := range t.syms {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", s.Addr, s.Name); err != nil {
			return fmt.Errorf("writing symbol %q: %w", s.Name, err)
		}
	}
	return nil
}
