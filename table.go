package lemonade

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/btree"
)

var ErrImmutableMutation = errors.New("table is immutable")
var ErrInvalidCode = errors.New("code must be two ascii letters")
var ErrDuplicateCode = errors.New("duplicate code")

type pair struct {
	code string
	name string
}

func byCode(a, b interface{}) bool {
	return a.(*pair).code < b.(*pair).code
}

// Table is a read-only code to name mapping. The only way to fill one is a
// TableBuilder; after Build every write fails with ErrImmutableMutation.
// The zero value is an empty table.
type Table struct {
	items *btree.BTree
}

func (t *Table) Get(code string) (string, bool) {
	if t.items == nil {
		return "", false
	}

	found := t.items.Get(&pair{code: code})
	if found == nil {
		return "", false
	}

	return found.(*pair).name, true
}

func (t *Table) Has(code string) bool {
	_, ok := t.Get(code)
	return ok
}

func (t *Table) Len() int {
	if t.items == nil {
		return 0
	}
	return t.items.Len()
}

// Ascend calls fn for every entry in code order until fn returns false.
func (t *Table) Ascend(fn func(code, name string) bool) {
	if t.items == nil {
		return
	}

	t.items.Ascend(nil, func(i interface{}) bool {
		p := i.(*pair)
		return fn(p.code, p.name)
	})
}

func (t *Table) Codes() []string {
	codes := make([]string, 0, t.Len())
	t.Ascend(func(code, _ string) bool {
		codes = append(codes, code)
		return true
	})
	return codes
}

// Map returns a copy of the table contents. Changing it does not affect t.
func (t *Table) Map() map[string]string {
	result := make(map[string]string, t.Len())
	t.Ascend(func(code, name string) bool {
		result[code] = name
		return true
	})
	return result
}

func (t *Table) Put(code, name string) error {
	return errors.Wrapf(ErrImmutableMutation, "could not put %s=%s", code, name)
}

func (t *Table) Delete(code string) error {
	return errors.Wrapf(ErrImmutableMutation, "could not delete %s", code)
}

// String renders the table as {IN=India, US=United States}.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	t.Ascend(func(code, name string) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(code)
		sb.WriteByte('=')
		sb.WriteString(name)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// TableBuilder collects entries for a Table. The zero value is ready to use.
type TableBuilder struct {
	items *btree.BTree
	built bool
	err   error
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{items: btree.New(byCode)}
}

// Put adds an entry. The first failure sticks and is reported by Build.
func (b *TableBuilder) Put(code, name string) *TableBuilder {
	if b.err != nil {
		return b
	}

	if b.built {
		b.err = errors.Wrapf(ErrImmutableMutation, "builder already built, could not put %s", code)
		return b
	}

	if !validCode(code) {
		b.err = errors.Wrapf(ErrInvalidCode, "got %q", code)
		return b
	}

	if b.items == nil {
		b.items = btree.New(byCode)
	}

	if existing := b.items.Set(&pair{code: code, name: name}); existing != nil {
		b.err = errors.Wrapf(ErrDuplicateCode, "code %s", code)
	}

	return b
}

// Build freezes the builder and returns the table.
func (b *TableBuilder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.built {
		return nil, errors.Wrap(ErrImmutableMutation, "builder already built")
	}

	if b.items == nil {
		b.items = btree.New(byCode)
	}

	b.built = true
	return &Table{items: b.items}, nil
}

func validCode(code string) bool {
	if len(code) != 2 {
		return false
	}

	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}

	return true
}

// Countries returns the fixed country table.
func Countries() *Table {
	t, err := NewTableBuilder().
		Put("IN", "India").
		Put("US", "United States").
		Build()
	if err != nil {
		panic("could not build country table: " + err.Error())
	}

	return t
}
