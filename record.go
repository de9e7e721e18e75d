package lemonade

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

const (
	NameKey = "name"
	AgeKey  = "age"
)

// Record is the demo person record.
type Record struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func NewRecord(name string, age int) Record {
	return Record{Name: name, Age: age}
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	var cp Record
	if err := copier.Copy(&cp, &r); err != nil {
		panic("could not copy record: " + err.Error())
	}

	return cp
}

// M returns the generic form of r.
func (r Record) M() M {
	return M{NameKey: r.Name, AgeKey: r.Age}
}

// Marshal encodes r as JSON keeping the field order, {"name":...,"age":...}.
func (r Record) Marshal() ([]byte, error) {
	return Marshal(r)
}

// RecordFromM reads a Record out of its generic form.
func RecordFromM(m M) (Record, error) {
	name, err := m.GetString(NameKey)
	if err != nil {
		return Record{}, errors.Wrap(err, "could not read record")
	}

	age, err := m.GetInt(AgeKey)
	if err != nil {
		return Record{}, errors.Wrap(err, "could not read record")
	}

	return Record{Name: name, Age: age}, nil
}
