package schema

import (
	"fmt"
	"strings"

	"github.com/FlorentATo/pixie/types"
)

// Column describes a single output column of a relation.
type Column struct {
	Name         string             `yaml:"column_name"`
	Type         types.DataType     `yaml:"column_type"`
	SemanticType types.SemanticType `yaml:"column_semantic_type,omitempty"`
}

// Relation is an ordered list of column descriptors. UDTFs declare their
// output shape as a Relation.
type Relation struct {
	Columns []Column `yaml:"columns"`
}

func (r Relation) NumColumns() int {
	return len(r.Columns)
}

// ColIdxByName returns the position of the named column, or -1 if the
// relation has no such column.
func (r Relation) ColIdxByName(name string) int {
	for i := range r.Columns {
		if r.Columns[i].Name == name {
			return i
		}
	}
	return -1
}

func (r Relation) String() string {
	parts := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		parts[i] = fmt.Sprintf("%s:%s", col.Name, col.Type)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
