package schema

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/FlorentATo/pixie/types"
)

// ColumnData holds one column's values. Exactly the slice selected by Type is
// populated; every operation switches exhaustively over the data type.
type ColumnData struct {
	Type         types.DataType
	Boolean      []bool
	Int64        []int64
	Uint128      []types.UInt128
	Float64      []float64
	String       []string
	Time64NS     []int64
	Duration64NS []int64
}

func NewBooleanColumn(values []bool) ColumnData {
	return ColumnData{Type: types.Boolean, Boolean: values}
}

func NewInt64Column(values []int64) ColumnData {
	return ColumnData{Type: types.Int64, Int64: values}
}

func NewUint128Column(values []types.UInt128) ColumnData {
	return ColumnData{Type: types.Uint128, Uint128: values}
}

func NewFloat64Column(values []float64) ColumnData {
	return ColumnData{Type: types.Float64, Float64: values}
}

func NewStringColumn(values []string) ColumnData {
	return ColumnData{Type: types.String, String: values}
}

func NewTime64NSColumn(values []int64) ColumnData {
	return ColumnData{Type: types.Time64NS, Time64NS: values}
}

func NewDuration64NSColumn(values []int64) ColumnData {
	return ColumnData{Type: types.Duration64NS, Duration64NS: values}
}

func (c ColumnData) Len() int {
	switch c.Type {
	case types.Boolean:
		return len(c.Boolean)
	case types.Int64:
		return len(c.Int64)
	case types.Uint128:
		return len(c.Uint128)
	case types.Float64:
		return len(c.Float64)
	case types.String:
		return len(c.String)
	case types.Time64NS:
		return len(c.Time64NS)
	case types.Duration64NS:
		return len(c.Duration64NS)
	case types.InvalidData:
		return 0
	default:
		panic(fmt.Sprintf("invalid column data type: %d", int(c.Type)))
	}
}

// NumBytes is the in-memory payload size of the column.
func (c ColumnData) NumBytes() int64 {
	switch c.Type {
	case types.Boolean:
		return int64(len(c.Boolean))
	case types.Int64:
		return int64(len(c.Int64)) * 8
	case types.Uint128:
		return int64(len(c.Uint128)) * 16
	case types.Float64:
		return int64(len(c.Float64)) * 8
	case types.String:
		var total int64
		for _, s := range c.String {
			total += int64(len(s))
		}
		return total
	case types.Time64NS:
		return int64(len(c.Time64NS)) * 8
	case types.Duration64NS:
		return int64(len(c.Duration64NS)) * 8
	case types.InvalidData:
		return 0
	default:
		panic(fmt.Sprintf("invalid column data type: %d", int(c.Type)))
	}
}

// RowBatch is a columnar batch of rows laid out per a Relation. Columns are
// appended left to right and checked against the relation as they arrive.
type RowBatch struct {
	relation Relation
	columns  []ColumnData
	numRows  int

	// End-of-window / end-of-stream markers carried alongside the data.
	Eow bool
	Eos bool
}

func NewRowBatch(relation Relation, numRows int) *RowBatch {
	return &RowBatch{
		relation: relation,
		columns:  make([]ColumnData, 0, relation.NumColumns()),
		numRows:  numRows,
	}
}

func (rb *RowBatch) Relation() Relation {
	return rb.relation
}

func (rb *RowBatch) NumRows() int {
	return rb.numRows
}

func (rb *RowBatch) NumColumns() int {
	return len(rb.columns)
}

// AddColumn appends the next column of the batch. The column must fit the
// relation: there must be a slot left, the length must equal the batch's row
// count, and the data type must match the declared column type.
func (rb *RowBatch) AddColumn(col ColumnData) error {
	idx := len(rb.columns)
	if idx >= rb.relation.NumColumns() {
		return errors.Errorf("relation only allows %d columns", rb.relation.NumColumns())
	}
	if col.Len() != rb.numRows {
		return errors.Errorf("batch only allows %d rows, got %d", rb.numRows, col.Len())
	}
	if col.Type != rb.relation.Columns[idx].Type {
		return errors.Errorf("column %d should be %s, got %s",
			idx, rb.relation.Columns[idx].Type, col.Type)
	}
	rb.columns = append(rb.columns, col)
	return nil
}

func (rb *RowBatch) HasColumn(i int) bool {
	return i >= 0 && i < len(rb.columns)
}

func (rb *RowBatch) ColumnAt(i int) ColumnData {
	return rb.columns[i]
}

// NumBytes is the total payload size of all columns added so far.
func (rb *RowBatch) NumBytes() int64 {
	if rb.numRows == 0 {
		return 0
	}
	var total int64
	for i := range rb.columns {
		total += rb.columns[i].NumBytes()
	}
	return total
}

func (rb *RowBatch) String() string {
	if len(rb.columns) == 0 {
		return "RowBatch: <empty>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "RowBatch(eow=%v, eos=%v, rows=%d):\n", rb.Eow, rb.Eos, rb.numRows)
	for i := range rb.columns {
		fmt.Fprintf(&sb, "  %s %s\n", rb.relation.Columns[i].Name, rb.columns[i].Type)
	}
	return sb.String()
}
