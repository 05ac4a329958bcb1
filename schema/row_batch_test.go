package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlorentATo/pixie/types"
)

func testRelation() Relation {
	return Relation{Columns: []Column{
		{Name: "time_", Type: types.Time64NS},
		{Name: "upid", Type: types.Uint128, SemanticType: types.STUPID},
		{Name: "name", Type: types.String},
	}}
}

func TestRowBatch_AddColumn(t *testing.T) {
	rb := NewRowBatch(testRelation(), 2)

	require.NoError(t, rb.AddColumn(NewTime64NSColumn([]int64{1, 2})))
	require.NoError(t, rb.AddColumn(NewUint128Column([]types.UInt128{
		{High: 1, Low: 2},
		{High: 3, Low: 4},
	})))
	require.NoError(t, rb.AddColumn(NewStringColumn([]string{"a", "bc"})))

	assert.Equal(t, 3, rb.NumColumns())
	assert.Equal(t, 2, rb.NumRows())
	assert.True(t, rb.HasColumn(2))
	assert.False(t, rb.HasColumn(3))
	assert.Equal(t, types.Uint128, rb.ColumnAt(1).Type)

	// 2*8 + 2*16 + 3 string bytes.
	assert.Equal(t, int64(51), rb.NumBytes())

	// Relation is full.
	err := rb.AddColumn(NewInt64Column([]int64{1, 2}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestRowBatch_WrongRowCount(t *testing.T) {
	rb := NewRowBatch(testRelation(), 2)
	err := rb.AddColumn(NewTime64NSColumn([]int64{1, 2, 3}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows")
}

func TestRowBatch_WrongColumnType(t *testing.T) {
	rb := NewRowBatch(testRelation(), 1)
	err := rb.AddColumn(NewInt64Column([]int64{1}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TIME64NS")
}

func TestColumnData_Len(t *testing.T) {
	tests := []struct {
		col  ColumnData
		want int
	}{
		{NewBooleanColumn([]bool{true, false}), 2},
		{NewInt64Column(nil), 0},
		{NewFloat64Column([]float64{1.5}), 1},
		{NewDuration64NSColumn([]int64{1, 2, 3}), 3},
		{ColumnData{}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.col.Len())
	}
}

func TestRelation_String(t *testing.T) {
	assert.Equal(t, "[time_:TIME64NS, upid:UINT128, name:STRING]", testRelation().String())
}
