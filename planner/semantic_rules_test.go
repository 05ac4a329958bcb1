package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlorentATo/pixie/types"
)

func TestSemanticRuleRegistry_Specificity(t *testing.T) {
	reg := NewSemanticRuleRegistry()
	require.NoError(t, reg.Insert("test",
		[]types.SemanticType{types.STUnspecified, types.STUnspecified, types.STBytes},
		types.STPodName))
	require.NoError(t, reg.Insert("test",
		[]types.SemanticType{types.STUPID, types.STUnspecified, types.STBytes},
		types.STBytes))

	// Both rules match; the second has two exact positions vs one.
	out, err := reg.Lookup("test",
		[]types.SemanticType{types.STUPID, types.STServiceName, types.STBytes})
	require.NoError(t, err)
	assert.Equal(t, types.STBytes, out)

	// A query's STUnspecified doesn't satisfy the second rule's STUPID
	// requirement, so only the first rule matches.
	out, err = reg.Lookup("test",
		[]types.SemanticType{types.STUnspecified, types.STServiceName, types.STBytes})
	require.NoError(t, err)
	assert.Equal(t, types.STPodName, out)
}

func TestSemanticRuleRegistry_InsertionOrderIrrelevant(t *testing.T) {
	// Same rules as above, registered in the opposite order.
	reg := NewSemanticRuleRegistry()
	require.NoError(t, reg.Insert("test",
		[]types.SemanticType{types.STUPID, types.STUnspecified, types.STBytes},
		types.STBytes))
	require.NoError(t, reg.Insert("test",
		[]types.SemanticType{types.STUnspecified, types.STUnspecified, types.STBytes},
		types.STPodName))

	out, err := reg.Lookup("test",
		[]types.SemanticType{types.STUPID, types.STServiceName, types.STBytes})
	require.NoError(t, err)
	assert.Equal(t, types.STBytes, out)
}

func TestSemanticRuleRegistry_WildcardMatchesUnspecifiedQuery(t *testing.T) {
	reg := NewSemanticRuleRegistry()
	require.NoError(t, reg.Insert("f",
		[]types.SemanticType{types.STUnspecified}, types.STServiceName))

	out, err := reg.Lookup("f", []types.SemanticType{types.STUnspecified})
	require.NoError(t, err)
	assert.Equal(t, types.STServiceName, out)
}

func TestSemanticRuleRegistry_ArityMismatchNeverMatches(t *testing.T) {
	reg := NewSemanticRuleRegistry()
	require.NoError(t, reg.Insert("f",
		[]types.SemanticType{types.STBytes, types.STBytes}, types.STBytes))

	_, err := reg.Lookup("f", []types.SemanticType{types.STBytes})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSemanticRuleRegistry_UnknownName(t *testing.T) {
	reg := NewSemanticRuleRegistry()
	_, err := reg.Lookup("dne", []types.SemanticType{types.STBytes})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSemanticRuleRegistry_TieKeepsFirstRegistered(t *testing.T) {
	reg := NewSemanticRuleRegistry()
	require.NoError(t, reg.Insert("f",
		[]types.SemanticType{types.STUPID, types.STUnspecified}, types.STPodName))
	require.NoError(t, reg.Insert("f",
		[]types.SemanticType{types.STUnspecified, types.STBytes}, types.STServiceName))

	// Both rules match with one exact position each.
	out, err := reg.Lookup("f", []types.SemanticType{types.STUPID, types.STBytes})
	require.NoError(t, err)
	assert.Equal(t, types.STPodName, out)
}

func TestSemanticRuleRegistry_DuplicatePatternRejected(t *testing.T) {
	reg := NewSemanticRuleRegistry()
	pattern := []types.SemanticType{types.STUPID, types.STUnspecified}
	require.NoError(t, reg.Insert("f", pattern, types.STPodName))
	err := reg.Insert("f", pattern, types.STServiceName)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}
