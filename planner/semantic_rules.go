package planner

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/FlorentATo/pixie/types"
)

type semanticRule struct {
	pattern []types.SemanticType
	output  types.SemanticType
}

// SemanticRuleRegistry holds the wildcard-pattern rules that propagate
// semantic types through function calls. types.STUnspecified in a rule
// position matches any query value at that position; the most specific
// matching rule (most non-wildcard positions) wins.
type SemanticRuleRegistry struct {
	rules map[string][]semanticRule
}

func NewSemanticRuleRegistry() *SemanticRuleRegistry {
	return &SemanticRuleRegistry{rules: map[string][]semanticRule{}}
}

// Insert registers a rule under name. An exactly duplicated pattern is
// rejected, since it would make Lookup results depend on insertion order.
func (r *SemanticRuleRegistry) Insert(name string, pattern []types.SemanticType, output types.SemanticType) error {
	for _, rule := range r.rules[name] {
		if semanticTypesEqual(rule.pattern, pattern) {
			return errors.Wrapf(ErrInvalidDescriptor,
				"duplicate semantic rule %s%s", name, formatSemanticTypes(pattern))
		}
	}
	r.rules[name] = append(r.rules[name], semanticRule{pattern: pattern, output: output})
	return nil
}

// Lookup finds the best matching rule for the query pattern and returns its
// output type. Matching is asymmetric: a wildcard in the rule matches any
// query value, but an STUnspecified in the query never satisfies a concrete
// rule position. Among matching rules the one with the most non-wildcard
// positions wins; at equal specificity the first registered rule is kept
// (a deterministic but non-canonical choice).
func (r *SemanticRuleRegistry) Lookup(name string, query []types.SemanticType) (types.SemanticType, error) {
	rules, ok := r.rules[name]
	if !ok {
		return types.STUnspecified, errors.Wrapf(ErrNotFound, "no semantic rules for %q", name)
	}

	best := -1
	out := types.STUnspecified
	for _, rule := range rules {
		specificity, matches := matchRule(rule.pattern, query)
		if matches && specificity > best {
			best = specificity
			out = rule.output
		}
	}
	if best < 0 {
		return types.STUnspecified, errors.Wrapf(ErrNotFound,
			"no semantic rule for %s%s", name, formatSemanticTypes(query))
	}
	return out, nil
}

func matchRule(pattern, query []types.SemanticType) (specificity int, matches bool) {
	if len(pattern) != len(query) {
		return 0, false
	}
	for i := range pattern {
		if pattern[i] == types.STUnspecified {
			continue
		}
		if pattern[i] != query[i] {
			return 0, false
		}
		specificity++
	}
	return specificity, true
}

func semanticTypesEqual(a, b []types.SemanticType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatSemanticTypes(pattern []types.SemanticType) string {
	parts := make([]string, len(pattern))
	for i, st := range pattern {
		parts[i] = st.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
