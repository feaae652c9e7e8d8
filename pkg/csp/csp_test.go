package csp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-framework/quest/pkg/csp"
	"github.com/quest-framework/quest/pkg/csp/constraint"
)

func TestNewRejectsMissingDomain(t *testing.T) {
	_, err := csp.New([]string{"a", "b"}, map[string][]int{"a": {1}})
	require.Error(t, err)

	var invalid csp.InvalidDomainError[string]
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "b", invalid.Variable)
}

func TestAddConstraintRejectsUndeclaredVariable(t *testing.T) {
	c, err := csp.New([]string{"a"}, map[string][]int{"a": {1}})
	require.NoError(t, err)

	err = c.AddConstraint(constraint.NotEqual[string, int]("a", "ghost"))
	require.Error(t, err)

	var invalid csp.InvalidConstraintError[string]
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "ghost", invalid.Variable)
	assert.Empty(t, c.Constraints(), "a rejected constraint must not be registered")
}

func TestDomainReturnsAnIndependentCopy(t *testing.T) {
	c, err := csp.New([]string{"a"}, map[string][]int{"a": {3, 1, 2}})
	require.NoError(t, err)

	domain := c.Domain("a")
	assert.Equal(t, []int{3, 1, 2}, domain, "domain order is preserved")

	domain[0] = 99
	assert.Equal(t, []int{3, 1, 2}, c.Domain("a"), "callers must not reach the backing domain")
	assert.Nil(t, c.Domain("ghost"))
}

func TestSolveUnsatisfiable(t *testing.T) {
	c, err := csp.New([]string{"a", "b"}, map[string][]int{"a": {7}, "b": {7}})
	require.NoError(t, err)
	require.NoError(t, c.AddConstraint(constraint.NotEqual[string, int]("a", "b")))

	_, err = c.Solve()
	assert.ErrorIs(t, err, csp.ErrNotSatisfiable)
}

func TestSolveWithSeedAssignment(t *testing.T) {
	c, err := csp.New([]string{"a", "b"}, map[string][]int{"a": {1, 2}, "b": {1, 2}})
	require.NoError(t, err)
	require.NoError(t, c.AddConstraint(constraint.NotEqual[string, int]("a", "b")))

	solution, err := c.Solve(csp.WithAssignment(csp.Assignment[string, int]{"a": 2}))
	require.NoError(t, err)
	assert.Equal(t, 2, solution["a"], "seeded variables are never reconsidered")
	assert.Equal(t, 1, solution["b"])
}

func TestSolvePicksValuesInDomainOrder(t *testing.T) {
	c, err := csp.New([]string{"a"}, map[string][]int{"a": {3, 1, 2}})
	require.NoError(t, err)

	solution, err := c.Solve()
	require.NoError(t, err)
	assert.Equal(t, 3, solution["a"])
}

func TestVariableOrderingOption(t *testing.T) {
	var order []string
	recorder := csp.WithVariableOrdering(func(_ *csp.CSP[string, int], unassigned []string) string {
		order = append(order, unassigned[0])
		return unassigned[0]
	})

	c, err := csp.New([]string{"z", "a", "m"}, map[string][]int{"z": {1}, "a": {1}, "m": {1}})
	require.NoError(t, err)
	_, err = c.Solve(recorder)
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, order, "default unassigned order is declaration order")
}

func TestFewestValuesOrdering(t *testing.T) {
	c, err := csp.New([]string{"wide", "narrow"}, map[string][]int{
		"wide":   {1, 2, 3},
		"narrow": {1},
	})
	require.NoError(t, err)
	require.NoError(t, c.AddConstraint(constraint.NotEqual[string, int]("wide", "narrow")))

	solution, err := c.Solve(csp.WithVariableOrdering(csp.FewestValues[string, int]()))
	require.NoError(t, err)
	assert.Equal(t, 1, solution["narrow"])
	assert.NotEqual(t, solution["narrow"], solution["wide"])
}

func TestLoggingTracerRecordsPositions(t *testing.T) {
	var buf bytes.Buffer
	c, err := csp.New([]string{"a"}, map[string][]int{"a": {1}})
	require.NoError(t, err)

	_, err = c.Solve(csp.WithTracer[string, int](csp.LoggingTracer[string, int]{Writer: &buf}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "considering a")
}

func TestConsistentChecksOnlyRegisteredConstraints(t *testing.T) {
	c, err := csp.New([]string{"a", "b", "c"}, map[string][]int{"a": {1}, "b": {1}, "c": {1}})
	require.NoError(t, err)
	require.NoError(t, c.AddConstraint(constraint.NotEqual[string, int]("a", "b")))

	colliding := csp.Assignment[string, int]{"a": 1, "b": 1}
	assert.False(t, c.Consistent("a", colliding))
	assert.False(t, c.Consistent("b", colliding))
	assert.True(t, c.Consistent("c", colliding), "c has no constraints registered")
}
