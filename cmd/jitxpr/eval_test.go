package main

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEval(t *testing.T) {
	var out bytes.Buffer
	err := runEval(&out, []string{"1 + 1", "2 * 3", "10 - 4"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "1 1 + -> 2\n2 3 * -> 6\n10 4 - -> 6\n", out.String())
}

func TestRunEvalParallelKeepsArgumentOrder(t *testing.T) {
	args := []string{"1 + 1", "2 * 3", "10 - 4", "7 / 2", "(1 + 2) * 3"}

	var sequential, parallel bytes.Buffer
	require.NoError(t, runEval(&sequential, args, 1))
	require.NoError(t, runEval(&parallel, args, 4))
	assert.Equal(t, sequential.String(), parallel.String())
}

func TestRunEvalCollectsFailures(t *testing.T) {
	var out bytes.Buffer
	err := runEval(&out, []string{"1 + 1", "1 +", "a * 2", "2 + 2"}, 1)
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expected a *multierror.Error, got %T", err)
	assert.Len(t, merr.Errors, 2)

	// The good expressions still made it out, in order.
	assert.Contains(t, out.String(), "1 1 + -> 2")
	assert.Contains(t, out.String(), "2 2 + -> 4")
}

func TestRunEvalRejectsBadJobs(t *testing.T) {
	var out bytes.Buffer
	err := runEval(&out, []string{"1"}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--jobs")
	assert.Empty(t, out.String())
}

func TestRunParse(t *testing.T) {
	var out bytes.Buffer
	err := runParse(&out, []string{"a + b * c", "f . g !"})
	require.NoError(t, err)
	assert.Equal(t, "a b c * +\nf g . !\n", out.String())
}

func TestRunParseCollectsFailures(t *testing.T) {
	var out bytes.Buffer
	err := runParse(&out, []string{"456 789", "3 + 4"})
	require.Error(t, err)
	assert.Contains(t, out.String(), "3 4 +")
}
