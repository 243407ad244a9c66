package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MustafaAamir/JITxpr/pkg/vm"
)

func TestRunReplEvaluatesLines(t *testing.T) {
	in := strings.NewReader("3 + 4 * 5\n(3 + 4) * 5\nquit\n")
	var out bytes.Buffer

	err := runRepl(in, &out, vm.Compiler{})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "3 4 5 * + -> 23")
	assert.Contains(t, out.String(), "3 4 + 5 * -> 35")
	assert.Contains(t, out.String(), *replPrompt)
}

func TestRunReplReportsErrorsAndContinues(t *testing.T) {
	in := strings.NewReader("1 +\n2 * 3\nexit\n")
	var out bytes.Buffer

	err := runRepl(in, &out, vm.Compiler{})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "error:")
	assert.Contains(t, out.String(), "2 3 * -> 6")
}

func TestRunReplSkipsBlankLines(t *testing.T) {
	in := strings.NewReader("\n   \n7\n")
	var out bytes.Buffer

	// EOF without a quit command is a normal way out.
	err := runRepl(in, &out, vm.Compiler{})
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "error:")
	assert.Contains(t, out.String(), "7 -> 7")
}
