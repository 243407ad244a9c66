package cmdutil

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessagePlain(t *testing.T) {
	err := errors.New("simply put")
	assert.Equal(t, "simply put", errorMessage(err))
}

func TestErrorMessageSingleMulti(t *testing.T) {
	// A multierror holding one error reads like that error alone.
	var result *multierror.Error
	result = multierror.Append(result, errors.New("just one"))
	assert.Equal(t, "just one", errorMessage(result))
}

func TestErrorMessageManyMulti(t *testing.T) {
	var result *multierror.Error
	result = multierror.Append(result, errors.New("alpha"))
	result = multierror.Append(result, errors.New("beta"))
	result = multierror.Append(result, errors.New("gamma"))

	msg := errorMessage(result)
	assert.Contains(t, msg, "3 errors occurred:")
	assert.Contains(t, msg, "1) alpha")
	assert.Contains(t, msg, "2) beta")
	assert.Contains(t, msg, "3) gamma")
}

func TestDetailedError(t *testing.T) {
	err := errors.Wrap(errors.New("root cause"), "context")
	msg := DetailedError(err)

	assert.True(t, strings.HasPrefix(msg, "context: root cause"))
	// pkg/errors records a stack at construction; DetailedError surfaces it.
	assert.Greater(t, strings.Count(msg, "\n"), 1)
	assert.Contains(t, msg, "CAUSED BY...")
}
