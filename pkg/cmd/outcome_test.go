package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	boom := errors.New("boom")

	assert.Equal(t, Outcome{Kind: Success}, Classify(nil))
	assert.Equal(t, Outcome{Kind: SyntaxError}, Classify(ErrSyntax))
	assert.Equal(t, Outcome{Kind: SyntaxError}, Classify(fmt.Errorf("help: %w", ErrSyntax)))
	assert.Equal(t,
		Outcome{Kind: InvalidArgumentError, Explanation: "No command named `x`."},
		Classify(InvalidArgument("No command named `x`.")),
	)
	assert.Equal(t, Outcome{Kind: Failure, Err: boom}, Classify(boom))
}

func TestClassifyWrappedArgumentError(t *testing.T) {
	err := fmt.Errorf("vote: %w", InvalidArgument("unknown vote id"))
	o := Classify(err)
	assert.Equal(t, InvalidArgumentError, o.Kind)
	assert.Equal(t, "unknown vote id", o.Explanation)
}

func TestOutcomeKindString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "syntax", SyntaxError.String())
	assert.Equal(t, "invalid_argument", InvalidArgumentError.String())
	assert.Equal(t, "failure", Failure.String())
}
