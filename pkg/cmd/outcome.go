package cmd

import "errors"

// ErrSyntax is returned by a handler when the message did not match the
// command's syntax. The invoker is shown the command's Help.
var ErrSyntax = errors.New("invalid command syntax")

// ArgumentError reports a well-formed but semantically wrong argument.
// The invoker is shown Explanation.
type ArgumentError struct {
	Explanation string
}

func (e *ArgumentError) Error() string {
	return "invalid argument: " + e.Explanation
}

// InvalidArgument returns an *ArgumentError with the given explanation.
func InvalidArgument(explanation string) error {
	return &ArgumentError{Explanation: explanation}
}

// OutcomeKind is the class of result a handler produced.
type OutcomeKind int

const (
	Success OutcomeKind = iota
	SyntaxError
	InvalidArgumentError
	Failure
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case SyntaxError:
		return "syntax"
	case InvalidArgumentError:
		return "invalid_argument"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is a classified handler result.
type Outcome struct {
	Kind OutcomeKind
	// Explanation is set for InvalidArgumentError.
	Explanation string
	// Err is set for Failure.
	Err error
}

// Classify maps a handler's returned error to an Outcome: nil is Success,
// ErrSyntax is SyntaxError, an *ArgumentError is InvalidArgumentError and
// everything else is Failure.
func Classify(err error) Outcome {
	if err == nil {
		return Outcome{Kind: Success}
	}
	if errors.Is(err, ErrSyntax) {
		return Outcome{Kind: SyntaxError}
	}
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return Outcome{Kind: InvalidArgumentError, Explanation: argErr.Explanation}
	}
	return Outcome{Kind: Failure, Err: err}
}
