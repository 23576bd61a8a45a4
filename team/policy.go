package team

// Decision is a [Policy]'s verdict on a line failure.
type Decision int

const (
	// Abort ends the parse with the failure and no team.
	Abort Decision = iota
	// Continue skips the failed line and resumes with the next one.
	Continue
)

func (d Decision) String() string {
	if d == Continue {
		return "continue"
	}

	return "abort"
}

// Policy decides how a non-fatal line failure propagates.
// Fatal failures (see [FailureKind.Fatal]) never reach a Policy.
type Policy interface {
	Handle(err *Error) Decision
}

// PolicyFunc adapts a function to the [Policy] interface.
type PolicyFunc func(err *Error) Decision

// Handle calls f(err).
func (f PolicyFunc) Handle(err *Error) Decision { return f(err) }

var (
	// Strict aborts on the first failure.
	Strict Policy = PolicyFunc(func(*Error) Decision { return Abort })
	// Lenient skips every failed line.
	Lenient Policy = PolicyFunc(func(*Error) Decision { return Continue })
)

// Collect returns a lenient policy that appends each failure to errs.
func Collect(errs *[]*Error) Policy {
	return PolicyFunc(func(err *Error) Decision {
		*errs = append(*errs, err)

		return Continue
	})
}
