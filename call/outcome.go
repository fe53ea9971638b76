package call

// Outcome is the result of running a computation once: either a value or the
// error the computation returned.
type Outcome[R any] struct {
	Value R
	Err   error
}

func Success[R any](v R) Outcome[R] {
	return Outcome[R]{Value: v}
}

func Failure[R any](err error) Outcome[R] {
	return Outcome[R]{Err: err}
}

// Capture runs fn and records what it produced. The value of a failed call is
// discarded.
func Capture[R any](fn func() (R, error)) Outcome[R] {
	v, err := fn()
	if err != nil {
		return Failure[R](err)
	}
	return Success(v)
}

func (o Outcome[R]) Failed() bool {
	return o.Err != nil
}

// Unwrap returns the outcome in Go's (value, error) form.
func (o Outcome[R]) Unwrap() (R, error) {
	if o.Err != nil {
		var zero R
		return zero, o.Err
	}
	return o.Value, nil
}
