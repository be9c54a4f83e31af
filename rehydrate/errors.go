package rehydrate

import "tlog.app/go/errors"

var (
	// ErrIncompatibleVersion is returned when the stream was produced by a
	// different format version.
	ErrIncompatibleVersion = errors.New("incompatible format version")

	// ErrCorruptStream is returned for any structurally invalid input:
	// truncation, unknown commands, out-of-range references, failed name
	// lookups.
	ErrCorruptStream = errors.New("corrupt stream")

	// ErrIncompleteConsumption is returned when a program decodes cleanly
	// but bytes remain in the stream.
	ErrIncompleteConsumption = errors.New("stream not fully consumed")
)

// failure carries a decode error up through the recursive decoder. Only
// fail creates one and only capture recovers it; any other panic passes
// through untouched.
type failure struct {
	err error
}

func fail(sentinel error, format string, args ...interface{}) {
	panic(failure{err: errors.Wrap(sentinel, format, args...)})
}

// capture converts a failure panic into an error return. Deferred at the
// public entry points.
func capture(errp *error) {
	p := recover()
	if p == nil {
		return
	}

	f, ok := p.(failure)
	if !ok {
		panic(p)
	}

	*errp = f.err
}
