package driver

import "fmt"

// ConnectionError reports that the driver was unreachable or the target
// window could not be found. It is fatal to the session being established
// and is never retried at this layer.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to %q: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
