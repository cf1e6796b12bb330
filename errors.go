package deepnote

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidParameter is returned by configuration calls given a value the
// voice cannot run with. Per-sample processing never returns it.
var ErrInvalidParameter = errors.New("deepnote: invalid parameter")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidParameter}, args...)...)
}

func checkFrequency(name string, f Frequency) error {
	if !(f >= 0) || math32.IsInf(float32(f), 0) {
		return invalidf("%s must be a finite, non-negative frequency, got %v", name, f)
	}
	return nil
}
