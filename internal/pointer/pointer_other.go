//go:build !windows && !linux

package pointer

// Open reports that cursor control is unavailable.
func Open() (Device, error) {
	return nil, ErrUnsupported
}
