package errors

import "github.com/cockroachdb/errors"

// Re-exports of cockroachdb/errors functions so callers can import a
// single errors package for both the taxonomy and wrapping helpers.
var (
	New         = errors.New
	Newf        = errors.Newf
	Wrap        = errors.Wrap
	Wrapf       = errors.Wrapf
	Is          = errors.Is
	As          = errors.As
	Unwrap      = errors.Unwrap
	WithDetail  = errors.WithDetail
	WithDetailf = errors.WithDetailf
	Join        = errors.Join
)
