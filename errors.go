package chisel

import (
	"github.com/pkg/errors"
)

// All failures produced by this package are deterministic: they indicate an
// input shape the engine was not designed for, never a transient condition.
var (
	// ErrInvalidSelfArgument is returned when a receiver-named first argument
	// has an unsupported indirection form (e.g. a raw pointer).
	ErrInvalidSelfArgument = errors.New("invalid self argument type")

	// ErrUnsupportedSelfArgCombination is returned when a variant family
	// mixes a by-value receiver with any other receiver kind.
	ErrUnsupportedSelfArgCombination = errors.New("unsupported combination of self argument kinds")

	// ErrUnsupportedCaptionContext is returned when the ArgTypes strategy is
	// requested for a trait impl method, which has no captioning context.
	ErrUnsupportedCaptionContext = errors.New("cannot generate a caption for a trait impl method")

	// ErrUnexpectedTypeShape is returned when a captioning context expected a
	// named type but received an unsupported form.
	ErrUnexpectedTypeShape = errors.New("expected a named host type")
)
