package raygraph

import (
	"errors"
	"fmt"
)

// Default grid symbols.
const (
	DefaultStartMarker = 'S'
	DefaultSplitMarker = '^'
	DefaultRowStep     = 2
)

// Visitation states used by the post-order counter.
const (
	White = iota // not visited yet
	Gray         // children pushed, waiting for them to finish
	Black        // path count memoized
)

var (
	// ErrEmptyInput indicates there is no grid to walk.
	ErrEmptyInput = errors.New("raygraph: input must contain at least one grid row")
	// ErrBadRowStep indicates a RowStep smaller than 1.
	ErrBadRowStep = errors.New("raygraph: row step must be at least 1")
)

// Position is a grid cell: Row counts down from the top, Col from the left.
type Position struct {
	Row, Col int
}

// String formats the position as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// NodeID addresses a Node inside a Graph's arena.
type NodeID int

// Node is the point where a ray starts or is emitted by a split.
// Children are the rays it feeds at the next split (none for a leaf).
type Node struct {
	Pos      Position
	Children []NodeID
}

// Option configures Build and CountSplits.
type Option func(*Options)

// Options holds the grid symbols and the checkpoint spacing.
type Options struct {
	// StartMarker marks ray origins on row 0.
	StartMarker byte
	// SplitMarker makes an arriving ray split into col-1 and col+1.
	SplitMarker byte
	// RowStep is the distance between inspected rows (0, step, 2*step, ...).
	RowStep int
}

// DefaultOptions returns Options with 'S', '^' and a row step of 2.
func DefaultOptions() Options {
	return Options{
		StartMarker: DefaultStartMarker,
		SplitMarker: DefaultSplitMarker,
		RowStep:     DefaultRowStep,
	}
}

// WithStartMarker overrides the start symbol.
func WithStartMarker(b byte) Option {
	return func(o *Options) {
		o.StartMarker = b
	}
}

// WithSplitMarker overrides the split symbol.
func WithSplitMarker(b byte) Option {
	return func(o *Options) {
		o.SplitMarker = b
	}
}

// WithRowStep sets how many rows a ray travels between checkpoints.
// A step of 1 inspects every row.
func WithRowStep(n int) Option {
	return func(o *Options) {
		o.RowStep = n
	}
}

func newOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.RowStep < 1 {
		return o, fmt.Errorf("%w: %d", ErrBadRowStep, o.RowStep)
	}

	return o, nil
}

// Validate reports whether opts, applied over the defaults, are usable.
func Validate(opts ...Option) error {
	_, err := newOptions(opts)
	return err
}
