package mnasolver

import "errors"

// ErrSingular is returned when the augmented MNA system has no unique
// solution — e.g. an input source with no conductive path to any
// ground.
var ErrSingular = errors.New("mnasolver: singular system")

// ErrInvalidIndex is returned when inputs references a node outside
// [0, nodes) or references a ground node as a source.
var ErrInvalidIndex = errors.New("mnasolver: invalid node index")
