package fea

import "errors"

// Sentinel errors for the precondition failures the engine can surface.
// They are wrapped with the offending value; match with errors.Is.
var (
	// ErrInvalidGeometry reports a non-positive span or flexural rigidity.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrOutOfRange reports a support or load position outside [0, span].
	ErrOutOfRange = errors.New("position out of range")

	// ErrDegenerateMesh reports two derived node positions so close that
	// a zero-length element would result.
	ErrDegenerateMesh = errors.New("degenerate mesh")

	// ErrUnderconstrained reports a singular reduced system: the
	// supports do not prevent rigid-body translation or rotation.
	ErrUnderconstrained = errors.New("underconstrained system: singular stiffness matrix")
)
