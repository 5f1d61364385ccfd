package cost

import (
	"errors"
	"fmt"

	"github.com/hupe1980/modelgo/catalog"
)

var (
	// ErrCostUnavailable is the sentinel for a requested cost kind that
	// is absent on the record.
	ErrCostUnavailable = errors.New("cost unavailable")

	// ErrUnitMismatch is the sentinel for volume-scaling a cost kind
	// that is not billed per scalable unit.
	ErrUnitMismatch = errors.New("unit mismatch")
)

// UnavailableError reports a cost kind missing from a record.
type UnavailableError struct {
	ID   string
	Kind catalog.CostKind
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("model %q has no %s cost", e.ID, e.Kind)
}

func (e *UnavailableError) Unwrap() error { return ErrCostUnavailable }

// UnitMismatchError reports a volume-scaling request on a flat-rate kind.
type UnitMismatchError struct {
	Kind catalog.CostKind
	Unit Unit
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("cost kind %s is billed per %s and cannot be volume-scaled", e.Kind, e.Unit)
}

func (e *UnitMismatchError) Unwrap() error { return ErrUnitMismatch }
