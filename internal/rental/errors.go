package rental

import "fmt"

// NotFoundError is raised when no vehicle in the catalog matches the given id.
type NotFoundError struct {
	VehicleID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no vehicle found with ID: %s", e.VehicleID)
}

// InvalidInputError is raised on malformed operation arguments, such as a
// blank customer name or a non-positive rental duration.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InconsistencyError is raised when a vehicle is marked unavailable but no
// active rental record references it. It indicates a broken ledger invariant
// and should never occur as long as all mutation goes through the ledger.
type InconsistencyError struct {
	VehicleID string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("vehicle %s is unavailable but has no active rental record", e.VehicleID)
}
