package model

import "fmt"

// GeometryError reports an invalid hexagon construction. It is
// recovered locally by skipping the cell; it never aborts a run.
type GeometryError struct {
	Lat    float64
	Lon    float64
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid hexagon at (%.4f, %.4f): %s", e.Lat, e.Lon, e.Reason)
}

// AttributeDomainError reports a cell attribute or parameter outside
// its documented domain.
type AttributeDomainError struct {
	Field   string
	Message string
}

func (e *AttributeDomainError) Error() string {
	return e.Field + ": " + e.Message
}
