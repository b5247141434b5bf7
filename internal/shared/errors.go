package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Chart and transport errors
	ErrChartUnavailable = fmt.Errorf("unable to reach chart data")

	// Input validation errors
	ErrInvalidInput = fmt.Errorf("invalid input")
	ErrInvalidFlag  = fmt.Errorf("invalid flag value")
)
