/*
errors.go - Error types for the budget calculator

PURPOSE:
  The calculator is pure arithmetic, so the taxonomy is deliberately tiny:
  the only guarded failure is dividing by a zero staff count when computing
  cost per employee. Unknown scenario identifiers are NOT an error - they
  fall back to the comprehensive configuration (see ParseScenario).

USAGE:
  if errors.Is(err, budget.ErrZeroStaff) { ... }

  var zs *budget.ZeroStaffError
  if errors.As(err, &zs) { log.Println(zs.Scenario) }
*/
package budget

import (
	"errors"
	"fmt"
)

// ErrZeroStaff is returned when cost per employee is requested for a
// scenario with no staff. Not reachable through the three shipped
// scenarios (every plan has headcount), but guarded defensively.
var ErrZeroStaff = errors.New("zero staff count")

// ZeroStaffError carries the scenario whose plan had no headcount.
type ZeroStaffError struct {
	Scenario Scenario
}

func (e *ZeroStaffError) Error() string {
	return fmt.Sprintf("cost per employee undefined: scenario %q has zero staff", e.Scenario)
}

func (e *ZeroStaffError) Unwrap() error {
	return ErrZeroStaff
}
