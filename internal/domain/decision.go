package domain

import "fmt"

// Decision is the per-job verdict of the ranking engine.
type Decision int

const (
	DecisionFail Decision = iota
	DecisionMaybe
	DecisionPass
)

func (d Decision) String() string {
	switch d {
	case DecisionPass:
		return "PASS"
	case DecisionMaybe:
		return "MAYBE"
	default:
		return "FAIL"
	}
}

func (d Decision) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Decision) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"PASS"`:
		*d = DecisionPass
	case `"MAYBE"`:
		*d = DecisionMaybe
	case `"FAIL"`:
		*d = DecisionFail
	default:
		return fmt.Errorf("unknown decision %s", b)
	}
	return nil
}
