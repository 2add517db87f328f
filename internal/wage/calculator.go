// Package wage converts between payroll, freelance, and expenses views of a
// compensation package. The math is deliberately assumption-free: gross to
// net conversion is never inferred, only carried through from the inputs.
package wage

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	YearlyWorkHours = 2087.1
	YearlyDays      = 365.2425
	YearlyMonths    = 12.0
)

// SupportedModes in presentation order, used in error messages and by the
// HTTP layer for input hints.
var SupportedModes = []string{"payroll", "expenses", "freelance"}

var modeRequirements = map[string][]string{
	"payroll": {
		"payroll_gross_yearly",
		"payroll_net_yearly",
		"fringe_benefits_yearly",
		"freelance_net_yearly",
	},
	"expenses": {
		"expenses_daily_budget",
		"payroll_gross_yearly",
		"fringe_benefits_yearly",
		"freelance_net_yearly",
	},
	"freelance": {
		"freelance_gross_hourly",
		"freelance_net_yearly",
		"fringe_benefits_yearly",
		"payroll_net_yearly",
	},
}

// Error is a machine-readable calculation failure. It is a plain value, not
// a Go error: the HTTP layer serializes it verbatim.
type Error struct {
	Code           string   `json:"code"`
	Message        string   `json:"error"`
	RequiredInputs []string `json:"required_inputs,omitempty"`
}

// Rates is one money stream expressed per year, month, and hour.
type Rates struct {
	Yearly  float64 `json:"yearly"`
	Monthly float64 `json:"monthly"`
	Hourly  float64 `json:"hourly"`
}

// Stream is the payroll or freelance side of the comparison.
type Stream struct {
	Gross               Rates   `json:"gross"`
	Net                 Rates   `json:"net"`
	ExpensesDailyBudget float64 `json:"expenses_daily_budget"`
}

// Constants echoes the conversion constants so results are self-describing.
type Constants struct {
	YearlyWorkHours float64 `json:"yearly_work_hours"`
	YearlyDays      float64 `json:"yearly_days"`
	YearlyMonths    float64 `json:"yearly_months"`
}

// Result is a complete calculation: echoed inputs, both streams, and notes.
type Result struct {
	Mode      string             `json:"mode"`
	Constants Constants          `json:"constants"`
	Inputs    map[string]float64 `json:"inputs"`
	Payroll   Stream             `json:"payroll"`
	Freelance Stream             `json:"freelance"`
	Notes     []string           `json:"notes"`
}

// RequiredInputs returns the input fields a mode needs, or nil for an
// unknown mode.
func RequiredInputs(mode string) []string {
	fields, ok := modeRequirements[mode]
	if !ok {
		return nil
	}
	return append([]string(nil), fields...)
}

// roundMoney rounds half up to cents. The epsilon absorbs float noise just
// below a half-cent boundary.
func roundMoney(v float64) float64 {
	return math.Round((v+1e-9)*100) / 100
}

func ratesFromYearly(yearly float64) Rates {
	return Rates{
		Yearly:  roundMoney(yearly),
		Monthly: roundMoney(yearly / YearlyMonths),
		Hourly:  roundMoney(yearly / YearlyWorkHours),
	}
}

func ratesFromYearlyWithHourly(yearly, hourly float64) Rates {
	r := ratesFromYearly(yearly)
	r.Hourly = roundMoney(hourly)
	return r
}

func invalidModeError() *Error {
	return &Error{
		Code:    "wagecalculator_invalid_mode",
		Message: fmt.Sprintf("Unsupported mode. Use one of: %s.", strings.Join(SupportedModes, ", ")),
	}
}

// parseInputs validates presence, numeric form, and sign of every required
// field. Errors report all offending fields of the first failing kind at
// once so the caller can fix a form in one round trip.
func parseInputs(mode string, raw map[string]string) (map[string]float64, *Error) {
	required, ok := modeRequirements[mode]
	if !ok {
		return nil, invalidModeError()
	}

	parsed := make(map[string]float64, len(required))
	var missing, invalid []string
	for _, field := range required {
		value, present := raw[field]
		value = strings.TrimSpace(value)
		if !present || value == "" {
			missing = append(missing, field)
			continue
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			invalid = append(invalid, field)
			continue
		}
		parsed[field] = n
	}

	if len(missing) > 0 {
		return nil, &Error{
			Code:           "wagecalculator_missing_inputs",
			Message:        fmt.Sprintf("Missing required inputs: %s.", strings.Join(missing, ", ")),
			RequiredInputs: append([]string(nil), required...),
		}
	}
	if len(invalid) > 0 {
		return nil, &Error{
			Code:           "wagecalculator_invalid_inputs",
			Message:        fmt.Sprintf("Invalid numeric inputs: %s.", strings.Join(invalid, ", ")),
			RequiredInputs: append([]string(nil), required...),
		}
	}

	for _, field := range required {
		value := parsed[field]
		if field == "fringe_benefits_yearly" {
			if value < 0 {
				return nil, &Error{
					Code:    "wagecalculator_negative_fringe",
					Message: "fringe_benefits_yearly cannot be negative.",
				}
			}
			continue
		}
		if value <= 0 {
			return nil, &Error{
				Code:    "wagecalculator_non_positive_input",
				Message: fmt.Sprintf("%s must be greater than zero.", field),
			}
		}
	}
	return parsed, nil
}

// Calculate runs one wage comparison. Exactly one of the returns is non-nil.
func Calculate(mode string, inputs map[string]string) (*Result, *Error) {
	normalizedMode := strings.ToLower(strings.TrimSpace(mode))
	parsed, parseErr := parseInputs(normalizedMode, inputs)
	if parseErr != nil {
		return nil, parseErr
	}

	var (
		payrollGrossYearly   float64
		payrollNetYearly     float64
		payrollDailyBudget   float64
		freelanceGrossYearly float64
		freelanceNetYearly   float64
		hourlyOverride       float64
		hasHourlyOverride    bool
	)

	switch normalizedMode {
	case "payroll":
		payrollGrossYearly = parsed["payroll_gross_yearly"]
		payrollNetYearly = parsed["payroll_net_yearly"]
		payrollDailyBudget = payrollNetYearly / YearlyDays
		freelanceGrossYearly = payrollGrossYearly + parsed["fringe_benefits_yearly"]
		freelanceNetYearly = parsed["freelance_net_yearly"]
	case "expenses":
		payrollDailyBudget = parsed["expenses_daily_budget"]
		payrollNetYearly = payrollDailyBudget * YearlyDays
		payrollGrossYearly = parsed["payroll_gross_yearly"]
		freelanceGrossYearly = payrollGrossYearly + parsed["fringe_benefits_yearly"]
		freelanceNetYearly = parsed["freelance_net_yearly"]
	case "freelance":
		hourlyOverride = parsed["freelance_gross_hourly"]
		hasHourlyOverride = true
		freelanceGrossYearly = hourlyOverride * YearlyWorkHours
		payrollGrossYearly = freelanceGrossYearly - parsed["fringe_benefits_yearly"]
		if payrollGrossYearly <= 0 {
			return nil, &Error{
				Code:    "wagecalculator_negative_payroll_gross",
				Message: "Computed payroll gross yearly rate is not positive. Lower fringe_benefits_yearly or raise freelance_gross_hourly.",
			}
		}
		payrollNetYearly = parsed["payroll_net_yearly"]
		payrollDailyBudget = payrollNetYearly / YearlyDays
		freelanceNetYearly = parsed["freelance_net_yearly"]
	default:
		return nil, invalidModeError()
	}

	echoed := make(map[string]float64, len(parsed))
	for field, value := range parsed {
		echoed[field] = roundMoney(value)
	}

	freelanceGross := ratesFromYearly(freelanceGrossYearly)
	if hasHourlyOverride {
		freelanceGross = ratesFromYearlyWithHourly(freelanceGrossYearly, hourlyOverride)
	}

	return &Result{
		Mode: normalizedMode,
		Constants: Constants{
			YearlyWorkHours: YearlyWorkHours,
			YearlyDays:      YearlyDays,
			YearlyMonths:    YearlyMonths,
		},
		Inputs: echoed,
		Payroll: Stream{
			Gross:               ratesFromYearly(payrollGrossYearly),
			Net:                 ratesFromYearly(payrollNetYearly),
			ExpensesDailyBudget: roundMoney(payrollDailyBudget),
		},
		Freelance: Stream{
			Gross:               freelanceGross,
			Net:                 ratesFromYearly(freelanceNetYearly),
			ExpensesDailyBudget: roundMoney(freelanceNetYearly / YearlyDays),
		},
		Notes: []string{
			"Gross-to-net conversions depend on local tax setup and are therefore not inferred automatically.",
			"Use the same assumption window for payroll and freelance to keep comparisons fair.",
		},
	}, nil
}
