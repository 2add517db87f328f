package wage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePayroll(t *testing.T) {
	result, calcErr := Calculate("payroll", map[string]string{
		"payroll_gross_yearly":   "72000",
		"payroll_net_yearly":     "55000",
		"fringe_benefits_yearly": "8000",
		"freelance_net_yearly":   "60000",
	})
	require.Nil(t, calcErr)
	require.NotNil(t, result)

	assert.Equal(t, "payroll", result.Mode)
	assert.InDelta(t, 72000.0, result.Payroll.Gross.Yearly, 1e-9)
	assert.InDelta(t, 6000.0, result.Payroll.Gross.Monthly, 1e-9)
	assert.InDelta(t, 34.5, result.Payroll.Gross.Hourly, 1e-9) // 72000/2087.1
	assert.InDelta(t, 150.58, result.Payroll.ExpensesDailyBudget, 1e-9)
	assert.InDelta(t, 80000.0, result.Freelance.Gross.Yearly, 1e-9)
	assert.InDelta(t, 164.27, result.Freelance.ExpensesDailyBudget, 1e-9) // 60000/365.2425
	assert.Equal(t, 2087.1, result.Constants.YearlyWorkHours)
	assert.Len(t, result.Notes, 2)
}

func TestCalculateExpenses(t *testing.T) {
	result, calcErr := Calculate("expenses", map[string]string{
		"expenses_daily_budget":  "150",
		"payroll_gross_yearly":   "70000",
		"fringe_benefits_yearly": "0",
		"freelance_net_yearly":   "58000",
	})
	require.Nil(t, calcErr)

	assert.InDelta(t, 54786.38, result.Payroll.Net.Yearly, 1e-9) // 150*365.2425
	assert.InDelta(t, 150.0, result.Payroll.ExpensesDailyBudget, 1e-9)
	assert.InDelta(t, 70000.0, result.Freelance.Gross.Yearly, 1e-9)
}

func TestCalculateFreelance(t *testing.T) {
	result, calcErr := Calculate("freelance", map[string]string{
		"freelance_gross_hourly": "80",
		"freelance_net_yearly":   "95000",
		"fringe_benefits_yearly": "12000",
		"payroll_net_yearly":     "60000",
	})
	require.Nil(t, calcErr)

	assert.InDelta(t, 166968.0, result.Freelance.Gross.Yearly, 1e-9) // 80*2087.1
	assert.InDelta(t, 80.0, result.Freelance.Gross.Hourly, 1e-9, "hourly input passes through unchanged")
	assert.InDelta(t, 154968.0, result.Payroll.Gross.Yearly, 1e-9)
	assert.InDelta(t, 12914.0, result.Payroll.Gross.Monthly, 1e-9)
}

func TestCalculateModeNormalization(t *testing.T) {
	result, calcErr := Calculate("  Payroll ", map[string]string{
		"payroll_gross_yearly":   "72000",
		"payroll_net_yearly":     "55000",
		"fringe_benefits_yearly": "8000",
		"freelance_net_yearly":   "60000",
	})
	require.Nil(t, calcErr)
	assert.Equal(t, "payroll", result.Mode)
}

func TestCalculateErrors(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		inputs   map[string]string
		wantCode string
	}{
		{
			name:     "unknown mode",
			mode:     "barter",
			inputs:   map[string]string{},
			wantCode: "wagecalculator_invalid_mode",
		},
		{
			name:     "empty mode",
			mode:     "",
			inputs:   map[string]string{},
			wantCode: "wagecalculator_invalid_mode",
		},
		{
			name: "missing inputs",
			mode: "payroll",
			inputs: map[string]string{
				"payroll_gross_yearly": "72000",
			},
			wantCode: "wagecalculator_missing_inputs",
		},
		{
			name: "blank counts as missing",
			mode: "payroll",
			inputs: map[string]string{
				"payroll_gross_yearly":   "72000",
				"payroll_net_yearly":     "   ",
				"fringe_benefits_yearly": "8000",
				"freelance_net_yearly":   "60000",
			},
			wantCode: "wagecalculator_missing_inputs",
		},
		{
			name: "non numeric",
			mode: "payroll",
			inputs: map[string]string{
				"payroll_gross_yearly":   "lots",
				"payroll_net_yearly":     "55000",
				"fringe_benefits_yearly": "8000",
				"freelance_net_yearly":   "60000",
			},
			wantCode: "wagecalculator_invalid_inputs",
		},
		{
			name: "missing reported before invalid",
			mode: "payroll",
			inputs: map[string]string{
				"payroll_gross_yearly":   "lots",
				"fringe_benefits_yearly": "8000",
				"freelance_net_yearly":   "60000",
			},
			wantCode: "wagecalculator_missing_inputs",
		},
		{
			name: "negative fringe",
			mode: "payroll",
			inputs: map[string]string{
				"payroll_gross_yearly":   "72000",
				"payroll_net_yearly":     "55000",
				"fringe_benefits_yearly": "-1",
				"freelance_net_yearly":   "60000",
			},
			wantCode: "wagecalculator_negative_fringe",
		},
		{
			name: "zero input rejected",
			mode: "payroll",
			inputs: map[string]string{
				"payroll_gross_yearly":   "0",
				"payroll_net_yearly":     "55000",
				"fringe_benefits_yearly": "8000",
				"freelance_net_yearly":   "60000",
			},
			wantCode: "wagecalculator_non_positive_input",
		},
		{
			name: "fringe swallows freelance gross",
			mode: "freelance",
			inputs: map[string]string{
				"freelance_gross_hourly": "1",
				"freelance_net_yearly":   "1000",
				"fringe_benefits_yearly": "99999",
				"payroll_net_yearly":     "1000",
			},
			wantCode: "wagecalculator_negative_payroll_gross",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, calcErr := Calculate(tt.mode, tt.inputs)
			assert.Nil(t, result)
			require.NotNil(t, calcErr)
			assert.Equal(t, tt.wantCode, calcErr.Code)
			assert.NotEmpty(t, calcErr.Message)
		})
	}
}

func TestRequiredInputs(t *testing.T) {
	assert.Equal(t, []string{
		"payroll_gross_yearly",
		"payroll_net_yearly",
		"fringe_benefits_yearly",
		"freelance_net_yearly",
	}, RequiredInputs("payroll"))
	assert.Nil(t, RequiredInputs("barter"))
}

func TestRoundMoneyHalfUp(t *testing.T) {
	assert.Equal(t, 0.13, roundMoney(0.125))
	assert.Equal(t, 150.58, roundMoney(55000/YearlyDays))
	assert.Equal(t, 1.0, roundMoney(0.999999999))
	assert.Equal(t, -0.12, roundMoney(-0.125)) // epsilon nudges halves toward positive
}
