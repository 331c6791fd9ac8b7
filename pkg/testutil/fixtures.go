package testutil

import "time"

// FixedNow is the clock used by tests that compare rendered reports.
var FixedNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

// ScenarioRequestJSON is a complete services-industry statement: current
// ratio 1.875, net margin 16%, debt-to-equity 0.667. Against the default
// benchmark table it scores 701 (B) with a Good health band.
const ScenarioRequestJSON = `{
	"financial_data": {
		"income_statement": {
			"revenue": 54000000,
			"cost_of_goods_sold": 32400000,
			"gross_profit": 21600000,
			"operating_expenses": 12960000,
			"net_income": 8640000
		},
		"balance_sheet": {
			"total_assets": 125000000,
			"current_assets": 45000000,
			"total_liabilities": 50000000,
			"current_liabilities": 24000000,
			"equity": 75000000
		}
	},
	"industry": "services"
}`

// IncompleteRequestJSON omits every required statement field.
const IncompleteRequestJSON = `{"financial_data": {"income_statement": {}, "balance_sheet": {}}}`

// LinearHistoryJSON is a four-period revenue history rising by 10 a period.
const LinearHistoryJSON = `{"historical_data": {"revenue": [
	{"period": 1, "value": 100}, {"period": 2, "value": 110},
	{"period": 3, "value": 120}, {"period": 4, "value": 130}
]}, "forecast_periods": 3}`
