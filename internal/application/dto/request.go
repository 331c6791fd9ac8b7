package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// AnalysisRequest is the input DTO shared by every statement-based use case.
// Narrower use cases ignore the fields they do not need.
type AnalysisRequest struct {
	FinancialData   FinancialData   `json:"financial_data"`
	Industry        string          `json:"industry"`
	Language        string          `json:"language"`
	ForecastPeriods int             `json:"forecast_periods,omitempty"`
	HistoricalData  *HistoricalData `json:"historical_data,omitempty"`
	CreditSignals   *CreditSignals  `json:"credit_signals,omitempty"`
	RiskSignals     *RiskSignals    `json:"risk_signals,omitempty"`
}

// ForecastRequest is the input DTO for the forecast-only use case.
type ForecastRequest struct {
	HistoricalData  *HistoricalData `json:"historical_data"`
	ForecastPeriods int             `json:"forecast_periods,omitempty"`
}

// FinancialData is a normalized statement. Absent and null amounts are
// distinct from zero.
type FinancialData struct {
	Currency        string          `json:"currency,omitempty"`
	IncomeStatement IncomeStatement `json:"income_statement"`
	BalanceSheet    BalanceSheet    `json:"balance_sheet"`
	CashFlow        *CashFlow       `json:"cash_flow,omitempty"`
	PreviousPeriod  *PreviousPeriod `json:"previous_period,omitempty"`
}

// IncomeStatement holds profit and loss figures.
type IncomeStatement struct {
	Revenue           decimal.NullDecimal `json:"revenue"`
	CostOfGoodsSold   decimal.NullDecimal `json:"cost_of_goods_sold"`
	GrossProfit       decimal.NullDecimal `json:"gross_profit"`
	OperatingExpenses decimal.NullDecimal `json:"operating_expenses"`
	NetIncome         decimal.NullDecimal `json:"net_income"`
	InterestExpense   decimal.NullDecimal `json:"interest_expense"`
}

// BalanceSheet holds position figures at period end.
type BalanceSheet struct {
	TotalAssets        decimal.NullDecimal `json:"total_assets"`
	CurrentAssets      decimal.NullDecimal `json:"current_assets"`
	TotalLiabilities   decimal.NullDecimal `json:"total_liabilities"`
	CurrentLiabilities decimal.NullDecimal `json:"current_liabilities"`
	Equity             decimal.NullDecimal `json:"equity"`
	Inventory          decimal.NullDecimal `json:"inventory"`
	Receivables        decimal.NullDecimal `json:"receivables"`
	Payables           decimal.NullDecimal `json:"payables"`
	Cash               decimal.NullDecimal `json:"cash"`
}

// CashFlow holds signed cash movements for the period.
type CashFlow struct {
	Operating decimal.NullDecimal `json:"operating"`
	Investing decimal.NullDecimal `json:"investing"`
	Financing decimal.NullDecimal `json:"financing"`
	NetChange decimal.NullDecimal `json:"net_change"`
}

// PreviousPeriod holds the comparison figures for growth metrics.
type PreviousPeriod struct {
	Revenue   decimal.NullDecimal `json:"revenue"`
	NetIncome decimal.NullDecimal `json:"net_income"`
}

// HistoricalData is a gap-free series of past periods.
type HistoricalData struct {
	Frequency string        `json:"frequency,omitempty"`
	Revenue   []SeriesPoint `json:"revenue"`
	Expenses  []SeriesPoint `json:"expenses,omitempty"`
}

// SeriesPoint is one historical observation.
type SeriesPoint struct {
	Period int             `json:"period"`
	Value  decimal.Decimal `json:"value"`
}

// CreditSignals are optional qualitative credit inputs.
type CreditSignals struct {
	PaymentHistory   string `json:"payment_history,omitempty"`
	YearsInOperation *int   `json:"years_in_operation,omitempty"`
}

// RiskSignals are optional risk inputs outside the statement.
type RiskSignals struct {
	ReceivablesAging *ReceivablesAging `json:"receivables_aging,omitempty"`
	TopCustomerShare *float64          `json:"top_customer_share,omitempty"`
}

// ReceivablesAging splits receivables into age buckets.
type ReceivablesAging struct {
	Current   decimal.Decimal `json:"current"`
	Overdue30 decimal.Decimal `json:"overdue_1_30"`
	Overdue60 decimal.Decimal `json:"overdue_31_60"`
	Overdue90 decimal.Decimal `json:"overdue_over_60"`
}

// ToModel converts the DTO into the engine request. Malformed signal or
// history fields are reported as a *model.ValidationError.
func (r AnalysisRequest) ToModel() (model.AnalysisRequest, error) {
	verr := &model.ValidationError{}

	req := model.AnalysisRequest{
		Statement:       r.FinancialData.ToModel(),
		Industry:        r.Industry,
		Language:        r.Language,
		ForecastPeriods: r.ForecastPeriods,
		CreditSignals:   r.CreditSignals.toModel(verr),
		RiskSignals:     r.RiskSignals.toModel(verr),
	}
	if r.HistoricalData != nil {
		h := r.HistoricalData.toModel(verr)
		req.History = &h
	}

	if err := verr.OrNil(); err != nil {
		return model.AnalysisRequest{}, err
	}
	return req, nil
}

// ToModel converts the statement DTO into its raw domain form.
func (f FinancialData) ToModel() model.RawStatement {
	raw := model.RawStatement{
		Currency: f.Currency,
		Income: model.RawIncomeStatement{
			Revenue:           f.IncomeStatement.Revenue,
			CostOfGoodsSold:   f.IncomeStatement.CostOfGoodsSold,
			GrossProfit:       f.IncomeStatement.GrossProfit,
			OperatingExpenses: f.IncomeStatement.OperatingExpenses,
			NetIncome:         f.IncomeStatement.NetIncome,
			InterestExpense:   f.IncomeStatement.InterestExpense,
		},
		Balance: model.RawBalanceSheet{
			TotalAssets:        f.BalanceSheet.TotalAssets,
			CurrentAssets:      f.BalanceSheet.CurrentAssets,
			TotalLiabilities:   f.BalanceSheet.TotalLiabilities,
			CurrentLiabilities: f.BalanceSheet.CurrentLiabilities,
			Equity:             f.BalanceSheet.Equity,
			Inventory:          f.BalanceSheet.Inventory,
			Receivables:        f.BalanceSheet.Receivables,
			Payables:           f.BalanceSheet.Payables,
			Cash:               f.BalanceSheet.Cash,
		},
	}
	if f.CashFlow != nil {
		raw.CashFlow = &model.RawCashFlow{
			Operating: f.CashFlow.Operating,
			Investing: f.CashFlow.Investing,
			Financing: f.CashFlow.Financing,
			NetChange: f.CashFlow.NetChange,
		}
	}
	if f.PreviousPeriod != nil {
		raw.Prior = &model.RawPriorPeriod{
			Revenue:   f.PreviousPeriod.Revenue,
			NetIncome: f.PreviousPeriod.NetIncome,
		}
	}
	return raw
}

// ToModel converts the forecast DTO. A missing history is a validation error.
func (r ForecastRequest) ToModel() (model.HistoricalSeries, error) {
	verr := &model.ValidationError{}
	if r.HistoricalData == nil {
		verr.Add("historical_data", "is required")
		return model.HistoricalSeries{}, verr
	}
	h := r.HistoricalData.toModel(verr)
	if err := verr.OrNil(); err != nil {
		return model.HistoricalSeries{}, err
	}
	return h, nil
}

func (h *HistoricalData) toModel(verr *model.ValidationError) model.HistoricalSeries {
	freq, err := valueobject.FrequencyFromString(h.Frequency)
	if err != nil {
		verr.Add("historical_data.frequency", err.Error())
	}
	return model.HistoricalSeries{
		Frequency: freq,
		Revenue:   toSeries(h.Revenue),
		Expenses:  toSeries(h.Expenses),
	}
}

func toSeries(points []SeriesPoint) []model.SeriesPoint {
	if len(points) == 0 {
		return nil
	}
	out := make([]model.SeriesPoint, len(points))
	for i, p := range points {
		out[i] = model.SeriesPoint{PeriodIndex: p.Period, Value: p.Value}
	}
	return out
}

func (c *CreditSignals) toModel(verr *model.ValidationError) model.CreditSignals {
	if c == nil {
		return model.CreditSignals{}
	}
	history, err := valueobject.PaymentHistoryFromString(c.PaymentHistory)
	if err != nil {
		verr.Add("credit_signals.payment_history", err.Error())
	}
	if c.YearsInOperation != nil && *c.YearsInOperation < 0 {
		verr.Add("credit_signals.years_in_operation", "must not be negative")
	}
	return model.CreditSignals{PaymentHistory: history, YearsInOperation: c.YearsInOperation}
}

func (s *RiskSignals) toModel(verr *model.ValidationError) model.RiskSignals {
	if s == nil {
		return model.RiskSignals{}
	}
	out := model.RiskSignals{TopCustomerShare: s.TopCustomerShare}
	if share := s.TopCustomerShare; share != nil && (*share < 0 || *share > 1) {
		verr.Add("risk_signals.top_customer_share", fmt.Sprintf("must be between 0 and 1, got %v", *share))
	}
	if a := s.ReceivablesAging; a != nil {
		buckets := []struct {
			field string
			value decimal.Decimal
		}{
			{"current", a.Current},
			{"overdue_1_30", a.Overdue30},
			{"overdue_31_60", a.Overdue60},
			{"overdue_over_60", a.Overdue90},
		}
		for _, b := range buckets {
			switch {
			case !model.IsFinite(b.value):
				verr.Add("risk_signals.receivables_aging."+b.field, "is out of range")
			case b.value.IsNegative():
				verr.Add("risk_signals.receivables_aging."+b.field, "must not be negative")
			}
		}
		out.ReceivablesAging = &model.ReceivablesAging{
			Current:   a.Current,
			Overdue30: a.Overdue30,
			Overdue60: a.Overdue60,
			Overdue90: a.Overdue90,
		}
	}
	return out
}
