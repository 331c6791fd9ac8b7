package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/Kishanjee7/finhealth/pkg/money"
)

// DefaultCurrency applies when the ingestion collaborator does not tag the
// statement with a currency.
const DefaultCurrency = "INR"

var (
	balanceTolerance     = decimal.NewFromFloat(0.01)
	grossProfitTolerance = decimal.NewFromFloat(0.005)
)

// ---------------------------------------------------------------------------
// Raw input (as handed over by the ingestion collaborator)
// ---------------------------------------------------------------------------

// RawIncomeStatement carries possibly-missing income statement figures.
type RawIncomeStatement struct {
	Revenue           decimal.NullDecimal
	CostOfGoodsSold   decimal.NullDecimal
	GrossProfit       decimal.NullDecimal
	OperatingExpenses decimal.NullDecimal
	NetIncome         decimal.NullDecimal
	InterestExpense   decimal.NullDecimal
}

// RawBalanceSheet carries possibly-missing balance sheet figures.
type RawBalanceSheet struct {
	TotalAssets        decimal.NullDecimal
	CurrentAssets      decimal.NullDecimal
	TotalLiabilities   decimal.NullDecimal
	CurrentLiabilities decimal.NullDecimal
	Equity             decimal.NullDecimal
	Inventory          decimal.NullDecimal
	Receivables        decimal.NullDecimal
	Payables           decimal.NullDecimal
	Cash               decimal.NullDecimal
}

// RawCashFlow carries possibly-missing cash flow figures.
type RawCashFlow struct {
	Operating decimal.NullDecimal
	Investing decimal.NullDecimal
	Financing decimal.NullDecimal
	NetChange decimal.NullDecimal
}

// RawPriorPeriod carries the comparison figures growth is measured against.
type RawPriorPeriod struct {
	Revenue   decimal.NullDecimal
	NetIncome decimal.NullDecimal
}

// RawStatement is the unvalidated statement shape.
type RawStatement struct {
	Currency string
	Income   RawIncomeStatement
	Balance  RawBalanceSheet
	CashFlow *RawCashFlow
	Prior    *RawPriorPeriod
}

// ---------------------------------------------------------------------------
// Validated statement
// ---------------------------------------------------------------------------

// IncomeStatement holds validated income statement figures.
type IncomeStatement struct {
	Revenue           decimal.Decimal
	CostOfGoodsSold   decimal.Decimal
	GrossProfit       decimal.Decimal
	OperatingExpenses decimal.Decimal
	NetIncome         decimal.Decimal
	InterestExpense   decimal.NullDecimal
}

// OperatingIncome is gross profit less operating expenses.
func (i IncomeStatement) OperatingIncome() decimal.Decimal {
	return i.GrossProfit.Sub(i.OperatingExpenses)
}

// BalanceSheet holds validated balance sheet figures. Optional lines keep
// their Valid flag so "not reported" stays distinct from zero.
type BalanceSheet struct {
	TotalAssets        decimal.Decimal
	CurrentAssets      decimal.Decimal
	TotalLiabilities   decimal.Decimal
	CurrentLiabilities decimal.Decimal
	Equity             decimal.Decimal
	Inventory          decimal.NullDecimal
	Receivables        decimal.NullDecimal
	Payables           decimal.NullDecimal
	Cash               decimal.NullDecimal
}

// CashFlow holds validated cash flow figures. Flows are signed.
type CashFlow struct {
	Operating decimal.Decimal
	Investing decimal.Decimal
	Financing decimal.Decimal
	NetChange decimal.Decimal
}

// FreeCashFlow is operating cash flow plus (typically negative) investing flow.
func (c CashFlow) FreeCashFlow() decimal.Decimal {
	return c.Operating.Add(c.Investing)
}

// PriorPeriod holds the previous period's figures. Either line may be absent.
type PriorPeriod struct {
	Revenue   decimal.NullDecimal
	NetIncome decimal.NullDecimal
}

// Statement is an immutable, validated financial statement. It is built once
// per request by NewStatement and only read afterwards.
type Statement struct {
	currency money.Currency
	income   IncomeStatement
	balance  BalanceSheet
	cashFlow *CashFlow
	prior    *PriorPeriod
}

// NewStatement validates raw input. Missing, negative or out-of-range
// required figures produce a *ValidationError. Arithmetic inconsistencies
// are reported as warnings and do not reject the statement.
func NewStatement(raw RawStatement) (Statement, []string, error) {
	verr := &ValidationError{}

	code := raw.Currency
	if code == "" {
		code = DefaultCurrency
	}
	currency, err := money.NewCurrency(code)
	if err != nil {
		verr.Add("currency", err.Error())
	}

	income := IncomeStatement{
		Revenue:           required(verr, "income_statement.revenue", raw.Income.Revenue, false),
		CostOfGoodsSold:   required(verr, "income_statement.cost_of_goods_sold", raw.Income.CostOfGoodsSold, false),
		NetIncome:         required(verr, "income_statement.net_income", raw.Income.NetIncome, true),
		OperatingExpenses: optional(verr, "income_statement.operating_expenses", raw.Income.OperatingExpenses).Decimal,
		InterestExpense:   optional(verr, "income_statement.interest_expense", raw.Income.InterestExpense),
	}
	grossProfit := optional(verr, "income_statement.gross_profit", raw.Income.GrossProfit)

	balance := BalanceSheet{
		TotalAssets:        required(verr, "balance_sheet.total_assets", raw.Balance.TotalAssets, false),
		CurrentAssets:      required(verr, "balance_sheet.current_assets", raw.Balance.CurrentAssets, false),
		TotalLiabilities:   required(verr, "balance_sheet.total_liabilities", raw.Balance.TotalLiabilities, false),
		CurrentLiabilities: required(verr, "balance_sheet.current_liabilities", raw.Balance.CurrentLiabilities, false),
		Equity:             required(verr, "balance_sheet.equity", raw.Balance.Equity, false),
		Inventory:          optional(verr, "balance_sheet.inventory", raw.Balance.Inventory),
		Receivables:        optional(verr, "balance_sheet.receivables", raw.Balance.Receivables),
		Payables:           optional(verr, "balance_sheet.payables", raw.Balance.Payables),
		Cash:               optional(verr, "balance_sheet.cash", raw.Balance.Cash),
	}

	var cashFlow *CashFlow
	if raw.CashFlow != nil {
		cf := CashFlow{
			Operating: required(verr, "cash_flow.operating", raw.CashFlow.Operating, true),
			Investing: signed(verr, "cash_flow.investing", raw.CashFlow.Investing).Decimal,
			Financing: signed(verr, "cash_flow.financing", raw.CashFlow.Financing).Decimal,
		}
		if net := signed(verr, "cash_flow.net_change", raw.CashFlow.NetChange); net.Valid {
			cf.NetChange = net.Decimal
		} else {
			cf.NetChange = cf.Operating.Add(cf.Investing).Add(cf.Financing)
		}
		cashFlow = &cf
	}

	var prior *PriorPeriod
	if raw.Prior != nil {
		prior = &PriorPeriod{
			Revenue:   optional(verr, "previous_period.revenue", raw.Prior.Revenue),
			NetIncome: signed(verr, "previous_period.net_income", raw.Prior.NetIncome),
		}
	}

	if err := verr.OrNil(); err != nil {
		return Statement{}, nil, err
	}

	var warnings []string

	derivedGross := income.Revenue.Sub(income.CostOfGoodsSold)
	if grossProfit.Valid {
		income.GrossProfit = grossProfit.Decimal
		if !withinTolerance(income.GrossProfit, derivedGross, income.Revenue, grossProfitTolerance) {
			warnings = append(warnings, fmt.Sprintf(
				"inconsistent_statement: gross_profit %s differs from revenue - cost_of_goods_sold %s by more than 0.5%% of revenue",
				income.GrossProfit.String(), derivedGross.String(),
			))
		}
	} else {
		income.GrossProfit = derivedGross
	}

	claims := balance.TotalLiabilities.Add(balance.Equity)
	if !withinTolerance(balance.TotalAssets, claims, balance.TotalAssets, balanceTolerance) {
		warnings = append(warnings, fmt.Sprintf(
			"inconsistent_statement: total_assets %s differs from total_liabilities + equity %s by more than 1%%",
			balance.TotalAssets.String(), claims.String(),
		))
	}

	return Statement{
		currency: currency,
		income:   income,
		balance:  balance,
		cashFlow: cashFlow,
		prior:    prior,
	}, warnings, nil
}

// Currency returns the statement currency.
func (s Statement) Currency() money.Currency { return s.currency }

// Income returns a copy of the income statement.
func (s Statement) Income() IncomeStatement { return s.income }

// Balance returns a copy of the balance sheet.
func (s Statement) Balance() BalanceSheet { return s.balance }

// CashFlow returns a copy of the cash flow statement, or nil when it was not supplied.
func (s Statement) CashFlow() *CashFlow {
	if s.cashFlow == nil {
		return nil
	}
	cf := *s.cashFlow
	return &cf
}

// HasCashFlow reports whether a cash flow statement was supplied.
func (s Statement) HasCashFlow() bool { return s.cashFlow != nil }

// Prior returns a copy of the previous period's figures, or nil when they
// were not supplied.
func (s Statement) Prior() *PriorPeriod {
	if s.prior == nil {
		return nil
	}
	p := *s.prior
	return &p
}

// IsFinite reports whether d converts to a finite float64. Metrics are
// reported as float64, so larger magnitudes cannot be represented.
func IsFinite(d decimal.Decimal) bool {
	return !math.IsInf(d.InexactFloat64(), 0)
}

func required(verr *ValidationError, field string, v decimal.NullDecimal, allowNegative bool) decimal.Decimal {
	if !v.Valid {
		verr.Add(field, "is required")
		return decimal.Zero
	}
	switch {
	case !IsFinite(v.Decimal):
		verr.Add(field, "is out of range")
	case !allowNegative && v.Decimal.IsNegative():
		verr.Add(field, "must not be negative")
	}
	return v.Decimal
}

func optional(verr *ValidationError, field string, v decimal.NullDecimal) decimal.NullDecimal {
	if !v.Valid {
		return v
	}
	switch {
	case !IsFinite(v.Decimal):
		verr.Add(field, "is out of range")
	case v.Decimal.IsNegative():
		verr.Add(field, "must not be negative")
	}
	return v
}

func signed(verr *ValidationError, field string, v decimal.NullDecimal) decimal.NullDecimal {
	if v.Valid && !IsFinite(v.Decimal) {
		verr.Add(field, "is out of range")
	}
	return v
}

// withinTolerance reports |a-b| <= base*ratio, with a floor of one currency unit.
func withinTolerance(a, b, base, ratio decimal.Decimal) bool {
	limit := base.Abs().Mul(ratio)
	if limit.LessThan(decimal.NewFromInt(1)) {
		limit = decimal.NewFromInt(1)
	}
	return a.Sub(b).Abs().LessThanOrEqual(limit)
}
