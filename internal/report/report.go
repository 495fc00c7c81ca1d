// Package report собирает отображаемый результат расчета сценария.
package report

import (
	"github.com/cloud-ru/scenario-irr-go/internal/calculations"
	"github.com/cloud-ru/scenario-irr-go/internal/format"
)

// Chart представляет ряд для годового графика
type Chart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Result представляет результат для формы и API.
// При ошибке заполнено только поле Error.
type Result struct {
	TotalInvested string    `json:"total_invested,omitempty"`
	TotalReceived string    `json:"total_received,omitempty"`
	NetProfit     string    `json:"net_profit,omitempty"`
	MonthlyIRR    string    `json:"monthly_irr,omitempty"`
	AnnualIRR     string    `json:"annual_irr,omitempty"`
	ReturnRatio   string    `json:"return_ratio,omitempty"`
	Chart         *Chart    `json:"chart,omitempty"`
	CashFlows     []float64 `json:"cash_flows,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// Build форматирует числовой результат
func Build(m *calculations.ScenarioMetrics, f *format.Formatter) *Result {
	chart := &Chart{
		Labels: make([]string, 0, len(m.Yearly)),
		Values: make([]float64, 0, len(m.Yearly)),
	}
	for _, p := range m.Yearly {
		chart.Labels = append(chart.Labels, p.Label)
		chart.Values = append(chart.Values, p.Value)
	}

	return &Result{
		TotalInvested: f.Money(m.TotalInvested),
		TotalReceived: f.Money(m.TotalReceived),
		NetProfit:     f.Money(m.Profit),
		MonthlyIRR:    format.OptionalPercent(m.MonthlyIRR, format.NotCalculated),
		AnnualIRR:     format.OptionalPercent(m.AnnualIRR, format.NotCalculated),
		ReturnRatio:   format.OptionalPercent(m.ReturnRatio, format.NotAvailable),
		Chart:         chart,
		CashFlows:     m.CashFlows,
	}
}

// Failed заменяет весь результат сообщением об ошибке
func Failed(err error) *Result {
	return &Result{Error: err.Error()}
}

// HasError сообщает, завершился ли расчет ошибкой
func (r *Result) HasError() bool {
	return r.Error != ""
}
