package calculations

// ScenarioInput представляет параметры сценария покупки/продажи
type ScenarioInput struct {
	DownPayment   float64 `json:"down_payment"`
	MonthlyCount  int     `json:"monthly_count"`
	MonthlyAmount float64 `json:"monthly_amount"`
	AnnualCount   int     `json:"annual_count"`
	AnnualAmount  float64 `json:"annual_amount"`
	SaleMonth     int     `json:"sale_month"`
	SaleValue     float64 `json:"sale_value"`
}

// YearlyPoint представляет сумму потока за один год
type YearlyPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ScenarioMetrics представляет числовой результат расчета сценария.
// Nil в MonthlyIRR, AnnualIRR или ReturnRatio означает, что показатель не определен.
type ScenarioMetrics struct {
	TotalInvested float64       `json:"total_invested"`
	TotalReceived float64       `json:"total_received"`
	Profit        float64       `json:"profit"`
	MonthlyIRR    *float64      `json:"monthly_irr"`
	AnnualIRR     *float64      `json:"annual_irr"`
	ReturnRatio   *float64      `json:"return_ratio"`
	Yearly        []YearlyPoint `json:"yearly"`
	CashFlows     []float64     `json:"cash_flows"`
}
