package calculations

import (
	"fmt"

	"github.com/cloud-ru/scenario-irr-go/pkg/utils"
)

// MonthsPerYear задает размер годовой группы потока
const MonthsPerYear = 12

// Evaluate рассчитывает поток, IRR и итоговые показатели сценария
func Evaluate(in ScenarioInput) (*ScenarioMetrics, error) {
	flows, err := BuildCashFlows(in)
	if err != nil {
		return nil, fmt.Errorf("build cash flows: %w", err)
	}

	result := &ScenarioMetrics{
		CashFlows: flows,
		Yearly:    YearlyTotals(flows),
	}

	if r, ok := IRR(flows); ok && utils.IsFinite(r) {
		annual := Annualize(r)
		result.MonthlyIRR = &r
		result.AnnualIRR = &annual
	}

	invested, received := Totals(flows)
	result.TotalInvested = invested
	result.TotalReceived = received
	result.Profit = received - invested

	// Рентабельность не зависит от IRR и не определена только при нулевом вложении
	if invested != 0 {
		ratio := result.Profit / invested
		result.ReturnRatio = &ratio
	}

	return result, nil
}

// Totals возвращает сумму оттоков (положительным числом) и сумму притоков
func Totals(flows []float64) (invested, received float64) {
	for _, v := range flows {
		if v < 0 {
			invested -= v
		} else if v > 0 {
			received += v
		}
	}
	return invested, received
}

// YearlyTotals группирует поток по 12 месяцев начиная с месяца 0
func YearlyTotals(flows []float64) []YearlyPoint {
	points := make([]YearlyPoint, 0, (len(flows)+MonthsPerYear-1)/MonthsPerYear)
	for start := 0; start < len(flows); start += MonthsPerYear {
		end := min(start+MonthsPerYear, len(flows))

		sum := 0.0
		for _, v := range flows[start:end] {
			sum += v
		}

		points = append(points, YearlyPoint{
			Label: fmt.Sprintf("Year %d", start/MonthsPerYear+1),
			Value: utils.Round2(sum),
		})
	}
	return points
}
