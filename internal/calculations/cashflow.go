package calculations

import (
	"errors"
	"math"
)

// ErrSaleMonthOutOfRange возвращается для отрицательного месяца продажи
var ErrSaleMonthOutOfRange = errors.New("sale month out of range")

// Horizon возвращает длину денежного потока: max(sale, monthly, annual*12) + 1.
// Значение насыщается на math.MaxInt вместо переполнения.
func Horizon(in ScenarioInput) int {
	// Неположительное число годовых взносов не удлиняет поток
	annualMonths := 0
	if in.AnnualCount > math.MaxInt/12 {
		annualMonths = math.MaxInt
	} else if in.AnnualCount > 0 {
		annualMonths = in.AnnualCount * 12
	}

	last := max(in.SaleMonth, in.MonthlyCount, annualMonths)
	if last == math.MaxInt {
		return last
	}
	return last + 1
}

// BuildCashFlows строит помесячный денежный поток сценария.
// Месяц 0 содержит взнос со знаком минус, взносы вычитаются, продажа прибавляется.
func BuildCashFlows(in ScenarioInput) ([]float64, error) {
	if in.SaleMonth < 0 {
		return nil, ErrSaleMonthOutOfRange
	}

	total := Horizon(in)
	flows := make([]float64, total)

	flows[0] = -in.DownPayment

	for i := 1; i <= in.MonthlyCount && i < total; i++ {
		flows[i] -= in.MonthlyAmount
	}

	for i := 1; i <= in.AnnualCount; i++ {
		month := i * 12
		if month >= total {
			break
		}
		flows[month] -= in.AnnualAmount
	}

	return placeSale(flows, in.SaleMonth, in.SaleValue), nil
}

// placeSale добавляет выручку от продажи в месяц month.
// Если month за пределами потока, поток дополняется нулями до month,
// а выручка добавляется последним элементом, то есть в месяц month+1.
func placeSale(flows []float64, month int, value float64) []float64 {
	if month < len(flows) {
		flows[month] += value
		return flows
	}

	extra := month - (len(flows) - 1)
	flows = append(flows, make([]float64, extra)...)
	return append(flows, value)
}
