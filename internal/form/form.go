// Package form переводит поля формы и параметры API в ScenarioInput.
// Пустые и некорректные значения заменяются нулем, ошибок не возникает.
package form

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/cloud-ru/scenario-irr-go/internal/calculations"
	"github.com/cloud-ru/scenario-irr-go/pkg/utils"
)

// Имена полей формы
const (
	FieldDownPayment   = "down_payment"
	FieldMonthlyCount  = "monthly_count"
	FieldMonthlyAmount = "monthly_amount"
	FieldAnnualCount   = "annual_count"
	FieldAnnualAmount  = "annual_amount"
	FieldSaleMonth     = "sale_month"
	FieldSaleValue     = "sale_value"
)

// Fields перечисляет поля в порядке формы
var Fields = []string{
	FieldDownPayment,
	FieldMonthlyCount,
	FieldMonthlyAmount,
	FieldAnnualCount,
	FieldAnnualAmount,
	FieldSaleMonth,
	FieldSaleValue,
}

// Values возвращает введенные строки для повторного заполнения формы
func Values(get func(string) string) map[string]string {
	values := make(map[string]string, len(Fields))
	for _, name := range Fields {
		values[name] = get(name)
	}
	return values
}

// Params переводит поля формы в параметры обработчика расчета
func Params(get func(string) string) map[string]interface{} {
	params := make(map[string]interface{}, len(Fields))
	for _, name := range Fields {
		params[name] = get(name)
	}
	return params
}

// ScenarioFromParams собирает сценарий из параметров; отсутствующие поля = 0
func ScenarioFromParams(params map[string]interface{}) calculations.ScenarioInput {
	return calculations.ScenarioInput{
		DownPayment:   Float(params[FieldDownPayment]),
		MonthlyCount:  Int(params[FieldMonthlyCount]),
		MonthlyAmount: Float(params[FieldMonthlyAmount]),
		AnnualCount:   Int(params[FieldAnnualCount]),
		AnnualAmount:  Float(params[FieldAnnualAmount]),
		SaleMonth:     Int(params[FieldSaleMonth]),
		SaleValue:     Float(params[FieldSaleValue]),
	}
}

// Float приводит значение к конечному float64, иначе 0
func Float(value interface{}) float64 {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case json.Number:
		f = ParseFloat(string(v))
	case string:
		f = ParseFloat(v)
	default:
		return 0
	}
	if !utils.IsFinite(f) {
		return 0
	}
	return f
}

// Int приводит значение к целому, иначе 0. Дробные числа считаются некорректными.
func Int(value interface{}) int {
	switch v := value.(type) {
	case int:
		return v
	case float64:
		if !utils.IsFinite(v) || v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return 0
		}
		return int(v)
	case json.Number:
		return ParseInt(string(v))
	case string:
		return ParseInt(v)
	}
	return 0
}

// ParseFloat разбирает строку суммы; пустая или некорректная строка = 0
func ParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !utils.IsFinite(f) {
		return 0
	}
	return f
}

// ParseInt разбирает строку количества; пустая или некорректная строка = 0
func ParseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
