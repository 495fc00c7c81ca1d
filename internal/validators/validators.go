package validators

import (
	"fmt"

	"github.com/cloud-ru/scenario-irr-go/internal/config"
)

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: value must be in range [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckHorizon проверяет длину денежного потока в месяцах
func CheckHorizon(cfg *config.Config, months int) error {
	return ValidateIntRange("horizon_months", months, 1, HorizonCap(cfg))
}

// CheckSaleMonth проверяет месяц продажи (отсчет с 0)
func CheckSaleMonth(cfg *config.Config, month int) error {
	return ValidateIntRange("sale_month", month, 0, HorizonCap(cfg)-1)
}

// HorizonCap возвращает максимальный горизонт расчета
func HorizonCap(cfg *config.Config) int {
	if cfg == nil || cfg.MaxMonths <= 0 {
		return 1200 // Значение по умолчанию
	}
	return cfg.HorizonCap()
}
