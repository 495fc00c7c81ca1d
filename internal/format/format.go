// Package format готовит денежные и процентные значения к отображению.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/cloud-ru/scenario-irr-go/pkg/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// NotCalculated выводится вместо неопределенной IRR
	NotCalculated = "Not calculated"
	// NotAvailable выводится вместо неопределенной рентабельности
	NotAvailable = "N/A"
)

// Formatter форматирует суммы с разделителями тысяч и символом валюты
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// New создает форматтер; пустой символ валюты не выводится
func New(currencySymbol string) *Formatter {
	return &Formatter{
		symbol:  strings.TrimSpace(currencySymbol),
		printer: message.NewPrinter(language.English),
	}
}

// Money возвращает сумму вида "R$ 16,000.00"
func (f *Formatter) Money(amount float64) string {
	number := nonFinite(amount)
	if number == "" {
		rounded := decimal.NewFromFloat(amount).Round(2).InexactFloat64()
		number = f.printer.Sprintf("%.2f", rounded)
	}
	if f.symbol == "" {
		return number
	}
	return f.symbol + " " + number
}

// Percent переводит долю в проценты с 2 знаками: 0.0512 -> "5.12%"
func Percent(rate float64) string {
	if s := nonFinite(rate); s != "" {
		return s + "%"
	}
	return strconv.FormatFloat(rate*100, 'f', 2, 64) + "%"
}

// nonFinite возвращает "inf", "-inf" или "nan" для переполненных сумм,
// для конечных чисел пустую строку
func nonFinite(v float64) string {
	switch {
	case utils.IsFinite(v):
		return ""
	case math.IsNaN(v):
		return "nan"
	case v > 0:
		return "inf"
	default:
		return "-inf"
	}
}

// OptionalPercent возвращает placeholder, если показатель не определен
func OptionalPercent(rate *float64, placeholder string) string {
	if rate == nil {
		return placeholder
	}
	return Percent(*rate)
}
