package tools

import (
	"context"
	"fmt"

	"github.com/cloud-ru/scenario-irr-go/internal/calculations"
	"github.com/cloud-ru/scenario-irr-go/internal/config"
	"github.com/cloud-ru/scenario-irr-go/internal/form"
	"github.com/cloud-ru/scenario-irr-go/internal/format"
	"github.com/cloud-ru/scenario-irr-go/internal/metrics"
	"github.com/cloud-ru/scenario-irr-go/internal/report"
	"github.com/cloud-ru/scenario-irr-go/internal/validators"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ToolHandler представляет обработчик расчета
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// ScenarioIRRHandler обрабатывает запрос на расчет IRR сценария покупки/продажи.
// Возвращает *report.Result.
func ScenarioIRRHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	formatter := format.New(cfg.CurrencySymbol)

	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "scenario_irr"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		in := form.ScenarioFromParams(params)
		horizon := calculations.Horizon(in)

		span.SetAttributes(
			attribute.Float64("down_payment", in.DownPayment),
			attribute.Int("monthly_count", in.MonthlyCount),
			attribute.Float64("monthly_amount", in.MonthlyAmount),
			attribute.Int("annual_count", in.AnnualCount),
			attribute.Float64("annual_amount", in.AnnualAmount),
			attribute.Int("sale_month", in.SaleMonth),
			attribute.Float64("sale_value", in.SaleValue),
			attribute.Int("horizon_months", horizon),
		)

		// Валидация
		if err := validators.CheckSaleMonth(cfg, in.SaleMonth); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
		if err := validators.CheckHorizon(cfg, horizon); err != nil {
			span.SetAttributes(attribute.String("error", "validation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}

		// Расчет
		result, err := calculations.Evaluate(in)
		if err != nil {
			span.SetAttributes(attribute.String("error", "calculation_error"))
			metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
			return nil, fmt.Errorf("calculation failed: %w", err)
		}

		if result.MonthlyIRR != nil {
			span.SetAttributes(attribute.Float64("monthly_irr", *result.MonthlyIRR))
		} else {
			metrics.IRRUndefined.Inc()
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("total_invested", result.TotalInvested),
			attribute.Float64("total_received", result.TotalReceived),
		)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()

		return report.Build(result, formatter), nil
	}
}
