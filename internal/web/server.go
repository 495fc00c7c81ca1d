// Package web обслуживает форму расчета сценария и JSON API.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/scenario-irr-go/internal/config"
	"github.com/cloud-ru/scenario-irr-go/internal/form"
	"github.com/cloud-ru/scenario-irr-go/internal/metrics"
	"github.com/cloud-ru/scenario-irr-go/internal/report"
	"github.com/cloud-ru/scenario-irr-go/internal/tools"
	"github.com/cloud-ru/scenario-irr-go/internal/validators"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server HTTP-сервер калькулятора
type Server struct {
	maxMonths int
	logger    *slog.Logger
	calculate tools.ToolHandler
	engine    *gin.Engine
}

// pageData данные шаблона формы
type pageData struct {
	Values    map[string]string
	Result    *report.Result
	MaxMonths int
}

// NewServer создает сервер и регистрирует маршруты
func NewServer(cfg *config.Config, logger *slog.Logger, tracer trace.Tracer) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		maxMonths: validators.HorizonCap(cfg),
		logger:    logger,
		calculate: tools.ScenarioIRRHandler(cfg, tracer),
		engine:    gin.New(),
	}

	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(gin.Recovery(), requestID(), accessLog(logger), observe())
	s.RegisterRoutes(s.engine)

	return s, nil
}

// RegisterRoutes регистрирует маршруты
func (s *Server) RegisterRoutes(router *gin.Engine) {
	router.GET("/", s.ShowForm)
	router.POST("/", s.SubmitForm)
	router.POST("/api/scenario", s.CalculateScenario)
	router.GET("/healthz", s.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler возвращает http.Handler для http.Server
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ShowForm отображает пустую форму
func (s *Server) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{Values: map[string]string{}, MaxMonths: s.maxMonths})
}

// SubmitForm рассчитывает сценарий и отображает форму с введенными значениями
func (s *Server) SubmitForm(c *gin.Context) {
	result := s.compute(c.Request.Context(), form.Params(c.PostForm))

	c.HTML(http.StatusOK, "index.html", pageData{
		Values:    form.Values(c.PostForm),
		Result:    result,
		MaxMonths: s.maxMonths,
	})
}

// CalculateScenario рассчитывает сценарий по JSON-телу запроса
func (s *Server) CalculateScenario(c *gin.Context) {
	var params map[string]interface{}
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, report.Failed(fmt.Errorf("invalid request body: %w", err)))
		return
	}

	result := s.compute(c.Request.Context(), params)
	if result.HasError() {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Health проверка живости
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// compute выполняет расчет; любая ошибка или паника заменяет весь результат сообщением
func (s *Server) compute(ctx context.Context, params map[string]interface{}) (result *report.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "scenario calculation panicked", "panic", r)
			metrics.CalculationErrors.WithLabelValues("scenario_irr", "panic").Inc()
			result = report.Failed(fmt.Errorf("computation failed: %v", r))
		}
	}()

	out, err := s.calculate(ctx, params)
	if err != nil {
		s.logger.WarnContext(ctx, "scenario calculation failed", "error", err)
		return report.Failed(err)
	}

	res, ok := out.(*report.Result)
	if !ok {
		return report.Failed(fmt.Errorf("computation failed: unexpected result %T", out))
	}
	return res
}
