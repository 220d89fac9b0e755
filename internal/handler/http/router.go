package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/zentra-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	payrollHandler PayrollHandler,
	incrementHandler IncrementHandler,
	adjustmentHandler AdjustmentHandler,
	calendarHandler CalendarHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "zentra-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.ListStatements)
				r.Post("/generate", payrollHandler.Generate)
				r.Get("/detailed/{month}", payrollHandler.DetailedReport)
				r.Get("/live-current-month", payrollHandler.LiveReport)
				r.Get("/months", payrollHandler.Months)
			})

			r.Route("/employees/{employeeId}", func(r chi.Router) {
				r.Post("/increments", incrementHandler.Add)
				r.Get("/increments", incrementHandler.ListForEmployee)
				r.Get("/pending-increment", incrementHandler.Pending)
			})

			r.Route("/increments", func(r chi.Router) {
				r.Get("/", incrementHandler.List)
				r.Get("/pending", incrementHandler.ListPending)
				r.Post("/activate-pending", incrementHandler.ActivatePending)
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/", adjustmentHandler.CreateAdvance)
				r.Get("/", adjustmentHandler.ListAdvances)
			})

			r.Route("/loans", func(r chi.Router) {
				r.Post("/", adjustmentHandler.CreateLoan)
				r.Get("/", adjustmentHandler.ListLoans)
				r.Put("/{id}/status", adjustmentHandler.UpdateLoanStatus)
			})

			r.Route("/extra-payments", func(r chi.Router) {
				r.Post("/", adjustmentHandler.CreateExtraPayment)
				r.Get("/", adjustmentHandler.ListExtraPayments)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", calendarHandler.GetSettings)
				r.Put("/", calendarHandler.UpdateSettings)
				r.Post("/holidays", calendarHandler.AddHoliday)
				r.Delete("/holidays/{date}", calendarHandler.RemoveHoliday)
				r.Get("/working-days/{year}/{month}", calendarHandler.WorkingDays)
			})

			r.Get("/attendance", attendanceHandler.ListByMonth)
		})
	})
	return r
}
