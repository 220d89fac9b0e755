package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/zentra-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/zentra-hr/payroll-backend-go/internal/handler/http"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/clock"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/cron"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/database"
	"github.com/zentra-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/zentra-hr/payroll-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/zentra-hr/payroll-backend-go/internal/service/adjustment"
	attendanceService "github.com/zentra-hr/payroll-backend-go/internal/service/attendance"
	calendarService "github.com/zentra-hr/payroll-backend-go/internal/service/calendar"
	payrollService "github.com/zentra-hr/payroll-backend-go/internal/service/payroll"
	salaryService "github.com/zentra-hr/payroll-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	clk, err := clock.New(cfg.Payroll.UTCOffset)
	if err != nil {
		log.Fatal("Invalid PAYROLL_UTC_OFFSET:", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	incrementRepo := postgresql.NewIncrementRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	extraPaymentRepo := postgresql.NewExtraPaymentRepository(db)
	calendarRepo := postgresql.NewCalendarSettingsRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	calendarSvc := calendarService.NewCalendarService(calendarRepo)
	salarySvc := salaryService.NewSalaryService(incrementRepo, employeeRepo, clk)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(advanceRepo, loanRepo, extraPaymentRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		salarySvc,
		adjustmentSvc,
		calendarSvc,
		clk,
	)

	scheduler := cron.NewScheduler()
	cron.NewIncrementJobs(salarySvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	incrementHandler := appHTTP.NewIncrementHandler(salarySvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		jwtService,
		payrollHandler,
		incrementHandler,
		adjustmentHandler,
		calendarHandler,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
