package main

import (
	"fmt"
	"net/http"

	"github.com/edupoint/ims-backend-go/internal/config"
	appHTTP "github.com/edupoint/ims-backend-go/internal/handler/http"
	"github.com/edupoint/ims-backend-go/internal/pkg/cron"
	"github.com/edupoint/ims-backend-go/internal/pkg/database"
	"github.com/edupoint/ims-backend-go/internal/pkg/jwt"
	"github.com/edupoint/ims-backend-go/internal/repository/postgresql"
	authService "github.com/edupoint/ims-backend-go/internal/service/auth"
	calendarService "github.com/edupoint/ims-backend-go/internal/service/calendar"
	earningsService "github.com/edupoint/ims-backend-go/internal/service/earnings"
	payrollService "github.com/edupoint/ims-backend-go/internal/service/payroll"
	salaryService "github.com/edupoint/ims-backend-go/internal/service/salary"
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

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	settingsRepo := postgresql.NewCalendarSettingsRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	calendarSvc := calendarService.NewCalendarService(holidayRepo, settingsRepo)
	earningsSvc := earningsService.NewEarningsService(
		attendanceRepo,
		overtimeRepo,
		leaveRepo,
		compensationRepo,
		calendarSvc,
		cfg.Payroll,
	)
	salaryResolver := salaryService.NewResolver(cfg.Payroll)
	salarySvc := salaryService.NewSalaryService(compensationRepo, salaryResolver)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, compensationRepo, earningsSvc)
	authSvc := authService.NewAuthService(userRepo, JWTService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	earningsHandler := appHTTP.NewEarningsHandler(earningsSvc, salarySvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, cfg.Payroll)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		earningsHandler,
		payrollHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
