package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dpkp-bogor/presensi-backend-go/internal/config"
	appHTTP "github.com/dpkp-bogor/presensi-backend-go/internal/handler/http"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/clock"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/database"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/jwt"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/location"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/storage"
	"github.com/dpkp-bogor/presensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dpkp-bogor/presensi-backend-go/internal/service/attendance"
	serviceAuth "github.com/dpkp-bogor/presensi-backend-go/internal/service/auth"
	employeeService "github.com/dpkp-bogor/presensi-backend-go/internal/service/employee"
	"github.com/dpkp-bogor/presensi-backend-go/internal/service/file"
	leaveService "github.com/dpkp-bogor/presensi-backend-go/internal/service/leave"
	officeService "github.com/dpkp-bogor/presensi-backend-go/internal/service/office"
	reportService "github.com/dpkp-bogor/presensi-backend-go/internal/service/report"
	settingsService "github.com/dpkp-bogor/presensi-backend-go/internal/service/settings"
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
	officeRepo := postgresql.NewOfficeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileService := file.NewFileService(fileStorage)

	var provider location.Provider
	switch cfg.Location.Mode {
	case "device":
		provider = location.NewDevice(location.NewHTTPSource(cfg.Location.DeviceURL), location.DefaultAcquireTimeout)
	default:
		provider = location.NewSimulated(cfg.Location.SimulatedSeed)
	}

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	officeSvc := officeService.NewOfficeService(officeRepo, userRepo)
	userSvc := employeeService.NewUserService(userRepo, officeRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		userRepo,
		officeRepo,
		settingsRepo,
		fileService,
		provider,
		clock.System{},
	)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, fileService)
	reportSvc := reportService.NewReportService(attendanceRepo, leaveRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	officeHandler := appHTTP.NewOfficeHandler(officeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(userSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		officeHandler,
		employeeHandler,
		settingsHandler,
		reportHandler,
		cfg.App.CORSOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
