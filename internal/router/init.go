package router

import (
	"github.com/aulatrack/attendance-api/internal/application"
	"github.com/aulatrack/attendance-api/internal/container"
	pginfra "github.com/aulatrack/attendance-api/internal/infrastructure/postgres"
	handlers "github.com/aulatrack/attendance-api/internal/interface/http"
	"github.com/aulatrack/attendance-api/internal/router/modules"
	"github.com/aulatrack/attendance-api/pkg/mailer"
)

// InitModules builds all application modules from the container singletons
// and registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	groupRepo := pginfra.NewGroupRepository(pool)
	studentRepo := pginfra.NewStudentRepository(pool)
	attendanceRepo := pginfra.NewAttendanceRepository(pool)

	dispatcher := mailer.NewQueueDispatcher(container.GetRabbitPub(), cfg.FrontendURL, logger)

	authSvc := application.NewAuthService(userRepo, jwt, dispatcher, logger)
	userSvc := application.NewUserService(userRepo)
	groupSvc := application.NewGroupService(groupRepo)
	studentSvc := application.NewStudentService(studentRepo, groupRepo, container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESStudentsIndex, logger)
	attendanceSvc := application.NewAttendanceService(attendanceRepo, studentRepo)

	authHandler := handlers.NewAuthHandler(authSvc, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	groupHandler := handlers.NewGroupHandler(groupSvc, logger)
	studentHandler := handlers.NewStudentHandler(studentSvc, logger)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceSvc, logger)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewGroupModule(groupHandler, studentHandler, jwt))
	r.Add(modules.NewStudentModule(studentHandler, jwt))
	r.Add(modules.NewAttendanceModule(attendanceHandler, jwt))
}
