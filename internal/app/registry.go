package app

import (
	"go-outtime/internal/attendance"
	"go-outtime/internal/auth"
	"go-outtime/internal/auth/token"
	"go-outtime/internal/company"
	"go-outtime/internal/dashboard"
	"go-outtime/internal/employee"
	"go-outtime/internal/invite"
	"go-outtime/internal/messaging/kafka"
	"go-outtime/internal/middleware"
	"go-outtime/internal/rbac"
	"go-outtime/internal/report"
	"go-outtime/internal/user"

	"github.com/gin-gonic/gin"
)

type repositories struct {
	company    company.Repository
	auth       auth.Repository
	user       user.Repository
	employee   employee.Repository
	invite     invite.Repository
	attendance attendance.Repository
	report     report.Repository
	dashboard  dashboard.Repository
	outbox     kafka.OutboxRepository
}

func newRepositories(in *Infra) repositories {
	return repositories{
		company:    company.NewRepository(in.GormDB),
		auth:       auth.NewRepository(in.GormDB),
		user:       user.NewRepository(in.GormDB),
		employee:   employee.NewRepository(in.GormDB),
		invite:     invite.NewRepository(in.GormDB),
		attendance: attendance.NewRepository(in.GormDB),
		report:     report.NewRepository(in.GormDB),
		dashboard:  dashboard.NewRepository(in.GormDB),
		outbox:     kafka.NewOutboxRepository(in.SQLDB),
	}
}

type services struct {
	auth       auth.Service
	user       user.Service
	company    company.Service
	employee   employee.Service
	invite     invite.Service
	attendance attendance.Service
	report     report.Service
	dashboard  dashboard.Service
	rbac       rbac.Service
}

func newServices(in *Infra, r repositories) (services, error) {
	cfg := in.Config
	options := employee.NewOptionsCache(in.Redis)

	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return services{}, err
	}

	tokens := token.NewIssuer(token.Config{
		Secret:     cfg.JWT.Secret,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	})

	return services{
		auth:     auth.NewService(in.SQLDB, r.auth, r.company, tokens, nil),
		user:     user.NewService(r.user),
		company:  company.NewService(r.company, cfg.Scheduler.LateOffset),
		employee: employee.NewService(r.employee, options),
		invite: invite.NewService(in.SQLDB, r.invite, r.employee, r.outbox, options, nil, invite.Options{
			TTL:         cfg.Invite.TTL,
			BotUsername: cfg.Telegram.BotUsername,
		}),
		attendance: attendance.NewService(in.SQLDB, r.attendance, r.employee, r.report, r.outbox, nil),
		report:     report.NewService(r.report, r.company, nil),
		dashboard: dashboard.NewService(r.dashboard, r.company, r.employee, r.invite,
			r.attendance, r.report, nil),
		rbac: rbac.NewService(enforcer),
	}, nil
}

func registerModules(router *gin.Engine, in *Infra, svc services) {
	cfg := in.Config
	authMW := middleware.AuthMiddleware(cfg.JWT.Secret)

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, auth.NewHandler(svc.auth, auth.CookieConfig{
			Secure:     cfg.IsProduction(),
			AccessTTL:  cfg.JWT.AccessTTL,
			RefreshTTL: cfg.JWT.RefreshTTL,
		}), authMW)

		employees := api.Group("/employees")
		employees.Use(authMW)
		employee.RegisterRoutes(employees, employee.NewHandler(svc.employee), svc.rbac)
		invite.RegisterRoutes(employees, invite.NewHandler(svc.invite), svc.rbac)

		report.RegisterRoutes(api, report.NewHandler(svc.report), authMW, svc.rbac)
		dashboard.RegisterRoutes(api, dashboard.NewHandler(svc.dashboard), authMW, svc.rbac)
		company.RegisterRoutes(api, company.NewHandler(svc.company), authMW, svc.rbac)
		rbac.RegisterRoutes(api, rbac.NewHandler(svc.rbac), authMW)
		user.RegisterRoutes(api, user.NewHandler(svc.user), authMW, svc.rbac)

		// the bot process and any external integration share one key
		bot := api.Group("/bot")
		bot.Use(middleware.BotKey(cfg.Telegram.BotAPIKey))
		idempotency := middleware.Idempotency(in.Redis)
		attendance.RegisterBotRoutes(bot, attendance.NewHandler(svc.attendance), idempotency)
		invite.RegisterBotRoutes(bot, invite.NewHandler(svc.invite), idempotency)
	}
}
