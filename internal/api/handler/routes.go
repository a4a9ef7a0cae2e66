package handler

import (
	"net/http"

	"github.com/vfg2006/sales-coach-api/internal/api/handler/router"
	"github.com/vfg2006/sales-coach-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-coach-api/internal/usecases/coaching"
	"github.com/vfg2006/sales-coach-api/internal/usecases/recording"
	"github.com/vfg2006/sales-coach-api/pkg/middleware"
)

var gated = []func(http.Handler) http.Handler{middleware.RequireSession()}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: gated,
		},
	}
}

func Entries(service recording.EntryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/entries",
			Method:      http.MethodGet,
			Handler:     ListEntries(service),
			Middlewares: gated,
		},
		{
			Path:        "/v1/entries",
			Method:      http.MethodPost,
			Handler:     CreateEntry(service),
			Middlewares: gated,
		},
		{
			Path:        "/v1/entries",
			Method:      http.MethodDelete,
			Handler:     ClearEntries(service),
			Middlewares: gated,
		},
		{
			Path:        "/v1/entries/summary",
			Method:      http.MethodGet,
			Handler:     GetEntrySummary(service),
			Middlewares: gated,
		},
	}
}

func Dashboard(entryService recording.EntryService, fetcher coaching.TipFetcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(entryService),
			Middlewares: gated,
		},
		{
			Path:        "/v1/dashboard/tip",
			Method:      http.MethodGet,
			Handler:     GetDashboardTip(entryService, fetcher),
			Middlewares: gated,
		},
	}
}

func Tips(advisor coaching.Advisor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tip",
			Method:      http.MethodPost,
			Handler:     CompleteTip(advisor),
			Middlewares: gated,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: gated,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: gated,
		},
	}
}
