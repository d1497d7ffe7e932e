package handler

import (
	"charity-app-go/internal/transport/httpserver/handler/care"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
	"charity-app-go/internal/transport/httpserver/handler/donors"
	"charity-app-go/internal/transport/httpserver/handler/families"
	"charity-app-go/internal/transport/httpserver/handler/reports"
)

type Handlers struct {
	Common   *commonhandler.Handlers
	Families *families.Handlers
	Care     *care.Handlers
	Donors   *donors.Handlers
	Reports  *reports.Handlers
}

func New(common *commonhandler.Handlers, familiesHandlers *families.Handlers, careHandlers *care.Handlers, donorsHandlers *donors.Handlers, reportsHandlers *reports.Handlers) *Handlers {
	return &Handlers{
		Common:   common,
		Families: familiesHandlers,
		Care:     careHandlers,
		Donors:   donorsHandlers,
		Reports:  reportsHandlers,
	}
}
