package httpserver

import (
	"net/http"
	"time"

	"charity-app-go/internal/config"
	"charity-app-go/internal/transport/httpserver/handler"
	"charity-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the HTTP surface. gatherer may be nil, in which case
// /metrics is not served.
func NewRouter(cfg config.Config, handlers *handler.Handlers, metrics *middleware.Metrics, gatherer prometheus.Gatherer) http.Handler {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(timeout))
	r.Use(middleware.NewCORS(cfg.AllowedOrigins))
	if metrics != nil {
		r.Use(metrics.Handler)
	}

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		r.Route("/family", func(r chi.Router) {
			r.Post("/", handlers.Families.CreateFamily)
			r.Get("/", handlers.Families.ListFamilies)
			r.Get("/{familyID}", handlers.Families.GetFamily)
			r.Put("/{familyID}", handlers.Families.UpdateFamily)
			r.Delete("/{familyID}", handlers.Families.DeleteFamily)
		})

		r.Route("/family-member/{familyID}", func(r chi.Router) {
			r.Post("/", handlers.Families.CreateMember)
			r.Get("/", handlers.Families.ListMembers)
			r.Get("/{familyMemberID}", handlers.Families.GetMember)
			r.Put("/{familyMemberID}", handlers.Families.UpdateMember)
			r.Delete("/{familyMemberID}", handlers.Families.DeleteMember)
		})

		r.Route("/health-history/{familyID}", func(r chi.Router) {
			r.Get("/", handlers.Care.ListFamilyHealthHistory)
			r.Post("/{familyMemberID}", handlers.Care.CreateHealthHistory)
			r.Get("/{familyMemberID}", handlers.Care.ListMemberHealthHistory)
			r.Get("/{familyMemberID}/{healthHistoryID}", handlers.Care.GetHealthHistory)
			r.Put("/{familyMemberID}/{healthHistoryID}", handlers.Care.UpdateHealthHistory)
			r.Delete("/{familyMemberID}/{healthHistoryID}", handlers.Care.DeleteHealthHistory)
		})

		r.Route("/member-needs/{familyID}", func(r chi.Router) {
			r.Get("/", handlers.Care.ListFamilyNeeds)
			r.Post("/{familyMemberID}", handlers.Care.CreateMemberNeed)
			r.Get("/{familyMemberID}", handlers.Care.ListMemberNeeds)
			r.Get("/{familyMemberID}/{memberNeedID}", handlers.Care.GetMemberNeed)
			r.Put("/{familyMemberID}/{memberNeedID}", handlers.Care.UpdateMemberNeed)
			r.Delete("/{familyMemberID}/{memberNeedID}", handlers.Care.DeleteMemberNeed)
		})

		r.Route("/donor", func(r chi.Router) {
			r.Post("/", handlers.Donors.CreateDonor)
			r.Get("/", handlers.Donors.ListDonors)
			r.Get("/{donorID}", handlers.Donors.GetDonor)
			r.Put("/{donorID}", handlers.Donors.UpdateDonor)
			r.Delete("/{donorID}", handlers.Donors.DeleteDonor)
			r.Get("/{donorID}/donations", handlers.Donors.ListDonorDonations)
		})

		r.Route("/donation", func(r chi.Router) {
			r.Post("/", handlers.Donors.CreateDonation)
			r.Get("/", handlers.Donors.ListDonations)
			r.Get("/{donationID}", handlers.Donors.GetDonation)
			r.Put("/{donationID}", handlers.Donors.UpdateDonation)
			r.Delete("/{donationID}", handlers.Donors.DeleteDonation)
			r.Get("/{donationID}/remaining", handlers.Donors.DonationRemaining)
		})

		r.Route("/donation-record", func(r chi.Router) {
			r.Post("/", handlers.Donors.CreateRecord)
			r.Get("/", handlers.Donors.ListRecords)
			r.Get("/{recordID}", handlers.Donors.GetRecord)
			r.Delete("/{recordID}", handlers.Donors.DeleteRecord)
		})

		r.Get("/reports/families.xlsx", handlers.Reports.FamilyRoster)
		r.Get("/reports/donations.xlsx", handlers.Reports.DonationLedger)
	})

	return r
}
