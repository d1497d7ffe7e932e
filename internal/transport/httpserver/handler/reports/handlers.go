package reports

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"

	"charity-app-go/internal/domain/report"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
	"charity-app-go/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handlers struct {
	Reports *report.Service
	log     logger.Logger
}

func New(reports *report.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Reports: reports,
		log:     log,
	}
}

func (h *Handlers) FamilyRoster(w http.ResponseWriter, r *http.Request) {
	h.serveWorkbook(w, r, "reports.families", "families.xlsx", h.Reports.WriteFamilyRoster)
}

func (h *Handlers) DonationLedger(w http.ResponseWriter, r *http.Request) {
	h.serveWorkbook(w, r, "reports.donations", "donations.xlsx", h.Reports.WriteDonationLedger)
}

// serveWorkbook renders into memory first so a failure can still be reported
// as a JSON error.
func (h *Handlers) serveWorkbook(w http.ResponseWriter, r *http.Request, op, filename string, write func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := write(r.Context(), &buf); err != nil {
		commonhandler.WriteInternalError(w, h.log, op, "failed to build report", err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("reports: write response failed", "op", op, "error", err)
	}
}
