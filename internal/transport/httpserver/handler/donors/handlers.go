package donors

import (
	"errors"
	"net/http"

	"charity-app-go/internal/domain/donation"
	"charity-app-go/internal/domain/donor"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
	"charity-app-go/pkg/logger"
)

// Handlers serves donors, their donations and the records of what each
// donation handed out.
type Handlers struct {
	Donors    *donor.Service
	Donations *donation.Service
	log       logger.Logger
}

func New(donors *donor.Service, donations *donation.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Donors:    donors,
		Donations: donations,
		log:       log,
	}
}

func (h *Handlers) writeFailure(w http.ResponseWriter, op string, err error, kv ...any) {
	switch {
	case errors.Is(err, donor.ErrDonorNotFound):
		h.log.BusinessError(op+": donor not found", err, kv...)
		commonhandler.WriteError(w, http.StatusNotFound, "donor_not_found", "donor not found")
	case errors.Is(err, donation.ErrDonationNotFound):
		h.log.BusinessError(op+": donation not found", err, kv...)
		commonhandler.WriteError(w, http.StatusNotFound, "donation_not_found", "donation not found")
	case errors.Is(err, donation.ErrRecordNotFound):
		h.log.BusinessError(op+": donation record not found", err, kv...)
		commonhandler.WriteError(w, http.StatusNotFound, "donation_record_not_found", "donation record not found")
	case errors.Is(err, donor.ErrDuplicateEmail):
		h.log.BusinessError(op+": duplicate email", err, kv...)
		commonhandler.WriteError(w, http.StatusConflict, "duplicate_email", "email already in use")
	case errors.Is(err, donor.ErrDonorHasDonations):
		h.log.BusinessError(op+": donor has donations", err, kv...)
		commonhandler.WriteError(w, http.StatusConflict, "donor_has_donations", "donor still has donations")
	case errors.Is(err, donation.ErrExceedsDonation):
		h.log.BusinessError(op+": exceeds donation", err, kv...)
		commonhandler.WriteError(w, http.StatusConflict, "exceeds_donation", "not enough left of the donation")
	default:
		commonhandler.WriteSharedError(w, h.log, op, err, kv...)
	}
}
