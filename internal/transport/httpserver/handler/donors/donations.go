package donors

import (
	"net/http"
	"time"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/donation"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
)

type createDonationRequest struct {
	DonorID      uint              `json:"donorId"`
	DonationDate *string           `json:"donationDate"`
	DonationTook *contributionBody `json:"donationTook"`
	Properties   string            `json:"properties"`
}

type updateDonationRequest struct {
	DonorID      *uint             `json:"donorId"`
	DonationDate *string           `json:"donationDate"`
	DonationTook *contributionBody `json:"donationTook"`
	Properties   *string           `json:"properties"`
}

type donationResponse struct {
	ID           uint                  `json:"id"`
	DonorID      uint                  `json:"donorId"`
	DonationDate string                `json:"donationDate"`
	DonationTook donation.Contribution `json:"donationTook"`
	Properties   string                `json:"properties"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

func toDonationResponse(d *donation.Donation) donationResponse {
	return donationResponse{
		ID:           d.ID,
		DonorID:      d.DonorID,
		DonationDate: d.DonationDate.Format(common.DateLayout),
		DonationTook: d.DonationTook.Data(),
		Properties:   d.Properties,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toDonationList(list []donation.Donation) map[string]any {
	response := make([]donationResponse, 0, len(list))
	for i := range list {
		response = append(response, toDonationResponse(&list[i]))
	}
	return map[string]any{"count": len(response), "donations": response}
}

func (h *Handlers) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req createDonationRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}
	date, err := commonhandler.ParseDate("donationDate", req.DonationDate)
	if err != nil {
		h.writeFailure(w, "donations.create", err)
		return
	}

	created, err := h.Donations.Create(r.Context(), donation.Fields{
		DonorID:      req.DonorID,
		DonationDate: date,
		DonationTook: req.DonationTook.toFields(),
		Properties:   req.Properties,
	})
	if err != nil {
		h.writeFailure(w, "donations.create", err, "donor_id", req.DonorID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":  "Donation added successfully",
		"donation": toDonationResponse(created),
	})
}

func (h *Handlers) ListDonations(w http.ResponseWriter, r *http.Request) {
	list, err := h.Donations.List(r.Context())
	if err != nil {
		h.writeFailure(w, "donations.list", err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, toDonationList(list))
}

func (h *Handlers) GetDonation(w http.ResponseWriter, r *http.Request) {
	donationID := commonhandler.ParseID(r, "donationID")

	found, err := h.Donations.Get(r.Context(), donationID)
	if err != nil {
		h.writeFailure(w, "donations.get", err, "donation_id", donationID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{
		"message":  "Donation retrieved successfully",
		"donation": toDonationResponse(found),
	})
}

func (h *Handlers) UpdateDonation(w http.ResponseWriter, r *http.Request) {
	donationID := commonhandler.ParseID(r, "donationID")

	var req updateDonationRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}
	date, err := commonhandler.ParseDate("donationDate", req.DonationDate)
	if err != nil {
		h.writeFailure(w, "donations.update", err, "donation_id", donationID)
		return
	}

	updated, outcome, err := h.Donations.Update(r.Context(), donationID, donation.Patch{
		DonorID:      req.DonorID,
		DonationDate: date,
		DonationTook: req.DonationTook.toFields(),
		Properties:   req.Properties,
	})
	if err != nil {
		h.writeFailure(w, "donations.update", err, "donation_id", donationID)
		return
	}

	message := "Donation updated successfully"
	if outcome == common.OutcomeUnchanged {
		message = "No changes were made to the donation"
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{
		"message":  message,
		"donation": toDonationResponse(updated),
	})
}

func (h *Handlers) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	donationID := commonhandler.ParseID(r, "donationID")

	if err := h.Donations.Delete(r.Context(), donationID); err != nil {
		h.writeFailure(w, "donations.delete", err, "donation_id", donationID)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{"message": "Donation deleted successfully"})
}

func (h *Handlers) DonationRemaining(w http.ResponseWriter, r *http.Request) {
	donationID := commonhandler.ParseID(r, "donationID")

	left, err := h.Donations.Remaining(r.Context(), donationID)
	if err != nil {
		h.writeFailure(w, "donations.remaining", err, "donation_id", donationID)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{
		"donationId": donationID,
		"remaining":  left,
	})
}
