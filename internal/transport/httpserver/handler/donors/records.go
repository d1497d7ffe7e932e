package donors

import (
	"net/http"
	"time"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/donation"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
)

type createRecordRequest struct {
	DonationID    uint              `json:"donationId"`
	FamilyID      uint              `json:"familyId"`
	DonationDate  *string           `json:"donationDate"`
	DonationGiven *contributionBody `json:"donationGiven"`
}

type recordResponse struct {
	ID            uint                  `json:"id"`
	DonationID    uint                  `json:"donationId"`
	FamilyID      uint                  `json:"familyId"`
	DonationDate  string                `json:"donationDate"`
	DonationGiven donation.Contribution `json:"donationGiven"`
	CreatedAt     time.Time             `json:"createdAt"`
}

func toRecordResponse(record *donation.Record) recordResponse {
	return recordResponse{
		ID:            record.ID,
		DonationID:    record.DonationID,
		FamilyID:      record.FamilyID,
		DonationDate:  record.DonationDate.Format(common.DateLayout),
		DonationGiven: record.DonationGiven.Data(),
		CreatedAt:     record.CreatedAt,
	}
}

func (h *Handlers) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}
	date, err := commonhandler.ParseDate("donationDate", req.DonationDate)
	if err != nil {
		h.writeFailure(w, "records.create", err)
		return
	}

	record, err := h.Donations.CreateRecord(r.Context(), donation.RecordFields{
		DonationID:    req.DonationID,
		FamilyID:      req.FamilyID,
		DonationDate:  date,
		DonationGiven: req.DonationGiven.toFields(),
	})
	if err != nil {
		h.writeFailure(w, "records.create", err, "donation_id", req.DonationID, "family_id", req.FamilyID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":        "Donation record added successfully",
		"donationRecord": toRecordResponse(record),
	})
}

// ListRecords accepts an optional familyId query parameter. A value that is
// not a positive number matches no family.
func (h *Handlers) ListRecords(w http.ResponseWriter, r *http.Request) {
	var familyID uint
	if raw, ok := r.URL.Query()["familyId"]; ok {
		familyID = commonhandler.ParseUint(raw[0])
		if familyID == 0 {
			commonhandler.WriteError(w, http.StatusNotFound, "family_not_found", "family not found")
			return
		}
	}

	list, err := h.Donations.ListRecords(r.Context(), familyID)
	if err != nil {
		h.writeFailure(w, "records.list", err, "family_id", familyID)
		return
	}

	response := make([]recordResponse, 0, len(list))
	for i := range list {
		response = append(response, toRecordResponse(&list[i]))
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{"count": len(response), "donationRecords": response})
}

func (h *Handlers) GetRecord(w http.ResponseWriter, r *http.Request) {
	recordID := commonhandler.ParseID(r, "recordID")

	record, err := h.Donations.GetRecord(r.Context(), recordID)
	if err != nil {
		h.writeFailure(w, "records.get", err, "record_id", recordID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{
		"message":        "Donation record retrieved successfully",
		"donationRecord": toRecordResponse(record),
	})
}

func (h *Handlers) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	recordID := commonhandler.ParseID(r, "recordID")

	if err := h.Donations.DeleteRecord(r.Context(), recordID); err != nil {
		h.writeFailure(w, "records.delete", err, "record_id", recordID)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{"message": "Donation record deleted successfully"})
}
