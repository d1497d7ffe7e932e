package donors

import (
	"net/http"
	"time"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/donor"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
)

type createDonorRequest struct {
	IDCopy            string  `json:"idCopy"`
	NationalNumber    string  `json:"nationalNumber"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Gender            string  `json:"gender"`
	Email             string  `json:"email"`
	BankAccountNumber string  `json:"bankAccountNumber"`
	Address           string  `json:"address"`
	PhoneNumber       string  `json:"phoneNumber"`
	DateOfBirth       *string `json:"dateOfBirth"`
	DonorCategory     string  `json:"donorCategory"`
}

type updateDonorRequest struct {
	IDCopy            *string `json:"idCopy"`
	NationalNumber    *string `json:"nationalNumber"`
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	Gender            *string `json:"gender"`
	Email             *string `json:"email"`
	BankAccountNumber *string `json:"bankAccountNumber"`
	Address           *string `json:"address"`
	PhoneNumber       *string `json:"phoneNumber"`
	DateOfBirth       *string `json:"dateOfBirth"`
	DonorCategory     *string `json:"donorCategory"`
}

type donorResponse struct {
	ID                uint      `json:"id"`
	IDCopy            string    `json:"idCopy"`
	NationalNumber    string    `json:"nationalNumber"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Gender            string    `json:"gender"`
	Email             string    `json:"email"`
	BankAccountNumber string    `json:"bankAccountNumber"`
	Address           string    `json:"address"`
	PhoneNumber       string    `json:"phoneNumber"`
	DateOfBirth       *string   `json:"dateOfBirth"`
	DonorCategory     string    `json:"donorCategory"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func toDonorResponse(d *donor.Donor) donorResponse {
	return donorResponse{
		ID:                d.ID,
		IDCopy:            d.IDCopy,
		NationalNumber:    d.NationalNumber,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Gender:            string(d.Gender),
		Email:             d.Email,
		BankAccountNumber: d.BankAccountNumber,
		Address:           d.Address,
		PhoneNumber:       d.PhoneNumber,
		DateOfBirth:       commonhandler.FormatDate(d.DateOfBirth),
		DonorCategory:     string(d.DonorCategory),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (h *Handlers) CreateDonor(w http.ResponseWriter, r *http.Request) {
	var req createDonorRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}
	dateOfBirth, err := commonhandler.ParseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		h.writeFailure(w, "donors.create", err)
		return
	}

	created, err := h.Donors.Create(r.Context(), donor.Fields{
		IDCopy:            req.IDCopy,
		NationalNumber:    req.NationalNumber,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Gender:            req.Gender,
		Email:             req.Email,
		BankAccountNumber: req.BankAccountNumber,
		Address:           req.Address,
		PhoneNumber:       req.PhoneNumber,
		DateOfBirth:       dateOfBirth,
		DonorCategory:     req.DonorCategory,
	})
	if err != nil {
		h.writeFailure(w, "donors.create", err)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Donor added successfully",
		"donor":   toDonorResponse(created),
	})
}

func (h *Handlers) ListDonors(w http.ResponseWriter, r *http.Request) {
	list, err := h.Donors.List(r.Context())
	if err != nil {
		h.writeFailure(w, "donors.list", err)
		return
	}

	response := make([]donorResponse, 0, len(list))
	for i := range list {
		response = append(response, toDonorResponse(&list[i]))
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{"count": len(response), "donors": response})
}

func (h *Handlers) GetDonor(w http.ResponseWriter, r *http.Request) {
	donorID := commonhandler.ParseID(r, "donorID")

	found, err := h.Donors.Get(r.Context(), donorID)
	if err != nil {
		h.writeFailure(w, "donors.get", err, "donor_id", donorID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Donor retrieved successfully",
		"donor":   toDonorResponse(found),
	})
}

func (h *Handlers) UpdateDonor(w http.ResponseWriter, r *http.Request) {
	donorID := commonhandler.ParseID(r, "donorID")

	var req updateDonorRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}
	dateOfBirth, err := commonhandler.ParseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		h.writeFailure(w, "donors.update", err, "donor_id", donorID)
		return
	}

	updated, outcome, err := h.Donors.Update(r.Context(), donorID, donor.Patch{
		IDCopy:            req.IDCopy,
		NationalNumber:    req.NationalNumber,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Gender:            req.Gender,
		Email:             req.Email,
		BankAccountNumber: req.BankAccountNumber,
		Address:           req.Address,
		PhoneNumber:       req.PhoneNumber,
		DateOfBirth:       dateOfBirth,
		DonorCategory:     req.DonorCategory,
	})
	if err != nil {
		h.writeFailure(w, "donors.update", err, "donor_id", donorID)
		return
	}

	message := "Donor updated successfully"
	if outcome == common.OutcomeUnchanged {
		message = "No changes were made to the donor"
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"donor":   toDonorResponse(updated),
	})
}

func (h *Handlers) DeleteDonor(w http.ResponseWriter, r *http.Request) {
	donorID := commonhandler.ParseID(r, "donorID")

	if err := h.Donors.Delete(r.Context(), donorID); err != nil {
		h.writeFailure(w, "donors.delete", err, "donor_id", donorID)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{"message": "Donor deleted successfully"})
}

func (h *Handlers) ListDonorDonations(w http.ResponseWriter, r *http.Request) {
	donorID := commonhandler.ParseID(r, "donorID")

	list, err := h.Donations.ListByDonor(r.Context(), donorID)
	if err != nil {
		h.writeFailure(w, "donors.donations", err, "donor_id", donorID)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, toDonationList(list))
}
