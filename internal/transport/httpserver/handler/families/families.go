package families

import (
	"net/http"

	"charity-app-go/internal/domain/common"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
)

func (h *Handlers) CreateFamily(w http.ResponseWriter, r *http.Request) {
	var req createFamilyRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.writeFailure(w, "families.create", err)
		return
	}

	family, err := h.Families.CreateFamily(r.Context(), input)
	if err != nil {
		if h.writeKnownError(w, "families.create", err, "members", len(input.Members)) {
			return
		}
		message := "failed to add family"
		if len(input.Members) > 0 {
			message = "failed to add family with members"
		}
		commonhandler.WriteInternalError(w, h.log, "families.create", message, err, "members", len(input.Members))
		return
	}

	message := "Family added successfully"
	if len(family.Members) > 0 {
		message = "Family and Family Members added successfully"
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": message,
		"family":  toFamilyWithMembersResponse(family),
	})
}

func (h *Handlers) ListFamilies(w http.ResponseWriter, r *http.Request) {
	families, err := h.Families.ListFamilies(r.Context())
	if err != nil {
		h.writeFailure(w, "families.list", err)
		return
	}

	response := make([]familyResponse, 0, len(families))
	for i := range families {
		response = append(response, toFamilyResponse(&families[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(response),
		"families": response,
	})
}

func (h *Handlers) GetFamily(w http.ResponseWriter, r *http.Request) {
	familyID := parseID(r, "familyID")

	family, err := h.Families.GetFamily(r.Context(), familyID)
	if err != nil {
		h.writeFailure(w, "families.get", err, "family_id", familyID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Family retrieved successfully",
		"family":  toFamilyWithMembersResponse(family),
	})
}

func (h *Handlers) UpdateFamily(w http.ResponseWriter, r *http.Request) {
	familyID := parseID(r, "familyID")

	var req updateFamilyRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	family, outcome, err := h.Families.UpdateFamily(r.Context(), familyID, req.toPatch())
	if err != nil {
		h.writeFailure(w, "families.update", err, "family_id", familyID)
		return
	}

	message := "Family updated successfully"
	if outcome == common.OutcomeUnchanged {
		message = "No changes were made to the family"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"family":  toFamilyWithMembersResponse(family),
	})
}

func (h *Handlers) DeleteFamily(w http.ResponseWriter, r *http.Request) {
	familyID := parseID(r, "familyID")

	if err := h.Families.DeleteFamily(r.Context(), familyID); err != nil {
		h.writeFailure(w, "families.delete", err, "family_id", familyID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Family deleted successfully"})
}
