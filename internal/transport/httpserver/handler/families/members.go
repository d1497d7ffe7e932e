package families

import (
	"net/http"

	"charity-app-go/internal/domain/common"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
)

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	familyID := parseID(r, "familyID")

	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}
	fields, err := req.toFields()
	if err != nil {
		h.writeFailure(w, "members.create", err, "family_id", familyID)
		return
	}

	member, err := h.Families.CreateMember(r.Context(), familyID, fields)
	if err != nil {
		h.writeFailure(w, "members.create", err, "family_id", familyID)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      "Family member added successfully",
		"familyMember": toMemberResponse(member),
	})
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	familyID := parseID(r, "familyID")

	members, err := h.Families.ListMembers(r.Context(), familyID)
	if err != nil {
		h.writeFailure(w, "members.list", err, "family_id", familyID)
		return
	}

	response := make([]memberResponse, 0, len(members))
	for i := range members {
		response = append(response, toMemberResponse(&members[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":         len(response),
		"familyMembers": response,
	})
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	familyID := parseID(r, "familyID")
	memberID := parseID(r, "familyMemberID")

	member, err := h.Families.GetMember(r.Context(), familyID, memberID)
	if err != nil {
		h.writeFailure(w, "members.get", err, "family_id", familyID, "member_id", memberID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Family member retrieved successfully",
		"familyMember": toMemberResponse(member),
	})
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	familyID := parseID(r, "familyID")
	memberID := parseID(r, "familyMemberID")

	var req updateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		h.writeFailure(w, "members.update", err, "family_id", familyID, "member_id", memberID)
		return
	}

	member, outcome, err := h.Families.UpdateMember(r.Context(), familyID, memberID, patch)
	if err != nil {
		h.writeFailure(w, "members.update", err, "family_id", familyID, "member_id", memberID)
		return
	}

	message := "Family member updated successfully"
	if outcome == common.OutcomeUnchanged {
		message = "No changes were made to the family member"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      message,
		"familyMember": toMemberResponse(member),
	})
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	familyID := parseID(r, "familyID")
	memberID := parseID(r, "familyMemberID")

	if err := h.Families.DeleteMember(r.Context(), familyID, memberID); err != nil {
		h.writeFailure(w, "members.delete", err, "family_id", familyID, "member_id", memberID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Family member deleted successfully"})
}
