package care

import (
	"net/http"
	"time"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/needs"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
)

type memberNeedRequest struct {
	NeedName       *string `json:"needName"`
	MemberPriority *int    `json:"memberPriority"`
}

type memberNeedResponse struct {
	ID             uint      `json:"id"`
	FamilyID       uint      `json:"familyId"`
	FamilyMemberID uint      `json:"familyMemberId"`
	NeedName       string    `json:"needName"`
	MemberPriority int       `json:"memberPriority"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toMemberNeedResponse(need *needs.MemberNeed) memberNeedResponse {
	return memberNeedResponse{
		ID:             need.ID,
		FamilyID:       need.FamilyID,
		FamilyMemberID: need.FamilyMemberID,
		NeedName:       need.NeedName,
		MemberPriority: int(need.MemberPriority),
		CreatedAt:      need.CreatedAt,
		UpdatedAt:      need.UpdatedAt,
	}
}

func toMemberNeedList(list []needs.MemberNeed) map[string]any {
	response := make([]memberNeedResponse, 0, len(list))
	for i := range list {
		response = append(response, toMemberNeedResponse(&list[i]))
	}
	return map[string]any{"count": len(response), "memberNeeds": response}
}

func (h *Handlers) CreateMemberNeed(w http.ResponseWriter, r *http.Request) {
	path := readPath(r, "")

	var req memberNeedRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	need, err := h.Needs.Create(r.Context(), path.familyID, path.memberID, needs.Fields{
		NeedName:       valueOf(req.NeedName),
		MemberPriority: req.MemberPriority,
	})
	if err != nil {
		h.writeFailure(w, "needs.create", err, path.kv()...)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":    "Member need added successfully",
		"memberNeed": toMemberNeedResponse(need),
	})
}

func (h *Handlers) ListFamilyNeeds(w http.ResponseWriter, r *http.Request) {
	familyID := commonhandler.ParseID(r, "familyID")

	list, err := h.Needs.ListByFamily(r.Context(), familyID)
	if err != nil {
		h.writeFailure(w, "needs.list_family", err, "family_id", familyID)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, toMemberNeedList(list))
}

func (h *Handlers) ListMemberNeeds(w http.ResponseWriter, r *http.Request) {
	path := readPath(r, "")

	list, err := h.Needs.ListByMember(r.Context(), path.familyID, path.memberID)
	if err != nil {
		h.writeFailure(w, "needs.list_member", err, path.kv()...)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, toMemberNeedList(list))
}

func (h *Handlers) GetMemberNeed(w http.ResponseWriter, r *http.Request) {
	path := readPath(r, "memberNeedID")

	need, err := h.Needs.Get(r.Context(), needKey(path))
	if err != nil {
		h.writeFailure(w, "needs.get", err, path.kv()...)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{
		"message":    "Member need retrieved successfully",
		"memberNeed": toMemberNeedResponse(need),
	})
}

func (h *Handlers) UpdateMemberNeed(w http.ResponseWriter, r *http.Request) {
	path := readPath(r, "memberNeedID")

	var req memberNeedRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	need, outcome, err := h.Needs.Update(r.Context(), needKey(path), needs.Patch{
		NeedName:       req.NeedName,
		MemberPriority: req.MemberPriority,
	})
	if err != nil {
		h.writeFailure(w, "needs.update", err, path.kv()...)
		return
	}

	message := "Member need updated successfully"
	if outcome == common.OutcomeUnchanged {
		message = "No changes were made to the member need"
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{
		"message":    message,
		"memberNeed": toMemberNeedResponse(need),
	})
}

func (h *Handlers) DeleteMemberNeed(w http.ResponseWriter, r *http.Request) {
	path := readPath(r, "memberNeedID")

	if err := h.Needs.Delete(r.Context(), needKey(path)); err != nil {
		h.writeFailure(w, "needs.delete", err, path.kv()...)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{"message": "Member need deleted successfully"})
}

func needKey(p memberPath) needs.Key {
	return needs.Key{FamilyID: p.familyID, FamilyMemberID: p.memberID, ID: p.recordID}
}
