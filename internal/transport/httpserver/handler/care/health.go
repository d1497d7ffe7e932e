package care

import (
	"net/http"
	"time"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/health"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
)

type diseaseBody struct {
	DiseaseName  *string `json:"diseaseName"`
	MedicineName *string `json:"medicineName"`
}

type healthHistoryRequest struct {
	Disease diseaseBody `json:"disease"`
}

type healthHistoryResponse struct {
	ID             uint           `json:"id"`
	FamilyID       uint           `json:"familyId"`
	FamilyMemberID uint           `json:"familyMemberId"`
	Disease        health.Disease `json:"disease"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func toHealthHistoryResponse(record *health.HealthHistory) healthHistoryResponse {
	return healthHistoryResponse{
		ID:             record.ID,
		FamilyID:       record.FamilyID,
		FamilyMemberID: record.FamilyMemberID,
		Disease:        record.Disease.Data(),
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

func toHealthHistoryList(records []health.HealthHistory) map[string]any {
	response := make([]healthHistoryResponse, 0, len(records))
	for i := range records {
		response = append(response, toHealthHistoryResponse(&records[i]))
	}
	return map[string]any{"count": len(response), "healthHistories": response}
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *Handlers) CreateHealthHistory(w http.ResponseWriter, r *http.Request) {
	path := readPath(r, "")

	var req healthHistoryRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	record, err := h.Health.Create(r.Context(), path.familyID, path.memberID, health.Fields{
		DiseaseName:  valueOf(req.Disease.DiseaseName),
		MedicineName: valueOf(req.Disease.MedicineName),
	})
	if err != nil {
		h.writeFailure(w, "health.create", err, path.kv()...)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":       "Health history added successfully",
		"healthHistory": toHealthHistoryResponse(record),
	})
}

func (h *Handlers) ListFamilyHealthHistory(w http.ResponseWriter, r *http.Request) {
	familyID := commonhandler.ParseID(r, "familyID")

	records, err := h.Health.ListByFamily(r.Context(), familyID)
	if err != nil {
		h.writeFailure(w, "health.list_family", err, "family_id", familyID)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, toHealthHistoryList(records))
}

func (h *Handlers) ListMemberHealthHistory(w http.ResponseWriter, r *http.Request) {
	path := readPath(r, "")

	records, err := h.Health.ListByMember(r.Context(), path.familyID, path.memberID)
	if err != nil {
		h.writeFailure(w, "health.list_member", err, path.kv()...)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, toHealthHistoryList(records))
}

func (h *Handlers) GetHealthHistory(w http.ResponseWriter, r *http.Request) {
	path := readPath(r, "healthHistoryID")

	record, err := h.Health.Get(r.Context(), healthKey(path))
	if err != nil {
		h.writeFailure(w, "health.get", err, path.kv()...)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{
		"message":       "Health history retrieved successfully",
		"healthHistory": toHealthHistoryResponse(record),
	})
}

func (h *Handlers) UpdateHealthHistory(w http.ResponseWriter, r *http.Request) {
	path := readPath(r, "healthHistoryID")

	var req healthHistoryRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	record, outcome, err := h.Health.Update(r.Context(), healthKey(path), health.Patch{
		DiseaseName:  req.Disease.DiseaseName,
		MedicineName: req.Disease.MedicineName,
	})
	if err != nil {
		h.writeFailure(w, "health.update", err, path.kv()...)
		return
	}

	message := "Health history updated successfully"
	if outcome == common.OutcomeUnchanged {
		message = "No changes were made to the health history"
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{
		"message":       message,
		"healthHistory": toHealthHistoryResponse(record),
	})
}

func (h *Handlers) DeleteHealthHistory(w http.ResponseWriter, r *http.Request) {
	path := readPath(r, "healthHistoryID")

	if err := h.Health.Delete(r.Context(), healthKey(path)); err != nil {
		h.writeFailure(w, "health.delete", err, path.kv()...)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, map[string]any{"message": "Health history deleted successfully"})
}

func healthKey(p memberPath) health.Key {
	return health.Key{FamilyID: p.familyID, FamilyMemberID: p.memberID, ID: p.recordID}
}
