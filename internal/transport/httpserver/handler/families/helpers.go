package families

import (
	"errors"
	"net/http"

	familydomain "charity-app-go/internal/domain/family"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
)

func writeError(w http.ResponseWriter, status int, code, message string) {
	commonhandler.WriteError(w, status, code, message)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	commonhandler.WriteJSON(w, status, payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return commonhandler.DecodeJSON(r, dst)
}

func parseID(r *http.Request, name string) uint {
	return commonhandler.ParseID(r, name)
}

// writeKnownError maps family and member failures and reports whether it
// wrote a response.
func (h *Handlers) writeKnownError(w http.ResponseWriter, op string, err error, kv ...any) bool {
	switch {
	case errors.Is(err, familydomain.ErrFamilyNotFound):
		h.log.BusinessError(op+": family not found", err, kv...)
		writeError(w, http.StatusNotFound, "family_not_found", "family not found")
	case errors.Is(err, familydomain.ErrMemberNotFound):
		h.log.BusinessError(op+": family member not found", err, kv...)
		writeError(w, http.StatusNotFound, "family_member_not_found", "family member not found")
	case errors.Is(err, familydomain.ErrDuplicateEmail):
		h.log.BusinessError(op+": duplicate email", err, kv...)
		writeError(w, http.StatusConflict, "duplicate_email", "email already in use")
	case errors.Is(err, familydomain.ErrMultiplePersonCharge):
		h.log.BusinessError(op+": several persons in charge", err, kv...)
		writeError(w, http.StatusBadRequest, "multiple_person_charge", "only one family member can be the person in charge")
	case errors.Is(err, familydomain.ErrPersonChargeExists):
		h.log.BusinessError(op+": person in charge already set", err, kv...)
		writeError(w, http.StatusConflict, "person_charge_exists", "family already has a person in charge")
	case errors.Is(err, familydomain.ErrPersonChargeProtected):
		h.log.BusinessError(op+": person in charge protected", err, kv...)
		writeError(w, http.StatusForbidden, "person_charge_protected", "the person in charge cannot be deleted")
	default:
		return commonhandler.WriteClientError(w, h.log, op, err, kv...)
	}
	return true
}

func (h *Handlers) writeFailure(w http.ResponseWriter, op string, err error, kv ...any) {
	if h.writeKnownError(w, op, err, kv...) {
		return
	}
	commonhandler.WriteInternalError(w, h.log, op, "internal error", err, kv...)
}
