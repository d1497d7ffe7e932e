package care

import (
	"errors"
	"net/http"

	"charity-app-go/internal/domain/health"
	"charity-app-go/internal/domain/needs"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
	"charity-app-go/pkg/logger"
)

// Handlers serves the per-member records: health history and needs.
type Handlers struct {
	Health *health.Service
	Needs  *needs.Service
	log    logger.Logger
}

func New(healthService *health.Service, needsService *needs.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Health: healthService,
		Needs:  needsService,
		log:    log,
	}
}

func (h *Handlers) writeFailure(w http.ResponseWriter, op string, err error, kv ...any) {
	switch {
	case errors.Is(err, health.ErrHealthHistoryNotFound):
		h.log.BusinessError(op+": health history not found", err, kv...)
		commonhandler.WriteError(w, http.StatusNotFound, "health_history_not_found", "health history not found")
	case errors.Is(err, needs.ErrMemberNeedNotFound):
		h.log.BusinessError(op+": member need not found", err, kv...)
		commonhandler.WriteError(w, http.StatusNotFound, "member_need_not_found", "member need not found")
	default:
		commonhandler.WriteSharedError(w, h.log, op, err, kv...)
	}
}

type memberPath struct {
	familyID uint
	memberID uint
	recordID uint
}

func readPath(r *http.Request, record string) memberPath {
	path := memberPath{
		familyID: commonhandler.ParseID(r, "familyID"),
		memberID: commonhandler.ParseID(r, "familyMemberID"),
	}
	if record != "" {
		path.recordID = commonhandler.ParseID(r, record)
	}
	return path
}

func (p memberPath) kv() []any {
	return []any{"family_id", p.familyID, "member_id", p.memberID, "record_id", p.recordID}
}
