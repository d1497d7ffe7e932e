package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedMember creates a family with one member and returns both ids.
func seedMember(t *testing.T, srv *testServer) (int, int) {
	t.Helper()
	rec, body := srv.do(t, http.MethodPost, "/api/family", map[string]any{
		"familyCategory": "orphans",
		"members":        []map[string]any{{"firstName": "A", "lastName": "B"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := object(t, body, "family")
	memberID := int(created["FamilyMember"].([]any)[0].(map[string]any)["id"].(float64))
	return id(t, created), memberID
}

func TestHealthHistoryLifecycle(t *testing.T) {
	srv := newTestServer(t, pinger{})
	familyID, memberID := seedMember(t, srv)
	base := fmt.Sprintf("/api/health-history/%d/%d", familyID, memberID)

	rec, body := srv.do(t, http.MethodPost, base, map[string]any{
		"disease": map[string]any{"diseaseName": "asthma", "medicineName": "inhaler"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	record := object(t, body, "healthHistory")
	assert.Equal(t, "asthma", object(t, record, "disease")["diseaseName"])
	recordPath := fmt.Sprintf("%s/%d", base, id(t, record))

	rec, body = srv.do(t, http.MethodPut, recordPath, map[string]any{
		"disease": map[string]any{"medicineName": "salbutamol"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	disease := object(t, object(t, body, "healthHistory"), "disease")
	assert.Equal(t, "asthma", disease["diseaseName"])
	assert.Equal(t, "salbutamol", disease["medicineName"])

	rec, body = srv.do(t, http.MethodGet, fmt.Sprintf("/api/health-history/%d", familyID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])

	rec, _ = srv.do(t, http.MethodDelete, recordPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = srv.do(t, http.MethodGet, recordPath, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "health_history_not_found", body["code"])
}

func TestHealthHistoryNamesMissingParent(t *testing.T) {
	srv := newTestServer(t, pinger{})
	familyID, _ := seedMember(t, srv)
	payload := map[string]any{"disease": map[string]any{"diseaseName": "flu"}}

	rec, body := srv.do(t, http.MethodPost, "/api/health-history/404/1", payload)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "family_not_found", body["code"])

	rec, body = srv.do(t, http.MethodPost, fmt.Sprintf("/api/health-history/%d/999", familyID), payload)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "family_member_not_found", body["code"])
}

func TestMemberNeedsLifecycle(t *testing.T) {
	srv := newTestServer(t, pinger{})
	familyID, memberID := seedMember(t, srv)
	base := fmt.Sprintf("/api/member-needs/%d/%d", familyID, memberID)

	rec, body := srv.do(t, http.MethodPost, base, map[string]any{"needName": "glasses", "memberPriority": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", body["code"])

	rec, body = srv.do(t, http.MethodPost, base, map[string]any{"needName": "glasses"})
	require.Equal(t, http.StatusCreated, rec.Code)
	need := object(t, body, "memberNeed")
	assert.Equal(t, float64(5), need["memberPriority"])
	needPath := fmt.Sprintf("%s/%d", base, id(t, need))

	rec, body = srv.do(t, http.MethodPut, needPath, map[string]any{"memberPriority": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Member need updated successfully", body["message"])

	rec, body = srv.do(t, http.MethodPut, needPath, map[string]any{"memberPriority": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No changes were made to the member need", body["message"])

	rec, body = srv.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])

	rec, _ = srv.do(t, http.MethodDelete, needPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = srv.do(t, http.MethodDelete, needPath, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "member_need_not_found", body["code"])
}
