package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDonor(t *testing.T, srv *testServer, email string) int {
	t.Helper()
	rec, body := srv.do(t, http.MethodPost, "/api/donor", map[string]any{
		"firstName":         "Sam",
		"lastName":          "Giver",
		"email":             email,
		"nationalNumber":    "0012345",
		"bankAccountNumber": "000111",
		"dateOfBirth":       "1980-05-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return id(t, object(t, body, "donor"))
}

func TestDonorLifecycle(t *testing.T) {
	srv := newTestServer(t, pinger{})
	donorID := createDonor(t, srv, "sam@example.org")
	path := fmt.Sprintf("/api/donor/%d", donorID)

	rec, body := srv.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	donor := object(t, body, "donor")
	assert.Equal(t, "0012345", donor["nationalNumber"])
	assert.Equal(t, "1980-05-01", donor["dateOfBirth"])
	assert.Equal(t, "one_time", donor["donorCategory"])

	rec, body = srv.do(t, http.MethodPost, "/api/donor", map[string]any{
		"firstName": "Other", "lastName": "Giver", "email": "SAM@example.org",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "duplicate_email", body["code"])

	rec, body = srv.do(t, http.MethodPut, path, map[string]any{"donorCategory": "committed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "committed", object(t, body, "donor")["donorCategory"])

	rec, _ = srv.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = srv.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "donor_not_found", body["code"])
}

func TestDonationsAndRecords(t *testing.T) {
	srv := newTestServer(t, pinger{})
	donorID := createDonor(t, srv, "sam@example.org")
	familyID, _ := seedMember(t, srv)

	rec, body := srv.do(t, http.MethodPost, "/api/donation", map[string]any{
		"donorId":      donorID,
		"donationDate": "2026-03-01",
		"donationTook": map[string]any{
			"isMoney":   true,
			"money":     map[string]any{"source": "cash", "amount": 100},
			"isClothes": true,
			"clothes":   map[string]any{"name": "jacket", "amount": 4},
		},
		"properties": "winter drive",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	donationID := id(t, object(t, body, "donation"))

	record := func(amount float64) map[string]any {
		return map[string]any{
			"donationId":   donationID,
			"familyId":     familyID,
			"donationDate": "2026-03-02",
			"donationGiven": map[string]any{
				"isMoney": true,
				"money":   map[string]any{"source": "cash", "amount": amount},
			},
		}
	}

	rec, body = srv.do(t, http.MethodPost, "/api/donation-record", record(60))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	recordID := id(t, object(t, body, "donationRecord"))

	rec, body = srv.do(t, http.MethodPost, "/api/donation-record", record(50))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "exceeds_donation", body["code"])

	rec, body = srv.do(t, http.MethodGet, fmt.Sprintf("/api/donation/%d/remaining", donationID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	remaining := object(t, body, "remaining")
	assert.Equal(t, float64(40), object(t, remaining, "money")["amount"])
	assert.Equal(t, float64(4), object(t, remaining, "clothes")["amount"])

	rec, body = srv.do(t, http.MethodGet, fmt.Sprintf("/api/donation-record?familyId=%d", familyID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])

	rec, body = srv.do(t, http.MethodGet, "/api/donation-record?familyId=abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "family_not_found", body["code"])

	rec, body = srv.do(t, http.MethodGet, fmt.Sprintf("/api/donor/%d/donations", donorID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])

	rec, body = srv.do(t, http.MethodDelete, fmt.Sprintf("/api/donor/%d", donorID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "donor_has_donations", body["code"])

	rec, _ = srv.do(t, http.MethodDelete, fmt.Sprintf("/api/donation-record/%d", recordID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = srv.do(t, http.MethodDelete, fmt.Sprintf("/api/donation/%d", donationID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = srv.do(t, http.MethodDelete, fmt.Sprintf("/api/donor/%d", donorID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateDonationForUnknownDonor(t *testing.T) {
	srv := newTestServer(t, pinger{})

	rec, body := srv.do(t, http.MethodPost, "/api/donation", map[string]any{
		"donorId":      77,
		"donationDate": "2026-03-01",
		"donationTook": map[string]any{"isFurniture": true, "furniture": map[string]any{"name": "bed", "amount": 1}},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "donor_not_found", body["code"])
}
