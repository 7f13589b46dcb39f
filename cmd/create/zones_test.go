package create

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dario.lol/udns/internal/config"
	"dario.lol/udns/internal/ultradns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, handler http.Handler) *ultradns.Session {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	session, err := ultradns.NewSession(context.Background(), config.Credentials{Token: "test-token"}, ultradns.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return session
}

func TestCreateZonesIssuesOneCallPerName(t *testing.T) {
	var names []string
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Properties struct {
				Name        string `json:"name"`
				AccountName string `json:"accountName"`
			} `json:"properties"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		names = append(names, body.Properties.Name)
		assert.Equal(t, "acme", body.Properties.AccountName)
		w.WriteHeader(http.StatusCreated)
	}))

	spec := ultradns.ZoneSpec{Type: ultradns.ZoneTypePrimary, AccountName: "acme"}
	failed := createZones(session, spec, []string{"a.com.", "b.com."})
	assert.Equal(t, 0, failed)
	assert.Equal(t, []string{"a.com.", "b.com."}, names)
}

func TestCreateZonesContinuesPastFailures(t *testing.T) {
	calls := 0
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `[{"errorCode":1802,"errorMessage":"Zone already exists."}]`)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))

	spec := ultradns.ZoneSpec{Type: ultradns.ZoneTypePrimary, AccountName: "acme"}
	failed := createZones(session, spec, []string{"a.com.", "b.com."})
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, calls)
}
