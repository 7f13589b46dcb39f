package ls

import (
	"context"
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

func TestCollectZonesAcrossThreePages(t *testing.T) {
	pages := map[string]string{
		"": `{"zones":[
				{"properties":{"name":"a.com.","type":"PRIMARY","status":"ACTIVE"}},
				{"properties":{"name":"b.com.","type":"PRIMARY","status":"ACTIVE"}}
			],"cursorInfo":{"next":"c1"}}`,
		"c1": `{"zones":[
				{"properties":{"name":"c.com.","type":"SECONDARY","status":"ACTIVE"}},
				{"properties":{"name":"d.com.","type":"ALIAS","status":"ACTIVE"}}
			],"cursorInfo":{"next":"c2"}}`,
		"c2": `{"zones":[
				{"properties":{"name":"e.com.","type":"PRIMARY","status":"SUSPENDED"}}
			],"cursorInfo":{}}`,
	}
	calls := 0
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		body, ok := pages[r.URL.Query().Get("cursor")]
		require.True(t, ok, "unexpected cursor %q", r.URL.Query().Get("cursor"))
		_, _ = io.WriteString(w, body)
	}))

	zones, err := collectZones(session, ultradns.ZoneQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, zones, 5)
	assert.Equal(t, "SUSPENDED", zones["e.com."].Status)
}

func TestCollectZonesForwardsFilters(t *testing.T) {
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "name:corp zone_type:PRIMARY zone_status:ACTIVE", r.URL.Query().Get("q"))
		_, _ = io.WriteString(w, `{"zones":[],"cursorInfo":{}}`)
	}))

	zones, err := collectZones(session, ultradns.ZoneQuery{Name: "corp", Type: "PRIMARY", Status: "ACTIVE"})
	require.NoError(t, err)
	assert.Empty(t, zones)
}

func TestCollectZonesStopsOnMalformedPage(t *testing.T) {
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `[{"errorCode":9999,"errorMessage":"listing failed"}]`)
	}))

	_, err := collectZones(session, ultradns.ZoneQuery{})
	require.Error(t, err)
	assert.False(t, ultradns.IsAuthError(err))
}
