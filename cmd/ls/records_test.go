package ls

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectRecordsStripsTypeCodes(t *testing.T) {
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/zones/a.com./rrsets", r.URL.Path)
		_, _ = io.WriteString(w, `{
			"rrSets": [
				{"ownerName": "www.a.com.", "rrtype": "A (1)", "ttl": 300, "rdata": ["192.0.2.1"]},
				{"ownerName": "a.com.", "rrtype": "SOA (6)", "ttl": 86400, "rdata": ["ns1.a.com. admin.a.com. 1 3600 600 86400 300"]}
			],
			"resultInfo": {"totalCount": 2, "returnedCount": 2, "offset": 0}
		}`)
	}))

	listing, err := collectRecords(session, []string{"a.com."}, "", nil)
	require.NoError(t, err)
	require.Contains(t, listing.Records, "a.com.")
	assert.Equal(t, "A", listing.Records["a.com."]["www.a.com."].Type)
	assert.Equal(t, "SOA", listing.Records["a.com."]["a.com."].Type)
	assert.Empty(t, listing.Skipped)
}

func TestCollectRecordsSkipsUnusableZoneAndContinues(t *testing.T) {
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v2/zones/bad.com./rrsets" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `[{"errorCode":1801,"errorMessage":"Zone does not exist in the system."}]`)
			return
		}
		_, _ = io.WriteString(w, `{
			"rrSets": [{"ownerName": "www.good.com.", "rrtype": "A (1)", "ttl": 60, "rdata": ["192.0.2.9"]}],
			"resultInfo": {"totalCount": 1, "returnedCount": 1, "offset": 0}
		}`)
	}))

	listing, err := collectRecords(session, []string{"bad.com.", "good.com."}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"bad.com."}, listing.Skipped)
	require.Contains(t, listing.Records, "good.com.")
	assert.NotContains(t, listing.Records, "bad.com.")
}

func TestCollectRecordsAbortsOnAuthError(t *testing.T) {
	calls := 0
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `[{"errorCode":60004,"errorMessage":"invalid token"}]`)
	}))

	_, err := collectRecords(session, []string{"a.com.", "b.com."}, "", nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestCollectRecordsPagesByOffset(t *testing.T) {
	offsets := []string{}
	session := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("offset")
		offsets = append(offsets, offset)
		if offset == "0" {
			_, _ = io.WriteString(w, `{
				"rrSets": [{"ownerName": "one.a.com.", "rrtype": "A (1)", "ttl": 60, "rdata": ["192.0.2.1"]}],
				"resultInfo": {"totalCount": 2, "returnedCount": 1, "offset": 0}
			}`)
			return
		}
		_, _ = io.WriteString(w, `{
			"rrSets": [{"ownerName": "two.a.com.", "rrtype": "A (1)", "ttl": 60, "rdata": ["192.0.2.2"]}],
			"resultInfo": {"totalCount": 2, "returnedCount": 1, "offset": 1}
		}`)
	}))

	listing, err := collectRecords(session, []string{"a.com."}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, offsets)
	assert.Len(t, listing.Records["a.com."], 2)
}
