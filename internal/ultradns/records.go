package ultradns

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// RecordSet is one owner/type group of resource records within a zone.
// Type carries the provider's raw string, which embeds a numeric code
// (e.g. "A (1)").
type RecordSet struct {
	OwnerName string   `json:"ownerName"`
	Type      string   `json:"rrtype"`
	TTL       int      `json:"ttl"`
	RData     []string `json:"rdata"`
}

// RecordSetPage is one offset page of record sets, keyed by owner name.
// Owner names are not unique across record types; within a page the last
// entry wins.
type RecordSetPage struct {
	Records  map[string]RecordSet
	Returned int
	Total    int
}

// ListRecordSets fetches one offset page of record sets for a zone,
// optionally narrowed by an owner-name substring.
func (s *Session) ListRecordSets(ctx context.Context, zone, owner string, offset int) (*RecordSetPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(defaultPageLimit))
	query.Set("offset", strconv.Itoa(offset))
	if owner != "" {
		query.Set("q", "owner:"+owner)
	}

	var resp struct {
		RRSets     []RecordSet `json:"rrSets"`
		ResultInfo struct {
			TotalCount    int `json:"totalCount"`
			ReturnedCount int `json:"returnedCount"`
			Offset        int `json:"offset"`
		} `json:"resultInfo"`
	}
	path := "/v2/zones/" + url.PathEscape(zone) + "/rrsets"
	if err := s.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return nil, err
	}

	page := &RecordSetPage{
		Records:  make(map[string]RecordSet, len(resp.RRSets)),
		Returned: resp.ResultInfo.ReturnedCount,
		Total:    resp.ResultInfo.TotalCount,
	}
	if page.Returned == 0 {
		page.Returned = len(resp.RRSets)
	}
	for _, rr := range resp.RRSets {
		page.Records[rr.OwnerName] = rr
	}
	return page, nil
}
