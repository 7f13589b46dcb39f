package ultradns

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	ZoneTypeAlias     = "ALIAS"
	ZoneTypePrimary   = "PRIMARY"
	ZoneTypeSecondary = "SECONDARY"

	ZoneStatusActive    = "ACTIVE"
	ZoneStatusSuspended = "SUSPENDED"
)

// Zone mirrors the properties object of a zone listing entry.
type Zone struct {
	Name         string `json:"name"`
	AccountName  string `json:"accountName"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Owner        string `json:"owner"`
	RecordCount  int    `json:"resourceRecordCount"`
	DNSSECStatus string `json:"dnssecStatus"`
	LastModified string `json:"lastModifiedDateTime"`
}

// ZoneQuery narrows a zone listing. Name matches as a substring.
type ZoneQuery struct {
	Name   string
	Type   string
	Status string
}

func (q ZoneQuery) encode() string {
	var terms []string
	if q.Name != "" {
		terms = append(terms, "name:"+q.Name)
	}
	if q.Type != "" {
		terms = append(terms, "zone_type:"+q.Type)
	}
	if q.Status != "" {
		terms = append(terms, "zone_status:"+q.Status)
	}
	return strings.Join(terms, " ")
}

// ZonePage is one cursor page of zones, keyed by zone name.
type ZonePage struct {
	Zones map[string]Zone
	Next  string
}

// ListZones fetches one page of zones. An empty cursor starts from the
// beginning; the returned Next cursor is empty on the last page.
func (s *Session) ListZones(ctx context.Context, q ZoneQuery, cursor string) (*ZonePage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(defaultPageLimit))
	if qs := q.encode(); qs != "" {
		query.Set("q", qs)
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	var resp struct {
		Zones []struct {
			Properties Zone `json:"properties"`
		} `json:"zones"`
		CursorInfo struct {
			Next string `json:"next"`
		} `json:"cursorInfo"`
	}
	if err := s.do(ctx, http.MethodGet, "/v3/zones", query, nil, &resp); err != nil {
		return nil, err
	}

	page := &ZonePage{
		Zones: make(map[string]Zone, len(resp.Zones)),
		Next:  resp.CursorInfo.Next,
	}
	for _, entry := range resp.Zones {
		page.Zones[entry.Properties.Name] = entry.Properties
	}
	return page, nil
}

// ZoneSpec describes a zone to create. Transfer seeds a new primary zone
// from the zone on PrimaryNS; SECONDARY zones always name their primary.
type ZoneSpec struct {
	Name        string
	AccountName string
	Type        string
	Transfer    bool
	PrimaryNS   string
	TSIGKey     string
	TSIGSecret  string
}

type nameServerInfo struct {
	IP           string `json:"ip"`
	TSIGKey      string `json:"tsigKey,omitempty"`
	TSIGKeyValue string `json:"tsigKeyValue,omitempty"`
}

// CreateZone creates an empty primary, a primary seeded by transfer, or a
// secondary zone.
func (s *Session) CreateZone(ctx context.Context, spec ZoneSpec) error {
	body := map[string]any{
		"properties": map[string]any{
			"name":        spec.Name,
			"accountName": spec.AccountName,
			"type":        spec.Type,
		},
	}
	ns := nameServerInfo{IP: spec.PrimaryNS, TSIGKey: spec.TSIGKey, TSIGKeyValue: spec.TSIGSecret}
	switch {
	case spec.Type == ZoneTypeSecondary:
		body["secondaryCreateInfo"] = map[string]any{
			"primaryNameServers": map[string]any{
				"nameServerIpList": map[string]any{
					"nameServerIp1": ns,
				},
			},
		}
	case spec.Transfer:
		body["primaryCreateInfo"] = map[string]any{
			"createType": "TRANSFER",
			"nameServer": ns,
		}
	default:
		body["primaryCreateInfo"] = map[string]any{
			"createType": "NEW",
		}
	}
	return s.do(ctx, http.MethodPost, "/v1/zones", nil, body, nil)
}

// DeleteZone deletes a zone by name.
func (s *Session) DeleteZone(ctx context.Context, name string) error {
	return s.do(ctx, http.MethodDelete, "/v1/zones/"+url.PathEscape(name), nil, nil, nil)
}
