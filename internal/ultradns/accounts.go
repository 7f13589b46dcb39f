package ultradns

import (
	"context"
	"net/http"
)

// Account is one account visible to the current user.
type Account struct {
	Name   string `json:"accountName"`
	Type   string `json:"accountType"`
	Owner  string `json:"ownerUserName"`
	Users  int    `json:"numberOfUsers"`
	Groups int    `json:"numberOfGroups"`
}

// ListAccounts fetches the accounts of the current user.
func (s *Session) ListAccounts(ctx context.Context) ([]Account, error) {
	var resp struct {
		Accounts []Account `json:"accounts"`
	}
	if err := s.do(ctx, http.MethodGet, "/v1/accounts", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}
