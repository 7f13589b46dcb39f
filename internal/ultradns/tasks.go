package ultradns

import (
	"context"
	"net/http"
)

// Task is one background task tracked by the provider.
type Task struct {
	ID        string `json:"taskId"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	ResultURI string `json:"resultUri"`
}

// ListTasks fetches the pending and recently finished background tasks.
func (s *Session) ListTasks(ctx context.Context) ([]Task, error) {
	var resp struct {
		Tasks []Task `json:"tasks"`
	}
	if err := s.do(ctx, http.MethodGet, "/v1/tasks", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}
