package rest

import (
	"encoding/json"
	"fmt"

	"tasksync/internal/service"
)

// record is a task as the store encodes it. encoding/json matches field
// names case-insensitively, so both "id" and "ID" decode.
type record struct {
	ID          recordID `json:"id"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
}

func (r record) task() service.Task {
	return service.Task{
		ID:          string(r.ID),
		Description: r.Description,
		Status:      service.Status(r.Status),
	}
}

type createRequest struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}

type updateRequest struct {
	ID          recordID `json:"id"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
}

// recordID is an opaque task identifier that the store may encode as a
// JSON number or a JSON string. Integer ids are written back as numbers.
type recordID string

func (id *recordID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = recordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid task id: %s", data)
	}
	*id = recordID(n.String())
	return nil
}

func (id recordID) MarshalJSON() ([]byte, error) {
	if isIntegerLiteral(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// isIntegerLiteral reports whether s is a JSON integer: optional minus,
// then digits without a leading zero.
func isIntegerLiteral(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
