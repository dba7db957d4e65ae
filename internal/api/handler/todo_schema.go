package handler

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/taskhive/todo-api/internal/core/domain"
)

type createTodoRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// updateAllowedKeys are the only fields a partial update may carry; the
// owner, id, and timestamps are immutable through this endpoint.
var updateAllowedKeys = map[string]bool{
	"title":       true,
	"description": true,
	"category":    true,
	"completed":   true,
}

// extraFieldsError reports unknown keys in an update body. Rendered as
// {"error": "Extra fields to update todo: <keys>"} with status 400.
type extraFieldsError struct {
	Keys []string
}

func (e *extraFieldsError) Error() string {
	return "Extra fields to update todo: " + strings.Join(e.Keys, ", ")
}

// parseTodoUpdate decodes a partial update body. Unknown keys are
// rejected outright; known keys with a wrong JSON type are collected into
// a per-field error map. An empty body yields an empty change set, which
// the store treats as a no-op.
func parseTodoUpdate(body []byte) (domain.TodoUpdate, error) {
	var update domain.TodoUpdate

	raw := map[string]json.RawMessage{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			return update, fmt.Errorf("invalid payload")
		}
	}

	var extra []string
	for key := range raw {
		if !updateAllowedKeys[key] {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return update, &extraFieldsError{Keys: extra}
	}

	fields := map[string]string{}

	assignString := func(key string, dst **string) {
		value, ok := raw[key]
		if !ok {
			return
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			fields[key] = "Invalid value for field " + key
			return
		}
		*dst = &s
	}

	assignString("title", &update.Title)
	assignString("description", &update.Description)
	assignString("category", &update.Category)

	if value, ok := raw["completed"]; ok {
		var b bool
		if err := json.Unmarshal(value, &b); err != nil {
			fields["completed"] = "Invalid value for field completed"
		} else {
			update.Completed = &b
		}
	}

	if len(fields) > 0 {
		return domain.TodoUpdate{}, &FieldErrors{Fields: fields}
	}
	return update, nil
}

// todoFilterFromQuery builds the filter from optional query parameters.
// A completed value other than "true" or "false" is ignored rather than
// rejected.
func todoFilterFromQuery(get func(string) string) domain.TodoFilter {
	filter := domain.TodoFilter{
		Title:       get("title"),
		Description: get("description"),
		Category:    get("category"),
		OwnerID:     get("ownerId"),
	}
	switch get("completed") {
	case "true":
		v := true
		filter.Completed = &v
	case "false":
		v := false
		filter.Completed = &v
	}
	return filter
}
