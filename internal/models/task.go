package models

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// Default values applied to optional task fields.
const (
	DefaultTaskType = "task"
	DefaultPriority = "medium"
	DefaultStatus   = "todo"
)

// TaskDB represents a row of the "Tasks" table. Optional columns are
// nullable; defaults are applied when building the JSON view.
type TaskDB struct {
	ID          int64          `db:"Id"`
	UserID      int64          `db:"UserId"`
	TaskID      sql.NullString `db:"TaskId"`
	Type        sql.NullString `db:"Type"`
	Title       string         `db:"Title"`
	Description sql.NullString `db:"Description"`
	Assignee    sql.NullString `db:"Assignee"`
	Priority    sql.NullString `db:"Priority"`
	Status      sql.NullString `db:"Status"`
	CreatedAt   sql.NullTime   `db:"CreatedAt"`
	UpdatedAt   sql.NullTime   `db:"UpdatedAt"`
}

// Task is the JSON shape served by the task endpoints. The numeric row id
// is serialized as a string, matching the front-end contract.
type Task struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"taskId"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Assignee    string     `json:"assignee"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// View converts a task row to its JSON shape, filling every optional
// field with its documented default. A row without an external task id
// surfaces as AUTO-<zero-padded row id>.
func (t *TaskDB) View() Task {
	return Task{
		ID:          strconv.FormatInt(t.ID, 10),
		TaskID:      orDefault(t.TaskID, fmt.Sprintf("AUTO-%03d", t.ID)),
		Type:        orDefault(t.Type, DefaultTaskType),
		Title:       t.Title,
		Description: orDefault(t.Description, ""),
		Assignee:    orDefault(t.Assignee, ""),
		Priority:    orDefault(t.Priority, DefaultPriority),
		Status:      orDefault(t.Status, DefaultStatus),
		CreatedAt:   timePtr(t.CreatedAt),
		UpdatedAt:   timePtr(t.UpdatedAt),
	}
}

func orDefault(s sql.NullString, def string) string {
	if s.Valid && s.String != "" {
		return s.String
	}
	return def
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
