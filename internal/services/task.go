package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/autoops/taskboard/internal/models"
	"github.com/autoops/taskboard/internal/repositories"
	"go.uber.org/zap"
)

// Error variables
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
)

// TaskReader defines read-only operations for tasks.
type TaskReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.TaskDB, error)
}

// TaskWriter defines ownership-scoped write operations for tasks.
type TaskWriter interface {
	Save(ctx context.Context, userID int64, taskID string, attrs repositories.TaskAttrs) (*models.TaskDB, error)
	Update(ctx context.Context, id, userID int64, attrs repositories.TaskAttrs) (*models.TaskDB, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

// TaskInput carries the client-supplied task fields. Empty optional
// fields receive their documented defaults.
type TaskInput struct {
	TaskID      string
	Type        string
	Title       string
	Description string
	Assignee    string
	Priority    string
	Status      string
}

func (in TaskInput) attrs() repositories.TaskAttrs {
	return repositories.TaskAttrs{
		Type:        defaultString(in.Type, models.DefaultTaskType),
		Title:       in.Title,
		Description: in.Description,
		Assignee:    in.Assignee,
		Priority:    defaultString(in.Priority, models.DefaultPriority),
		Status:      defaultString(in.Status, models.DefaultStatus),
	}
}

// TaskService implements the ownership-scoped task operations.
type TaskService struct {
	reader TaskReader
	writer TaskWriter
	log    *zap.SugaredLogger
}

// NewTaskService creates a new TaskService instance.
func NewTaskService(reader TaskReader, writer TaskWriter, log *zap.SugaredLogger) *TaskService {
	return &TaskService{
		reader: reader,
		writer: writer,
		log:    log,
	}
}

// List returns the caller's tasks, newest-created first, with defaults
// applied to every optional field.
func (svc *TaskService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	rows, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, rows[i].View())
	}

	return tasks, nil
}

// Create persists a new task for the caller. Without a client-supplied
// external id, a 4-digit millisecond-derived AUTO id is generated.
func (svc *TaskService) Create(ctx context.Context, userID int64, in TaskInput) (*models.Task, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	taskID := in.TaskID
	if taskID == "" {
		taskID = fmt.Sprintf("AUTO-%04d", time.Now().UnixMilli()%10000)
	}

	row, err := svc.writer.Save(ctx, userID, taskID, in.attrs())
	if err != nil {
		return nil, err
	}

	task := row.View()
	return &task, nil
}

// Update fully replaces the mutable fields of the caller's task. A wrong
// id and a task owned by someone else are both ErrTaskNotFound.
func (svc *TaskService) Update(ctx context.Context, userID, id int64, in TaskInput) (*models.Task, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	row, err := svc.writer.Update(ctx, id, userID, in.attrs())
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrTaskNotFound
	}

	task := row.View()
	return &task, nil
}

// Delete removes the caller's task.
func (svc *TaskService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
