package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/autoops/taskboard/internal/models"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const taskColumns = `"Id", "UserId", "TaskId", "Type", "Title", "Description", "Assignee", "Priority", "Status", "CreatedAt", "UpdatedAt"`

// TaskAttrs are the mutable task fields as supplied by the client.
type TaskAttrs struct {
	Type        string
	Title       string
	Description string
	Assignee    string
	Priority    string
	Status      string
}

// TaskReadRepository serves lookups over the "Tasks" table.
type TaskReadRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewTaskReadRepository(db *sqlx.DB, log *zap.SugaredLogger) *TaskReadRepository {
	return &TaskReadRepository{db: db, log: log}
}

// ListByUser returns the user's tasks, newest-created first.
func (r *TaskReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.TaskDB, error) {
	const query = `
		SELECT ` + taskColumns + `
		FROM "Tasks"
		WHERE "UserId" = $1
		ORDER BY "CreatedAt" DESC
	`

	var tasks []models.TaskDB
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		r.log.Errorw("task list failed", "user_id", userID, "error", err)
		return nil, err
	}

	return tasks, nil
}

// TaskWriteRepository serves mutations of the "Tasks" table. Ownership is
// enforced inside each statement: the id and owner predicates are always
// combined, never checked in a separate round trip.
type TaskWriteRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewTaskWriteRepository(db *sqlx.DB, log *zap.SugaredLogger) *TaskWriteRepository {
	return &TaskWriteRepository{db: db, log: log}
}

// Save inserts a new task for the user and returns the persisted row.
func (r *TaskWriteRepository) Save(ctx context.Context, userID int64, taskID string, attrs TaskAttrs) (*models.TaskDB, error) {
	const query = `
		INSERT INTO "Tasks" ("UserId", "TaskId", "Type", "Title", "Description", "Assignee", "Priority", "Status")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + taskColumns + `
	`

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query,
		userID, taskID, attrs.Type, attrs.Title, attrs.Description,
		attrs.Assignee, attrs.Priority, attrs.Status)
	if err != nil {
		r.log.Errorw("task insert failed", "user_id", userID, "error", err)
		return nil, err
	}

	return &task, nil
}

// Update replaces the mutable fields of the task identified by id and
// owner. Returns nil when no such row exists, which covers both a wrong
// id and a task owned by someone else.
func (r *TaskWriteRepository) Update(ctx context.Context, id, userID int64, attrs TaskAttrs) (*models.TaskDB, error) {
	const query = `
		UPDATE "Tasks"
		SET "Type" = $1, "Title" = $2, "Description" = $3, "Assignee" = $4,
			"Priority" = $5, "Status" = $6
		WHERE "Id" = $7 AND "UserId" = $8
		RETURNING ` + taskColumns + `
	`

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query,
		attrs.Type, attrs.Title, attrs.Description, attrs.Assignee,
		attrs.Priority, attrs.Status, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Errorw("task update failed", "id", id, "user_id", userID, "error", err)
		return nil, err
	}

	return &task, nil
}

// Delete removes the task identified by id and owner. Reports whether a
// row was actually deleted.
func (r *TaskWriteRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	const query = `
		DELETE FROM "Tasks"
		WHERE "Id" = $1 AND "UserId" = $2
	`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		r.log.Errorw("task delete failed", "id", id, "user_id", userID, "error", err)
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
