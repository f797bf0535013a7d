package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// migrations is the startup DDL sequence. Every statement is written to be
// safe to rerun: IF NOT EXISTS guards, CREATE OR REPLACE, and conditional
// ALTERs for columns added after the first deployments.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS "Users" (
		"Id" SERIAL PRIMARY KEY,
		"Username" VARCHAR(50) NOT NULL UNIQUE,
		"Email" VARCHAR(100) NOT NULL UNIQUE,
		"Password" VARCHAR(255) NOT NULL,
		"FullName" VARCHAR(100),
		"CreatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		"LastLogin" TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS "IX_Users_Username" ON "Users"("Username")`,
	`CREATE INDEX IF NOT EXISTS "IX_Users_Email" ON "Users"("Email")`,

	`CREATE TABLE IF NOT EXISTS "Tasks" (
		"Id" SERIAL PRIMARY KEY,
		"UserId" INTEGER NOT NULL,
		"TaskId" VARCHAR(50),
		"Type" VARCHAR(20) DEFAULT 'task',
		"Title" VARCHAR(200) NOT NULL,
		"Description" TEXT,
		"Assignee" VARCHAR(100),
		"Priority" VARCHAR(20) DEFAULT 'medium',
		"Status" VARCHAR(20) DEFAULT 'todo',
		"CreatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		"UpdatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY ("UserId") REFERENCES "Users"("Id") ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS "IX_Tasks_UserId" ON "Tasks"("UserId")`,
	`CREATE INDEX IF NOT EXISTS "IX_Tasks_Status" ON "Tasks"("Status")`,

	`CREATE OR REPLACE FUNCTION update_updated_at_column()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW."UpdatedAt" = CURRENT_TIMESTAMP;
		RETURN NEW;
	END;
	$$ language 'plpgsql'`,

	`DROP TRIGGER IF EXISTS update_tasks_updated_at ON "Tasks"`,

	`CREATE TRIGGER update_tasks_updated_at
		BEFORE UPDATE ON "Tasks"
		FOR EACH ROW
		EXECUTE FUNCTION update_updated_at_column()`,

	// Tables created before these columns existed get them here.
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns
					  WHERE table_name='Tasks' AND column_name='Type') THEN
			ALTER TABLE "Tasks" ADD COLUMN "Type" VARCHAR(20) DEFAULT 'task';
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns
					  WHERE table_name='Tasks' AND column_name='TaskId') THEN
			ALTER TABLE "Tasks" ADD COLUMN "TaskId" VARCHAR(50);
		END IF;
	END $$`,
}

// Migrate runs the schema sequence inside one transaction. On failure the
// transaction is rolled back and the error returned; the caller decides
// whether to continue degraded (startup does, and logs a warning).
func Migrate(ctx context.Context, db *sqlx.DB, log *zap.SugaredLogger) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range migrations {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			log.Warnw("schema migration statement failed", "error", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("database tables created/verified")
	return nil
}
