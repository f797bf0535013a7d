package services

import (
	"context"

	"github.com/autoops/taskboard/internal/models"
	"go.uber.org/zap"
)

// UserLister lists every account for the team view.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserService serves the team directory.
type UserService struct {
	reader UserLister
	log    *zap.SugaredLogger
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserLister, log *zap.SugaredLogger) *UserService {
	return &UserService{reader: reader, log: log}
}

// Team returns every user, newest-created first, with derived initials.
func (svc *UserService) Team(ctx context.Context) ([]models.TeamMember, error) {
	rows, err := svc.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]models.TeamMember, 0, len(rows))
	for i := range rows {
		members = append(members, rows[i].TeamView())
	}

	return members, nil
}
