package usecase

import (
	"time"

	"dotask-bot/internal/task"
	"dotask-bot/internal/task/repository"
	"dotask-bot/pkg/datemath"
	pkgLog "dotask-bot/pkg/log"
)

type implUseCase struct {
	l               pkgLog.Logger
	repo            repository.Repository
	dateMath        *datemath.Parser
	pageSize        int
	defaultLanguage string
	now             func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	pageSize int,
	defaultLanguage string,
) *implUseCase {
	if pageSize < 1 {
		pageSize = task.DefaultPageSize
	}
	return &implUseCase{
		l:               l,
		repo:            repo,
		dateMath:        dateMath,
		pageSize:        pageSize,
		defaultLanguage: defaultLanguage,
		now:             time.Now,
	}
}
