package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dotask-bot/internal/task"
)

// Inputs that mean "no due date".
var noDueDateInputs = map[string]bool{
	"":        true,
	"-":       true,
	"no":      true,
	"none":    true,
	"skip":    true,
	"no date": true,
}

// ParseDueDate resolves user input in the configured timezone and returns it in UTC.
func (uc *implUseCase) ParseDueDate(ctx context.Context, input string) (*time.Time, error) {
	s := strings.Join(strings.Fields(strings.ToLower(input)), " ")
	if noDueDateInputs[s] {
		return nil, nil
	}

	due, err := uc.dateMath.ParseDue(s, uc.now())
	if err != nil {
		uc.l.Debugf(ctx, "uc.ParseDueDate %q: %v", input, err)
		return nil, fmt.Errorf("%w: %w", task.ErrInvalidDueDate, err)
	}

	due = due.UTC()
	return &due, nil
}
