package task

import (
	"time"

	"dotask-bot/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Content  string
	DueDate  *time.Time
	Priority model.Priority
}

type ListInput struct {
	Status   model.Status
	Page     int
	Priority model.PriorityFilter
	Date     model.DateFilter
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks      []model.Task
	Total      int
	Page       int
	TotalPages int
	PageSize   int
}

type StatsOutput struct {
	User model.User
	Open int
	Done int
}
