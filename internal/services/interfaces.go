package services

import (
	"context"
	"time"

	"todo-list/internal/domain"
)

// Clock returns the current time. Add stamps created_on with it.
type Clock func() time.Time

// TaskService defines the task operations the menu performs.
// Operations taking a task list work on a snapshot from ListAll; only the
// context-taking ones reach the row store.
type TaskService interface {
	// ListAll fetches and decodes every row, including soft-deleted ones.
	ListAll(ctx context.Context) ([]domain.Task, error)
	// ListActive keeps the tasks with Active set, in their original order.
	ListActive(tasks []domain.Task) []domain.Task
	// NextID returns len(tasks)+1.
	NextID(tasks []domain.Task) int64
	// Add appends a new pending task and returns it.
	Add(ctx context.Context, tasks []domain.Task, name string) (*domain.Task, error)
	// FindByName returns the first task whose name equals name, or nil.
	FindByName(tasks []domain.Task, name string) *domain.Task
	// Complete marks a pending task done.
	Complete(ctx context.Context, task *domain.Task) error
	// SoftDelete marks a task inactive.
	SoftDelete(ctx context.Context, task *domain.Task) error
}
