package services

import (
	"context"
	"log/slog"
	"time"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
	"todo-list/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store         repository.RowStore
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator
	clock         Clock
	logger        *slog.Logger
}

// Option customizes a TaskService
type Option func(*taskServiceImpl)

// WithClock replaces time.Now as the source of created_on dates
func WithClock(clock Clock) Option {
	return func(s *taskServiceImpl) {
		s.clock = clock
	}
}

// WithTaskValidator replaces the default task name validator
func WithTaskValidator(v *validation.TaskValidator) Option {
	return func(s *taskServiceImpl) {
		s.taskValidator = v
	}
}

// WithLogger sets the logger used for mutation events
func WithLogger(logger *slog.Logger) Option {
	return func(s *taskServiceImpl) {
		s.logger = logger
	}
}

// NewTaskService creates a new TaskService over store
func NewTaskService(store repository.RowStore, opts ...Option) TaskService {
	s := &taskServiceImpl{
		store:         store,
		mapper:        domain.NewTaskMapper(),
		taskValidator: validation.NewTaskValidator(nil),
		clock:         time.Now,
		logger:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAll fetches every row from the store and decodes it
func (t *taskServiceImpl) ListAll(ctx context.Context) ([]domain.Task, error) {
	rows, err := t.store.GetAllRows(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.FromRows(rows)
}

// ListActive filters out soft-deleted tasks
func (t *taskServiceImpl) ListActive(tasks []domain.Task) []domain.Task {
	active := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Active {
			active = append(active, task)
		}
	}
	return active
}

// NextID derives the id of the next task from the row count
func (t *taskServiceImpl) NextID(tasks []domain.Task) int64 {
	return int64(len(tasks)) + 1
}

// Add validates name and appends a new pending task
func (t *taskServiceImpl) Add(ctx context.Context, tasks []domain.Task, name string) (*domain.Task, error) {
	canonical, err := t.taskValidator.GetValidTaskName(name)
	if err != nil {
		if ve, ok := err.(*validation.ValidationError); ok {
			return nil, ve.ToAppError()
		}
		return nil, err
	}

	task := domain.NewTask(t.NextID(tasks), canonical, t.clock())
	if err := t.store.AppendRow(ctx, t.mapper.ToRow(task)); err != nil {
		return nil, err
	}

	t.logger.LogAttrs(ctx, slog.LevelInfo, "task added",
		logging.Operation("add"),
		logging.TaskID(task.ItemID),
	)
	return &task, nil
}

// FindByName returns the first task with an exactly matching name
func (t *taskServiceImpl) FindByName(tasks []domain.Task, name string) *domain.Task {
	for i := range tasks {
		if tasks[i].Name == name {
			return &tasks[i]
		}
	}
	return nil
}

// Complete sets done on a pending task
func (t *taskServiceImpl) Complete(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return errors.NewNotFoundError("task", "")
	}
	if task.Done {
		return errors.NewAlreadyDoneError(task.Name)
	}

	if err := t.updateCell(ctx, task, repository.ColumnIndexDone, repository.EncodeBool(true)); err != nil {
		return err
	}
	task.Done = true

	t.logger.LogAttrs(ctx, slog.LevelInfo, "task completed",
		logging.Operation("complete"),
		logging.TaskID(task.ItemID),
	)
	return nil
}

// SoftDelete clears active; the row stays in the store
func (t *taskServiceImpl) SoftDelete(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return errors.NewNotFoundError("task", "")
	}

	if err := t.updateCell(ctx, task, repository.ColumnIndexActive, repository.EncodeBool(false)); err != nil {
		return err
	}
	task.Active = false

	t.logger.LogAttrs(ctx, slog.LevelInfo, "task deleted",
		logging.Operation("delete"),
		logging.TaskID(task.ItemID),
	)
	return nil
}

func (t *taskServiceImpl) updateCell(ctx context.Context, task *domain.Task, column int, value string) error {
	handle, err := t.store.FindRowByKey(ctx, repository.EncodeID(task.ItemID))
	if err != nil {
		return err
	}
	return t.store.UpdateCell(ctx, handle, column, value)
}
