package repository

import (
	"context"

	"gorm.io/gorm"

	"todoapi/internal/model"
)

// TodoRepository defines todo persistence operations. Every read is filtered
// by the owning user's id; UpdateDone must only be called with an id that
// came out of FindByUserAndID, so writes never touch another user's record.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	FindByUser(ctx context.Context, userID string) ([]model.Todo, error)
	FindByUserAndID(ctx context.Context, userID, id string) ([]model.Todo, error)
	UpdateDone(ctx context.Context, id string, done bool) error
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository builds a GORM-backed repository.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// FindByUser returns all of a user's todos in the store's natural order.
// No ORDER BY: callers must not rely on a particular ordering.
func (r *todoRepository) FindByUser(ctx context.Context, userID string) ([]model.Todo, error) {
	var todos []model.Todo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// FindByUserAndID returns the zero-or-one todos matching both the owner and
// the todo id. A miss is an empty slice, not an error.
func (r *todoRepository) FindByUserAndID(ctx context.Context, userID, id string) ([]model.Todo, error) {
	var todos []model.Todo
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) UpdateDone(ctx context.Context, id string, done bool) error {
	return r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ?", id).
		Update("done", done).Error
}
