package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/cache"
	"todoapi/internal/errors"
	"todoapi/internal/model"
	"todoapi/internal/repository"
)

const todoCacheTTL = time.Minute

// TodoItem is the projected shape a todo takes in list responses. ObjectID
// is the record id as a string; clients key off "objectId".
type TodoItem struct {
	Title    string `json:"title"`
	Done     bool   `json:"done"`
	ObjectID string `json:"objectId"`
}

// TodoService handles owner-scoped todo operations. Every method takes the
// owner id resolved by the auth middleware; no operation can reach a todo
// belonging to anyone else.
type TodoService interface {
	Create(ctx context.Context, ownerID, title string, done bool) error
	List(ctx context.Context, ownerID string) ([]TodoItem, error)
	Toggle(ctx context.Context, ownerID, todoID string) error
	Get(ctx context.Context, ownerID, todoID string) ([]model.Todo, error)
}

type todoService struct {
	repo  repository.TodoRepository
	cache cache.Store
}

// NewTodoService creates a new todo service.
func NewTodoService(repo repository.TodoRepository, cache cache.Store) TodoService {
	return &todoService{
		repo:  repo,
		cache: cache,
	}
}

func (s *todoService) cacheKey(ownerID string) string {
	return fmt.Sprintf("todos:%s", ownerID)
}

// Create stores a new todo for the owner and invalidates the owner's cached
// list.
func (s *todoService) Create(ctx context.Context, ownerID, title string, done bool) error {
	todo := &model.Todo{
		ID:     uuid.NewString(),
		Title:  title,
		Done:   done,
		UserID: ownerID,
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return fmt.Errorf("create todo: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))
	return nil
}

// List returns the owner's todos projected to TodoItem, with caching. Order
// is the store's natural return order.
func (s *todoService) List(ctx context.Context, ownerID string) ([]TodoItem, error) {
	// Try cache first
	if data, _ := s.cache.Get(ctx, s.cacheKey(ownerID)); data != nil {
		var cached []TodoItem
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	todos, err := s.repo.FindByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	items := make([]TodoItem, 0, len(todos))
	for _, t := range todos {
		items = append(items, TodoItem{
			Title:    t.Title,
			Done:     t.Done,
			ObjectID: t.ID,
		})
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(ownerID), payload, todoCacheTTL)
	}

	return items, nil
}

// Toggle flips a todo's done flag. The todo is fetched under the owner
// filter and the update is keyed by the fetched record's id, never the raw
// client-supplied id. The read-then-write pair is not atomic; concurrent
// togglers of the same record race and the last write wins.
func (s *todoService) Toggle(ctx context.Context, ownerID, todoID string) error {
	matched, err := s.repo.FindByUserAndID(ctx, ownerID, todoID)
	if err != nil {
		return fmt.Errorf("find todo: %w", err)
	}
	if len(matched) == 0 {
		return errors.ErrTodoNotFound
	}

	current := matched[0]
	if err := s.repo.UpdateDone(ctx, current.ID, !current.Done); err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))
	return nil
}

// Get returns the raw zero-or-one records matching the owner and todo id,
// unprojected. A miss is an empty slice, not an error.
func (s *todoService) Get(ctx context.Context, ownerID, todoID string) ([]model.Todo, error) {
	matched, err := s.repo.FindByUserAndID(ctx, ownerID, todoID)
	if err != nil {
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return matched, nil
}
