package router

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayboard/internal/model"
	"dayboard/internal/repository"
)

type memUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[uuid.UUID]*model.User{}}
}

func (r *memUsers) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUsers) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUsers) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := fields["avatar"]; ok {
		u.Avatar = v.(string)
	}
	return nil
}

// memOwned is an in-memory OwnedRepository. The accessors adapt it to one model.
type memOwned[T any] struct {
	mu     sync.Mutex
	rows   []*T
	assign func(*T)
	ids    func(*T) (id, owner uuid.UUID)
	apply  func(*T, map[string]interface{})
	before func(a, b *T) bool
}

func (r *memOwned[T]) List(_ context.Context, userID uuid.UUID) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []T{}
	for _, row := range r.rows {
		if _, owner := r.ids(row); owner == userID {
			out = append(out, *row)
		}
	}
	if r.before != nil {
		sort.SliceStable(out, func(i, j int) bool { return r.before(&out[i], &out[j]) })
	}
	return out, nil
}

func (r *memOwned[T]) Create(_ context.Context, record *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assign(record)
	cp := *record
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *memOwned[T]) find(userID, id uuid.UUID) (int, *T) {
	for i, row := range r.rows {
		if rid, owner := r.ids(row); rid == id && owner == userID {
			return i, row
		}
	}
	return -1, nil
}

func (r *memOwned[T]) FindOwned(_ context.Context, userID, id uuid.UUID) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, row := r.find(userID, id)
	if row == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *memOwned[T]) UpdateOwned(_ context.Context, userID, id uuid.UUID, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, row := r.find(userID, id)
	if row == nil {
		return gorm.ErrRecordNotFound
	}
	r.apply(row, fields)
	return nil
}

func (r *memOwned[T]) DeleteOwned(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, _ := r.find(userID, id)
	if i < 0 {
		return gorm.ErrRecordNotFound
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return nil
}

func newMemTodos() *memOwned[model.Todo] {
	return &memOwned[model.Todo]{
		assign: func(t *model.Todo) {
			t.ID = uuid.New()
			t.CreatedAt = time.Now()
			t.UpdatedAt = t.CreatedAt
		},
		ids: func(t *model.Todo) (uuid.UUID, uuid.UUID) { return t.ID, t.UserID },
		apply: func(t *model.Todo, f map[string]interface{}) {
			for k, v := range f {
				switch k {
				case "text":
					t.Text = v.(string)
				case "due_date":
					t.DueDate = v.(*string)
				case "category":
					t.Category = v.(model.Category)
				case "priority":
					t.Priority = v.(model.Priority)
				case "completed":
					t.Completed = v.(bool)
				case "tags":
					t.Tags = v.(model.Tags)
				}
			}
			t.UpdatedAt = time.Now()
		},
		before: func(a, b *model.Todo) bool {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return a.CreatedAt.Before(b.CreatedAt)
			case a.DueDate == nil:
				return true
			case b.DueDate == nil:
				return false
			default:
				return *a.DueDate < *b.DueDate
			}
		},
	}
}

func newMemGoals() *memOwned[model.Goal] {
	return &memOwned[model.Goal]{
		assign: func(g *model.Goal) {
			g.ID = uuid.New()
			g.CreatedAt = time.Now()
		},
		ids:  func(g *model.Goal) (uuid.UUID, uuid.UUID) { return g.ID, g.UserID },
		apply: func(g *model.Goal, f map[string]interface{}) {
			if v, ok := f["text"]; ok {
				g.Text = v.(string)
			}
			if v, ok := f["completed"]; ok {
				g.Completed = v.(bool)
			}
		},
	}
}

func newMemNotes() *memOwned[model.Note] {
	return &memOwned[model.Note]{
		assign: func(n *model.Note) {
			n.ID = uuid.New()
			n.CreatedAt = time.Now()
		},
		ids:   func(n *model.Note) (uuid.UUID, uuid.UUID) { return n.ID, n.UserID },
		apply: func(*model.Note, map[string]interface{}) {},
	}
}

func newMemHabits() *memOwned[model.Habit] {
	return &memOwned[model.Habit]{
		assign: func(h *model.Habit) {
			h.ID = uuid.New()
			h.CreatedAt = time.Now()
		},
		ids:  func(h *model.Habit) (uuid.UUID, uuid.UUID) { return h.ID, h.UserID },
		apply: func(h *model.Habit, f map[string]interface{}) {
			if v, ok := f["name"]; ok {
				h.Name = v.(string)
			}
			if v, ok := f["completed"]; ok {
				h.Completed = v.(bool)
			}
		},
	}
}

// memStats derives counts from the in-memory todo store.
type memStats struct {
	todos *memOwned[model.Todo]
}

func (s memStats) TodoCounts(ctx context.Context, userID uuid.UUID) (repository.CompletionCount, error) {
	todos, _ := s.todos.List(ctx, userID)
	c := repository.CompletionCount{Total: int64(len(todos))}
	for _, t := range todos {
		if t.Completed {
			c.Completed++
		}
	}
	return c, nil
}

func (memStats) GoalCounts(context.Context, uuid.UUID) (repository.CompletionCount, error) {
	return repository.CompletionCount{}, nil
}

func (memStats) HabitCounts(context.Context, uuid.UUID) (repository.CompletionCount, error) {
	return repository.CompletionCount{}, nil
}

func (memStats) NoteCount(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (s memStats) TodosByCategory(ctx context.Context, userID uuid.UUID) ([]repository.GroupCount, error) {
	todos, _ := s.todos.List(ctx, userID)
	counts := map[string]int64{}
	for _, t := range todos {
		counts[string(t.Category)]++
	}
	out := []repository.GroupCount{}
	for k, v := range counts {
		out = append(out, repository.GroupCount{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

func (memStats) TodosByPriority(context.Context, uuid.UUID) ([]repository.GroupCount, error) {
	return nil, nil
}
