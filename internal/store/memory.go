package store

import (
	"context"
	"maps"
	"sort"
	"sync"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/google/uuid"
)

// MemoryStore keeps accounts and tasks in process memory. It implements
// [UserRepository], [TaskRepository] and [Transactor] and is meant for
// tests and throwaway local runs; nothing survives a restart.
//
// WithTx serializes transactions against each other and against writes made
// outside a transaction, and restores the previous state when fn fails.
// Calls outside WithTx are individually atomic.
type MemoryStore struct {
	txMu sync.Mutex

	mu     sync.RWMutex
	users  map[uuid.UUID]models.User
	emails map[string]uuid.UUID
	tasks  map[uuid.UUID]models.Task
}

// NewMemoryStore constructs an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[uuid.UUID]models.User),
		emails: make(map[string]uuid.UUID),
		tasks:  make(map[uuid.UUID]models.Task),
	}
}

type memoryTxCtxKey struct{}

// WithTx implements [Transactor].
func (m *MemoryStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(memoryTxCtxKey{}) != nil {
		return fn(ctx)
	}

	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.RLock()
	users, emails, tasks := maps.Clone(m.users), maps.Clone(m.emails), maps.Clone(m.tasks)
	m.mu.RUnlock()

	defer func() {
		p := recover()
		if err != nil || p != nil {
			m.mu.Lock()
			m.users, m.emails, m.tasks = users, emails, tasks
			m.mu.Unlock()
		}
		if p != nil {
			panic(p)
		}
	}()

	return fn(context.WithValue(ctx, memoryTxCtxKey{}, struct{}{}))
}

// lockWrites blocks until no transaction is open. Writes made inside a
// transaction already hold the lock.
func (m *MemoryStore) lockWrites(ctx context.Context) func() {
	if ctx.Value(memoryTxCtxKey{}) != nil {
		return func() {}
	}
	m.txMu.Lock()
	return m.txMu.Unlock
}

func (m *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	defer m.lockWrites(ctx)()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.emails[user.Email]; taken {
		return models.User{}, ErrEmailAlreadyExists
	}

	m.users[user.UserID] = user
	m.emails[user.Email] = user.UserID
	return user, nil
}

func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userID, ok := m.emails[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return m.users[userID], nil
}

func (m *MemoryStore) FindUserByID(_ context.Context, userID uuid.UUID) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (m *MemoryStore) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	defer m.lockWrites(ctx)()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[task.UserID]; !ok {
		return models.Task{}, ErrUserNotFound
	}

	m.tasks[task.ID] = cloneTask(task)
	return cloneTask(task), nil
}

func (m *MemoryStore) ListTasksByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tasks := make([]models.Task, 0)
	for _, task := range m.tasks {
		if task.UserID == ownerID {
			tasks = append(tasks, cloneTask(task))
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID.String() > tasks[j].ID.String()
	})

	return tasks, nil
}

func (m *MemoryStore) FindTaskByIDAndOwner(_ context.Context, taskID, ownerID uuid.UUID) (models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	task, ok := m.tasks[taskID]
	if !ok || task.UserID != ownerID {
		return models.Task{}, ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (m *MemoryStore) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	defer m.lockWrites(ctx)()

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.tasks[task.ID]
	if !ok || stored.UserID != task.UserID {
		return models.Task{}, ErrTaskNotFound
	}

	stored.Title = task.Title
	stored.Description = task.Description
	stored.IsCompleted = task.IsCompleted
	stored.UpdatedAt = task.UpdatedAt
	m.tasks[task.ID] = cloneTask(stored)

	return cloneTask(stored), nil
}

func (m *MemoryStore) DeleteTask(ctx context.Context, taskID, ownerID uuid.UUID) error {
	defer m.lockWrites(ctx)()

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok || task.UserID != ownerID {
		return ErrTaskNotFound
	}

	delete(m.tasks, taskID)
	return nil
}

// cloneTask copies the description so callers cannot mutate stored state.
func cloneTask(task models.Task) models.Task {
	if task.Description != nil {
		description := *task.Description
		task.Description = &description
	}
	return task
}
