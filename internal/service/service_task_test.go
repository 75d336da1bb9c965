package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testTaskID = uuid.MustParse("0d3e9a52-93a4-4c55-8b1e-6f0c8f2f7a10")

func newTestTaskSvc(t *testing.T, ctrl *gomock.Controller) (*taskService, *mock.MockTaskRepository, *mock.MockTransactor, *mock.MockIDGenerator) {
	t.Helper()
	repo := mock.NewMockTaskRepository(ctrl)
	tx := mock.NewMockTransactor(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	svc := &taskService{
		taskRepository: repo,
		transactor:     tx,
		idGenerator:    ids,
		now:            func() time.Time { return testNow },
		logger:         logger.Nop(),
	}
	return svc, repo, tx, ids
}

// runInline makes the transactor mock execute fn directly.
func runInline(tx *mock.MockTransactor) {
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func storedTask() models.Task {
	created := testNow.Add(-time.Hour).Truncate(time.Microsecond)
	description := "two liters"
	return models.Task{
		ID:          testTaskID,
		UserID:      testUserID,
		Title:       "Buy milk",
		Description: &description,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func echoUpdate(_ context.Context, task models.Task) (models.Task, error) {
	return task, nil
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestTaskService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, ids := newTestTaskSvc(t, ctrl)

	ids.EXPECT().Generate().Return(testTaskID)
	repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, testTaskID, task.ID)
			assert.Equal(t, testUserID, task.UserID)
			assert.Equal(t, "Buy milk", task.Title)
			assert.Nil(t, task.Description)
			assert.False(t, task.IsCompleted)
			assert.Equal(t, testNow.Truncate(time.Microsecond), task.CreatedAt)
			assert.Equal(t, task.CreatedAt, task.UpdatedAt)
			return task, nil
		},
	)

	task, err := svc.Create(context.Background(), testUserID, models.TaskInput{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, testTaskID, task.ID)
}

func TestTaskService_Create_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, ids := newTestTaskSvc(t, ctrl)

	ids.EXPECT().Generate().Return(testTaskID)
	repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(models.Task{}, errDB)

	_, err := svc.Create(context.Background(), testUserID, models.TaskInput{Title: "Buy milk"})
	require.ErrorIs(t, err, ErrPersistence)
}

// ── List / Get ───────────────────────────────────────────────────────────────

func TestTaskService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestTaskSvc(t, ctrl)

	t.Run("nil from store becomes empty", func(t *testing.T) {
		repo.EXPECT().ListTasksByOwner(gomock.Any(), testUserID).Return(nil, nil)

		tasks, err := svc.List(context.Background(), testUserID)
		require.NoError(t, err)
		require.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("passes tasks through", func(t *testing.T) {
		repo.EXPECT().ListTasksByOwner(gomock.Any(), testUserID).Return([]models.Task{storedTask()}, nil)

		tasks, err := svc.List(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, []models.Task{storedTask()}, tasks)
	})

	t.Run("store failure", func(t *testing.T) {
		repo.EXPECT().ListTasksByOwner(gomock.Any(), testUserID).Return(nil, errDB)

		_, err := svc.List(context.Background(), testUserID)
		require.ErrorIs(t, err, ErrPersistence)
	})
}

func TestTaskService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestTaskSvc(t, ctrl)

	repo.EXPECT().FindTaskByIDAndOwner(gomock.Any(), testTaskID, testUserID).Return(storedTask(), nil)
	task, err := svc.Get(context.Background(), testUserID, testTaskID)
	require.NoError(t, err)
	assert.Equal(t, storedTask(), task)

	otherOwner := uuid.New()
	repo.EXPECT().FindTaskByIDAndOwner(gomock.Any(), testTaskID, otherOwner).Return(models.Task{}, store.ErrTaskNotFound)
	_, err = svc.Get(context.Background(), otherOwner, testTaskID)
	require.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.NotErrorIs(t, err, ErrPersistence)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestTaskService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, tx, _ := newTestTaskSvc(t, ctrl)

	runInline(tx)
	repo.EXPECT().FindTaskByIDAndOwner(gomock.Any(), testTaskID, testUserID).Return(storedTask(), nil)
	repo.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	task, err := svc.Update(context.Background(), testUserID, testTaskID, models.TaskInput{Title: "Buy oat milk"})
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", task.Title)
	assert.Nil(t, task.Description)
	assert.Equal(t, storedTask().CreatedAt, task.CreatedAt)
	assert.Equal(t, testNow.Truncate(time.Microsecond), task.UpdatedAt)
}

func TestTaskService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, tx, _ := newTestTaskSvc(t, ctrl)

	runInline(tx)
	repo.EXPECT().FindTaskByIDAndOwner(gomock.Any(), testTaskID, testUserID).Return(models.Task{}, store.ErrTaskNotFound)

	_, err := svc.Update(context.Background(), testUserID, testTaskID, models.TaskInput{Title: "x"})
	require.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskService_Update_TransactionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tx, _ := newTestTaskSvc(t, ctrl)

	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(store.ErrBeginningTransaction)

	_, err := svc.Update(context.Background(), testUserID, testTaskID, models.TaskInput{Title: "x"})
	require.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, store.ErrBeginningTransaction)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestTaskService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, tx, _ := newTestTaskSvc(t, ctrl)

	runInline(tx)
	gomock.InOrder(
		repo.EXPECT().FindTaskByIDAndOwner(gomock.Any(), testTaskID, testUserID).Return(storedTask(), nil),
		repo.EXPECT().DeleteTask(gomock.Any(), testTaskID, testUserID).Return(nil),
	)

	require.NoError(t, svc.Delete(context.Background(), testUserID, testTaskID))
}

func TestTaskService_Delete_NotFoundSkipsDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, tx, _ := newTestTaskSvc(t, ctrl)

	runInline(tx)
	repo.EXPECT().FindTaskByIDAndOwner(gomock.Any(), testTaskID, testUserID).Return(models.Task{}, store.ErrTaskNotFound)

	err := svc.Delete(context.Background(), testUserID, testTaskID)
	require.ErrorIs(t, err, store.ErrTaskNotFound)
}

// ── Toggle ───────────────────────────────────────────────────────────────────

func TestTaskService_Toggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, tx, _ := newTestTaskSvc(t, ctrl)

	runInline(tx)
	repo.EXPECT().FindTaskByIDAndOwner(gomock.Any(), testTaskID, testUserID).Return(storedTask(), nil)
	repo.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	task, err := svc.Toggle(context.Background(), testUserID, testTaskID)
	require.NoError(t, err)
	assert.True(t, task.IsCompleted)
	assert.Equal(t, storedTask().Title, task.Title)
	assert.True(t, task.UpdatedAt.After(storedTask().UpdatedAt))
}

func TestTaskService_Toggle_StrictlyIncreasingUpdatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, tx, _ := newTestTaskSvc(t, ctrl)

	// previous update is in the clock's future
	task := storedTask()
	task.UpdatedAt = testNow.Add(time.Second).Truncate(time.Microsecond)

	runInline(tx)
	repo.EXPECT().FindTaskByIDAndOwner(gomock.Any(), testTaskID, testUserID).Return(task, nil)
	repo.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	toggled, err := svc.Toggle(context.Background(), testUserID, testTaskID)
	require.NoError(t, err)
	assert.Equal(t, task.UpdatedAt.Add(time.Microsecond), toggled.UpdatedAt)
}

func TestTaskService_Toggle_UpdateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, tx, _ := newTestTaskSvc(t, ctrl)

	runInline(tx)
	repo.EXPECT().FindTaskByIDAndOwner(gomock.Any(), testTaskID, testUserID).Return(storedTask(), nil)
	repo.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).Return(models.Task{}, errDB)

	_, err := svc.Toggle(context.Background(), testUserID, testTaskID)
	require.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, errDB)
}

func TestNextUpdatedAt(t *testing.T) {
	previous := testNow.Truncate(time.Microsecond)

	assert.Equal(t, previous.Add(time.Microsecond), nextUpdatedAt(testNow, previous))
	assert.Equal(t, previous.Add(time.Millisecond), nextUpdatedAt(testNow.Add(time.Millisecond), previous))
	assert.Equal(t, previous.Add(time.Microsecond), nextUpdatedAt(testNow.Add(-time.Hour), previous))
}
