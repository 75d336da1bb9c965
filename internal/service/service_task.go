// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/google/uuid"
)

// taskService is the concrete implementation of TaskService. It expects
// already validated input; see TaskValidationService.
type taskService struct {
	taskRepository store.TaskRepository
	transactor     store.Transactor

	idGenerator IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, transactor store.Transactor, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		transactor:     transactor,
		idGenerator:    utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (s *taskService) Create(ctx context.Context, ownerID uuid.UUID, input models.TaskInput) (models.Task, error) {
	now := timestamp(s.now())
	task, err := s.taskRepository.CreateTask(ctx, models.Task{
		ID:          s.idGenerator.Generate(),
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskService.Create").Msg("task creation failed")
		return models.Task{}, persistenceError(err)
	}

	return task, nil
}

// List returns the owner's tasks, newest first. The slice is never nil.
func (s *taskService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	tasks, err := s.taskRepository.ListTasksByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskService.List").Msg("task listing failed")
		return nil, persistenceError(err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks, nil
}

func (s *taskService) Get(ctx context.Context, ownerID, taskID uuid.UUID) (models.Task, error) {
	task, err := s.taskRepository.FindTaskByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		return models.Task{}, persistenceError(err)
	}

	return task, nil
}

// Update overwrites title and description. Lookup and write share one
// transaction.
func (s *taskService) Update(ctx context.Context, ownerID, taskID uuid.UUID, input models.TaskInput) (models.Task, error) {
	var updated models.Task
	err := s.transactor.WithTx(ctx, func(ctx context.Context) error {
		task, err := s.taskRepository.FindTaskByIDAndOwner(ctx, taskID, ownerID)
		if err != nil {
			return err
		}

		task.Title = input.Title
		task.Description = input.Description
		task.UpdatedAt = nextUpdatedAt(s.now(), task.UpdatedAt)

		updated, err = s.taskRepository.UpdateTask(ctx, task)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*taskService.Update").Msg("task update failed")
		return models.Task{}, persistenceError(err)
	}

	return updated, nil
}

func (s *taskService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	err := s.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.taskRepository.FindTaskByIDAndOwner(ctx, taskID, ownerID); err != nil {
			return err
		}
		return s.taskRepository.DeleteTask(ctx, taskID, ownerID)
	})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*taskService.Delete").Msg("task deletion failed")
		return persistenceError(err)
	}

	return nil
}

// Toggle flips the completion flag. The new updated_at is strictly after
// the previous one even when the clock has not advanced.
func (s *taskService) Toggle(ctx context.Context, ownerID, taskID uuid.UUID) (models.Task, error) {
	var toggled models.Task
	err := s.transactor.WithTx(ctx, func(ctx context.Context) error {
		task, err := s.taskRepository.FindTaskByIDAndOwner(ctx, taskID, ownerID)
		if err != nil {
			return err
		}

		task.IsCompleted = !task.IsCompleted
		task.UpdatedAt = nextUpdatedAt(s.now(), task.UpdatedAt)

		toggled, err = s.taskRepository.UpdateTask(ctx, task)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*taskService.Toggle").Msg("task toggle failed")
		return models.Task{}, persistenceError(err)
	}

	return toggled, nil
}
