// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// taskRequest resolves the authenticated owner and, when withID is set, the
// {id} path parameter. A malformed id is reported as a missing task.
func taskRequest(r *http.Request, withID bool) (ownerID, taskID uuid.UUID, err error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return uuid.Nil, uuid.Nil, ErrNoUserInContext
	}
	if !withID {
		return user.UserID, uuid.Nil, nil
	}

	taskID, err = uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, store.ErrTaskNotFound
	}
	return user.UserID, taskID, nil
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ownerID, _, err := taskRequest(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.TaskInput
	if err = utils.DecodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Create(r.Context(), ownerID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.TaskResponse{Task: task}, "Task created successfully", http.StatusCreated)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ownerID, _, err := taskRequest(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tasks, err := h.services.TaskService.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := "Tasks retrieved successfully"
	if len(tasks) == 0 {
		message = "No tasks found"
	}

	writeData(w, r, models.TaskListResponse{Tasks: tasks, Count: len(tasks)}, message, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ownerID, taskID, err := taskRequest(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Get(r.Context(), ownerID, taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.TaskResponse{Task: task}, "Task retrieved successfully", http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ownerID, taskID, err := taskRequest(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.TaskInput
	if err = utils.DecodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Update(r.Context(), ownerID, taskID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.TaskResponse{Task: task}, "Task updated successfully", http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ownerID, taskID, err := taskRequest(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TaskService.Delete(r.Context(), ownerID, taskID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleTask(w http.ResponseWriter, r *http.Request) {
	ownerID, taskID, err := taskRequest(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.Toggle(r.Context(), ownerID, taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := "Task marked as incomplete"
	if task.IsCompleted {
		message = "Task marked as complete"
	}

	writeData(w, r, models.TaskResponse{Task: task}, message, http.StatusOK)
}
