package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testTaskID = uuid.MustParse("7a4f0c3e-3a45-4f7e-9a8e-2f4b1f0d9c11")

func TestRun_Usage(t *testing.T) {
	api := mock.NewMockServerAdapter(gomock.NewController(t))

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no command", args: nil, want: errUsage},
		{name: "unknown", args: []string{"explode"}, want: errUnknownCommand},
		{name: "missing argument", args: []string{"get"}, want: errUsage},
		{name: "extra argument", args: []string{"toggle", "a", "b"}, want: errUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), api, tt.args, &out)

			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, out.String(), "usage:")
		})
	}
}

func TestRun_Signin(t *testing.T) {
	api := mock.NewMockServerAdapter(gomock.NewController(t))
	user := models.User{UserID: uuid.New(), Email: "alice@example.com"}
	api.EXPECT().Signin(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "password123"}).Return(user, nil)
	api.EXPECT().Token().Return("issued.jwt.token")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), api, []string{"signin", "alice@example.com", "password123"}, &out))

	assert.Contains(t, out.String(), `"token": "issued.jwt.token"`)
	assert.Contains(t, out.String(), `"email": "alice@example.com"`)
}

func TestRun_CreateWithDescription(t *testing.T) {
	api := mock.NewMockServerAdapter(gomock.NewController(t))
	api.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input models.TaskInput) (models.Task, error) {
		require.NotNil(t, input.Description)
		assert.Equal(t, "Buy milk", input.Title)
		assert.Equal(t, "two liters", *input.Description)
		return models.Task{ID: testTaskID, Title: input.Title, Description: input.Description}, nil
	})

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), api, []string{"create", "Buy milk", "two liters"}, &out))
	assert.Contains(t, out.String(), testTaskID.String())
}

func TestRun_TaskIDCommands(t *testing.T) {
	api := mock.NewMockServerAdapter(gomock.NewController(t))
	api.EXPECT().ToggleTask(gomock.Any(), testTaskID).Return(models.Task{ID: testTaskID, IsCompleted: true}, nil)
	api.EXPECT().DeleteTask(gomock.Any(), testTaskID).Return(nil)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), api, []string{"toggle", testTaskID.String()}, &out))
	assert.Contains(t, out.String(), `"is_completed": true`)

	out.Reset()
	require.NoError(t, run(context.Background(), api, []string{"delete", testTaskID.String()}, &out))
	assert.Empty(t, out.String())
}

func TestRun_InvalidTaskID(t *testing.T) {
	api := mock.NewMockServerAdapter(gomock.NewController(t))

	err := run(context.Background(), api, []string{"get", "not-a-uuid"}, &bytes.Buffer{})

	assert.ErrorContains(t, err, "invalid task id")
}

func TestRun_PropagatesAdapterError(t *testing.T) {
	api := mock.NewMockServerAdapter(gomock.NewController(t))
	boom := errors.New("connection refused")
	api.EXPECT().ListTasks(gomock.Any()).Return(nil, boom)

	err := run(context.Background(), api, []string{"list"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, boom)
}
