package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// envelope mirrors models.Envelope with the payload left undecoded.
type envelope struct {
	Data    json.RawMessage       `json:"data"`
	Message *string               `json:"message"`
	Error   *models.ErrorResponse `json:"error"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The base URL is taken from cfg.Address; a missing scheme defaults to http.
// cfg.Token, when set, is used for task requests.
//
// Returns an error if cfg.Address cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	adapter := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	adapter.SetToken(cfg.Token)

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter] over POST /auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/auth/signup", credentials)
}

// Signin implements [ServerAdapter] over POST /auth/signin.
func (h *httpServerAdapter) Signin(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/auth/signin", credentials)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}

	var auth models.AuthResponse
	if err = decodeData(resp, &auth); err != nil {
		return models.User{}, err
	}

	h.SetToken(auth.Token)
	return auth.User, nil
}

// CreateTask implements [ServerAdapter] over POST /tasks.
func (h *httpServerAdapter) CreateTask(ctx context.Context, input models.TaskInput) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}

	return decodeTask(resp)
}

// ListTasks implements [ServerAdapter] over GET /tasks.
func (h *httpServerAdapter) ListTasks(ctx context.Context) ([]models.Task, error) {
	resp, err := h.authedRequest(ctx).Get("/tasks")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}

	var list models.TaskListResponse
	if err = decodeData(resp, &list); err != nil {
		return nil, err
	}
	if list.Tasks == nil {
		list.Tasks = []models.Task{}
	}

	return list.Tasks, nil
}

// GetTask implements [ServerAdapter] over GET /tasks/{id}.
func (h *httpServerAdapter) GetTask(ctx context.Context, taskID uuid.UUID) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", taskID.String()).
		Get("/tasks/{id}")
	if err != nil {
		return models.Task{}, fmt.Errorf("get task request: %w", err)
	}

	return decodeTask(resp)
}

// UpdateTask implements [ServerAdapter] over PUT /tasks/{id}.
func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID uuid.UUID, input models.TaskInput) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", taskID.String()).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Put("/tasks/{id}")
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w", err)
	}

	return decodeTask(resp)
}

// DeleteTask implements [ServerAdapter] over DELETE /tasks/{id}.
func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", taskID.String()).
		Delete("/tasks/{id}")
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}

	return mapHTTPError(resp)
}

// ToggleTask implements [ServerAdapter] over PATCH /tasks/{id}/toggle.
func (h *httpServerAdapter) ToggleTask(ctx context.Context, taskID uuid.UUID) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", taskID.String()).
		Patch("/tasks/{id}/toggle")
	if err != nil {
		return models.Task{}, fmt.Errorf("toggle task request: %w", err)
	}

	return decodeTask(resp)
}

// Health implements [ServerAdapter] over GET /health.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&health).Get("/health")
	if err != nil {
		return health, fmt.Errorf("health request: %w", err)
	}

	return health, mapHTTPError(resp)
}

// Info implements [ServerAdapter] over GET /.
func (h *httpServerAdapter) Info(ctx context.Context) (models.InfoResponse, error) {
	var info models.InfoResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&info).Get("/")
	if err != nil {
		return info, fmt.Errorf("info request: %w", err)
	}

	return info, mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func decodeTask(resp *resty.Response) (models.Task, error) {
	var payload models.TaskResponse
	if err := decodeData(resp, &payload); err != nil {
		return models.Task{}, err
	}
	return payload.Task, nil
}

// decodeData maps error responses and unmarshals the envelope payload of
// successful ones into dst.
func decodeData(resp *resty.Response, dst any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("%w: empty data", ErrMalformedResponse)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}
