package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/google/uuid"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("wrong number of arguments")
)

const usage = `usage: client [-a address] [-t token] <command> [args]

commands:
  health
  info
  signup <email> <password>
  signin <email> <password>
  list
  get <id>
  create <title> [description]
  update <id> <title> [description]
  delete <id>
  toggle <id>`

type command struct {
	args int // required positional arguments
	opt  int // optional trailing arguments
	run  func(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error)
}

var commands = map[string]command{
	"health": {run: func(ctx context.Context, api adapter.ServerAdapter, _ []string) (any, error) {
		return api.Health(ctx)
	}},
	"info": {run: func(ctx context.Context, api adapter.ServerAdapter, _ []string) (any, error) {
		return api.Info(ctx)
	}},
	"signup": {args: 2, run: func(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
		user, err := api.Signup(ctx, models.Credentials{Email: args[0], Password: args[1]})
		return models.AuthResponse{User: user, Token: api.Token()}, err
	}},
	"signin": {args: 2, run: func(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
		user, err := api.Signin(ctx, models.Credentials{Email: args[0], Password: args[1]})
		return models.AuthResponse{User: user, Token: api.Token()}, err
	}},
	"list": {run: func(ctx context.Context, api adapter.ServerAdapter, _ []string) (any, error) {
		return api.ListTasks(ctx)
	}},
	"get": {args: 1, run: withTaskID(func(ctx context.Context, api adapter.ServerAdapter, id uuid.UUID, _ []string) (any, error) {
		return api.GetTask(ctx, id)
	})},
	"create": {args: 1, opt: 1, run: func(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
		return api.CreateTask(ctx, taskInput(args))
	}},
	"update": {args: 2, opt: 1, run: withTaskID(func(ctx context.Context, api adapter.ServerAdapter, id uuid.UUID, args []string) (any, error) {
		return api.UpdateTask(ctx, id, taskInput(args))
	})},
	"delete": {args: 1, run: withTaskID(func(ctx context.Context, api adapter.ServerAdapter, id uuid.UUID, _ []string) (any, error) {
		return nil, api.DeleteTask(ctx, id)
	})},
	"toggle": {args: 1, run: withTaskID(func(ctx context.Context, api adapter.ServerAdapter, id uuid.UUID, _ []string) (any, error) {
		return api.ToggleTask(ctx, id)
	})},
}

// run executes one command and prints its result as indented JSON.
func run(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(out, usage)
		return errUsage
	}

	cmd, ok := commands[strings.ToLower(args[0])]
	if !ok {
		fmt.Fprintln(out, usage)
		return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}

	params := args[1:]
	if len(params) < cmd.args || len(params) > cmd.args+cmd.opt {
		fmt.Fprintln(out, usage)
		return fmt.Errorf("%w for %s", errUsage, args[0])
	}

	result, err := cmd.run(ctx, api, params)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func withTaskID(fn func(context.Context, adapter.ServerAdapter, uuid.UUID, []string) (any, error)) func(context.Context, adapter.ServerAdapter, []string) (any, error) {
	return func(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid task id %q: %w", args[0], err)
		}
		return fn(ctx, api, id, args[1:])
	}
}

// taskInput builds a task payload from "<title> [description]".
func taskInput(args []string) models.TaskInput {
	input := models.TaskInput{Title: args[0]}
	if len(args) > 1 {
		description := args[1]
		input.Description = &description
	}
	return input
}
