package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var (
	userColumns = []string{"id", "email", "hashed_password", "created_at", "updated_at"}
	taskColumns = []string{"id", "user_id", "title", "description", "is_completed", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.HashedPassword, user.CreatedAt, user.UpdatedAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertTaskQuery(b sq.StatementBuilderType, task models.Task) (string, []any, error) {
	query, args, err := b.
		Insert(models.Task{}.TableName()).
		Columns(taskColumns...).
		Values(task.ID, task.UserID, task.Title, task.Description, task.IsCompleted, task.CreatedAt, task.UpdatedAt).
		Suffix(returning(taskColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectTasksByOwnerQuery(b sq.StatementBuilderType, ownerID uuid.UUID) (string, []any, error) {
	query, args, err := b.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectTaskQuery(b sq.StatementBuilderType, taskID, ownerID uuid.UUID) (string, []any, error) {
	query, args, err := b.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.And{sq.Eq{"id": taskID}, sq.Eq{"user_id": ownerID}}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateTaskQuery(b sq.StatementBuilderType, task models.Task) (string, []any, error) {
	query, args, err := b.
		Update(models.Task{}.TableName()).
		Set("title", task.Title).
		Set("description", task.Description).
		Set("is_completed", task.IsCompleted).
		Set("updated_at", task.UpdatedAt).
		Where(sq.And{sq.Eq{"id": task.ID}, sq.Eq{"user_id": task.UserID}}).
		Suffix(returning(taskColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteTaskQuery(b sq.StatementBuilderType, taskID, ownerID uuid.UUID) (string, []any, error) {
	query, args, err := b.
		Delete(models.Task{}.TableName()).
		Where(sq.And{sq.Eq{"id": taskID}, sq.Eq{"user_id": ownerID}}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
