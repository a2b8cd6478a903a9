package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/account-service/internal/models"
)

// CreateUser сохраняет нового пользователя в базу данных и возвращает его ID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO users (email, name, password_hash, status, registration_date, deletion_date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.Status,
		user.RegistrationDate, user.DeletionDate).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByEmail возвращает пользователя по его email.
// Если пользователь не найден, ошибка оборачивает sql.ErrNoRows.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, name, password_hash, status, registration_date, deletion_date
			  FROM users
			  WHERE email = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, email), op)
}

// GetUserByID возвращает пользователя по его ID.
// Если пользователь не найден, ошибка оборачивает sql.ErrNoRows.
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, name, password_hash, status, registration_date, deletion_date
			  FROM users
			  WHERE id = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, id), op)
}

// ExistsByEmail проверяет, существует ли пользователь с данным email.
func (s *Storage) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const op = "storage.ExistsByEmail"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// UpdateUser перезаписывает изменяемые поля пользователя по его ID.
// Параллельные обновления одной записи разрешаются по принципу
// "последняя запись побеждает": версионного столбца в схеме нет.
func (s *Storage) UpdateUser(ctx context.Context, user models.User) error {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET name = $1,
			      password_hash = $2,
			      status = $3,
			      deletion_date = $4
			  WHERE id = $5`
	res, err := s.DB.ExecContext(ctx, query,
		user.Name, user.PasswordHash, user.Status, user.DeletionDate, user.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, sql.ErrNoRows)
	}
	return nil
}

// ListUsersByStatus возвращает всех пользователей с данным статусом.
func (s *Storage) ListUsersByStatus(ctx context.Context, status string) ([]*models.User, error) {
	const op = "storage.ListUsersByStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, name, password_hash, status, registration_date, deletion_date
			  FROM users
			  WHERE status = $1`
	rows, err := s.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		var u models.User
		var deletionDate sql.NullTime
		if err = rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash,
			&u.Status, &u.RegistrationDate, &deletionDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if deletionDate.Valid {
			u.DeletionDate = &deletionDate.Time
		}
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveUsersDeletedBefore удаляет из базы записи со статусом deleted,
// мягко удалённые раньше переданного момента. Возвращает число удалённых строк.
func (s *Storage) RemoveUsersDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const op = "storage.RemoveUsersDeletedBefore"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM users
			  WHERE status = $1 AND deletion_date < $2`
	res, err := s.DB.ExecContext(ctx, query, models.StatusDeleted, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return affected, nil
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var deletionDate sql.NullTime
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash,
		&u.Status, &u.RegistrationDate, &deletionDate); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if deletionDate.Valid {
		u.DeletionDate = &deletionDate.Time
	}
	return u, nil
}
