package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/userdir/apiserver/types"
)

// UserRepository handles persistence for directory records.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// InitSchema ensures the users table exists. It is idempotent and safe to
// run on every process start.
func (r *UserRepository) InitSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			street TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			zipcode TEXT NOT NULL DEFAULT '',
			lat TEXT NOT NULL DEFAULT '',
			lng TEXT NOT NULL DEFAULT ''
		)`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

// List returns every record, most recently created first.
func (r *UserRepository) List(ctx context.Context) ([]types.User, error) {
	const query = `
		SELECT id, name, email, phone, company, street, city, zipcode, lat, lng
		FROM users
		ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]types.User, 0)
	for rows.Next() {
		var user types.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.Company,
			&user.Street,
			&user.City,
			&user.Zipcode,
			&user.Lat,
			&user.Lng,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	const query = `
		SELECT id, name, email, phone, company, street, city, zipcode, lat, lng
		FROM users
		WHERE id = $1`
	var user types.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Company,
		&user.Street,
		&user.City,
		&user.Zipcode,
		&user.Lat,
		&user.Lng,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	const query = `
		INSERT INTO users (name, email, phone, company, street, city, zipcode, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		user.Name,
		user.Email,
		user.Phone,
		user.Company,
		user.Street,
		user.City,
		user.Zipcode,
		user.Lat,
		user.Lng,
	).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return types.User{}, ErrDuplicateEmail
		}
		return types.User{}, err
	}
	return user, nil
}

// Update overwrites every field except the id. Fields absent from the
// caller's payload arrive as zero values and are written as such.
func (r *UserRepository) Update(ctx context.Context, user types.User) (types.User, error) {
	const query = `
		UPDATE users
		SET name = $1,
			email = $2,
			phone = $3,
			company = $4,
			street = $5,
			city = $6,
			zipcode = $7,
			lat = $8,
			lng = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(
		ctx,
		query,
		user.Name,
		user.Email,
		user.Phone,
		user.Company,
		user.Street,
		user.City,
		user.Zipcode,
		user.Lat,
		user.Lng,
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return types.User{}, ErrDuplicateEmail
		}
		return types.User{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.User{}, err
	}
	if affected == 0 {
		return types.User{}, ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM users WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
