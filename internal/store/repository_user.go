package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Killjoy99/eNtweniBooking/internal/logger"
	"github.com/Killjoy99/eNtweniBooking/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// Username and email are lowercased before insertion; uniqueness among
// non-deleted users is enforced by the partial unique indexes of the users
// table, not by application code.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := createUserQuery(
		strings.ToLower(user.Username),
		strings.ToLower(user.Email),
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.ProfileImageURL,
	).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("error building create user query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanUser(row)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, err
		}
	}

	return created, nil
}

// FindByLoginIdentifier retrieves the non-deleted user whose username OR
// email matches the given identifier, in one disjunctive query.
//
// Error handling:
//   - Empty result set ([sql.ErrNoRows]) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindByLoginIdentifier(ctx context.Context, loginIdentifier string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := findByLoginIdentifierQuery(strings.ToLower(loginIdentifier)).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByLoginIdentifier").Msg("error: building query")
		return models.User{}, fmt.Errorf("error building lookup query: %w", err)
	}

	return r.findOne(ctx, query, args)
}

// FindByEmail retrieves the non-deleted user with the given email.
// The email is lowercased before matching; it is the provisioning key for
// external-identity logins, so two logins with the same email must resolve
// to the same row.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := findByEmailQuery(strings.ToLower(email)).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByEmail").Msg("error: building query")
		return models.User{}, fmt.Errorf("error building lookup query: %w", err)
	}

	return r.findOne(ctx, query, args)
}

// UpdateLastLogin stamps last_login_at for the given user with the database
// clock. Callers treat this as fire-and-forget: a failure is logged and
// returned but must never fail a login response.
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := updateLastLoginQuery(userID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Msg("error: building query")
		return fmt.Errorf("error building last login query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Int64("user_id", userID).Msg("error: updating last login")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *userRepository) findOne(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// scanUser scans a single users row in userColumns order.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var firstName, lastName, imageURL sql.NullString
	var lastLogin sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&firstName,
		&lastName,
		&imageURL,
		&user.IsSuperuser,
		&lastLogin,
		&user.IsDeleted,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.FirstName = firstName.String
	user.LastName = lastName.String
	user.ProfileImageURL = imageURL.String
	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLoginAt = &t
	}

	return user, nil
}
