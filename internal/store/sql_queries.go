package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the shared statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column list scanned into models.User.
// Keep the order in sync with scanUser.
var userColumns = []string{
	"id",
	"username",
	"email",
	"password",
	"first_name",
	"last_name",
	"profile_image_url",
	"is_superuser",
	"last_login_at",
	"is_deleted",
	"created_at",
}

// createUserQuery builds the INSERT for a new user. All columns are
// returned so the caller receives the canonical database representation of
// the newly created account.
func createUserQuery(username, email, passwordHash, firstName, lastName, imageURL string) sq.InsertBuilder {
	return psql.Insert("users").
		Columns("username", "email", "password", "first_name", "last_name", "profile_image_url").
		Values(username, email, passwordHash, firstName, lastName, imageURL).
		Suffix("RETURNING " + joinColumns())
}

// findByLoginIdentifierQuery builds the single disjunctive lookup across
// username and email. A deliberate single query, not two sequential ones:
// the caller's enumeration-timing mitigation depends on the lookup shape
// being identical for both identifier kinds.
func findByLoginIdentifierQuery(loginIdentifier string) sq.SelectBuilder {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.And{
			sq.Or{
				sq.Eq{"username": loginIdentifier},
				sq.Eq{"email": loginIdentifier},
			},
			sq.Eq{"is_deleted": false},
		})
}

// findByEmailQuery builds the email-only lookup used as the provisioning
// key for external-identity logins.
func findByEmailQuery(email string) sq.SelectBuilder {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.And{
			sq.Eq{"email": email},
			sq.Eq{"is_deleted": false},
		})
}

// updateLastLoginQuery stamps last_login_at with the database clock.
func updateLastLoginQuery(userID int64) sq.UpdateBuilder {
	return psql.Update("users").
		Set("last_login_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID})
}

func joinColumns() string {
	out := userColumns[0]
	for _, c := range userColumns[1:] {
		out += ", " + c
	}
	return out
}
