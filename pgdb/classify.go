package pgdb

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the toolbox classifies.
const (
	codeUniqueViolation       = "23505"
	codeForeignKeyViolation   = "23503"
	codeInsufficientPrivilege = "42501"
	codeDuplicateObject       = "42710"
	codeDuplicateDatabase     = "42P04"
	codeDuplicateSchema       = "42P06"
	codeUndefinedObject       = "42704"
	codeUndefinedTable        = "42P01"
	codeInvalidCatalogName    = "3D000"
)

// IsNotFound reports whether err means a query matched no rows.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsForeignKeyViolation reports whether err is a referential integrity violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// IsInsufficientPrivilege reports whether err means the current role lacks
// the privilege for the attempted operation.
func IsInsufficientPrivilege(err error) bool {
	return hasCode(err, codeInsufficientPrivilege)
}

// IsTxClosed reports whether err means an operation used a committed or
// rolled-back transaction.
func IsTxClosed(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}

// Translate maps the server's duplicate-object and undefined-object errors
// to ErrAlreadyExists and ErrDoesNotExist, preserving the driver error in
// the chain. Other errors, and nil, pass through unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeDuplicateObject, codeDuplicateDatabase, codeDuplicateSchema:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case codeUndefinedObject, codeUndefinedTable, codeInvalidCatalogName:
		return fmt.Errorf("%w: %w", ErrDoesNotExist, err)
	}
	return err
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
