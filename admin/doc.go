// Package admin provides role and database management helpers with
// idempotent variants.
//
// Create and Drop report conflicts through pgdb's translated errors, so the
// Ensure variants can tolerate an object that already exists or is already
// gone:
//
//	name := admin.TempName("sandbox")
//	if err := admin.EnsureRole(ctx, conn, name, admin.WithLogin(), admin.WithPassword(pw)); err != nil {
//		return err
//	}
//	defer admin.EnsureRoleDropped(ctx, conn, name)
//
// Identifiers are quoted with pgx's identifier sanitizer and values such as
// passwords are escaped as literals, since DDL takes no bind parameters.
// CREATE DATABASE and DROP DATABASE cannot run inside a transaction block;
// run them on an autocommit connection (see scope.WithAutocommit).
package admin
