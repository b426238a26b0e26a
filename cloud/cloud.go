package cloud

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Provider identifies a managed PostgreSQL hosting environment.
type Provider string

const (
	// ProviderNone means no managed environment was recognized.
	ProviderNone Provider = ""
	// ProviderAWS covers Amazon RDS, including Aurora PostgreSQL.
	ProviderAWS Provider = "aws"
	// ProviderGCP covers Google Cloud SQL.
	ProviderGCP Provider = "gcp"
	// ProviderAzure covers Azure Database for PostgreSQL.
	ProviderAzure Provider = "azure"
)

// Conn is the minimal connection surface detection operates on.
type Conn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Managed PostgreSQL offerings reserve administrative roles the provider
// uses in place of a real superuser; their presence identifies the host.
// Aurora additionally ships an aurora_version() function.
const detectQuery = `SELECT
	exists(SELECT 1 FROM pg_roles WHERE rolname = 'rds_superuser'),
	exists(SELECT 1 FROM pg_roles WHERE rolname IN ('cloudsqladmin', 'cloudsqlsuperuser')),
	exists(SELECT 1 FROM pg_roles WHERE rolname = 'azure_pg_admin'),
	exists(SELECT 1 FROM pg_proc WHERE proname = 'aurora_version')`

const auroraQuery = `SELECT exists(SELECT 1 FROM pg_proc WHERE proname = 'aurora_version')`

// Detect probes the server for markers of a managed hosting environment.
// It issues a single round trip against the system catalogs.
func Detect(ctx context.Context, conn Conn) (Provider, error) {
	var rds, gcp, azure, aurora bool
	if err := conn.QueryRow(ctx, detectQuery).Scan(&rds, &gcp, &azure, &aurora); err != nil {
		return ProviderNone, err
	}
	switch {
	case rds || aurora:
		return ProviderAWS, nil
	case gcp:
		return ProviderGCP, nil
	case azure:
		return ProviderAzure, nil
	}
	return ProviderNone, nil
}

// IsHosted reports whether the server runs in any recognized managed
// environment.
func IsHosted(ctx context.Context, conn Conn) (bool, error) {
	p, err := Detect(ctx, conn)
	return p != ProviderNone, err
}

// IsAurora reports whether the server is Amazon Aurora PostgreSQL, as
// opposed to plain RDS. Aurora diverges from community PostgreSQL in
// replication and storage behavior, which some callers need to special-case.
func IsAurora(ctx context.Context, conn Conn) (bool, error) {
	var aurora bool
	if err := conn.QueryRow(ctx, auroraQuery).Scan(&aurora); err != nil {
		return false, err
	}
	return aurora, nil
}
