// Package cloud detects managed PostgreSQL hosting environments from the
// server side of an open connection.
//
// Detection relies on catalog markers the providers install: reserved
// administrative roles (rds_superuser, cloudsqladmin, azure_pg_admin) and
// Aurora's aurora_version() function. It never inspects the local machine,
// so it works from anywhere the database is reachable.
//
//	provider, err := cloud.Detect(ctx, conn)
//	if err != nil {
//		return err
//	}
//	if provider == cloud.ProviderAWS {
//		// e.g. skip statements RDS reserves for its own tooling.
//	}
package cloud
