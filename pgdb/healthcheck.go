package pgdb

import (
	"context"
	"fmt"
)

// Pinger is the connectivity probe surface. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Healthcheck returns a probe function suitable for readiness endpoints.
// The probe is a lightweight ping that verifies connectivity without
// touching any data.
func Healthcheck(db Pinger) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := db.Ping(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrHealthcheckFailed, err)
		}
		return nil
	}
}
