package scope

import (
	"context"
)

type settingAttr struct {
	conn Conn
	name string
}

// Setting returns the attribute managing the run-time parameter name, such
// as search_path or statement_timeout. Get reads the current value with
// current_setting; a parameter that has no value in this session reads as
// the empty string. Set writes it session-wide with set_config.
func Setting(conn Conn, name string) Attribute[string] {
	return settingAttr{conn: conn, name: name}
}

func (s settingAttr) Get(ctx context.Context) (string, error) {
	var value *string
	if err := s.conn.QueryRow(ctx, "SELECT current_setting($1, true)", s.name).Scan(&value); err != nil {
		return "", err
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

func (s settingAttr) Set(ctx context.Context, value string) error {
	_, err := s.conn.Exec(ctx, "SELECT set_config($1, $2, false)", s.name, value)
	return err
}

// WithSetting runs fn with the run-time parameter name set to value and
// restores the value observed on entry afterwards.
func WithSetting(ctx context.Context, conn Conn, name, value string, fn Func, opts ...Option) error {
	return With(ctx, Setting(conn, name), value, fn, opts...)
}
