package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"grandplaza/config"
	"grandplaza/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

var ErrUnknownAction = errors.New("unknown migration action")

func connectionString(config *config.Config) (string, error) {
	u, err := url.Parse(postgres.DSN(config))
	if err != nil {
		return "", fmt.Errorf("invalid postgres dsn: %w", err)
	}

	if table := config.DB.Postgres.MigrationTable; table != "" {
		query := u.Query()
		query.Set("x-migrations-table", table)
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	dsn, err := connectionString(config)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.New(migrationSource, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one of up, down, step-up or drop against the write primary.
func Runner(config *config.Config, action string) error {
	var step func(*migrate.Migrate) error

	switch action {
	case "up":
		step = (*migrate.Migrate).Up
	case "down":
		step = func(m *migrate.Migrate) error { return m.Steps(-1) }
	case "step-up":
		step = func(m *migrate.Migrate) error { return m.Steps(1) }
	case "drop":
		step = (*migrate.Migrate).Down
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}
