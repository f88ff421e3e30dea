package waterbuddy

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jashithrathod04-star/waterbuddy/internal/app"
	"github.com/jashithrathod04-star/waterbuddy/internal/db"
	"github.com/jashithrathod04-star/waterbuddy/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func parsePositiveIntArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

// configIntOrDefault reads an integer key from app_config, falling back when
// the key is missing or unparsable.
func configIntOrDefault(sqldb *sql.DB, key string, fallback int) int {
	value, found, err := service.GetConfig(sqldb, key)
	if err != nil || !found {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
