package gui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
)

func rangeHint(kind models.Kind) string {
	r := kind.DefaultRange()
	return fmt.Sprintf("Defaults to ids %d - %d", r.Start, r.End)
}

// parseRange validates the id range entered in the form.
func parseRange(startText, endText string) (models.IDRange, []string) {
	var errs []string

	start, err := strconv.Atoi(strings.TrimSpace(startText))
	if err != nil {
		errs = append(errs, "Start ID: please enter a number")
	}
	end, err := strconv.Atoi(strings.TrimSpace(endText))
	if err != nil {
		errs = append(errs, "End ID: please enter a number")
	}
	if len(errs) > 0 {
		return models.IDRange{}, errs
	}

	r := models.IDRange{Start: start, End: end}
	if err = r.Validate(); err != nil {
		return models.IDRange{}, []string{err.Error()}
	}
	return r, nil
}

func planSummary(plan Plan) string {
	if plan.All {
		var b strings.Builder
		for _, k := range plan.Kinds {
			r := k.DefaultRange()
			fmt.Fprintf(&b, "%s: %d - %d\n", k, r.Start, r.End)
		}
		return b.String()
	}

	if len(plan.Kinds) == 0 {
		return "nothing selected"
	}
	return fmt.Sprintf("%s: %d - %d (%d ids)\n", plan.Kinds[0], plan.Range.Start, plan.Range.End, plan.Range.Len())
}

// databaseSummary describes the target database without revealing passwords.
func databaseSummary(cfg *models.DatabaseConfig) string {
	switch cfg.DBType {
	case "sqlite":
		uri, err := url.Parse(cfg.ConnectionString)
		if err != nil {
			return "Failed to parse database connection string"
		}
		file := uri.Opaque
		if file == "" {
			file = uri.Path
		}
		return fmt.Sprintf("Type: Sqlite\nFile: %s", file)
	case "postgres":
		conConf, err := pgx.ParseConfig(cfg.ConnectionString)
		if err != nil {
			return "Failed to parse database connection string"
		}
		return fmt.Sprintf("Type: Postgres\nUser: %s, Password: %s\nHost: %s, Port: %d\nDB Name: %s",
			conConf.User, strings.Repeat("*", len(conConf.Password)), conConf.Host, conConf.Port, conConf.Database)
	case "mysql":
		conConf, err := mysql.ParseDSN(cfg.ConnectionString)
		if err != nil {
			return "Failed to parse database connection string"
		}
		return fmt.Sprintf("Type: Mysql\nUser: %s, Password: %s\nAddress: %s\nDB Name: %s",
			conConf.User, strings.Repeat("*", len(conConf.Passwd)), conConf.Addr, conConf.DBName)
	}
	return "Unknown database type " + cfg.DBType
}
