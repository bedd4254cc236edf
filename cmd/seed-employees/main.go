// Command seed-employees imports the employee directory from an xlsx
// workbook. Each row is upserted through the same service the admin API uses,
// so existing employees are updated and their registrations follow identity
// changes.
//
// The first sheet must have a header row with employee_id, name and email
// columns; department and programme are optional.
//
// Flags:
//
//	--file      path to the workbook (required)
//	--dry-run   parse and validate without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/coursereg-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/employee"
	"github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/registration"
	"github.com/heartmarshall/coursereg-backend/internal/adapter/spreadsheet"
	"github.com/heartmarshall/coursereg-backend/internal/app"
	"github.com/heartmarshall/coursereg-backend/internal/config"
	"github.com/heartmarshall/coursereg-backend/internal/service/user"
)

func main() {
	fileFlag := flag.String("file", "", "path to the employee workbook")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	f, err := os.Open(*fileFlag)
	if err != nil {
		logger.Error("open workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}
	records, err := spreadsheet.ReadRecords(f)
	f.Close()
	if err != nil {
		logger.Error("read workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}

	inputs, skipped := toInputs(records)
	for _, s := range skipped {
		logger.Warn("skipping row", slog.Int("row", s.row), slog.String("error", s.err.Error()))
	}
	logger.Info("workbook parsed", slog.Int("valid", len(inputs)), slog.Int("skipped", len(skipped)))

	if *dryRunFlag {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := user.NewService(
		logger,
		employee.New(pool),
		audit.New(pool),
		postgres.NewTxManager(pool),
		registration.New(pool, registration.TableRegistrations),
		registration.New(pool, registration.TableUserDrafts),
	)

	var failed int
	for _, in := range inputs {
		if _, err := svc.Upsert(ctx, in); err != nil {
			failed++
			logger.Error("upsert employee",
				slog.String("employee_id", in.EmployeeID),
				slog.String("error", err.Error()),
			)
		}
	}

	logger.Info("seed complete", slog.Int("upserted", len(inputs)-failed), slog.Int("failed", failed))
	if failed > 0 {
		os.Exit(1)
	}
}

type skippedRow struct {
	row int
	err error
}

var columnAliases = map[string][]string{
	"employee_id": {"employee_id", "employeeid", "employee id", "emp_id", "id"},
	"name":        {"name", "employee name", "full name"},
	"email":       {"email", "e-mail", "mail"},
	"department":  {"department", "dept"},
	"programme":   {"programme", "program"},
}

func column(rec map[string]string, field string) string {
	for _, k := range columnAliases[field] {
		if v := strings.TrimSpace(rec[k]); v != "" {
			return v
		}
	}
	return ""
}

// toInputs maps workbook rows to upsert inputs. Rows are numbered as in the
// sheet, so the header is row 1.
func toInputs(records []map[string]string) ([]user.UpsertInput, []skippedRow) {
	var (
		inputs  []user.UpsertInput
		skipped []skippedRow
	)
	for i, rec := range records {
		in := user.UpsertInput{
			EmployeeID: column(rec, "employee_id"),
			Name:       column(rec, "name"),
			Email:      strings.ToLower(column(rec, "email")),
			Department: column(rec, "department"),
			Programme:  column(rec, "programme"),
		}
		if err := in.Validate(); err != nil {
			skipped = append(skipped, skippedRow{row: i + 2, err: err})
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, skipped
}
