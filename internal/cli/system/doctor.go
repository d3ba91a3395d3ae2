package system

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/keyring"
	"github.com/julianstephens/lovecount/internal/migration"
	"github.com/julianstephens/lovecount/internal/storage"
	"github.com/julianstephens/lovecount/internal/validation"
)

// schemaReporter is implemented by the SQL backends.
type schemaReporter interface {
	SchemaStatus() (migration.Status, error)
}

type DoctorCmd struct{}

type check struct {
	name string
	// needsStore checks are skipped when the store is unreachable.
	needsStore bool
	// warnOnly failures are reported but do not fail the run.
	warnOnly bool
	run      func(*cli.Context) error
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	checks := []check{
		{name: "Store reachable", run: checkStoreReachable},
		{name: "Schema version", needsStore: true, run: checkSchemaVersion},
		{name: "Migrations complete", needsStore: true, run: checkMigrationsComplete},
		{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
		{name: "Data validation", needsStore: true, run: checkValidation},
		{name: "Spin wheels", needsStore: true, warnOnly: true, run: checkWheels},
		{name: "Clock/timezone", run: checkClockTimezone},
		{name: "Keyring", run: checkKeyring},
	}

	hasError := false
	storeReachable := false
	for i, c := range checks {
		if c.needsStore && !storeReachable {
			ctx.Printf("⊘ %s: SKIPPED (store not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case errors.Is(err, errSkipped):
			ctx.Printf("⊘ %s: SKIPPED\n", c.name)
		case err != nil && c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		case err != nil:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		default:
			ctx.Printf("✓ %s: OK\n", c.name)
			if i == 0 {
				storeReachable = true
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

var errSkipped = errors.New("skipped")

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("failed to query store: %w", err)
	}
	return nil
}

func schemaStatus(ctx *cli.Context) (migration.Status, error) {
	r, ok := ctx.Store.(schemaReporter)
	if !ok {
		return migration.Status{}, errSkipped
	}
	st, err := r.SchemaStatus()
	if err != nil {
		return st, fmt.Errorf("failed to get schema version: %w", err)
	}
	return st, nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	st, err := schemaStatus(ctx)
	if err != nil {
		return err
	}
	if st.Current > st.Latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", st.Current, st.Latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	st, err := schemaStatus(ctx)
	if err != nil {
		return err
	}
	if st.Pending() > 0 {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", st.Current, st.Latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if storage.KindOf(ctx.Store.GetConfigPath()) == storage.KindMemory {
		return errSkipped
	}
	backups, err := ctx.BackupManager().ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'lovecount backup create'")
	}
	return nil
}

// validate runs the record validator and splits wheel findings from the rest.
func validate(ctx *cli.Context) (problems, wheels validation.ValidationResult, err error) {
	records, err := validation.LoadRecords(ctx.State)
	if err != nil {
		return problems, wheels, fmt.Errorf("failed to load records: %w", err)
	}
	result := validation.New().ValidateRecords(records)
	for _, c := range result.Conflicts {
		if c.Type == validation.ConflictTooFewWheelOption {
			wheels.Conflicts = append(wheels.Conflicts, c)
		} else {
			problems.Conflicts = append(problems.Conflicts, c)
		}
	}
	return problems, wheels, nil
}

func checkValidation(ctx *cli.Context) error {
	problems, _, err := validate(ctx)
	if err != nil {
		return err
	}
	if problems.HasConflicts() {
		return errors.New(strings.TrimSpace(problems.FormatReport()))
	}
	return nil
}

func checkWheels(ctx *cli.Context) error {
	_, wheels, err := validate(ctx)
	if err != nil {
		return err
	}
	if wheels.HasConflicts() {
		return errors.New(strings.TrimSpace(wheels.FormatReport()))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if ctx.Config != nil {
		if _, err := ctx.Config.Location(); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", ctx.Config.Timezone, err)
		}
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if ctx.Config == nil || ctx.Config.StoreTarget() != storage.KeyringTarget {
		return errSkipped
	}
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	if _, err := keyring.GetConnectionString(); err != nil {
		return err
	}
	return nil
}
