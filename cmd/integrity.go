package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"facet-reconciler/feature/integrity"
	"facet-reconciler/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on snapshot storage and the sdk registry",
	Long: `Checks that the storage bucket has the project folder layout and that the
sdk registry schema matches the expected tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the project folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the sdk registry database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, serverCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, runStructure, runServer bool) error {
	rt, err := loadRuntime(false)
	if err != nil {
		return err
	}
	logg := rt.logger
	svc := integrity.NewService(rt.client, rt.cfg.Storage.Bucket, rt.cfg.Facet.Prefix, logg, rt.db)

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if fixFlag && errors.Is(err, checks.ErrBucketMissing) {
			logg.Warn("Bucket missing, creating it", zap.String("bucket", rt.cfg.Storage.Bucket))
			if err := svc.CreateBucket(ctx); err != nil {
				return err
			}
			missing, err = svc.CheckStructure(ctx)
		}
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else {
				logg.Info("Run 'integrity structure --fix' to create missing folders.")
			}
		}
	}

	if runServer {
		if rt.db == nil {
			logg.Warn("No database connected, skipping schema check")
			return nil
		}

		logg.Info("Checking sdk registry schema...")
		report, err := svc.CheckServer()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		if report.Matched {
			logg.Info("Schema matches expected definition.", zap.String("driver", report.Driver))
			return nil
		}

		logg.Warn("Schema mismatches found", zap.String("driver", report.Driver))
		tables := make([]string, 0, len(report.Tables))
		for table := range report.Tables {
			tables = append(tables, table)
		}
		sort.Strings(tables)
		for _, table := range tables {
			tbl := report.Tables[table]
			if tbl.Status == "ok" {
				continue
			}
			if len(tbl.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
			}
			if len(tbl.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}
	return nil
}
