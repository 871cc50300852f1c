package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"facet-reconciler/core/args"
	"facet-reconciler/core/config"
	"facet-reconciler/core/reconcile"
	"facet-reconciler/core/sdk"
	"facet-reconciler/feature/facet"
	"facet-reconciler/feature/facet/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile project
	applyProject  bool
	dryRunProject bool
	skipSdk       bool
	yesConfirm    bool

	// Flags for reconcile file
	filePlatform   string
	fileCurrent    string
	fileDefault    string
	fileOptions    []string
	fileJavaSdks   []string
	fileKotlinSdks []string
	fileProjectSdk string

	fileExternalSdk     bool
	filePlatformManaged bool

	jsonOutput bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile compiler facets against platform defaults",
	Long: `Compute the additional arguments, merged plugin options and SDK binding
of modules, either for a whole stored project or for buckets read from files.`,
}

// projectReconcileCmd plans and optionally applies a project reconciliation.
var projectReconcileCmd = &cobra.Command{
	Use:   "project <name>",
	Short: "Reconcile every module of a stored project",
	Long: `Reconcile every module of a project stored in object storage.

Prints the plan. With --apply the settings and SDK bindings are written after
confirmation.

Examples:
  # Plan only
  reconcile project shop

  # Apply with interactive confirmation
  reconcile project shop --apply

  # Apply non-interactively
  reconcile project shop --apply --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectReconcile,
}

// fileReconcileCmd reconciles a single module from bucket files.
var fileReconcileCmd = &cobra.Command{
	Use:   "file",
	Short: "Reconcile one module from bucket files (json, yaml or toml)",
	Long: `Reconcile one module whose current and default buckets are read from
files. The format follows the file extension: .json, .yaml, .yml or .toml.

SDK resolution runs when at least one SDK is given:
  --java id=/path/to/jdk   (repeatable, in candidate order)
  --kotlin id              (repeatable)
  --project-sdk id

Example:
  reconcile file --platform jvm --current app.yaml --default jvm.json \
    --options plugin:allopen:annotation=Entity --java jdk-17=/opt/jdk17`,
	RunE: runFileReconcile,
}

func init() {
	reconcileCmd.AddCommand(projectReconcileCmd, fileReconcileCmd)

	projectReconcileCmd.Flags().BoolVar(&applyProject, "apply", false, "Apply the plan (save settings and sdk bindings)")
	projectReconcileCmd.Flags().BoolVar(&dryRunProject, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	projectReconcileCmd.Flags().BoolVar(&skipSdk, "skip-sdk", false, "Do not resolve SDKs")
	projectReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm changes (non-interactive)")
	projectReconcileCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the plan as JSON")

	fileReconcileCmd.Flags().StringVar(&filePlatform, "platform", "jvm", "Module platform (jvm, js, native, metadata)")
	fileReconcileCmd.Flags().StringVar(&fileCurrent, "current", "", "Current bucket file")
	fileReconcileCmd.Flags().StringVar(&fileDefault, "default", "", "Default bucket file (empty bucket when omitted)")
	fileReconcileCmd.Flags().StringArrayVar(&fileOptions, "options", nil, "Previously persisted plugin option (repeatable, values kept verbatim)")
	fileReconcileCmd.Flags().StringArrayVar(&fileJavaSdks, "java", nil, "Java SDK candidate as id=home")
	fileReconcileCmd.Flags().StringArrayVar(&fileKotlinSdks, "kotlin", nil, "Kotlin SDK candidate id")
	fileReconcileCmd.Flags().StringVar(&fileProjectSdk, "project-sdk", "", "Id of the project SDK")
	fileReconcileCmd.Flags().BoolVar(&fileExternalSdk, "external-sdk", false, "SDK is configured by an external build system")
	fileReconcileCmd.Flags().BoolVar(&filePlatformManaged, "platform-managed", false, "SDK is set up by a platform plugin")
	fileReconcileCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	_ = fileReconcileCmd.MarkFlagRequired("current")

	RootCmd.AddCommand(reconcileCmd)
}

func runProjectReconcile(cmd *cobra.Command, cliArgs []string) error {
	ctx := context.Background()
	project := cliArgs[0]

	rt, err := loadRuntime(true)
	if err != nil {
		return err
	}
	l := rt.logger.With(zap.String("project", project))
	svc := rt.facetService()
	if err := svc.Migrate(); err != nil {
		return err
	}

	l.Info("Planning reconciliation...")
	plan, err := svc.Plan(ctx, project, skipSdk)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	if err := printOutput(plan, renderPlan(plan)); err != nil {
		return err
	}

	if !applyProject {
		if len(plan.Actions) > 0 {
			l.Info("No changes written. Use --apply to save settings and sdk bindings.")
		}
		return nil
	}
	if dryRunProject {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Actions) == 0 {
		l.Info("No actions required.")
		return nil
	}

	if !confirmChanges() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	spec, err := svc.Spec(project)
	if err != nil {
		return err
	}
	l.Info("Applying actions...")
	executed, err := reconcile.ApplyPlan(ctx, spec, plan, reconcile.ReconcileOptions{Confirmed: true})
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

func runFileReconcile(cmd *cobra.Command, cliArgs []string) error {
	current, err := readBucket(fileCurrent)
	if err != nil {
		return err
	}
	defaults := args.NewBucket()
	if fileDefault != "" {
		if defaults, err = readBucket(fileDefault); err != nil {
			return err
		}
	}

	env, err := sdkEnvironment(fileJavaSdks, fileKotlinSdks, fileProjectSdk)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := facet.NewService(cfg.Facet, nil, "", nil, cfg.Server.Platform(), zap.NewNop())
	result, err := svc.Reconcile(models.ReconcileRequest{
		Module:          strings.TrimSuffix(filepath.Base(fileCurrent), filepath.Ext(fileCurrent)),
		Platform:        filePlatform,
		Current:         current,
		Defaults:        defaults,
		PluginOptions:   fileOptions,
		ExternalSdk:     fileExternalSdk,
		PlatformManaged: filePlatformManaged,
		Sdk:             env,
	})
	if err != nil {
		return err
	}
	return printOutput(result, renderResult(result))
}

// readBucket decodes a bucket file, picking the codec from the extension.
func readBucket(name string) (*args.Bucket, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	b, err := args.DecodeFile(name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return b, nil
}

// sdkEnvironment builds an SDK table from command line candidates. It
// returns nil when no candidate was given.
func sdkEnvironment(java, kotlin []string, projectSdk string) (*reconcile.SdkEnvironment, error) {
	if len(java) == 0 && len(kotlin) == 0 {
		if projectSdk != "" {
			return nil, fmt.Errorf("project sdk %q is not among the candidates", projectSdk)
		}
		return nil, nil
	}

	env := &reconcile.SdkEnvironment{}
	for _, raw := range java {
		id, home, ok := strings.Cut(raw, "=")
		if !ok || id == "" || home == "" {
			return nil, fmt.Errorf("invalid java sdk %q, expected id=home", raw)
		}
		env.Available = append(env.Available, sdk.Candidate{ID: id, Name: id, Kind: sdk.KindJava, HomePath: home})
	}
	for _, id := range kotlin {
		env.Available = append(env.Available, sdk.Candidate{ID: id, Name: id, Kind: sdk.KindKotlin})
	}

	if projectSdk != "" {
		for i := range env.Available {
			if env.Available[i].ID == projectSdk {
				c := env.Available[i]
				env.ProjectSdk = &c
				break
			}
		}
		if env.ProjectSdk == nil {
			return nil, fmt.Errorf("project sdk %q is not among the candidates", projectSdk)
		}
	}
	return env, nil
}

func printOutput(v any, styled string) error {
	if !jsonOutput {
		fmt.Print(styled)
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// confirmChanges prompts the user for confirmation or uses --yes flag.
func confirmChanges() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to write settings and sdk bindings: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
