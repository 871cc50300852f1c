package cmd

import (
	"context"
	"fmt"
	"strings"

	"facet-reconciler/core/sdk"
	"facet-reconciler/feature/facet/models"
	"facet-reconciler/feature/facet/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sdkName     string
	sdkHome     string
	sdkPosition int
)

// sdkCmd is the parent command for sdk registry operations.
var sdkCmd = &cobra.Command{
	Use:   "sdk",
	Short: "Manage the sdk registry",
}

var sdkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered SDKs in candidate order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRegistry(cmd.Context(), func(ctx context.Context, r *registry.SdkRegistry) error {
			sdks, err := r.List(ctx)
			if err != nil {
				return err
			}
			fmt.Print(renderSdks(sdks))
			return nil
		})
	},
}

var sdkAddCmd = &cobra.Command{
	Use:   "add <id> <java|kotlin>",
	Short: "Register an SDK",
	Long: `Register an SDK. Java SDKs should carry their home path, which is what
explicit jdkHome arguments are matched against.

Example:
  sdk add jdk-17 java --name "JDK 17" --home /opt/jdk17`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := sdkName
		if name == "" {
			name = args[0]
		}
		return withRegistry(cmd.Context(), func(ctx context.Context, r *registry.SdkRegistry) error {
			added, err := r.Add(ctx, models.Sdk{
				ID:       args[0],
				Name:     name,
				Kind:     strings.ToLower(args[1]),
				HomePath: sdkHome,
				Position: sdkPosition,
			})
			if err != nil {
				return err
			}
			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Registered %s at position %d", added.ID, added.Position)))
			return nil
		})
	},
}

var sdkEnsureKotlinCmd = &cobra.Command{
	Use:   "ensure-kotlin",
	Short: "Make sure a Kotlin SDK is registered",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRegistry(cmd.Context(), func(ctx context.Context, r *registry.SdkRegistry) error {
			c, created, err := r.EnsureKotlinSdk(ctx)
			if err != nil {
				return err
			}
			if created {
				fmt.Println(SuccessStyle.Render("Created Kotlin SDK " + c.ID))
			} else {
				fmt.Println(SubtitleStyle.Render("Kotlin SDK already registered: " + c.ID))
			}
			return nil
		})
	},
}

var sdkSetProjectCmd = &cobra.Command{
	Use:   "set-project <project> <sdk-id>",
	Short: "Set the project SDK",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRegistry(cmd.Context(), func(ctx context.Context, r *registry.SdkRegistry) error {
			if err := r.SetProjectSdk(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println(SuccessStyle.Render(fmt.Sprintf("Project %s now uses %s", args[0], args[1])))
			return nil
		})
	},
}

func init() {
	sdkCmd.AddCommand(sdkListCmd, sdkAddCmd, sdkEnsureKotlinCmd, sdkSetProjectCmd)

	sdkAddCmd.Flags().StringVar(&sdkName, "name", "", "Display name (defaults to the id)")
	sdkAddCmd.Flags().StringVar(&sdkHome, "home", "", "Home path of a Java SDK")
	sdkAddCmd.Flags().IntVar(&sdkPosition, "position", 0, "Candidate order (0 appends)")

	RootCmd.AddCommand(sdkCmd)
}

// withRegistry connects to the database, migrates the registry tables and
// runs fn.
func withRegistry(ctx context.Context, fn func(context.Context, *registry.SdkRegistry) error) error {
	rt, err := loadRuntime(true)
	if err != nil {
		return err
	}
	r := registry.New(rt.db)
	if err := r.Migrate(); err != nil {
		rt.logger.Error("Failed to migrate sdk registry", zap.Error(err))
		return err
	}
	return fn(ctx, r)
}

// renderSdks formats the registry listing.
func renderSdks(sdks []models.Sdk) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("SDK Registry"))
	sb.WriteString("\n")
	if len(sdks) == 0 {
		sb.WriteString(SubtitleStyle.Render("No SDKs registered."))
		sb.WriteString("\n")
		return sb.String()
	}
	for _, s := range sdks {
		line := fmt.Sprintf("%3d  %s %s", s.Position, FieldStyle.Render(s.ID), SubtitleStyle.Render("("+s.Kind+")"))
		if s.Kind == string(sdk.KindJava) && s.HomePath != "" {
			line += "  " + s.HomePath
		}
		sb.WriteString(moduleStyle.Render(line))
		sb.WriteString("\n")
	}
	return sb.String()
}
