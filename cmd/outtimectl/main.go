package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go-outtime/internal/app"
	"go-outtime/internal/bootstrap"
	"go-outtime/internal/config"
	"go-outtime/internal/notification"
	"go-outtime/internal/shared/migration"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "outtimectl",
	Short:         "Administrative tasks for the OutTime backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, _, err = bootstrap.Init()
		return err
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return migration.Up(cfg.Postgres().URL())
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, _ := cmd.Flags().GetInt("steps")
		return migration.Down(cfg.Postgres().URL(), steps)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, dirty, err := migration.Version(cfg.Postgres().URL())
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)
		return nil
	},
}

var passCmd = &cobra.Command{
	Use:   "pass [morning|evening|late|cleanup]",
	Short: "Run a notification pass now",
	Long: `Run a notification pass immediately, bypassing the schedule.

Examples:
  outtimectl pass morning                 # every company
  outtimectl pass evening --company <id>  # one company
  outtimectl pass cleanup                 # expired invites`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := notification.ParseKind(args[0])
		if err != nil {
			return err
		}
		companyID, _ := cmd.Flags().GetString("company")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := app.RunPass(ctx, cfg, kind, companyID)
		if err != nil {
			return err
		}
		if kind == notification.KindCleanup {
			fmt.Printf("cleanup: deleted %d\n", res.Deleted)
			return nil
		}
		fmt.Printf("%s: sent %d, errors %d, skipped %d\n", kind, res.Sent, res.Errors, res.Skipped)
		return nil
	},
}

var inviteCmd = &cobra.Command{
	Use:   "invite <employee name>",
	Short: "Create an invite link for a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		companyID, _ := cmd.Flags().GetString("company")
		res, err := app.CreateInvite(cmd.Context(), cfg, companyID, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("invite for %s expires %s\n%s\n", res.EmployeeName, res.ExpiresAt, res.InviteLink)
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().Int("steps", 1, "Number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)

	passCmd.Flags().String("company", "", "Limit the pass to one company id")
	passCmd.Flags().Duration("timeout", 10*time.Minute, "Abort the pass after this long")

	inviteCmd.Flags().String("company", "", "Company id")
	_ = inviteCmd.MarkFlagRequired("company")

	rootCmd.AddCommand(migrateCmd, passCmd, inviteCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		zap.L().Error("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
