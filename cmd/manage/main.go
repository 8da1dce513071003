package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/config"
	"github.com/sangkips/solarpower/internal/infrastructure/database"
	"github.com/sangkips/solarpower/internal/infrastructure/repository"
	"github.com/sangkips/solarpower/pkg/utils"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// cliActor is recorded in audit entries written by management commands
var cliActor = service.Actor{Username: "manage"}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "manage",
		Short:        "Administrative tasks for the solar power site",
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newCreateStaffCmd(),
		newDeleteServiceCmd(),
	)
	return root
}

func openDB() (*config.Config, *gorm.DB, error) {
	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database, false)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB()
			if err != nil {
				return err
			}
			return database.Migrate(db, &cfg.Database)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back SQL migrations (postgres only)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}
			cfg := config.Load()
			return database.MigrateDown(&cfg.Database, steps)
		},
	})
	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default services that are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			created, err := database.SeedServices(cmd.Context(), db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d service(s) created\n", created)
			return nil
		},
	}
}

func newCreateStaffCmd() *cobra.Command {
	var input service.CreateStaffInput

	cmd := &cobra.Command{
		Use:   "create-staff",
		Short: "Create a back-office staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB()
			if err != nil {
				return err
			}
			authService := service.NewAuthService(
				repository.NewStaffUserRepository(db),
				repository.NewTransactor(db),
				service.NewAuditService(repository.NewAdminLogRepository(db)),
				utils.NewJWTManager(cfg.Session.Secret, cfg.Session.ExpiryHours, cfg.App.Name),
			)

			staff, err := authService.CreateStaff(cmd.Context(), &input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "staff user %q created\n", staff.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Username, "username", "", "login name")
	cmd.Flags().StringVar(&input.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&input.Password, "password", "", "password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newDeleteServiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-service <slug>",
		Short: "Delete a service and its case studies",
		Long:  "Delete a service and every case study attached to it. Refused while installation projects reference the service.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			catalogService := service.NewCatalogService(
				repository.NewServiceRepository(db),
				repository.NewCaseStudyRepository(db),
				repository.NewInstallationProjectRepository(db),
				repository.NewTransactor(db),
				service.NewAuditService(repository.NewAdminLogRepository(db)),
			)

			out, err := catalogService.DeleteService(cmd.Context(), cliActor, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted service %q and %d case stud(ies)\n", out.Service.Title, out.CaseStudiesRemoved)
			return nil
		},
	}
}
