package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lotostats_backend/internal/app"
	"lotostats_backend/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lotostats",
		Short: "Lottery statistics backend: history, analytics and game generation",
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newSyncCmd(),
		newImportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp().Run()
		},
	}
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [game-slug...]",
		Short: "Pull missing contests from the results provider",
		Long: `Pull contests missing locally from the public results API and store them.
With no arguments every configured game is synced.

Example: lotostats sync mega_sena quina`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withGames(cmd.Context(), args, func(ctx context.Context, a *app.App, cfg config.GameConfig) error {
				stored, err := a.ServiceProvider.SyncService(ctx).SyncProvider(ctx, cfg)
				if err != nil {
					return fmt.Errorf("%s: %w", cfg.Slug(), err)
				}
				fmt.Printf("%s: %d new draws\n", cfg.Slug(), stored)
				return nil
			})
		},
	}
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [game-slug] [file.xlsx]",
		Short: "Load draw history from a spreadsheet",
		Long: `Load draws from an .xlsx history export into the database. Already stored
contests are skipped.

Example: lotostats import mega_sena Mega-Sena.xlsx`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withGames(cmd.Context(), args[:1], func(ctx context.Context, a *app.App, cfg config.GameConfig) error {
				stored, err := a.ServiceProvider.SyncService(ctx).ImportFile(ctx, cfg, args[1])
				if err != nil {
					return err
				}
				fmt.Printf("%s: imported %d draws\n", cfg.Slug(), stored)
				return nil
			})
		},
	}
	return cmd
}

// withGames bootstraps the app and runs fn for each requested game slug, or
// for every configured game when slugs is empty.
func withGames(ctx context.Context, slugs []string, fn func(context.Context, *app.App, config.GameConfig) error) error {
	a := app.NewApp()
	if err := a.Bootstrap(ctx); err != nil {
		return err
	}

	configs := a.ServiceProvider.GameCfgs()
	bySlug := make(map[string]config.GameConfig, len(configs))
	for _, cfg := range configs {
		bySlug[cfg.Slug()] = cfg
	}

	selected := configs
	if len(slugs) > 0 {
		selected = selected[:0:0]
		for _, slug := range slugs {
			cfg, ok := bySlug[slug]
			if !ok {
				return fmt.Errorf("unknown game: %s", slug)
			}
			selected = append(selected, cfg)
		}
	}

	for _, cfg := range selected {
		if err := fn(ctx, a, cfg); err != nil {
			return err
		}
	}
	return nil
}
