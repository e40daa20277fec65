package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"solidaire/cmd/app"
	"solidaire/internal/config"
)

var application *app.App

var rootCmd = &cobra.Command{
	Use:           "solidaire",
	Short:         "Клиент маркетплейса солидарности: кампании, бутик, дары",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		var err error
		application, err = app.New(cfg)
		if err != nil {
			return err
		}

		// Токен без профиля: дотягиваем профиль или сбрасываем сессию
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.HTTPTimeout)
		defer cancel()
		application.Session.Restore(ctx)

		return nil
	},
}

func main() {
	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		registerCmd,
		whoamiCmd,
		verifyEmailCmd,
		forgotPasswordCmd,
		resetPasswordCmd,
		campaignsCmd,
		campaignCmd,
		donateCmd,
		boutiqueCmd,
		requestItemCmd,
		donateMaterialCmd,
		newAdminCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}
