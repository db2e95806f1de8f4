package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/jwt"
)

var (
	// token command flags
	tokenSubject string
	tokenRole    string
	tokenJSON    bool
)

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "name of the client the token is for (required)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "service", "role claim for the token")
	tokenCmd.Flags().BoolVar(&tokenJSON, "json", false, "output the token as JSON")
	_ = tokenCmd.MarkFlagRequired("subject")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an API token",
	Long: `Mint a bearer token for the server's protected routes.

Signs with JWT_SECRET from the environment (or .env), so this must run where
the server's secret is available.

Examples:
  # Token for a CI pipeline
  notesctl token --subject ci-ingester

  # Machine output
  notesctl token --subject ci-ingester --json`,
	RunE: runToken,
}

// runToken handles the token command
func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}

	manager := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	token, err := manager.GenerateServiceToken(tokenSubject, tokenRole)
	if err != nil {
		return fmt.Errorf("failed to mint token: %w", err)
	}

	if tokenJSON {
		return outputJSON(map[string]interface{}{
			"token":      token,
			"subject":    tokenSubject,
			"role":       tokenRole,
			"expires_in": cfg.Auth.TokenExpiry.String(),
		})
	}

	fmt.Println(token)
	return nil
}
