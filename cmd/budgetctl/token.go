package main

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"

	"budgethero/internal/config"
	"budgethero/internal/models"
	"budgethero/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func init() {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development access token",
		Long: `Signs an access token with JWT_PRIVATE_KEY. The API only accepts it when
it runs with the matching JWT_PUBLIC_KEY, so generate a pair with
"budgetctl keys" and export both before starting the server.

Examples:
  budgetctl token --user 9b2f6c1e-2f55-4a8e-9a57-0d3f5b1f1c11
  budgetctl token --role admin --ttl 1h`,
		Args: cobra.NoArgs,
		RunE: runToken,
	}
	tokenCmd.Flags().String("user", "", "user ID (random when empty)")
	tokenCmd.Flags().String("role", models.RoleUser, "role claim (user or admin)")
	tokenCmd.Flags().Duration("ttl", 0, "token lifetime (defaults to JWT_ACCESS_TOKEN_DURATION)")

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate an RSA key pair for JWT_PRIVATE_KEY and JWT_PUBLIC_KEY",
		Args:  cobra.NoArgs,
		RunE:  runKeys,
	}

	vaultKeyCmd := &cobra.Command{
		Use:   "vault-key",
		Short: "Generate a TOKEN_VAULT_KEY for sealing aggregator tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := services.GenerateVaultKey()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "TOKEN_VAULT_KEY=%s\n", key)
			return nil
		},
	}

	rootCmd.AddCommand(tokenCmd, keysCmd, vaultKeyCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	if os.Getenv("JWT_PRIVATE_KEY") == "" {
		return errors.New("JWT_PRIVATE_KEY is not set; run budgetctl keys first")
	}

	userFlag, _ := cmd.Flags().GetString("user")
	role, _ := cmd.Flags().GetString("role")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	userID := uuid.New()
	if userFlag != "" {
		parsed, err := uuid.Parse(userFlag)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
		userID = parsed
	}

	cfg := config.Load()
	jwtCfg := cfg.JWT
	if ttl > 0 {
		jwtCfg.AccessTokenDuration = ttl
	}

	token, expiresAt, err := services.NewTokenService(&jwtCfg).GenerateAccessToken(userID, role)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "user:     %s\n", userID)
	fmt.Fprintf(out, "role:     %s\n", role)
	fmt.Fprintf(out, "expires:  %s\n", expiresAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(out, "token:    %s\n", token)
	return nil
}

// runKeys prints both keys base64 encoded, the format config expects
func runKeys(cmd *cobra.Command, _ []string) error {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	if err != nil {
		return err
	}

	pubDER, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("marshal public key: %w", err)
	}

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "JWT_PRIVATE_KEY=%s\n", base64.StdEncoding.EncodeToString(privPEM))
	fmt.Fprintf(out, "JWT_PUBLIC_KEY=%s\n", base64.StdEncoding.EncodeToString(pubPEM))
	return nil
}
