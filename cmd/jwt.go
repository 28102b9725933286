package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"lifeguard/internal/config"
	"lifeguard/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// signToken issues an RS256 token for userID valid for ttl.
func signToken(privateKeyPEM []byte, userID uuid.UUID, ttl time.Duration, now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// JWTCommand constructs the 'jwt' subcommand that issues a bearer token for
// the API. Without --subject a new random user ID is used.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a bearer token for the given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			keyFile, _ := cmd.Flags().GetString("private-key-file")

			userID := uuid.New()
			if subject != "" {
				parsed, err := uuid.Parse(subject)
				if err != nil {
					logger.Fatal(ctx, "subject must be a UUID", zap.String("subject", subject))
				}
				userID = parsed
			}

			pem := []byte(cfg.JWT.PrivateKey)
			if keyFile != "" {
				b, err := os.ReadFile(keyFile)
				if err != nil {
					logger.Fatal(ctx, "could not read private key file", zap.Error(err))
				}
				pem = b
			}

			signed, err := signToken(pem, userID, ttl, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not issue token", zap.Error(err))
			}

			logger.Debug(ctx, "issued token", zap.Stringer("userId", userID), zap.Duration("ttl", ttl))
			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "User ID the token is issued for, random when empty")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	cmd.Flags().String("private-key-file", "", "PEM file overriding the configured private key")

	return cmd
}
