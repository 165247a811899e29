// Command token issues an API token signed with JWT_SECRET. It bootstraps the first
// admin token, since POST /auth/tokens itself requires an admin.
//
// Usage:
//
//	go run ./cmd/token admin ops
//	go run ./cmd/token moderator 001
//	go run ./cmd/token user 123456789
package main

import (
	"fmt"
	"os"

	"escrow-service/internal/auth"
	"escrow-service/internal/config"
	"escrow-service/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: token <user|moderator|admin> <subject>")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithWriter(os.Stderr, cfg.Server.PrettyLogs)

	role, err := auth.ParseRole(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Str("role", os.Args[1]).Msg("invalid role")
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	token, expiresAt, err := tokens.Issue(os.Args[2], role)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to issue token")
	}

	log.Info().Str("subject", os.Args[2]).Str("role", string(role)).Time("expires_at", expiresAt).Msg("token issued")
	fmt.Println(token)
}
