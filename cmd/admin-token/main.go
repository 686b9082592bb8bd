package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fuzball1989/job-posting-portal/internal/config"
	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/store"
	"github.com/fuzball1989/job-posting-portal/pkg/jwt"
)

func main() {
	// Flags for customization
	email := flag.String("email", "admin@jobportal.com", "Email of the account to mint a token for")
	ttl := flag.Duration("ttl", 0, "Token lifetime (default: JWT_ACCESS_TTL)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.UsesMemoryStore() {
		fmt.Fprintln(os.Stderr, "Error: DB_DRIVER=memory has no persistent accounts to mint tokens for")
		os.Exit(1)
	}
	accessTTL := cfg.JWT.AccessTTL
	if *ttl > 0 {
		accessTTL = *ttl
	}

	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  accessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	backend, err := store.Open(ctx, cfg.Database, quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = backend.Close() }()

	user, err := backend.Users.GetByEmail(ctx, model.NormalizeEmail(*email))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error looking up %s: %v\n", *email, err)
		os.Exit(1)
	}
	if user == nil {
		fmt.Fprintf(os.Stderr, "No account with email %s\n", *email)
		fmt.Fprintf(os.Stderr, "\nCreate the demo accounts with: go run ./cmd/seed\n")
		os.Exit(1)
	}
	if !user.IsActive {
		fmt.Fprintf(os.Stderr, "Account %s is disabled\n", user.Email)
		os.Exit(1)
	}

	// Sign token
	token, err := jwtService.SignAccess(user.ID, user.Email, user.Role.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"accessToken": token,
			"tokenType":   "Bearer",
			"expiresIn":   int(accessTTL.Seconds()),
			"userId":      user.ID,
			"email":       user.Email,
			"role":        user.Role.String(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(accessTTL)
		fmt.Println("Access Token Generated")
		fmt.Println("======================")
		fmt.Printf("User ID:  %s\n", user.ID)
		fmt.Printf("Email:    %s\n", user.Email)
		fmt.Printf("Role:     %s\n", user.Role)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:%s/v1/auth/me\n", token[:min(len(token), 50)]+"...", cfg.Server.Port)
	}
}
