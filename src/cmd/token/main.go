// Command token mints a staff JWT for the mutating endpoints.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"admission-backend/src/config"
	"admission-backend/src/utils"
)

func main() {
	userID := flag.String("user", "", "staff user id")
	email := flag.String("email", "", "staff email")
	role := flag.String("role", "admissions", "staff role")
	ttlFlag := flag.String("ttl", "", "token lifetime, defaults to auth.token_ttl")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "❌ -user is required")
		os.Exit(2)
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "❌ JWT_SECRET is not set")
		os.Exit(1)
	}

	ttlText := cfg.Auth.TokenTTL
	if *ttlFlag != "" {
		ttlText = *ttlFlag
	}
	ttl, err := time.ParseDuration(ttlText)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ invalid ttl:", err)
		os.Exit(2)
	}

	token, err := utils.GenerateJWT([]byte(cfg.Auth.JWTSecret), *userID, *email, *role, ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
