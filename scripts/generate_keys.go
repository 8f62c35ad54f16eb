//go:build ignore

// This script generates the secrets the courier portal reads from the environment.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	// 32 bytes matches the HS256 key size.
	sessionSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating session secret: %v\n", err)
		os.Exit(1)
	}

	swaggerPass, err := generateSecureKey(18)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating swagger password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("# Session and login flow tokens")
	fmt.Printf("SESSION_SECRET=%s\n", sessionSecret)
	fmt.Println()
	fmt.Println("# Swagger UI basic auth (optional)")
	fmt.Println("SWAGGER_USER=docs")
	fmt.Printf("SWAGGER_PASS=%s\n", swaggerPass)
	fmt.Println()
	fmt.Fprintln(os.Stderr, "Rotating SESSION_SECRET signs out every user and invalidates in-progress logins.")
}
