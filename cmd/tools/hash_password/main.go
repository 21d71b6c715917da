// Command hash_password produces a bcrypt hash suitable for the
// API_PASSWORD_HASH environment variable consumed by the API server.
//
// Usage:
//
//	go run cmd/tools/hash_password/main.go <password>
//
// BCRYPT_COST adjusts the hashing cost (default 12).
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/hr-dataset-agent/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hash_password <password>")
		os.Exit(1)
	}

	cfg, err := config.NewPasswordConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	hash, err := cfg.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
