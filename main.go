package main

import (
	"github.com/joho/godotenv"

	"github.com/mkroi/github-cards/cmd"
)

func main() {
	// Load GITHUB_TOKEN and friends from a local .env if present.
	_ = godotenv.Load()

	cmd.Execute()
}
