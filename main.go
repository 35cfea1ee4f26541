package main

import (
	"github.com/joho/godotenv"

	"github.com/mwenda/pdf-catalog/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
