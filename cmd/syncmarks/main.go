package main

import (
	"log"

	"github.com/syncmarks/syncmarks/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("syncmarks failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("syncmarks failed: %v", err)
	}
}
