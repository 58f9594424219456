package main

import (
	"context"
	"log"

	"github.com/salesdata/orders-api/internal/app/tools"
)

func main() {
	if err := tools.Run(context.Background()); err != nil {
		log.Fatalf("tool relay failed: %v", err)
	}
}
