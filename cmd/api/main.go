package main

import (
	"context"
	"log"

	"github.com/salesdata/orders-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("sales orders API failed: %v", err)
	}
}
