package main

import (
	"log"

	"github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal"
)

func main() {
	application, err := internal.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application run failed: %v", err)
	}
}
