// main.go
package main

import (
	"log"

	"pollsite/config"
	"pollsite/routes"
)

func main() {
	config.LoadConfig()
	config.ConnectDatabase()

	router := routes.SetupRouter()

	log.Println("Starting server on http://localhost:8080")
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
