// Command api runs the job board REST API server.
package main

import (
	"log"

	"github.com/Varun532-pixel/naukri-clone/internal/server"
)

// @title Naukri Clone API
// @version 1.0
// @description REST API for the job board: accounts, job postings, applications.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Server listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
