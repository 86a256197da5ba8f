package main

import (
	"log"

	_ "ideate/docs"
	"ideate/internal/config"
	"ideate/internal/server"
)

// @title           Ideate API
// @version         1.0
// @description     Anonymous brainstorming boards: post, upvote and annotate short ideas.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
