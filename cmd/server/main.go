package main

import (
	"github.com/sirupsen/logrus"

	"playtube/internal/config"
	"playtube/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config load failed: %v", err)
	}

	s := server.New(cfg)
	s.Run()
}
