package main

import (
	"log"
	"os"

	"github.com/avc-dev/tinyapp/internal/app"
	"github.com/avc-dev/tinyapp/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	return application.Run()
}
