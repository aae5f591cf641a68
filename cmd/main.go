package main

import (
	"log"

	"github.com/Badsnus/fancyqr/cmd/fancyqr"
	"github.com/Badsnus/fancyqr/internal/adapters/config"

	_ "time/tzdata"
)

func main() {
	cfg := config.Get()
	app, err := fancyqr.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	if err = app.Run(); err != nil {
		log.Fatal(err)
	}
}
