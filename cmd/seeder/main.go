package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/palletops/opsdash/internal/bootstrap"
	"github.com/palletops/opsdash/internal/database"
)

func main() {
	action := flag.String("action", "seed", "Action to perform: schema, seed, clear")
	flag.Parse()

	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer app.DB.Close()

	seeder := database.NewDataSeeder(app.DB)

	var err error
	switch *action {
	case "schema":
		err = seeder.CreateSchema(ctx)
	case "seed":
		if err = seeder.CreateSchema(ctx); err == nil {
			err = seeder.Seed(ctx)
		}
	case "clear":
		err = seeder.Clear(ctx)
	default:
		log.Fatalf("unknown action %q", *action)
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("done:", *action)
}
