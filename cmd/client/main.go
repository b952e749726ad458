package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/ezilbeari/pennywise/internal/client/cli"
	"github.com/ezilbeari/pennywise/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx, bufio.NewScanner(os.Stdin))
}
