package main

import (
	"context"
	"os"

	"todoapp/internal/buildinfo"
	"todoapp/internal/client/cli"
	"todoapp/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
