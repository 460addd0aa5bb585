package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/sondage/internal/buildinfo"
	"github.com/dmitrijs2005/sondage/internal/logging"
	"github.com/dmitrijs2005/sondage/internal/server"
	"github.com/dmitrijs2005/sondage/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig(os.Args[1:])
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
