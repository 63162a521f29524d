// Command surveyrun scores all currently-unscored survey responses and
// exits. It is meant to run as a single exclusive process: two
// concurrent runs could both pick up the same unscored row before
// either writes.
package main

import (
	"context"
	"os"

	"olyph-ai-be/internal/bootstrap"
	"olyph-ai-be/internal/config"
	"olyph-ai-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		color.Red("Invalid configuration: %v", err)
		os.Exit(1)
	}

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Unable to connect to GORM DB: %v", err)
		os.Exit(1)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	color.Cyan("Scoring survey responses (strategy: %s)...", cfg.Survey.Strategy)

	summary, err := container.SurveyService.RunBatch(context.Background())
	if err != nil {
		color.Red("Batch run failed: %v", err)
		os.Exit(1)
	}

	color.Green("%s", summary)
}
