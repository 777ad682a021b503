package main

import (
	"github.com/dailyquil/dailyquil/config"
	"github.com/dailyquil/dailyquil/models"
	"github.com/dailyquil/dailyquil/routes"
	"github.com/dailyquil/dailyquil/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Prompt{},
		&models.Story{},
		&models.PromptSubmission{},
		&models.Reflection{},
		&models.WritingAnalytics{},
		&models.PageView{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
