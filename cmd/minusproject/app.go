package main

import (
	"github.com/1970jjh/minusproject/internal/advisor"
	"github.com/1970jjh/minusproject/internal/config"
	"github.com/1970jjh/minusproject/internal/logging"
	"github.com/1970jjh/minusproject/internal/recap"
	"github.com/1970jjh/minusproject/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

func applyPromptTemplates(cfg *config.LoadedConfig) {
	if cfg == nil {
		return
	}
	if cfg.AdvicePromptTemplate != "" {
		advisor.SetAdvicePromptTemplate(cfg.AdvicePromptTemplate)
	}
	if cfg.RecapPromptTemplate != "" {
		recap.SetRecapPromptTemplate(cfg.RecapPromptTemplate)
	}
	if cfg.PosterPromptTemplate != "" {
		recap.SetPosterPromptTemplate(cfg.PosterPromptTemplate)
	}
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
