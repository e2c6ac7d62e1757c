package main

import (
	"fmt"
	"os"

	"github.com/nurpe/contract-intel/internal/auth"
	"github.com/nurpe/contract-intel/internal/config"
	"github.com/nurpe/contract-intel/internal/db"
	"github.com/nurpe/contract-intel/internal/excel"
	httphandler "github.com/nurpe/contract-intel/internal/http"
	"github.com/nurpe/contract-intel/internal/http/middleware"
	"github.com/nurpe/contract-intel/internal/logger"
	"github.com/nurpe/contract-intel/internal/pdf"
	"github.com/nurpe/contract-intel/internal/pipeline"
	"github.com/nurpe/contract-intel/internal/repository"
	"github.com/nurpe/contract-intel/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	contractRepo := repository.NewContractRepository(database)
	processor := pipeline.NewProcessor(contractRepo, log)

	excelGenerator := excel.NewGenerator()
	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}

	contractService := service.NewContractService(
		contractRepo, processor, excelGenerator, pdfGenerator, cfg, log,
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(contractService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting contracts service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
