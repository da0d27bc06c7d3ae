package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JaimeStill/assay/internal/api"
	"github.com/JaimeStill/assay/internal/config"
	"github.com/JaimeStill/assay/internal/infrastructure"
)

func main() {
	specPath := flag.String("openapi", "", "write the OpenAPI document to this file and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	if *specPath != "" {
		if err := writeSpec(cfg, *specPath); err != nil {
			log.Fatal("openapi export failed: ", err)
		}
		return
	}

	srv, err := NewServer(cfg)
	if err != nil {
		log.Fatal("server init failed: ", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatal("server start failed: ", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		log.Fatal("shutdown failed: ", err)
	}
	srv.infra.Logger.Info("assay stopped")
}

func writeSpec(cfg *config.Config, path string) error {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return err
	}

	domain := api.NewDomain(api.NewRuntime(cfg, infra))
	if err := api.NewSpec(cfg, domain.Groups()).WriteFile(path); err != nil {
		return err
	}

	fmt.Println("wrote", path)
	return nil
}
