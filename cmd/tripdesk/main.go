package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tripdeskhq/tripdesk/config"
	"github.com/tripdeskhq/tripdesk/internal/adminapi"
	"github.com/tripdeskhq/tripdesk/internal/app"
	"github.com/tripdeskhq/tripdesk/internal/webserver"
)

var (
	cfile   = flag.String("c", "tripdesk.yml", "config file")
	showVer = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()
	if *showVer {
		fmt.Println(version)
		return
	}

	cfg, err := config.LoadConfig(*cfile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(1)
	}
	defer application.Release()

	webserver.Init(application)
	adminapi.InitRouter()

	errCh := make(chan error, 1)
	go func() {
		errCh <- webserver.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zap.S().Errorf("web server stopped: %s", err)
	case sig := <-sigCh:
		zap.S().Infof("received %s, shutting down", sig)
		if err := webserver.Shutdown(context.Background()); err != nil {
			zap.S().Errorf("shutdown: %s", err)
		}
	}
}
