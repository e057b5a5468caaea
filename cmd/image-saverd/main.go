package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	app := &serverApp{}
	if err := app.Start(); err != nil {
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-app.Errors():
		if err != nil {
			app.logSvc.Error("server stopped", err)
			app.Stop(context.Background())
			os.Exit(1)
		}
	case sig := <-sigCh:
		app.logSvc.Info(fmt.Sprintf("shutdown signal: %s", sig))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		app.Stop(ctx)
		if err := <-app.Errors(); err != nil {
			fmt.Fprintf(os.Stderr, "server stopped: %v\n", err)
			os.Exit(1)
		}
	}
}
