package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"image-saver/internal/api"
	"image-saver/internal/config"
	"image-saver/internal/logger"
	"image-saver/internal/picker"
	"image-saver/internal/picker/native"
	"image-saver/internal/saver"
)

type serverApp struct {
	cfg    config.Config
	logSvc logger.LoggerService
	srv    *http.Server
	errCh  chan error
}

func (a *serverApp) Start() error {
	bootstrapLog := logger.NewStderr()

	cfg, err := config.LoadEffective(false)
	if err != nil {
		bootstrapLog.Error("failed to load config", err)
		return err
	}
	if err := config.Validate(cfg); err != nil {
		bootstrapLog.Error("config validation error", err)
		return err
	}
	a.cfg = cfg

	logSvc, err := logger.New(cfg)
	if err != nil {
		bootstrapLog.Error("logger init failed; using stderr", err)
		logSvc = bootstrapLog
	}
	a.logSvc = logSvc

	svc := saver.New(newPicker(cfg), logSvc, saver.Options{MatchExtension: cfg.MatchExtension})

	srv, err := api.NewServer(cfg, api.ServerDeps{
		Saver:  svc,
		Logger: logSvc,
	})
	if err != nil {
		logSvc.Error("config validation error", err)
		a.Stop(context.Background())
		return err
	}
	a.srv = srv

	a.errCh = make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		a.errCh <- err
	}()

	logSvc.Info(fmt.Sprintf("image-saverd listening on %s (picker: %s)", srv.Addr, cfg.Picker))
	return nil
}

func (a *serverApp) Stop(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.srv != nil {
		_ = a.srv.Shutdown(ctx)
	}
	if a.logSvc != nil {
		_ = a.logSvc.Close()
	}
}

func (a *serverApp) Errors() <-chan error {
	return a.errCh
}

func newPicker(cfg config.Config) picker.Picker {
	if cfg.Picker == config.PickerFixed {
		return picker.NewFixed(cfg.DefaultFolder)
	}
	return native.New(cfg.DefaultFolder)
}
