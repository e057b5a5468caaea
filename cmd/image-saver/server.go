package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"image-saver/internal/api"
	"image-saver/internal/config"
	"image-saver/internal/logger"
	"image-saver/internal/picker"
	"image-saver/internal/saver"
)

// hostedServer runs the command API inside the desktop app.
type hostedServer struct {
	mu  sync.Mutex
	srv *http.Server
}

func (h *hostedServer) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.srv != nil
}

// Start serves the API with p as the picker. onExit is called if the
// listener stops on its own.
func (h *hostedServer) Start(cfg config.Config, p picker.Picker, log logger.LoggerService, onExit func(error)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.srv != nil {
		return errors.New("server already running")
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	svc := saver.New(p, log, saver.Options{MatchExtension: cfg.MatchExtension})
	srv, err := api.NewServer(cfg, api.ServerDeps{Saver: svc, Logger: log})
	if err != nil {
		return err
	}
	h.srv = srv

	go func() {
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		h.mu.Lock()
		if h.srv == srv {
			h.srv = nil
		}
		h.mu.Unlock()
		if onExit != nil {
			onExit(err)
		}
	}()

	log.Info(fmt.Sprintf("image-saver listening on %s", srv.Addr))
	return nil
}

func (h *hostedServer) Stop() error {
	h.mu.Lock()
	srv := h.srv
	h.srv = nil
	h.mu.Unlock()

	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func uiPicker(cfg config.Config, dialogPicker picker.Picker) picker.Picker {
	if cfg.Picker == config.PickerFixed {
		return picker.NewFixed(cfg.DefaultFolder)
	}
	return dialogPicker
}
