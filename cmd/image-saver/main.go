package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"image-saver/internal/config"
	"image-saver/internal/logger"
	"image-saver/internal/picker"
	"image-saver/internal/picker/fynepicker"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

func newBearerToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func main() {
	uiLog := newUILogger()
	defer uiLog.Close()

	handled, err := runHeadless(uiLog)
	if handled {
		if err != nil {
			uiLog.Printf("headless error: %v", err)
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	runUI(uiLog)
}

func runUI(uiLog *uiLogger) {
	a := app.NewWithID("com.image-saver.app")
	w := a.NewWindow("Image Saver")

	// The form edits config.yaml only; env overrides are applied when the
	// server starts so Save never writes them back.
	cfg, err := config.LoadOrDefault()
	status := widget.NewLabel("")
	if err != nil {
		status.SetText("Error loading config: " + err.Error())
		cfg = config.Default()
	}

	activity := widget.NewLabel("")
	activity.Wrapping = fyne.TextWrapWord
	feed := newActivityFeed(uiLog.Writer(), func(text string) {
		fyne.Do(func() { activity.SetText(text) })
	})
	activityLog := logger.NewWriter(feed)

	apiListenEntry := widget.NewEntry()
	apiListenEntry.SetText(cfg.APIListen)

	debugCheck := widget.NewCheck("Debug mode", nil)
	debugCheck.SetChecked(cfg.Debug)

	bearerTokenEntry := widget.NewEntry()
	bearerTokenEntry.SetText(cfg.BearerToken)
	bearerTokenBtn := widget.NewButton("Generate key", func() {
		token, err := newBearerToken()
		if err != nil {
			status.SetText("Failed to generate key: " + err.Error())
			return
		}
		bearerTokenEntry.SetText(token)
	})
	bearerTokenRow := container.NewBorder(nil, nil, nil, bearerTokenBtn, bearerTokenEntry)

	originsEntry := widget.NewMultiLineEntry()
	originsEntry.SetPlaceHolder("One origin per line")
	originsEntry.SetText(strings.Join(cfg.AllowedOrigins, "\n"))

	maxBodyEntry := widget.NewEntry()
	maxBodyEntry.SetText(strconv.Itoa(cfg.MaxBodyMB))

	pickerSelect := widget.NewSelect(config.PickerOptions(), func(string) {})
	pickerSelect.SetSelected(string(cfg.Picker))

	folderEntry := widget.NewEntry()
	folderEntry.SetText(cfg.DefaultFolder)
	folderBrowseBtn := widget.NewButton("Browse", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				status.SetText("Folder selection error: " + err.Error())
				return
			}
			if uri == nil {
				return
			}
			folderEntry.SetText(uri.Path())
		}, w)
	})
	folderRow := container.NewBorder(nil, nil, nil, folderBrowseBtn, folderEntry)

	matchExtCheck := widget.NewCheck("Name files after the image type (.png for PNG data)", nil)
	matchExtCheck.SetChecked(cfg.MatchExtension)

	readForm := func() (config.Config, bool) {
		next := cfg
		next.APIListen = strings.TrimSpace(apiListenEntry.Text)
		next.Debug = debugCheck.Checked
		next.BearerToken = strings.TrimSpace(bearerTokenEntry.Text)
		next.Picker = config.PickerMode(pickerSelect.Selected)
		next.DefaultFolder = strings.TrimSpace(folderEntry.Text)
		next.MatchExtension = matchExtCheck.Checked

		mb, err := strconv.Atoi(strings.TrimSpace(maxBodyEntry.Text))
		if err != nil || mb < 1 {
			status.SetText("Invalid max body size")
			return cfg, false
		}
		next.MaxBodyMB = mb

		origins := []string{}
		for _, line := range strings.Split(originsEntry.Text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				origins = append(origins, line)
			}
		}
		next.AllowedOrigins = origins

		if err := config.Validate(next); err != nil {
			status.SetText("Invalid settings: " + err.Error())
			return cfg, false
		}
		return next, true
	}

	server := &hostedServer{}
	dialogPicker := func(c config.Config) picker.Picker {
		return uiPicker(c, fynepicker.New(w, c.DefaultFolder))
	}

	var serverBtn *widget.Button
	refreshServerBtn := func() {
		if server.Running() {
			serverBtn.SetText("Stop server")
			return
		}
		serverBtn.SetText("Start server")
	}
	startServer := func(saved config.Config) {
		c, err := config.WithEnv(saved)
		if err != nil {
			status.SetText("Invalid environment: " + err.Error())
			return
		}
		err = server.Start(c, dialogPicker(c), activityLog, func(err error) {
			activityLog.Error("server stopped", err)
			fyne.Do(func() {
				status.SetText("Server stopped: " + err.Error())
				refreshServerBtn()
			})
		})
		if err != nil {
			status.SetText("Failed to start server: " + err.Error())
			return
		}
		status.SetText("Listening on " + c.APIListen)
	}
	serverBtn = widget.NewButton("Start server", func() {
		if server.Running() {
			if err := server.Stop(); err != nil {
				status.SetText("Failed to stop server: " + err.Error())
			} else {
				status.SetText("Server stopped.")
			}
			refreshServerBtn()
			return
		}
		startServer(cfg)
		refreshServerBtn()
	})

	saveBtn := widget.NewButton("Save", func() {
		next, ok := readForm()
		if !ok {
			return
		}

		if err := config.Save(next); err != nil {
			status.SetText("Error saving config: " + err.Error())
			return
		}
		cfg = next
		uiLog.Printf("config saved")

		if server.Running() {
			if err := server.Stop(); err != nil {
				status.SetText("Failed to restart server: " + err.Error())
				refreshServerBtn()
				return
			}
			startServer(cfg)
			refreshServerBtn()
			return
		}
		status.SetText("Saved.")
	})

	content := container.NewVBox(
		widget.NewLabel("API Listen (host:port)"),
		apiListenEntry,
		debugCheck,
		widget.NewLabel("Bearer token"),
		bearerTokenRow,
		widget.NewLabel("Allowed origins"),
		originsEntry,
		widget.NewLabel("Max request body (MB)"),
		maxBodyEntry,

		widget.NewSeparator(),
		widget.NewLabel("Destination"),
		pickerSelect,
		widget.NewLabel("Default folder"),
		folderRow,
		matchExtCheck,

		container.NewHBox(saveBtn, serverBtn),
		status,

		widget.NewSeparator(),
		widget.NewLabel("Activity"),
		activity,
	)

	if runCfg, err := config.WithEnv(cfg); err == nil && strings.TrimSpace(runCfg.BearerToken) != "" && config.Validate(runCfg) == nil {
		startServer(cfg)
		refreshServerBtn()
	}

	w.SetOnClosed(func() {
		_ = server.Stop()
	})

	scroll := container.NewVScroll(content)
	w.SetContent(scroll)

	w.Resize(fyne.NewSize(520, 720))
	w.SetFixedSize(false)
	w.ShowAndRun()
}
