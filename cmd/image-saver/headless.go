package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"image-saver/internal/api/dto"
	"image-saver/internal/api/handlers"
	"image-saver/internal/config"
	"image-saver/internal/logger"
	"image-saver/internal/picker"
	"image-saver/internal/picker/native"
	"image-saver/internal/saver"
)

type optionalString struct {
	set   bool
	value string
}

func (o *optionalString) String() string {
	return o.value
}

func (o *optionalString) Set(v string) error {
	o.set = true
	o.value = v
	return nil
}

type optionalInt struct {
	set   bool
	value int
}

func (o *optionalInt) String() string {
	if !o.set {
		return ""
	}
	return strconv.Itoa(o.value)
}

func (o *optionalInt) Set(v string) error {
	if v == "" {
		return errors.New("value required")
	}
	val, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	o.set = true
	o.value = val
	return nil
}

type optionalBool struct {
	set   bool
	value bool
}

func (o *optionalBool) String() string {
	if !o.set {
		return ""
	}
	if o.value {
		return "true"
	}
	return "false"
}

func (o *optionalBool) Set(v string) error {
	if v == "" {
		v = "true"
	}
	val, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	o.set = true
	o.value = val
	return nil
}

func (o *optionalBool) IsBoolFlag() bool {
	return true
}

type stringSliceFlag struct {
	set    bool
	values []string
}

func (s *stringSliceFlag) String() string {
	return strings.Join(s.values, ",")
}

func (s *stringSliceFlag) Set(v string) error {
	s.set = true
	s.values = append(s.values, v)
	return nil
}

func hasHeadlessFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--headless" || arg == "--cli" {
			return true
		}
	}
	return false
}

func runHeadless(uiLog *uiLogger) (bool, error) {
	return runHeadlessArgs(os.Args[1:], os.Stdout, uiLog)
}

func runHeadlessArgs(args []string, out io.Writer, uiLog *uiLogger) (bool, error) {
	if !hasHeadlessFlag(args) {
		return false, nil
	}

	fs := flag.NewFlagSet("image-saver", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		headless     = fs.Bool("headless", false, "Run without GUI (CLI mode)")
		cli          = fs.Bool("cli", false, "Alias for --headless")
		show         = fs.Bool("show", false, "Print current config summary and exit")
		generateTok  = fs.Bool("generate-token", false, "Generate a new bearer token and print it")
		clearOrigins = fs.Bool("clear-allowed-origins", false, "Clear configured CORS origins")
		saveBatch    = fs.String("save-batch", "", "Save the images listed in a JSON file ({\"images\":[...]})")
	)

	var (
		apiListen      optionalString
		debug          optionalBool
		bearerToken    optionalString
		pickerMode     optionalString
		defaultFolder  optionalString
		matchExtension optionalBool
		maxBodyMB      optionalInt
		allowedOrigins stringSliceFlag
	)

	fs.Var(&apiListen, "api-listen", "API listen address (host:port)")
	fs.Var(&debug, "debug", "Enable debug logging (true/false)")
	fs.Var(&bearerToken, "bearer-token", "Bearer token to store in config")
	fs.Var(&pickerMode, "picker", "Destination picker: dialog or fixed")
	fs.Var(&defaultFolder, "default-folder", "Folder used by the fixed picker and as the dialog start folder")
	fs.Var(&matchExtension, "match-extension", "Name files after the image type (true/false)")
	fs.Var(&maxBodyMB, "max-body-mb", "Maximum request body size in MB")
	fs.Var(&allowedOrigins, "allowed-origin", "CORS origin allowed to call the API (repeatable)")

	if err := fs.Parse(args); err != nil {
		return true, err
	}

	if !*headless && !*cli {
		return false, nil
	}

	uiLog.Printf("headless start")

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return true, err
	}

	if *show {
		printConfigSummary(out, cfg)
	}

	changed := false

	if apiListen.set {
		val := strings.TrimSpace(apiListen.value)
		if err := config.ValidateListenAddr(val); err != nil {
			return true, err
		}
		cfg.APIListen = val
		changed = true
	}
	if debug.set {
		cfg.Debug = debug.value
		changed = true
	}
	if bearerToken.set {
		cfg.BearerToken = strings.TrimSpace(bearerToken.value)
		changed = true
	}
	if pickerMode.set {
		val := strings.ToLower(strings.TrimSpace(pickerMode.value))
		if !config.IsPickerMode(val) {
			return true, fmt.Errorf("invalid picker: %q", pickerMode.value)
		}
		cfg.Picker = config.PickerMode(val)
		changed = true
	}
	if defaultFolder.set {
		cfg.DefaultFolder = strings.TrimSpace(defaultFolder.value)
		changed = true
	}
	if matchExtension.set {
		cfg.MatchExtension = matchExtension.value
		changed = true
	}
	if maxBodyMB.set {
		if maxBodyMB.value < 1 {
			return true, fmt.Errorf("invalid max-body-mb: %d", maxBodyMB.value)
		}
		cfg.MaxBodyMB = maxBodyMB.value
		changed = true
	}

	if *clearOrigins {
		cfg.AllowedOrigins = []string{}
		changed = true
	}
	if allowedOrigins.set {
		origins := make([]string, 0, len(allowedOrigins.values))
		for _, raw := range allowedOrigins.values {
			val := strings.TrimSpace(raw)
			if val == "" {
				continue
			}
			origins = append(origins, val)
		}
		cfg.AllowedOrigins = origins
		changed = true
	}

	if *generateTok {
		token, err := newBearerToken()
		if err != nil {
			return true, err
		}
		cfg.BearerToken = token
		changed = true
		fmt.Fprintf(out, "Bearer token: %s\n", token)
	}

	if changed {
		if err := config.Validate(cfg); err != nil {
			return true, err
		}
		if err := config.Save(cfg); err != nil {
			return true, err
		}
		fmt.Fprintln(out, "Config saved.")
	}

	if *saveBatch != "" {
		runCfg, err := config.WithEnv(cfg)
		if err != nil {
			return true, err
		}
		msg, err := saveBatchFile(context.Background(), *saveBatch, runCfg, headlessPicker(runCfg), logger.NewWriter(uiLog.Writer()))
		if err != nil {
			return true, err
		}
		fmt.Fprintln(out, msg)
	}

	if !*show && !changed && *saveBatch == "" {
		fmt.Fprintln(out, "No changes requested. Use --show or set flags. Example:")
		fmt.Fprintln(out, "  image-saver --headless --generate-token --api-listen 127.0.0.1:8765")
	}

	return true, nil
}

func headlessPicker(cfg config.Config) picker.Picker {
	if cfg.Picker == config.PickerFixed {
		return picker.NewFixed(cfg.DefaultFolder)
	}
	return native.New(cfg.DefaultFolder)
}

func saveBatchFile(ctx context.Context, path string, cfg config.Config, p picker.Picker, log logger.LoggerService) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var req dto.SaveImagesRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return "", fmt.Errorf("invalid batch file %s: %w", path, err)
	}

	svc := saver.New(p, log, saver.Options{MatchExtension: cfg.MatchExtension})
	summary, err := svc.SaveImages(ctx, handlers.Payloads(req.Images))
	if err != nil {
		return "", err
	}
	return summary.Message(), nil
}

func printConfigSummary(out io.Writer, cfg config.Config) {
	fmt.Fprintln(out, "Config summary:")
	fmt.Fprintf(out, "  API Listen: %s\n", cfg.APIListen)
	fmt.Fprintf(out, "  Debug: %v\n", cfg.Debug)
	if cfg.BearerToken == "" {
		fmt.Fprintln(out, "  Bearer Token: (empty)")
	} else {
		fmt.Fprintf(out, "  Bearer Token: (set, len=%d)\n", len(cfg.BearerToken))
	}
	fmt.Fprintf(out, "  Max Body: %d MB\n", cfg.MaxBodyMB)
	if len(cfg.AllowedOrigins) == 0 {
		fmt.Fprintln(out, "  Allowed Origins: (none)")
	} else {
		fmt.Fprintln(out, "  Allowed Origins:")
		for _, o := range cfg.AllowedOrigins {
			fmt.Fprintf(out, "    - %s\n", o)
		}
	}
	fmt.Fprintf(out, "  Picker: %s\n", cfg.Picker)
	if cfg.DefaultFolder == "" {
		fmt.Fprintln(out, "  Default Folder: (empty)")
	} else {
		fmt.Fprintf(out, "  Default Folder: %s\n", cfg.DefaultFolder)
	}
	fmt.Fprintf(out, "  Match Extension: %v\n", cfg.MatchExtension)
}
