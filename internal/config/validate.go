package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
)

func Validate(cfg Config) error {
	if err := ValidateListenAddr(strings.TrimSpace(cfg.APIListen)); err != nil {
		return err
	}
	if !IsPickerMode(string(cfg.Picker)) {
		return errors.New("picker must be dialog or fixed")
	}
	if cfg.Picker == PickerFixed && strings.TrimSpace(cfg.DefaultFolder) == "" {
		return errors.New("defaultFolder is required when picker is fixed")
	}
	if cfg.MaxBodyMB < 1 {
		return errors.New("maxBodyMB must be positive")
	}
	return nil
}

func ValidateListenAddr(addr string) error {
	if addr == "" {
		return errors.New("apiListen is required")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return errors.New("apiListen must be in host:port format")
	}
	if host == "" {
		return errors.New("apiListen host is required")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return errors.New("apiListen port is invalid")
	}

	return nil
}
