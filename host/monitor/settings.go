package monitor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"picotemp/host/serial"
)

// Settings configures the watch command. They are read from a YAML file:
//
//	device: /dev/ttyACM0
//	baud: 115200
//	read_timeout_ms: 500
//	alarm_celsius: 70
type Settings struct {
	Device        string `yaml:"device"`
	Baud          int    `yaml:"baud"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`

	// AlarmCelsius flags readings at or above this temperature. Zero
	// disables the alarm.
	AlarmCelsius float64 `yaml:"alarm_celsius"`

	// ShowConsole echoes firmware log lines that are not telemetry frames.
	ShowConsole bool `yaml:"show_console"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() *Settings {
	sc := serial.DefaultConfig("/dev/ttyACM0")
	return &Settings{
		Device:        sc.Device,
		Baud:          sc.Baud,
		ReadTimeoutMs: sc.ReadTimeout,
	}
}

// Load reads settings from path. A missing file yields DefaultSettings.
// Fields absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// SerialConfig converts the settings to a port configuration.
func (s *Settings) SerialConfig() *serial.Config {
	return &serial.Config{
		Device:      s.Device,
		Baud:        s.Baud,
		ReadTimeout: s.ReadTimeoutMs,
	}
}
