package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config holds all application configuration values.
type Config struct {
	// MQTT
	MQTTBroker          string
	MQTTClientIDGPS     string
	MQTTClientIDReplay  string
	MQTTClientIDConsole string
	MQTTClientIDWeb     string
	MQTTClientIDDisplay string

	// Topics
	TopicGPS     string // JSON gps.Fix
	TopicGPSText string // rendered snapshot text

	// GPS receiver
	GPSSerialPort       string
	GPSBaudRate         int
	GPSValidateChecksum bool
	GPSPublishText      bool

	// Formatter output limit in bytes
	FormatBufferSize int

	// Replay
	ReplayFile     string
	ReplayInterval int // milliseconds
	ReplayLoop     bool

	// Web Server
	WebServerPort int
	WebStaticDir  string

	// Display
	DisplayUpdateInterval int // milliseconds
}

// Package-level unexported variables for singleton pattern:
//   - globalConfig: only reachable through InitGlobal and Get.
//   - configOnce: ensures InitGlobal() only runs once, even if called multiple times.
//   - configMu: write lock for initialization, read lock for Get().
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Default returns the configuration used for keys missing from the file.
func Default() *Config {
	return &Config{
		MQTTBroker:            "tcp://localhost:1883",
		MQTTClientIDGPS:       "nmea-gps-producer",
		MQTTClientIDReplay:    "nmea-replay-producer",
		MQTTClientIDConsole:   "nmea-console-subscriber",
		MQTTClientIDWeb:       "nmea-web-subscriber",
		MQTTClientIDDisplay:   "nmea-display-subscriber",
		TopicGPS:              "nmea/gps",
		TopicGPSText:          "nmea/gps/text",
		GPSBaudRate:           9600,
		GPSValidateChecksum:   true,
		FormatBufferSize:      192,
		ReplayInterval:        200,
		ReplayLoop:            true,
		WebServerPort:         8080,
		WebStaticDir:          "web",
		DisplayUpdateInterval: 500,
	}
}

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := Default()
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_GPS":
		c.MQTTClientIDGPS = value
	case "MQTT_CLIENT_ID_REPLAY":
		c.MQTTClientIDReplay = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value
	case "MQTT_CLIENT_ID_DISPLAY":
		c.MQTTClientIDDisplay = value

	// Topics
	case "TOPIC_GPS":
		c.TopicGPS = value
	case "TOPIC_GPS_TEXT":
		c.TopicGPSText = value

	// GPS
	case "GPS_SERIAL_PORT":
		c.GPSSerialPort = value
	case "GPS_BAUD_RATE":
		rate, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid GPS_BAUD_RATE %q: %w", value, err)
		}
		if rate <= 0 {
			return fmt.Errorf("GPS_BAUD_RATE must be positive, got %d", rate)
		}
		c.GPSBaudRate = rate
	case "GPS_VALIDATE_CHECKSUM":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid GPS_VALIDATE_CHECKSUM %q: %w", value, err)
		}
		c.GPSValidateChecksum = v
	case "GPS_PUBLISH_TEXT":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid GPS_PUBLISH_TEXT %q: %w", value, err)
		}
		c.GPSPublishText = v

	case "FORMAT_BUFFER_SIZE":
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid FORMAT_BUFFER_SIZE %q: %w", value, err)
		}
		if size < 17 || size > 4096 {
			return fmt.Errorf("FORMAT_BUFFER_SIZE must be 17-4096, got %d", size)
		}
		c.FormatBufferSize = size

	// Replay
	case "REPLAY_FILE":
		c.ReplayFile = value
	case "REPLAY_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid REPLAY_INTERVAL %q: %w", value, err)
		}
		c.ReplayInterval = interval
	case "REPLAY_LOOP":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid REPLAY_LOOP %q: %w", value, err)
		}
		c.ReplayLoop = v

	// Web Server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port
	case "WEB_STATIC_DIR":
		c.WebStaticDir = value

	// Display
	case "DISPLAY_UPDATE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_UPDATE_INTERVAL %q: %w", value, err)
		}
		c.DisplayUpdateInterval = interval

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.TopicGPS == "" {
		return fmt.Errorf("TOPIC_GPS is required")
	}
	if c.GPSPublishText && c.TopicGPSText == "" {
		return fmt.Errorf("TOPIC_GPS_TEXT is required when GPS_PUBLISH_TEXT is set")
	}
	if c.GPSSerialPort == "" && c.ReplayFile == "" {
		return fmt.Errorf("GPS_SERIAL_PORT or REPLAY_FILE is required")
	}
	if c.ReplayInterval <= 0 {
		return fmt.Errorf("REPLAY_INTERVAL must be positive")
	}
	if c.DisplayUpdateInterval <= 0 {
		return fmt.Errorf("DISPLAY_UPDATE_INTERVAL must be positive")
	}
	return nil
}

// ReplayEvery is the replay pacing as a duration.
func (c *Config) ReplayEvery() time.Duration {
	return time.Duration(c.ReplayInterval) * time.Millisecond
}

// DisplayEvery is the display refresh period as a duration.
func (c *Config) DisplayEvery() time.Duration {
	return time.Duration(c.DisplayUpdateInterval) * time.Millisecond
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called multiple times.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
