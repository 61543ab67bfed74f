package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
}

type WebConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Secret string `yaml:"secret"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System SysConfig `yaml:"system"`
	Web    WebConfig `yaml:"web"`
	Logger LogConfig `yaml:"logger"`
}

var DefaultAppConfig = AppConfig{
	System: SysConfig{
		Appid:    "Tripdesk",
		Location: "Asia/Dhaka",
		Workdir:  "/var/tripdesk",
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   1880,
		Secret: "9b6de5cc-tripdesk-b712-7f04d2a0",
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/tripdesk/tripdesk.log",
	},
}

// LoadConfig reads the YAML configuration file, falling back to defaults when
// the file is absent. Environment variables override file values.
func LoadConfig(cfile string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := DefaultAppConfig
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		switch {
		case os.IsNotExist(err):
			// missing file means defaults plus environment
		case err != nil:
			return nil, errors.Wrap(err, "read config file")
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, errors.Wrap(err, "parse config file")
			}
		}
	}

	setEnvStr("TRIPDESK_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvStr("TRIPDESK_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvStr("TRIPDESK_WEB_HOST", &cfg.Web.Host)
	setEnvInt("TRIPDESK_WEB_PORT", &cfg.Web.Port)
	setEnvStr("TRIPDESK_WEB_SECRET", &cfg.Web.Secret)
	setEnvStr("TRIPDESK_LOGGER_MODE", &cfg.Logger.Mode)

	if cfg.Logger.Filename == "" {
		cfg.Logger.Filename = filepath.Join(cfg.System.Workdir, "tripdesk.log")
	}
	return &cfg, nil
}

func setEnvStr(name string, val *string) {
	if v := os.Getenv(name); v != "" {
		*val = v
	}
}

func setEnvInt(name string, val *int) {
	if v := os.Getenv(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*val = i
		}
	}
}
