package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Location string `yaml:"location" json:"location"`
	InitData bool   `yaml:"init_data" json:"init_data"`
}

type WebConfig struct {
	Host  string `yaml:"host" json:"host"`
	Port  int    `yaml:"port" json:"port"`
	Debug bool   `yaml:"debug" json:"debug"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

func (c *AppConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Web.Host, c.Web.Port)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "StoreApi",
		Workdir:  "/var/storeapi",
		Location: "UTC",
		InitData: false,
	},
	Web: WebConfig{
		Host:  "0.0.0.0",
		Port:  1816,
		Debug: true,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "storeapi",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
		Debug:    false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/storeapi/storeapi.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig reads the YAML config file at cfile, falling back to
// DefaultAppConfig when the file does not exist. Environment variables
// prefixed with STOREAPI_ override file values.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "config parse error: %v\n", err)
			}
		}
	}

	setEnvValue("STOREAPI_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBoolValue("STOREAPI_SYSTEM_INIT_DATA", func(v bool) { cfg.System.InitData = v })

	setEnvValue("STOREAPI_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("STOREAPI_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvBoolValue("STOREAPI_WEB_DEBUG", func(v bool) { cfg.Web.Debug = v })

	setEnvValue("STOREAPI_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("STOREAPI_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvIntValue("STOREAPI_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("STOREAPI_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("STOREAPI_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("STOREAPI_DB_PWD", func(v string) { cfg.Database.Passwd = v })

	setEnvValue("STOREAPI_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvBoolValue("STOREAPI_LOGGER_FILE_ENABLE", func(v bool) { cfg.Logger.FileEnable = v })
	setEnvValue("STOREAPI_LOGGER_FILENAME", func(v string) { cfg.Logger.Filename = v })

	return cfg
}
