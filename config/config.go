package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Log      *Log      `json:"log" yaml:"log"`
	Machine  *Machine  `json:"machine" yaml:"machine"`
	Tracing  *Tracing  `json:"tracing" yaml:"tracing"`
	QRCode   *QRCode   `json:"qrcode" yaml:"qrcode"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}
	return conf
}

// Parse 解析 yaml 内容并补齐默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.fill()
	return &conf, nil
}

func (c *Config) fill() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Redis == nil {
		c.Redis = &Redis{Address: "127.0.0.1", Port: 6379}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.ExpiresIn == 0 {
		c.Jwt.ExpiresIn = 7 * 24 * 3600
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Machine == nil {
		c.Machine = &Machine{}
	}
	if c.Tracing == nil {
		c.Tracing = &Tracing{}
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "recycle-api"
	}
	if c.QRCode == nil {
		c.QRCode = &QRCode{}
	}
	if c.QRCode.Size == 0 {
		c.QRCode.Size = 256
	}
	if c.QRCode.HashSalt == "" {
		c.QRCode.HashSalt = "recycle"
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
