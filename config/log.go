package config

// Log 日志配置，File 为空时只输出到 stdout
type Log struct {
	Level      string `json:"level" yaml:"level"`
	File       string `json:"file" yaml:"file"`
	MaxSize    int    `json:"max_size" yaml:"max_size"` // MB
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	MaxAge     int    `json:"max_age" yaml:"max_age"` // 天
	Compress   bool   `json:"compress" yaml:"compress"`
}
