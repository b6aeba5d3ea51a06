package config

type QRCode struct {
	Size     int    `json:"size" yaml:"size"`
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
}

func ProvideQRCodeConfig(cfg *Config) *QRCode {
	return cfg.QRCode
}
