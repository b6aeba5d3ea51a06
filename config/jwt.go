package config

import "time"

type Jwt struct {
	Secret    string `json:"secret" yaml:"secret"`
	ExpiresIn int64  `json:"expires_in" yaml:"expires_in"` // 秒
}

func (j *Jwt) TTL() time.Duration {
	return time.Duration(j.ExpiresIn) * time.Second
}
