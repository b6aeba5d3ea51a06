package config

type Tracing struct {
	// OTLP HTTP endpoint，例如 localhost:4318；为空则不开启
	Endpoint    string `json:"endpoint" yaml:"endpoint"`
	ServiceName string `json:"service_name" yaml:"service_name"`
}
