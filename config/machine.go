package config

// Machine 回收机终端配置
type Machine struct {
	// 为空时终端接口不校验 X-Machine-Key
	Keys []string `json:"keys" yaml:"keys"`
}

func (m *Machine) Allowed(key string) bool {
	if len(m.Keys) == 0 {
		return true
	}
	for _, k := range m.Keys {
		if k == key {
			return true
		}
	}
	return false
}
