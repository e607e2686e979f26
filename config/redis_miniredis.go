package config

// RedisMiniredis runs an in-process miniredis server in place of a real
// redis. Only suitable for tests and local development; data does not
// survive the process and is not shared between processes.
type RedisMiniredis struct {
	Provider RedisProvider `json:"provider" yaml:"provider"`
}

func (d *RedisMiniredis) GetProvider() RedisProvider {
	return RedisProviderMiniredis
}
