package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisReal struct {
	Provider RedisProvider `json:"provider" yaml:"provider"`

	// The network type, either tcp or unix.
	// Default is tcp.
	Network string `json:"network" yaml:"network"`

	// host:port address.
	Address string `json:"address" yaml:"address"`

	// Protocol 2 or 3. Use the version to negotiate RESP version with redis-server.
	Protocol int `json:"protocol" yaml:"protocol"`

	// Use the specified Username to authenticate the current connection
	// with one of the connections defined in the ACL list when connecting
	// to a Redis 6.0 instance, or greater, that is using the Redis ACL system.
	Username *StringValue `json:"username" yaml:"username"`

	// Optional password. Must match the password specified in the
	// requirepass server configuration option, or the User Password when connecting
	// to a Redis 6.0 instance, or greater, that is using the Redis ACL system.
	Password *StringValue `json:"password" yaml:"password"`

	// Database to be selected after connecting to the server.
	DB int `json:"db" yaml:"db"`
}

func (d *RedisReal) GetProvider() RedisProvider {
	return RedisProviderRedis
}

func (d *RedisReal) ToRedisOptions(ctx context.Context) (*redis.Options, error) {
	protocol := 2
	if d.Protocol == 3 {
		protocol = 3
	}

	options := redis.Options{
		Addr:                  d.Address,
		Network:               d.Network,
		Protocol:              protocol,
		DB:                    d.DB,
		ContextTimeoutEnabled: true,
	}

	if d.Username != nil && d.Username.HasValue(ctx) {
		username, err := d.Username.GetValue(ctx)
		if err != nil {
			return nil, err
		}
		options.Username = username
	}

	if d.Password != nil && d.Password.HasValue(ctx) {
		password, err := d.Password.GetValue(ctx)
		if err != nil {
			return nil, err
		}
		options.Password = password
	}

	return &options, nil
}
