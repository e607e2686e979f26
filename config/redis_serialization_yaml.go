package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func (r *Redis) MarshalYAML() (interface{}, error) {
	if r.InnerVal == nil {
		return nil, nil
	}
	return r.InnerVal, nil
}

// UnmarshalYAML handles unmarshalling from YAML while allowing us to make decisions
// about how the data is unmarshalled based on the concrete type being represented
func (r *Redis) UnmarshalYAML(value *yaml.Node) error {
	// Ensure the node is a mapping node
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("redis expected a mapping node, got %s", KindToString(value.Kind))
	}

	var redisConfig RedisImpl

fieldLoop:
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valueNode := value.Content[i+1]

		switch keyNode.Value {
		case "provider":
			switch RedisProvider(valueNode.Value) {
			case RedisProviderRedis:
				redisConfig = &RedisReal{Provider: RedisProviderRedis}
				break fieldLoop
			case RedisProviderMiniredis:
				redisConfig = &RedisMiniredis{Provider: RedisProviderMiniredis}
				break fieldLoop
			default:
				return fmt.Errorf("unknown redis provider %v", valueNode.Value)
			}
		}
	}

	if redisConfig == nil {
		return fmt.Errorf("invalid structure for redis; missing provider field")
	}

	if err := value.Decode(redisConfig); err != nil {
		return err
	}

	r.InnerVal = redisConfig
	return nil
}
