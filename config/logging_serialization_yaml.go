package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func (l *LoggingConfig) MarshalYAML() (interface{}, error) {
	if l.InnerVal == nil {
		return nil, nil
	}
	return l.InnerVal, nil
}

// UnmarshalYAML selects the concrete logging implementation based on the
// type field before decoding the rest of the node into it.
func (l *LoggingConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("logging expected a mapping node, got %s", KindToString(value.Kind))
	}

	var impl LoggingImpl

fieldLoop:
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valueNode := value.Content[i+1]

		switch keyNode.Value {
		case "type":
			switch LoggingConfigType(valueNode.Value) {
			case LoggingConfigTypeText:
				impl = &LoggingConfigText{Type: LoggingConfigTypeText}
				break fieldLoop
			case LoggingConfigTypeJson:
				impl = &LoggingConfigJson{Type: LoggingConfigTypeJson}
				break fieldLoop
			case LoggingConfigTypeTint:
				impl = &LoggingConfigTint{Type: LoggingConfigTypeTint}
				break fieldLoop
			case LoggingConfigTypeNone:
				impl = &LoggingConfigNone{Type: LoggingConfigTypeNone}
				break fieldLoop
			default:
				return fmt.Errorf("unknown logging type %v", valueNode.Value)
			}
		}
	}

	if impl == nil {
		return fmt.Errorf("invalid structure for logging; missing type field")
	}

	if err := value.Decode(impl); err != nil {
		return err
	}

	l.InnerVal = impl
	return nil
}
