package config

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

// KeyData is key material used for signing credentials. Where the data comes from (inline, environment,
// filesystem) is a detail of the concrete type.
type KeyData interface {
	// HasData checks if this value has data.
	HasData(ctx context.Context) bool

	// GetData retrieves the bytes of the key
	GetData(ctx context.Context) ([]byte, error)
}

func UnmarshallYamlKeyDataString(data string) (KeyData, error) {
	return UnmarshallYamlKeyData([]byte(data))
}

func UnmarshallYamlKeyData(data []byte) (KeyData, error) {
	var rootNode yaml.Node

	if err := yaml.Unmarshal(data, &rootNode); err != nil {
		return nil, err
	}

	return keyDataUnmarshalYAML(rootNode.Content[0])
}

// keyDataUnmarshalYAML handles unmarshalling from YAML while allowing us to make decisions
// about how the data is unmarshalled based on the concrete type being represented
func keyDataUnmarshalYAML(value *yaml.Node) (KeyData, error) {
	// Ensure the node is a mapping node
	if value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("key data expected a mapping node, got %s", KindToString(value.Kind))
	}

	var keyData KeyData

fieldLoop:
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]

		switch keyNode.Value {
		case "value":
			keyData = &KeyDataValue{}
			break fieldLoop
		case "base64":
			keyData = &KeyDataBase64Val{}
			break fieldLoop
		case "env_var":
			keyData = &KeyDataEnvVar{}
			break fieldLoop
		case "path":
			keyData = &KeyDataFile{}
			break fieldLoop
		}
	}

	if keyData == nil {
		return nil, fmt.Errorf("invalid structure for key data type; does not match value, base64, env_var, path")
	}

	if err := value.Decode(keyData); err != nil {
		return nil, err
	}

	return keyData, nil
}

// KeyDataHolder lets struct fields carry polymorphic key data through YAML round trips.
type KeyDataHolder struct {
	InnerVal KeyData `json:"-" yaml:"-"`
}

func (k *KeyDataHolder) Inner() KeyData {
	return k.InnerVal
}

func (k *KeyDataHolder) HasData(ctx context.Context) bool {
	if k == nil || k.InnerVal == nil {
		return false
	}
	return k.InnerVal.HasData(ctx)
}

func (k *KeyDataHolder) GetData(ctx context.Context) ([]byte, error) {
	if k == nil || k.InnerVal == nil {
		return nil, fmt.Errorf("key data incorrectly configured")
	}
	return k.InnerVal.GetData(ctx)
}

func (k *KeyDataHolder) MarshalYAML() (interface{}, error) {
	if k.InnerVal == nil {
		return nil, nil
	}
	return k.InnerVal, nil
}

func (k *KeyDataHolder) UnmarshalYAML(value *yaml.Node) error {
	kd, err := keyDataUnmarshalYAML(value)
	if err != nil {
		return err
	}

	k.InnerVal = kd
	return nil
}

var _ KeyData = (*KeyDataHolder)(nil)
