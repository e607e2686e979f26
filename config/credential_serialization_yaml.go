package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func (a *CredentialAuth) MarshalYAML() (interface{}, error) {
	if a.InnerVal == nil {
		return nil, nil
	}
	return a.InnerVal, nil
}

// UnmarshalYAML handles unmarshalling from YAML while allowing us to make decisions
// about how the data is unmarshalled based on the concrete type being represented
func (a *CredentialAuth) UnmarshalYAML(value *yaml.Node) error {
	// Ensure the node is a mapping node
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("credential auth expected a mapping node, got %s", KindToString(value.Kind))
	}

	var auth CredentialAuthImpl

fieldLoop:
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valueNode := value.Content[i+1]

		switch keyNode.Value {
		case "type":
			switch CredentialAuthType(valueNode.Value) {
			case CredentialAuthTypeRefreshToken:
				auth = &CredentialAuthRefreshToken{Type: CredentialAuthTypeRefreshToken}
				break fieldLoop
			case CredentialAuthTypeJwtBearer:
				auth = &CredentialAuthJwtBearer{Type: CredentialAuthTypeJwtBearer}
				break fieldLoop
			case CredentialAuthTypeMetadata:
				auth = &CredentialAuthMetadata{Type: CredentialAuthTypeMetadata}
				break fieldLoop
			default:
				return fmt.Errorf("unknown credential auth type %v", valueNode.Value)
			}
		}
	}

	if auth == nil {
		return fmt.Errorf("invalid structure for credential auth; missing type field")
	}

	if err := value.Decode(auth); err != nil {
		return err
	}

	a.InnerVal = auth
	return nil
}
