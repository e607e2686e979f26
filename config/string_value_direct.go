package config

import (
	"context"
)

// StringValueDirect is where the string data is specified directly. This can come from an inline string in
// the config file, or from values constructed in code that are already loaded.
type StringValueDirect struct {
	Value string `json:"value" yaml:"value"`

	// IsDirectString implies how this value was loaded from the config, without a nested sub-object. If true,
	// implies this was loaded as a string value instead of an object with the `value` key. This drives how we
	// render to YAML to be consistent on the round trip.
	//
	// This field is exposed publicly to allow for testing, but should not be manipulated directly.
	IsDirectString bool `json:"-" yaml:"-"`
}

func (kb *StringValueDirect) HasValue(ctx context.Context) bool {
	return len(kb.Value) > 0
}

func (kb *StringValueDirect) GetValue(ctx context.Context) (string, error) {
	return kb.Value, nil
}

func (kb *StringValueDirect) Clone() StringValueType {
	if kb == nil {
		return nil
	}

	clone := *kb
	return &clone
}

func NewStringValueDirect(value string) *StringValue {
	return &StringValue{InnerVal: &StringValueDirect{
		Value: value,
	}}
}

func NewStringValueDirectInline(value string) *StringValue {
	return &StringValue{InnerVal: &StringValueDirect{
		Value:          value,
		IsDirectString: true,
	}}
}

var _ StringValueType = (*StringValueDirect)(nil)
