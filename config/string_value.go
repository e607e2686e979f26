package config

import (
	"context"
	"fmt"
)

type StringValueType interface {
	Clone() StringValueType

	// HasValue checks if this value has data.
	HasValue(ctx context.Context) bool

	// GetValue retrieves the string data of the value
	GetValue(ctx context.Context) (string, error)
}

// StringValue is the holder for a StringValueType instance. It exists so that struct fields can take a
// polymorphic string value that resolves from the config file, the environment, or the filesystem.
type StringValue struct {
	InnerVal StringValueType `json:"-" yaml:"-"`
}

func (sv *StringValue) Inner() StringValueType {
	return sv.InnerVal
}

func (sv *StringValue) CloneValue() *StringValue {
	if sv.InnerVal == nil {
		return nil
	}

	return &StringValue{InnerVal: sv.InnerVal.Clone()}
}

func (sv *StringValue) Clone() StringValueType {
	return sv.CloneValue()
}

func (sv *StringValue) HasValue(ctx context.Context) bool {
	if sv.InnerVal == nil {
		return false
	}
	return sv.InnerVal.HasValue(ctx)
}

func (sv *StringValue) GetValue(ctx context.Context) (string, error) {
	if sv.InnerVal == nil {
		return "", fmt.Errorf("string value incorrectly configured")
	}
	return sv.InnerVal.GetValue(ctx)
}

var _ StringValueType = (*StringValue)(nil)
