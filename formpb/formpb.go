// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package formpb converts forms to and from google.protobuf.Value messages so
// that a tree can be emitted as JSON or protobuf text format.
//
// The mapping is:
//
//	Symbol  {"symbol": "<name>"}
//	Integer {"integer": "<base 10 value>"}
//	List    [<subform>, ...]
//
// Integers are carried as strings because a protobuf Value number is a double
// and cannot represent every int64.
package formpb

import (
	"fmt"
	"strconv"

	"github.com/google/malreader/form"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	symbolKey  = "symbol"
	integerKey = "integer"
)

// ToValue returns the protobuf Value representation of f.
func ToValue(f form.Form) (*structpb.Value, error) {
	switch f := f.(type) {
	case *form.Symbol:
		return taggedValue(symbolKey, f.Name()), nil
	case *form.Integer:
		return taggedValue(integerKey, strconv.FormatInt(f.Int64(), 10)), nil
	case *form.List:
		lv := &structpb.ListValue{}
		for i := 0; i < f.Len(); i++ {
			v, err := ToValue(f.Nth(i))
			if err != nil {
				return nil, err
			}
			lv.Values = append(lv.Values, v)
		}
		return &structpb.Value{Kind: &structpb.Value_ListValue{ListValue: lv}}, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a protobuf Value", f)
	}
}

func taggedValue(key, s string) *structpb.Value {
	str := &structpb.Value{Kind: &structpb.Value_StringValue{StringValue: s}}
	return &structpb.Value{Kind: &structpb.Value_StructValue{StructValue: &structpb.Struct{
		Fields: map[string]*structpb.Value{key: str},
	}}}
}

// FromValue is the inverse of ToValue. It returns an error for any Value that
// ToValue could not have produced.
func FromValue(v *structpb.Value) (form.Form, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_ListValue:
		var forms []form.Form
		for i, elem := range k.ListValue.GetValues() {
			f, err := FromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", i, err)
			}
			forms = append(forms, f)
		}
		return form.NewList(forms...), nil
	case *structpb.Value_StructValue:
		return fromStruct(k.StructValue)
	default:
		return nil, fmt.Errorf("unexpected value kind %T, want list or struct", k)
	}
}

func fromStruct(s *structpb.Struct) (form.Form, error) {
	fields := s.GetFields()
	if len(fields) != 1 {
		return nil, fmt.Errorf("struct must have exactly one field, got %d", len(fields))
	}
	for key, v := range fields {
		sv, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("field %q must be a string, got %T", key, v.GetKind())
		}
		switch key {
		case symbolKey:
			return form.NewSymbol(sv.StringValue), nil
		case integerKey:
			n, err := strconv.ParseInt(sv.StringValue, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad integer %q: %w", sv.StringValue, err)
			}
			return form.NewInteger(n), nil
		default:
			return nil, fmt.Errorf("unknown field %q, want %q or %q", key, symbolKey, integerKey)
		}
	}
	panic("unreachable")
}

// MarshalJSON returns the protojson encoding of f's Value representation.
func MarshalJSON(f form.Form) ([]byte, error) {
	v, err := ToValue(f)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(v)
}

// MarshalText returns the prototext encoding of f's Value representation.
func MarshalText(f form.Form) ([]byte, error) {
	v, err := ToValue(f)
	if err != nil {
		return nil, err
	}
	return prototext.Marshal(v)
}
