package utils

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct 把带 json tag 的结构体转成 structpb.Struct
func ToStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

// FromStruct 把 structpb.Struct 按 json tag 填入 out
func FromStruct(s *structpb.Struct, out any) error {
	if s == nil {
		return nil
	}
	data, err := s.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
