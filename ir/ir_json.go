package ir

import (
	"bytes"
	"encoding/json"
)

func (y *Node) MarshalJSON() ([]byte, error) {
	v, err := y.ToAny()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	n, err := FromAny(v)
	if err != nil {
		return err
	}
	*y = *n
	for _, c := range y.Children {
		c.Parent = y
	}
	return nil
}

func ToJSON(y *Node) ([]byte, error) {
	return json.Marshal(y)
}

func FromJSON(d []byte) (*Node, error) {
	y := &Node{}
	if err := json.Unmarshal(d, y); err != nil {
		return nil, err
	}
	return y, nil
}
