package json

import (
	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal behaves like encoding/json, map keys sorted
func Marshal(v interface{}) ([]byte, error) {
	return api.Marshal(v)
}
