package format

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/jonwraymond/configsecret/value"
)

// cborDecMode decodes untyped maps as map[string]any so the result converts
// directly into a value.Map.
var cborDecMode cbor.DecMode

func init() {
	var err error
	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("format: CBOR decoder initialization failed: " + err.Error())
	}
}

// ParseCBOR decodes a single CBOR data item.
func ParseCBOR(data []byte) (value.Value, error) {
	var out any
	if err := cborDecMode.Unmarshal(data, &out); err != nil {
		return value.Value{}, fmt.Errorf("cbor: %w", err)
	}
	return value.FromAny(out)
}
