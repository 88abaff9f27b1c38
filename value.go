// Copyright (c) 2026 The subtree Authors.
//
// SPDX-License-Identifier: MPL-2.0

package subtree

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"jsouthworth.net/go/dyn"
)

// ValueNew turns a native go value into a subtree Value as long as the
// type can be represented in the container model. ValueNew will panic
// if the value is not a representable type.
func ValueNew(data interface{}) *Value {
	return valueNew(data)
}

func valueNew(data interface{}) *Value {
	if data == nil {
		return &Value{data: nil}
	}
	switch d := data.(type) {
	case *Value:
		return d
	case *Object, *PairList, *TaggedObject, *Array:
	case bool, string, float64, *Path, Segment:
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		// Normalize all integer widths to int64 so equality between
		// independently constructed values works. When users unpack
		// the value the proper conversion is made to the requested
		// type, so widening here is OK.
		data = convertToInt64(d)
	case uint64:
		// uint64 stays unsigned only when the value cannot be
		// represented as an int64.
		if d <= math.MaxInt64 {
			data = int64(d)
		}
	case float32:
		data = float64(d)
	case map[string]interface{}:
		data = ObjectFrom(d)
	case []interface{}:
		data = ArrayFrom(d)
	default:
		panic(errors.New("cannot create value, invalid type"))
	}
	return &Value{
		data: data,
	}
}

// Value is a single node of a subtree. Values may be *Object,
// *PairList, *TaggedObject, *Array, int64, uint64, float64, string,
// bool, *Path, Segment, or nil. All integer types are up-converted to a
// 64 bit type when creating a value.
type Value struct {
	data interface{}
}

var valType = reflect.TypeOf((*Value)(nil))
var interfaceType = reflect.TypeOf((*interface{})(nil)).Elem()

// Perform allows one to match the kind of the Value with a behavior to
// perform on that kind without resorting to the assertion operations.
// Think of this as the switch v.(type) { ... } analogue for subtree
// values. It takes a list of func(v vT) oT functions and applies the
// first match to the value.
//
// If vT above is *Value or interface{} it matches all value kinds.
func (val *Value) Perform(fns ...interface{}) interface{} {
	if val == nil {
		return nil
	}
	vty := reflect.TypeOf(val.data)
	var action interface{}
	arg := val.data
	for _, fn := range fns {
		if action != nil {
			break
		}
		fnty := reflect.TypeOf(fn)
		if fnty.NumIn() != 1 {
			continue
		}
		inputType := fnty.In(0)
		switch {
		case vty == nil:
			if inputType == interfaceType {
				action = fn
			}
		case inputType == valType:
			arg = val
			action = fn
		case vty.AssignableTo(inputType):
			action = fn
		}
	}
	if action == nil {
		return nil
	}
	return dyn.Apply(action, arg)
}

// AsObject returns an *Object if the value is an Object and panics otherwise.
func (val *Value) AsObject() *Object {
	return val.data.(*Object)
}

// IsObject returns if the data stored in the value is an Object.
func (val *Value) IsObject() bool {
	_, isObject := val.data.(*Object)
	return isObject
}

// ToObject returns an *Object and allows the user to define a
// default. The value (*Object)(nil) is returned if no default is defined
// and the value is not an *Object.
func (val *Value) ToObject(defaultVal ...*Object) *Object {
	o, isObject := val.data.(*Object)
	if isObject {
		return o
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsPairList returns a *PairList if the value is a PairList and panics
// otherwise.
func (val *Value) AsPairList() *PairList {
	return val.data.(*PairList)
}

// IsPairList returns if the data stored in the value is a PairList.
func (val *Value) IsPairList() bool {
	_, isPairList := val.data.(*PairList)
	return isPairList
}

// ToPairList returns a *PairList and allows the user to define a
// default. The value (*PairList)(nil) is returned if no default is
// defined and the value is not a *PairList.
func (val *Value) ToPairList(defaultVal ...*PairList) *PairList {
	l, isPairList := val.data.(*PairList)
	if isPairList {
		return l
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsTaggedObject returns a *TaggedObject if the value is a TaggedObject
// and panics otherwise.
func (val *Value) AsTaggedObject() *TaggedObject {
	return val.data.(*TaggedObject)
}

// IsTaggedObject returns if the data stored in the value is a TaggedObject.
func (val *Value) IsTaggedObject() bool {
	_, isTagged := val.data.(*TaggedObject)
	return isTagged
}

// ToTaggedObject returns a *TaggedObject and allows the user to define
// a default. The value (*TaggedObject)(nil) is returned if no default
// is defined and the value is not a *TaggedObject.
func (val *Value) ToTaggedObject(defaultVal ...*TaggedObject) *TaggedObject {
	t, isTagged := val.data.(*TaggedObject)
	if isTagged {
		return t
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsArray returns an *Array if the value is an Array and panics otherwise.
func (val *Value) AsArray() *Array {
	return val.data.(*Array)
}

// IsArray returns if the data stored in the value is an Array.
func (val *Value) IsArray() bool {
	_, isArray := val.data.(*Array)
	return isArray
}

// ToArray returns an *Array and allows the user to define a
// default. The value (*Array)(nil) is returned if no default is defined
// and the value is not an *Array.
func (val *Value) ToArray(defaultVal ...*Array) *Array {
	arr, isArray := val.data.(*Array)
	if isArray {
		return arr
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsString returns a string if the value is a string and panics otherwise.
func (val *Value) AsString() string {
	return val.data.(string)
}

// IsString returns if the data stored in the value is a string.
func (val *Value) IsString() bool {
	_, isString := val.data.(string)
	return isString
}

// ToString returns a string and allows the user to define a
// default. The value "" is returned if no default is defined
// and the value is not a string.
func (val *Value) ToString(defaultVal ...string) string {
	s, isString := val.data.(string)
	if isString {
		return s
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return ""
}

var int64Type = reflect.TypeOf(int64(0))
var uint64Type = reflect.TypeOf(uint64(0))
var float64Type = reflect.TypeOf(float64(0))

func convertToInt64(v interface{}) int64 {
	return reflect.ValueOf(v).
		Convert(int64Type).
		Interface().(int64)
}

func canConvertNumeric(from, to reflect.Type, v interface{}) bool {
	// Stricter than (reflect.Value).Convert; 64 bit signed and
	// unsigned numbers only convert when the value fits.
	if from == to {
		return true
	}
	switch from {
	case int64Type:
		return to == uint64Type && v.(int64) >= 0
	case uint64Type:
		return to == int64Type && v.(uint64) <= math.MaxInt64
	}
	return false
}

// AsInt returns an int64 if the type is convertible to int64 and panics
// otherwise.
func (val *Value) AsInt() int64 {
	return convertToInt64(val.data)
}

// IsInt returns if the value is representable as an int64.
func (val *Value) IsInt() bool {
	return canConvertNumeric(reflect.TypeOf(val.data),
		int64Type, val.data)
}

// ToInt returns an int64 if the type is convertible to int64 and
// returns the user supplied default or 0 otherwise.
func (val *Value) ToInt(defaultVal ...int64) int64 {
	if val.IsInt() {
		return convertToInt64(val.data)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

// AsFloat returns a float64 if the value is a float64 and panics otherwise.
func (val *Value) AsFloat() float64 {
	return val.data.(float64)
}

// IsFloat returns if the value is a float64.
func (val *Value) IsFloat() bool {
	_, isFloat := val.data.(float64)
	return isFloat
}

// ToFloat returns a float64 if the value is numeric and returns the
// user supplied default or 0 otherwise.
func (val *Value) ToFloat(defaultVal ...float64) float64 {
	vty := reflect.TypeOf(val.data)
	if vty != nil && vty.ConvertibleTo(float64Type) &&
		(vty == float64Type || vty == int64Type || vty == uint64Type) {
		return reflect.ValueOf(val.data).
			Convert(float64Type).
			Interface().(float64)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

// AsBoolean returns a bool if the value is a bool and panics otherwise.
func (val *Value) AsBoolean() bool {
	return val.data.(bool)
}

// IsBoolean returns if the value is a bool.
func (val *Value) IsBoolean() bool {
	_, isBoolean := val.data.(bool)
	return isBoolean
}

// ToBoolean returns a bool if the value is a bool and returns the user
// supplied default or false otherwise.
func (val *Value) ToBoolean(defaultVal ...bool) bool {
	b, isBool := val.data.(bool)
	if isBool {
		return b
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return false
}

// ToInterface returns the held data directly as a native interface.
// Caution should be used as the integer types may not be the same as
// the type that was passed into the value due to the way they are
// stored internally.
func (val *Value) ToInterface() interface{} {
	return val.data
}

// ToNative converts a value to a go native type, recursively converting
// containers to maps and slices. The integer types may be different
// than the type that was inserted, see ValueNew.
func (val *Value) ToNative() interface{} {
	switch v := val.data.(type) {
	case interface {
		toNative() interface{}
	}:
		return v.toNative()
	default:
		return val.data
	}
}

// IsNull returns whether the value's data is nil.
func (val *Value) IsNull() bool {
	return val.data == nil
}

// Merge will combine the old value with the new value and return the
// result. Objects merge key by key and are never displaced by
// non-object values; any other value is overwritten by the new one.
func (val *Value) Merge(new *Value) *Value {
	switch v := val.data.(type) {
	case interface {
		merge(*Value) *Value
	}:
		return v.merge(new)
	default:
		return new
	}
}

// Equal provides an implementation of Equality for Value types.
func (val *Value) Equal(other interface{}) bool {
	if other == nil {
		return val == nil
	}
	ov, isValue := other.(*Value)
	if !isValue {
		return false
	}
	if val == nil || ov == nil {
		return val == ov
	}
	return equal(val.data, ov.data)
}

// Compare provides an implementation of Comparison for Value types.
func (val *Value) Compare(other interface{}) int {
	return dyn.Compare(val.data, other.(*Value).data)
}

// String returns a go string representation of the Value.
func (val *Value) String() string {
	if val == nil {
		return "null"
	}
	return fmt.Sprintf("%v", val.data)
}

func (val *Value) render(buf *bytes.Buffer) {
	if val == nil || val.data == nil {
		buf.WriteString("null")
		return
	}
	switch v := val.data.(type) {
	case interface {
		render(*bytes.Buffer)
	}:
		v.render(buf)
	case string:
		buf.WriteString(strconv.Quote(v))
	default:
		fmt.Fprintf(buf, "%v", v)
	}
}

func equal(v1, v2 interface{}) bool {
	return dyn.Equal(v1, v2)
}
