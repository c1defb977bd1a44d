package replay

import (
	"fmt"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/zhouchenh/go-descriptor"
	"strconv"
	"strings"
)

// Kind names a cache call.
type Kind string

const (
	KindGet Kind = "get"
	KindPut Kind = "put"
)

// MissToken is the expectation value that asks for a miss.
const MissToken = "-"

// Expectation is the outcome a get is checked against.
type Expectation struct {
	Miss  bool
	Value string
}

func ExpectMiss() Expectation {
	return Expectation{Miss: true}
}

func ExpectValue(value string) Expectation {
	return Expectation{Value: value}
}

// Matches reports whether a get outcome satisfies the expectation.
func (e Expectation) Matches(got fn.Option[string]) bool {
	if e.Miss {
		return got.IsNone()
	}
	return fn.ElimOption(got, func() bool { return false }, func(v string) bool {
		return v == e.Value
	})
}

func (e Expectation) String() string {
	if e.Miss {
		return "miss"
	}
	return quote(e.Value)
}

// Operation is one step of a replay script.
type Operation struct {
	Op     Kind
	Key    string
	Value  string
	Expect fn.Option[Expectation]
}

func Get(key string) Operation {
	return Operation{Op: KindGet, Key: key}
}

func Put(key, value string) Operation {
	return Operation{Op: KindPut, Key: key, Value: value}
}

// Expecting returns a copy of a get operation carrying an expectation.
func (o Operation) Expecting(e Expectation) Operation {
	o.Expect = fn.Some(e)
	return o
}

func (o Operation) Validate() error {
	switch o.Op {
	case KindGet:
	case KindPut:
		if o.Expect.IsSome() {
			return ErrExpectOnPut
		}
	default:
		return ErrUnknownOperation
	}
	return nil
}

func (o Operation) String() string {
	if o.Op == KindPut {
		return fmt.Sprintf("put %q=%q", o.Key, o.Value)
	}
	return fmt.Sprintf("%s %q", o.Op, o.Key)
}

var typeOfOperation = descriptor.TypeOfNew(new(*Operation))

// textKind accepts JSON strings and numbers, so scripts may write keys as
// 1 or "1".
func textKind(convert func(str string) (interface{}, bool)) descriptor.AssignableKinds {
	return descriptor.AssignableKinds{
		descriptor.ConvertibleKind{
			Kind: descriptor.KindString,
			ConvertFunction: func(original interface{}) (converted interface{}, ok bool) {
				str, ok := original.(string)
				if !ok {
					return
				}
				return convert(str)
			},
		},
		descriptor.ConvertibleKind{
			Kind: descriptor.KindFloat64,
			ConvertFunction: func(original interface{}) (converted interface{}, ok bool) {
				num, ok := original.(float64)
				if !ok {
					return
				}
				return convert(strconv.FormatFloat(num, 'f', -1, 64))
			},
		},
	}
}

func asString(str string) (interface{}, bool) {
	return str, true
}

// Descriptor describes one element of the "operations" list of a config
// file into an *Operation. Missing or unknown fields are left for Validate
// to report.
func Descriptor() descriptor.Describable {
	return &descriptor.Descriptor{
		Type: typeOfOperation,
		Filler: descriptor.Fillers{
			descriptor.ObjectFiller{
				ObjectPath: descriptor.Path{"Op"},
				ValueSource: descriptor.ValueSources{
					descriptor.ObjectAtPath{
						ObjectPath: descriptor.Path{"op"},
						AssignableKind: textKind(func(str string) (interface{}, bool) {
							return Kind(strings.ToLower(strings.TrimSpace(str))), true
						}),
					},
					descriptor.DefaultValue{Value: Kind("")},
				},
			},
			descriptor.ObjectFiller{
				ObjectPath: descriptor.Path{"Key"},
				ValueSource: descriptor.ValueSources{
					descriptor.ObjectAtPath{
						ObjectPath:     descriptor.Path{"key"},
						AssignableKind: textKind(asString),
					},
					descriptor.DefaultValue{Value: ""},
				},
			},
			descriptor.ObjectFiller{
				ObjectPath: descriptor.Path{"Value"},
				ValueSource: descriptor.ValueSources{
					descriptor.ObjectAtPath{
						ObjectPath:     descriptor.Path{"value"},
						AssignableKind: textKind(asString),
					},
					descriptor.DefaultValue{Value: ""},
				},
			},
			descriptor.ObjectFiller{
				ObjectPath: descriptor.Path{"Expect"},
				ValueSource: descriptor.ValueSources{
					descriptor.ObjectAtPath{
						ObjectPath: descriptor.Path{"expect"},
						AssignableKind: append(textKind(func(str string) (interface{}, bool) {
							if str == MissToken {
								return fn.Some(ExpectMiss()), true
							}
							return fn.Some(ExpectValue(str)), true
						}), descriptor.ConvertibleKind{
							Kind:            descriptor.KindMap,
							ConvertFunction: convertExpectationObject,
						}),
					},
					descriptor.DefaultValue{Value: fn.None[Expectation]()},
				},
			},
		},
	}
}

// convertExpectationObject handles the object form of "expect":
// {"miss": true} or {"value": "..."}. The object form can expect a hit on a
// value equal to MissToken.
func convertExpectationObject(original interface{}) (converted interface{}, ok bool) {
	m, ok := original.(map[string]interface{})
	if !ok {
		return
	}
	miss, hasMiss := m["miss"]
	value, hasValue := m["value"]
	switch {
	case hasMiss && !hasValue:
		if b, ok := miss.(bool); ok && b {
			return fn.Some(ExpectMiss()), true
		}
	case hasValue && !hasMiss:
		switch v := value.(type) {
		case string:
			return fn.Some(ExpectValue(v)), true
		case float64:
			return fn.Some(ExpectValue(strconv.FormatFloat(v, 'f', -1, 64))), true
		}
	}
	return nil, false
}

// DescribeOperations turns a decoded JSON list into operations. Every
// element must describe and validate; the first failure is reported with
// its position.
func DescribeOperations(original interface{}) ([]Operation, error) {
	arr, ok := original.([]interface{})
	if !ok {
		return nil, InvalidOperationError{Index: -1, Err: ErrUnknownOperation}
	}
	operations := make([]Operation, 0, len(arr))
	for index, i := range arr {
		// An empty key is a valid key, so a missing one is caught here
		// rather than by the descriptor default.
		if m, ok := i.(map[string]interface{}); ok {
			if _, hasKey := m["key"]; !hasKey {
				return nil, InvalidOperationError{Index: index, Err: ErrMissingKey}
			}
		}
		rawOperation, s, f := Descriptor().Describe(i)
		if s < 1 || f > 0 {
			return nil, InvalidOperationError{Index: index, Err: ErrUnknownOperation}
		}
		operation, ok := rawOperation.(*Operation)
		if !ok || operation == nil {
			return nil, InvalidOperationError{Index: index, Err: ErrUnknownOperation}
		}
		if m, ok := i.(map[string]interface{}); ok && operation.Expect.IsNone() {
			if _, hasExpect := m["expect"]; hasExpect {
				return nil, InvalidOperationError{Index: index, Err: ErrInvalidExpectation}
			}
		}
		if err := operation.Validate(); err != nil {
			return nil, InvalidOperationError{Index: index, Err: err}
		}
		operations = append(operations, *operation)
	}
	return operations, nil
}

// InvalidOperationError wraps the reason an operation was rejected.
type InvalidOperationError struct {
	Index int
	Err   error
}

func (e InvalidOperationError) Error() string {
	if e.Index < 0 {
		return "replay: Operations must be a list: " + e.Err.Error()
	}
	return fmt.Sprintf("replay: Invalid operation at index %d: %v", e.Index, e.Err)
}

func (e InvalidOperationError) Unwrap() error {
	return e.Err
}
