package config

import (
	"github.com/zhouchenh/go-descriptor"
	"github.com/zhouchenh/lrucache/internal/logger"
	"github.com/zhouchenh/lrucache/internal/replay"
	"math"
	"strconv"
	"strings"
)

// Config is the typed form of a config file.
type Config struct {
	Capacity   int
	Log        logger.Options
	Operations []replay.Operation
}

// LogOptions returns the logger settings of the config.
func (c *Config) LogOptions() logger.Options {
	return c.Log
}

// noCapacity marks a config without a capacity field.
const noCapacity = math.MinInt

var typeOfConfig = descriptor.TypeOfNew(new(*Config))

func Type() descriptor.Type {
	return typeOfConfig
}

func Descriptor() descriptor.Describable {
	return newDescriptor(nil)
}

func boolKind() descriptor.AssignableKind {
	return descriptor.AssignableKinds{
		descriptor.KindBool,
		descriptor.ConvertibleKind{
			Kind: descriptor.KindString,
			ConvertFunction: func(original interface{}) (converted interface{}, ok bool) {
				str, ok := original.(string)
				if !ok {
					return
				}
				switch strings.ToLower(strings.TrimSpace(str)) {
				case "true":
					return true, true
				case "false":
					return false, true
				default:
					return nil, false
				}
			},
		},
	}
}

// newDescriptor builds the config descriptor. Errors that the descriptor
// itself cannot carry, such as the reason an operation was rejected, are
// passed to errorHandler.
func newDescriptor(errorHandler func(err error)) descriptor.Describable {
	handleError := func(err error) {
		if errorHandler != nil {
			errorHandler(err)
		}
	}
	return &descriptor.Descriptor{
		Type: typeOfConfig,
		Filler: descriptor.Fillers{
			descriptor.ObjectFiller{
				ObjectPath: descriptor.Path{"Capacity"},
				ValueSource: descriptor.ValueSources{
					descriptor.ObjectAtPath{
						ObjectPath: descriptor.Path{"capacity"},
						AssignableKind: descriptor.AssignableKinds{
							descriptor.ConvertibleKind{
								Kind: descriptor.KindFloat64,
								ConvertFunction: func(original interface{}) (converted interface{}, ok bool) {
									num, ok := original.(float64)
									if !ok {
										return
									}
									if num != math.Trunc(num) || num > math.MaxInt32 {
										return 0, true
									}
									return int(num), true
								},
							},
							descriptor.ConvertibleKind{
								Kind: descriptor.KindString,
								ConvertFunction: func(original interface{}) (converted interface{}, ok bool) {
									str, ok := original.(string)
									if !ok {
										return
									}
									i, err := strconv.Atoi(strings.TrimSpace(str))
									if err != nil {
										return 0, true
									}
									return i, true
								},
							},
						},
					},
					descriptor.DefaultValue{Value: noCapacity},
				},
			},
			descriptor.ObjectFiller{
				ObjectPath: descriptor.Path{"Log"},
				ValueSource: descriptor.ValueSources{
					descriptor.ObjectAtPath{
						ObjectPath: descriptor.Path{"log"},
						AssignableKind: descriptor.ConvertibleKind{
							Kind: descriptor.KindMap,
							ConvertFunction: func(original interface{}) (converted interface{}, ok bool) {
								if _, ok := original.(map[string]interface{}); !ok {
									return nil, false
								}
								var logErr error
								rawOptions, s, f := logOptionsDescriptor(func(err error) {
									if logErr == nil {
										logErr = err
									}
								}).Describe(original)
								if logErr != nil {
									handleError(logErr)
									return nil, false
								}
								options, ok := rawOptions.(*logger.Options)
								if !ok || options == nil || s < 1 || f > 0 {
									return nil, false
								}
								return *options, true
							},
						},
					},
					descriptor.DefaultValue{Value: defaultLogOptions()},
				},
			},
			descriptor.ObjectFiller{
				ObjectPath: descriptor.Path{"Operations"},
				ValueSource: descriptor.ValueSources{
					descriptor.ObjectAtPath{
						ObjectPath: descriptor.Path{"operations"},
						AssignableKind: descriptor.ConvertibleKind{
							Kind: descriptor.KindSlice,
							ConvertFunction: func(original interface{}) (converted interface{}, ok bool) {
								operations, err := replay.DescribeOperations(original)
								if err != nil {
									handleError(&FieldError{Field: "operations", Err: err})
									return nil, false
								}
								return operations, true
							},
						},
					},
					descriptor.DefaultValue{Value: []replay.Operation(nil)},
				},
			},
		},
	}
}
