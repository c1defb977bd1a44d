package config

import (
	"github.com/zhouchenh/go-descriptor"
	"github.com/zhouchenh/lrucache/internal/logger"
)

var typeOfLogOptions = descriptor.TypeOfNew(new(*logger.Options))

// defaultLogOptions applies when the "log" section is absent.
func defaultLogOptions() logger.Options {
	return logger.Options{
		Level:     logger.DefaultLogLevel,
		Color:     logger.Color(),
		Timestamp: true,
	}
}

// logOptionsDescriptor describes the "log" section into a *logger.Options.
// An unknown level is reported to errorHandler as a *FieldError.
func logOptionsDescriptor(errorHandler func(err error)) descriptor.Describable {
	defaults := defaultLogOptions()
	return &descriptor.Descriptor{
		Type: typeOfLogOptions,
		Filler: descriptor.Fillers{
			descriptor.ObjectFiller{
				ObjectPath: descriptor.Path{"Level"},
				ValueSource: descriptor.ValueSources{
					descriptor.ObjectAtPath{
						ObjectPath: descriptor.Path{"level"},
						AssignableKind: descriptor.ConvertibleKind{
							Kind: descriptor.KindString,
							ConvertFunction: func(original interface{}) (converted interface{}, ok bool) {
								str, ok := original.(string)
								if !ok {
									return
								}
								level, err := logger.ParseLevel(str)
								if err != nil {
									if errorHandler != nil {
										errorHandler(&FieldError{Field: "log.level", Err: err})
									}
									return nil, false
								}
								return level, true
							},
						},
					},
					descriptor.DefaultValue{Value: defaults.Level},
				},
			},
			descriptor.ObjectFiller{
				ObjectPath: descriptor.Path{"Color"},
				ValueSource: descriptor.ValueSources{
					descriptor.ObjectAtPath{
						ObjectPath:     descriptor.Path{"color"},
						AssignableKind: boolKind(),
					},
					descriptor.DefaultValue{Value: defaults.Color},
				},
			},
			descriptor.ObjectFiller{
				ObjectPath: descriptor.Path{"Timestamp"},
				ValueSource: descriptor.ValueSources{
					descriptor.ObjectAtPath{
						ObjectPath:     descriptor.Path{"timestamp"},
						AssignableKind: boolKind(),
					},
					descriptor.DefaultValue{Value: defaults.Timestamp},
				},
			},
		},
	}
}
