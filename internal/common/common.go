package common

import (
	"fmt"
	"github.com/zhouchenh/lrucache/internal/logger"
	"strings"
)

func Output(a ...interface{}) {
	_, _ = fmt.Fprintln(logger.Output(), a...)
}

func ErrOutput(a ...interface{}) {
	logger.Error().Msg(fmt.Sprint(a...))
}

func Concatenate(a ...interface{}) string {
	builder := strings.Builder{}
	for _, value := range a {
		builder.WriteString(fmt.Sprint(value))
	}
	return builder.String()
}

func SnakeCaseConcatenate(a ...interface{}) string {
	builder := strings.Builder{}
	for _, value := range a {
		str := fmt.Sprint(value)
		if str == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("_")
		}
		builder.WriteString(str)
	}
	return builder.String()
}

func UpperString(s string) string {
	return strings.ToUpper(s)
}

// QuoteKeys renders keys for display, most recently used first.
func QuoteKeys(keys []string) string {
	quoted := make([]string, len(keys))
	for i, key := range keys {
		quoted[i] = fmt.Sprintf("%q", key)
	}
	return "[" + strings.Join(quoted, " ") + "]"
}
