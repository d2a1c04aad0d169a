package tools

import (
	"context"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"

	"github.com/spf13/viper"
)

// StopSignalContext is cancelled on SIGINT/SIGTERM.
func StopSignalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// SetViperDefaultsFromObj registers every mapstructure key of obj so that
// viper.Unmarshal picks them up from the environment.
func SetViperDefaultsFromObj(v *viper.Viper, obj any) {
	rv := reflect.Indirect(reflect.ValueOf(obj))
	fields := reflect.VisibleFields(rv.Type())

	var fieldTag string
	var tagName string

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("mapstructure")
		if fieldTag == "" || fieldTag == "-" {
			continue
		}

		tagName = strings.SplitN(fieldTag, ",", 2)[0]

		v.SetDefault(tagName, rv.FieldByIndex(field.Index).Interface())
	}
}
