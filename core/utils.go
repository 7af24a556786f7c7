package core

import (
	"reflect"

	"github.com/quinburrell/routingdaemon/state"
)

func Get[T state.Module](s *state.State) T {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return s.Modules[t.String()].(T)
}
