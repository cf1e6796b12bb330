package deepnote

import (
	"fmt"
	"reflect"
	"strings"
)

// An Initer prepares itself for a given sample rate.  Initialization
// happens on the control side; nothing on the per-sample path allocates.
type Initer interface {
	InitAudio(Params)
}

type Params struct {
	SampleRate SampleRate
	BufferSize int
}

func (p *Params) InitAudio(q Params) { *p = q }

// Init calls InitAudio on x if it is an Initer.  Otherwise it descends into
// x's exported fields and its array and slice elements, initializing every
// Initer it finds.  Nil pointers are skipped.
//
// Init panics if it meets a value that is only an Initer through a pointer
// it cannot take, such as a struct stored by value in an interface; the
// panic names the path to that value.
func Init(x interface{}, p Params) {
	w := initWalker{p: p}
	w.walk(reflect.ValueOf(x))
	if w.err != "" {
		panic("deepnote.Init: " + w.err)
	}
}

var initerType = reflect.TypeOf((*Initer)(nil)).Elem()

type initWalker struct {
	p    Params
	path []string
	err  string
}

func (w *initWalker) walk(v reflect.Value) {
	if w.err != "" || !v.IsValid() || !v.CanInterface() {
		return
	}
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		if v.Type().Implements(initerType) {
			v.Interface().(Initer).InitAudio(w.p)
			return
		}
		v = v.Elem()
	}
	if v.Type().Implements(initerType) {
		v.Interface().(Initer).InitAudio(w.p)
		return
	}
	if v.CanAddr() && reflect.PtrTo(v.Type()).Implements(initerType) {
		v.Addr().Interface().(Initer).InitAudio(w.p)
		return
	}
	if reflect.PtrTo(v.Type()).Implements(initerType) {
		w.err = fmt.Sprintf("%s: %s does not implement Initer but *%s does", w.where(), v.Type(), v.Type())
		return
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			w.descend(t.Field(i).Name, v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			w.descend(fmt.Sprintf("[%d]", i), v.Index(i))
		}
	}
}

func (w *initWalker) descend(step string, v reflect.Value) {
	w.path = append(w.path, step)
	w.walk(v)
	w.path = w.path[:len(w.path)-1]
}

func (w *initWalker) where() string {
	if len(w.path) == 0 {
		return "value"
	}
	return strings.Join(w.path, ".")
}
