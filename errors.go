package dnd

import (
	"errors"
	"reflect"
)

var (
	// ErrInvalidAttachment is returned when a nil element is attached to a
	// source or target. Only that attachment is rejected; the engine and the
	// registration are unaffected.
	ErrInvalidAttachment = errors.New("dnd: element must be a non-nil Element")

	// ErrMissingBeginDrag is returned when a drag source spec has no BeginDrag.
	ErrMissingBeginDrag = errors.New("dnd: drag source spec requires BeginDrag")

	// ErrMissingDrop is returned when a drop target spec has no Drop.
	ErrMissingDrop = errors.New("dnd: drop target spec requires Drop")
)

// validElement reports whether el can be used as an attachment. A typed nil
// pointer wrapped in the interface is rejected as well as a nil interface.
func validElement(el Element) bool {
	if el == nil {
		return false
	}
	v := reflect.ValueOf(el)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return !v.IsNil()
	}
	return true
}
