// Package element defines a closed set of value kinds that can share one ring:
// integers, text and person records.
//
// Element is a sealed interface; only Int, Text and Person implement it. Use Match
// or a Visitor to handle every kind, or the type switch form when a subset suffices.
package element

import (
	"fmt"
	"strconv"
)

// Kind identifies the concrete type held by an Element.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindText
	KindPerson
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindPerson:
		return "person"
	default:
		return "invalid"
	}
}

// Element is one of Int, Text or Person.
type Element interface {
	Kind() Kind
	element()
}

// Int is an integer element.
type Int int

// Text is a string element.
type Text string

// Person is a user-defined record element.
type Person struct {
	Name string
	Age  int
}

func (Int) Kind() Kind    { return KindInt }
func (Text) Kind() Kind   { return KindText }
func (Person) Kind() Kind { return KindPerson }

func (Int) element()    {}
func (Text) element()   {}
func (Person) element() {}

// KindOf returns e's kind, or KindInvalid for a nil element such as an
// unwritten ring slot.
func KindOf(e Element) Kind {
	if e == nil {
		return KindInvalid
	}
	return e.Kind()
}

// Match calls the handler for e's kind and returns its result. Every kind must
// be handled. It panics if e is nil.
func Match[R any](e Element, onInt func(Int) R, onText func(Text) R, onPerson func(Person) R) R {
	switch v := e.(type) {
	case Int:
		return onInt(v)
	case Text:
		return onText(v)
	case Person:
		return onPerson(v)
	default:
		panic(fmt.Sprintf("element: unhandled element %T", e))
	}
}

// Visitor receives one call per visited element, chosen by kind.
type Visitor interface {
	VisitInt(Int)
	VisitText(Text)
	VisitPerson(Person)
}

// Visit dispatches e to the matching Visitor method. It panics if e is nil.
func Visit(v Visitor, e Element) {
	switch x := e.(type) {
	case Int:
		v.VisitInt(x)
	case Text:
		v.VisitText(x)
	case Person:
		v.VisitPerson(x)
	default:
		panic(fmt.Sprintf("element: unhandled element %T", e))
	}
}

// IsText reports whether e holds text. It fits ring.Filter and ring.CountFunc.
func IsText(e Element) bool {
	return KindOf(e) == KindText
}

// IsInt reports whether e holds an integer.
func IsInt(e Element) bool {
	return KindOf(e) == KindInt
}

// IsPerson reports whether e holds a person record.
func IsPerson(e Element) bool {
	return KindOf(e) == KindPerson
}

// Format renders e for dumps: integers bare, text quoted, persons as name:age.
func Format(e Element) string {
	if e == nil {
		return "<nil>"
	}
	return Match(e,
		func(v Int) string { return strconv.Itoa(int(v)) },
		func(v Text) string { return strconv.Quote(string(v)) },
		func(v Person) string { return v.Name + ":" + strconv.Itoa(v.Age) },
	)
}
