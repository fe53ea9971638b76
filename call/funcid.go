package call

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/google/uuid"
)

// FuncID identifies the code of a computation. It is comparable and is the
// first half of every derived Key.
//
// An implicit FuncID (IdentityOf) is the entry address of the function's
// code. Every closure built from the same func literal, and every method value
// of the same method, shares that address, so captured variables and receivers
// never take part in the identity. The compiler may clone a func literal when
// it inlines the enclosing function into several call sites; such clones get
// distinct addresses. Use NewFuncID when the identity must be stable
// regardless of where the closure is built.
type FuncID struct {
	code  uintptr
	token uuid.UUID
	name  string
}

// IdentityOf returns the implicit identity of fn. It panics if fn is not a
// non-nil function.
func IdentityOf(fn any) FuncID {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Errorf("call: identity of non-function %T", fn))
	}
	if v.IsNil() {
		panic(fmt.Errorf("call: identity of nil %T", fn))
	}
	pc := v.Pointer()
	name := ""
	if f := runtime.FuncForPC(pc); f != nil {
		name = f.Name()
	}
	return FuncID{code: pc, name: name}
}

// NewFuncID mints a fresh explicit identity. The name is informational; two
// identities minted with the same name are still distinct.
func NewFuncID(name string) FuncID {
	return FuncID{token: uuid.New(), name: name}
}

// IsZero reports whether id was never assigned.
func (id FuncID) IsZero() bool {
	return id == (FuncID{})
}

// Name returns the runtime symbol name for implicit identities, or the name
// given to NewFuncID.
func (id FuncID) Name() string {
	return id.name
}

func (id FuncID) String() string {
	if id.token != uuid.Nil {
		return fmt.Sprintf("%s#%s", id.name, id.token)
	}
	return fmt.Sprintf("%s@%#x", id.name, id.code)
}
