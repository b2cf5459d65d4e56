// Package tt supports table-driven tests with little boilerplate.
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Table represents a test table.
type Table []*Case

// Case represents a test case. It is created by the Args function, and
// offers setters that augment and return itself; those calls can be chained
// like Args(...).Rets(...).
type Case struct {
	args []interface{}
	rets []interface{}
}

// Args returns a new Case with the given arguments.
func Args(args ...interface{}) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values, and returns the receiver. A value that implements the
// Matcher interface is matched with its Match method; any other value is
// matched with cmp.Equal.
func (c *Case) Rets(rets ...interface{}) *Case {
	c.rets = rets
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name string
	body interface{}
}

// Fn makes a new FnToTest with the given function name and body.
func Fn(name string, body interface{}) *FnToTest {
	return &FnToTest{name, body}
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...interface{})
}

// Test tests a function against test cases.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		if !match(test.rets, rets) {
			t.Errorf("%s(%s) -> %s, want %s", fn.name,
				sprintValues(test.args), sprintValues(rets), sprintValues(test.rets))
		}
	}
}

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match.
	Match(ret interface{}) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(interface{}) bool { return true }

func match(want, actual []interface{}) bool {
	if len(want) != len(actual) {
		return false
	}
	for i, w := range want {
		if m, ok := w.(Matcher); ok {
			if !m.Match(actual[i]) {
				return false
			}
		} else if !cmp.Equal(w, actual[i]) {
			return false
		}
	}
	return true
}

func sprintValues(values []interface{}) string {
	ss := make([]string, len(values))
	for i, value := range values {
		ss[i] = fmt.Sprint(value)
	}
	return strings.Join(ss, ", ")
}

func call(fn interface{}, args []interface{}) []interface{} {
	argValues := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value; work around this by
			// taking the ValueOf a pointer to nil and getting its Elem.
			var v interface{}
			argValues[i] = reflect.ValueOf(&v).Elem()
		} else {
			argValues[i] = reflect.ValueOf(arg)
		}
	}
	retValues := reflect.ValueOf(fn).Call(argValues)
	rets := make([]interface{}, len(retValues))
	for i, retValue := range retValues {
		rets[i] = retValue.Interface()
	}
	return rets
}
