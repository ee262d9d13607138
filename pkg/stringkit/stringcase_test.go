package stringkit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/pp"

	"go.llib.dev/exemplar/pkg/stringkit"
)

func TestToSnake(t *testing.T) {
	type TC struct {
		In  string
		Out string
	}
	testcase.TableTest(t, map[string]TC{
		"empty string":                    {In: "", Out: ""},
		"one character":                   {In: "A", Out: "a"},
		"snake":                           {In: "hello_world", Out: "hello_world"},
		"pascal":                          {In: "HelloWorld", Out: "hello_world"},
		"pascal with abbreviation":        {In: "HTTPFoo", Out: "http_foo"},
		"camel":                           {In: "helloWorld", Out: "hello_world"},
		"upper":                           {In: "HELLO WORLD", Out: "hello_world"},
		"screaming snake":                 {In: "HELLO_WORLD", Out: "hello_world"},
		"dot case":                        {In: "hello.world", Out: "hello_world"},
		"kebab case":                      {In: "hello-world", Out: "hello_world"},
		"handles utf-8 characters":        {In: "Héllo Wörld", Out: "héllo_wörld"},
		"mixture of Title and lower case": {In: "the Hello World", Out: "the_hello_world"},
	}, func(t *testcase.T, tc TC) {
		t.Must.Equal(tc.Out, stringkit.ToSnake(tc.In), "original:", assert.Message(pp.Format(tc.In)))
	})
}

func TestIsSnake(t *testing.T) {
	type TC struct {
		In  string
		Out bool
	}
	testcase.TableTest(t, map[string]TC{
		"empty string":                     {In: "", Out: false},
		"snake case":                       {In: "hello_world", Out: true},
		"snake case with utf-8 characters": {In: "héllo_wörld", Out: true},
		"snake case with number suffix":    {In: "hello_world42", Out: true},
		"pascal case":                      {In: "HelloWorld", Out: false},
		"pascal case with abbreviation":    {In: "HTTPFoo", Out: false},
		"camel case":                       {In: "helloWorld", Out: false},
		"title snake case":                 {In: "Hello_World", Out: false},
		"leading separator":                {In: "_hello", Out: false},
		"trailing separator":               {In: "hello_", Out: false},
		"consecutive separators":           {In: "hello__world", Out: false},
		"dot case":                         {In: "hello.world", Out: false},
		"kebab case":                       {In: "hello-world", Out: false},
	}, func(t *testcase.T, tc TC) {
		t.Must.Equal(tc.Out, stringkit.IsSnake(tc.In), "input:", assert.Message(pp.Format(tc.In)))
	})
}
