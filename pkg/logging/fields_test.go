package logging_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/exemplar/pkg/logging"
	"go.llib.dev/exemplar/pkg/stringkit"
)

var defaultKeyFormatter = stringkit.ToSnake

func ExampleField() {
	var l logging.Logger

	l.Error(context.Background(), "msg",
		logging.Field("key1", "value"),
		logging.Field("key2", "value"))
}

func ExampleFields() {
	var l logging.Logger

	l.Info(context.Background(), "msg", logging.Fields{
		"key1": "value",
		"key2": 42,
	})
}

func ExampleErrField() {
	var l logging.Logger

	err := fmt.Errorf("boom")
	l.Error(context.Background(), "something went wrong", logging.ErrField(err))
}

func TestField(t *testing.T) {
	s := testcase.NewSpec(t)
	logger, buf := testcase.Let2(s, func(t *testcase.T) (*logging.Logger, logging.StubOutput) {
		return logging.Stub(t)
	})

	var (
		key   = let.UUID(s)
		value = testcase.Let[any](s, nil)
	)
	act := func(t *testcase.T) logging.Detail {
		return logging.Field(key.Get(t), value.Get(t))
	}

	afterLogging := func(t *testcase.T) {
		t.Helper()
		logger.Get(t).Info(nil, "", act(t))
	}

	keyIsLogged := func(t *testcase.T) {
		t.Helper()
		t.Must.Contain(buf.Get(t).String(), fmt.Sprintf(`%q:`, defaultKeyFormatter(key.Get(t))))
	}

	s.When("value is int", func(s *testcase.Spec) {
		value.Let(s, func(t *testcase.T) any {
			return t.Random.Int()
		})

		s.Then("field is logged", func(t *testcase.T) {
			afterLogging(t)
			keyIsLogged(t)

			t.Must.Contain(buf.Get(t).String(), strconv.Itoa(value.Get(t).(int)))
		})
	})

	s.When("value is string", func(s *testcase.Spec) {
		value.Let(s, func(t *testcase.T) any {
			return t.Random.StringNWithCharset(5, random.CharsetAlpha())
		})

		s.Then("field is logged", func(t *testcase.T) {
			afterLogging(t)
			keyIsLogged(t)

			t.Must.Contain(buf.Get(t).String(), fmt.Sprintf("%q", value.Get(t).(string)))
		})
	})

	s.When("value is a map with string keys", func(s *testcase.Spec) {
		value.Let(s, func(t *testcase.T) any {
			return map[string]string{"FooBar": t.Random.UUID()}
		})

		s.Then("the map is logged with formatted keys", func(t *testcase.T) {
			afterLogging(t)
			keyIsLogged(t)

			t.Must.Contain(buf.Get(t).String(), `"foo_bar"`)
			t.Must.Contain(buf.Get(t).String(), value.Get(t).(map[string]string)["FooBar"])
		})
	})

	s.When("value is a pointer", func(s *testcase.Spec) {
		n := testcase.LetValue(s, 42)

		value.Let(s, func(t *testcase.T) any {
			v := n.Get(t)
			return &v
		})

		s.Then("the pointed value is logged", func(t *testcase.T) {
			afterLogging(t)
			keyIsLogged(t)

			t.Must.Contain(buf.Get(t).String(), strconv.Itoa(n.Get(t)))
		})
	})

	s.When("value is nil", func(s *testcase.Spec) {
		value.LetValue(s, nil)

		s.Then("the field is logged with a null value", func(t *testcase.T) {
			afterLogging(t)
			keyIsLogged(t)

			t.Must.Contain(buf.Get(t).String(), fmt.Sprintf(`%q:null`, defaultKeyFormatter(key.Get(t))))
		})
	})

	s.When("value is an error", func(s *testcase.Spec) {
		expectedErr := let.Error(s)

		value.Let(s, func(t *testcase.T) any {
			return expectedErr.Get(t)
		})

		s.Then("the error message is logged", func(t *testcase.T) {
			afterLogging(t)
			keyIsLogged(t)

			t.Must.Contain(buf.Get(t).String(), fmt.Sprintf("%q", expectedErr.Get(t).Error()))
		})
	})
}

func TestFields(t *testing.T) {
	s := testcase.NewSpec(t)
	logger, buf := testcase.Let2(s, func(t *testcase.T) (*logging.Logger, logging.StubOutput) {
		return logging.Stub(t)
	})

	s.Test("every key-value pair is part of the log entry", func(t *testcase.T) {
		logger.Get(t).Info(nil, "msg", logging.Fields{
			"foo": "bar",
			"bar": 42,
		})

		t.Must.Contain(buf.Get(t).String(), `"foo":"bar"`)
		t.Must.Contain(buf.Get(t).String(), `"bar":42`)
	})

	s.Test("nested Fields are flattened into a JSON object", func(t *testcase.T) {
		logger.Get(t).Info(nil, "msg", logging.Fields{
			"outer": logging.Fields{"inner": "value"},
		})

		t.Must.Contain(buf.Get(t).String(), `"outer":{"inner":"value"}`)
	})
}

func TestErrField(t *testing.T) {
	s := testcase.NewSpec(t)
	logger, buf := testcase.Let2(s, func(t *testcase.T) (*logging.Logger, logging.StubOutput) {
		return logging.Stub(t)
	})

	var (
		err = testcase.Let[error](s, nil)
	)
	act := func(t *testcase.T) logging.Detail {
		return logging.ErrField(err.Get(t))
	}

	s.When("the error is not nil", func(s *testcase.Spec) {
		expectedErr := let.Error(s)

		err.Let(s, func(t *testcase.T) error {
			return expectedErr.Get(t)
		})

		s.Then("the error is logged under the error key", func(t *testcase.T) {
			logger.Get(t).Error(nil, "msg", act(t))

			t.Must.Contain(buf.Get(t).String(), `"error":{`)
			t.Must.Contain(buf.Get(t).String(), fmt.Sprintf(`"message":%q`, expectedErr.Get(t).Error()))
		})
	})

	s.When("the error is nil", func(s *testcase.Spec) {
		err.LetValue(s, nil)

		s.Then("no error detail is added to the log entry", func(t *testcase.T) {
			logger.Get(t).Error(nil, "msg", act(t))

			t.Must.NotContain(buf.Get(t).String(), `"error"`)
		})
	})
}
