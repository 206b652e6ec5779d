package result

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestOk_Predicates(t *testing.T) {
	r := Ok(42)
	if !r.IsOk() || r.IsErr() {
		t.Errorf("Ok(42): IsOk=%v IsErr=%v", r.IsOk(), r.IsErr())
	}
	v, ok := r.Value()
	if !ok || v != 42 {
		t.Errorf("Value: got (%v, %v)", v, ok)
	}
	if _, ok := r.Err(); ok {
		t.Error("Err() on Ok should report false")
	}
}

func TestErr_Predicates(t *testing.T) {
	boom := errors.New("boom")
	r := Err[int](boom)
	if r.IsOk() || !r.IsErr() {
		t.Errorf("Err: IsOk=%v IsErr=%v", r.IsOk(), r.IsErr())
	}
	e, ok := r.Err()
	if !ok || !errors.Is(e, boom) {
		t.Errorf("Err(): got (%v, %v)", e, ok)
	}
	if _, ok := r.Value(); ok {
		t.Error("Value() on Err should report false")
	}
}

func TestUnwrap_Ok(t *testing.T) {
	if got := Ok("hi").Unwrap(); got != "hi" {
		t.Errorf("Unwrap: got %q", got)
	}
}

func TestUnwrap_ErrPanics(t *testing.T) {
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic")
		}
		ue, ok := rec.(*UnwrapError)
		if !ok {
			t.Fatalf("panic value: got %T, want *UnwrapError", rec)
		}
		if !strings.Contains(ue.Error(), "boom") {
			t.Errorf("panic message: got %q", ue.Error())
		}
	}()
	Err[int](errors.New("boom")).Unwrap()
}

func TestExpect_ErrPanicsWithMessage(t *testing.T) {
	defer func() {
		rec := recover()
		ue, ok := rec.(*UnwrapError)
		if !ok {
			t.Fatalf("panic value: got %T", rec)
		}
		if !strings.Contains(ue.Error(), "needed a user") {
			t.Errorf("message: got %q", ue.Error())
		}
	}()
	Err[int](errors.New("boom")).Expect("needed a user")
}

func TestUnwrapOr(t *testing.T) {
	if got := Ok(1).UnwrapOr(9); got != 1 {
		t.Errorf("Ok: got %d", got)
	}
	if got := Err[int](errors.New("x")).UnwrapOr(9); got != 9 {
		t.Errorf("Err: got %d", got)
	}
}

func TestUnwrapOrElse(t *testing.T) {
	fallback := func(err error) int { return len(err.Error()) }
	if got := Ok(1).UnwrapOrElse(fallback); got != 1 {
		t.Errorf("Ok: got %d", got)
	}
	if got := Err[int](errors.New("abc")).UnwrapOrElse(fallback); got != 3 {
		t.Errorf("Err: got %d", got)
	}
}

func TestUnwrapErr(t *testing.T) {
	boom := errors.New("boom")
	if got := Err[int](boom).UnwrapErr(); !errors.Is(got, boom) {
		t.Errorf("UnwrapErr: got %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("UnwrapErr on Ok should panic")
		}
	}()
	Ok(1).UnwrapErr()
}

func TestString(t *testing.T) {
	if got := Ok(7).String(); got != "Ok(7)" {
		t.Errorf("got %q", got)
	}
	if got := Err[int](errors.New("bad")).String(); got != "Err(bad)" {
		t.Errorf("got %q", got)
	}
}

func TestMarshalJSON(t *testing.T) {
	okJSON, err := json.Marshal(Ok(map[string]int{"n": 3}))
	if err != nil {
		t.Fatal(err)
	}
	if string(okJSON) != `{"ok":{"n":3}}` {
		t.Errorf("ok json: got %s", okJSON)
	}
	errJSON, err := json.Marshal(Err[int](errors.New("bad")))
	if err != nil {
		t.Fatal(err)
	}
	if string(errJSON) != `{"err":"bad"}` {
		t.Errorf("err json: got %s", errJSON)
	}
}

func TestOkOfErrOf_NonErrorErrorType(t *testing.T) {
	r := ErrOf[int, string]("not found")
	if !r.IsErr() {
		t.Fatal("expected Err")
	}
	if e, _ := r.Err(); e != "not found" {
		t.Errorf("got %q", e)
	}
	if v := OkOf[int, string](5).Unwrap(); v != 5 {
		t.Errorf("got %d", v)
	}
}
