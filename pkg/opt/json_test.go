package opt

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestOptionMarshal_WireShape(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(Some(5))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `{"present":true,"value":5}` {
		t.Fatalf("unexpected wire form: %s", b)
	}

	b, err = json.Marshal(None[int]())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `{"present":false}` {
		t.Fatalf("expected no value key for None, got: %s", b)
	}
}

func TestOptionJSON_RoundTrip(t *testing.T) {
	t.Parallel()
	cases := []Option[string]{
		Some("hello"),
		Some(""),
		None[string](),
	}
	for _, o := range cases {
		b, err := json.Marshal(o)
		if err != nil {
			t.Fatalf("marshal of %v failed: %v", o, err)
		}
		got, err := OptionFromJSON[string](b)
		if err != nil {
			t.Fatalf("unmarshal of %s failed: %v", b, err)
		}
		if got != o {
			t.Fatalf("round trip changed %v into %v", o, got)
		}
	}
}

func TestOptionUnmarshal_PresentWithoutValue(t *testing.T) {
	t.Parallel()
	var o Option[int]
	err := json.Unmarshal([]byte(`{"present":true}`), &o)
	if err == nil {
		t.Fatalf("expected an error for present without value, got: %v", o)
	}
	if !strings.Contains(err.Error(), "without a value") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOptionUnmarshal_Malformed(t *testing.T) {
	t.Parallel()
	if _, err := OptionFromJSON[int]([]byte(`[1,2]`)); err == nil {
		t.Fatalf("expected an error for a non-object document")
	}
	if _, err := OptionFromJSON[int]([]byte(`{"present":true,"value":"nope"}`)); err == nil {
		t.Fatalf("expected an error for a mistyped value")
	}
}

func TestResultMarshal_WireShape(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(Ok(5))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `{"ok":true,"value":5}` {
		t.Fatalf("unexpected wire form: %s", b)
	}

	b, err = json.Marshal(Err[int](errors.New("boom")))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `{"ok":false,"value":"boom"}` {
		t.Fatalf("expected the error message on the wire, got: %s", b)
	}
}

func TestResultJSON_RoundTrip(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(Ok("hello"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	got, err := ResultFromJSON[string](b)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got != Ok("hello") {
		t.Fatalf("round trip changed Ok(hello) into %v", got)
	}

	// the error side round-trips by message
	b, err = json.Marshal(Err[string](errors.New("boom")))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	got, err = ResultFromJSON[string](b)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !got.IsErr() || got.Err().Error() != "boom" {
		t.Fatalf("expected Err with message boom, got: %v", got)
	}
}

func TestResultUnmarshal_Malformed(t *testing.T) {
	t.Parallel()
	if _, err := ResultFromJSON[int]([]byte(`{"ok":true}`)); err == nil {
		t.Fatalf("expected an error for a missing value")
	}
	if _, err := ResultFromJSON[int]([]byte(`{"ok":false,"value":42}`)); err == nil {
		t.Fatalf("expected an error for a non-string error side")
	}
	if _, err := ResultFromJSON[int]([]byte(`"just a string"`)); err == nil {
		t.Fatalf("expected an error for a non-object document")
	}
}

func TestJSON_Embedded(t *testing.T) {
	t.Parallel()
	type record struct {
		Name  string         `json:"name"`
		Age   Option[int]    `json:"age"`
		Score Result[string] `json:"score"`
	}

	in := record{
		Name:  "ada",
		Age:   Some(36),
		Score: Err[string](errors.New("not graded")),
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var out record
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.Name != "ada" || out.Age != Some(36) {
		t.Fatalf("unexpected fields after round trip: %+v", out)
	}
	if !out.Score.IsErr() || out.Score.Err().Error() != "not graded" {
		t.Fatalf("expected the score error to survive by message, got: %v", out.Score)
	}
}
