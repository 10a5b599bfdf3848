package example

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/structmap"
	"github.com/signadot/structmap/value"
)

func TestRecordFromStringMap(t *testing.T) {
	var r Record
	if err := r.FromStringMap(structmap.StringMap{"name": "example", "value": "0"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Record{Name: "example"}, r); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordFromGenericMap(t *testing.T) {
	var r Record
	m := structmap.GenericMap{"name": value.Text("example"), "value": value.Int64(0)}
	if err := r.FromGenericMap(m); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Record{Name: "example"}, r); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordToMap(t *testing.T) {
	r := Record{Name: "example"}
	if diff := cmp.Diff(structmap.StringMap{"name": "example", "value": "0"}, r.ToStringMap()); diff != "" {
		t.Errorf("string map mismatch (-want +got):\n%s", diff)
	}
	want := structmap.GenericMap{"name": value.Text("example"), "value": value.Int64(0)}
	if diff := cmp.Diff(want, r.ToGenericMap()); diff != "" {
		t.Errorf("generic map mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	endpoints := []Endpoint{
		{},
		{Host: "db", Port: 5432, TLS: true, Weight: 0.25, Retries: -3},
		{Host: "a b", Port: 65535, Weight: 1e-3, Retries: 127},
	}
	for _, e := range endpoints {
		got, err := structmap.FromGenericMap[Endpoint](e.ToGenericMap())
		if err != nil {
			t.Fatalf("%+v: %v", e, err)
		}
		if diff := cmp.Diff(e, got); diff != "" {
			t.Errorf("generic round trip mismatch (-want +got):\n%s", diff)
		}

		got, err = structmap.FromStringMap[Endpoint](e.ToStringMap())
		if err != nil {
			t.Fatalf("%+v: %v", e, err)
		}
		if diff := cmp.Diff(e, got); diff != "" {
			t.Errorf("string round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestMissingKeysKeepDefaults(t *testing.T) {
	got, err := structmap.FromStringMap[Endpoint](structmap.StringMap{"port": "9090"})
	if err != nil {
		t.Fatal(err)
	}
	want := Endpoint{Host: "localhost", Port: 9090, Weight: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = structmap.FromGenericMap[Endpoint](nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Endpoint{}.Default(), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRenamedKeys(t *testing.T) {
	m := Endpoint{TLS: true, Comment: "x"}.ToStringMap()
	if m["tls"] != "true" {
		t.Errorf("got tls=%q, want true", m["tls"])
	}
	for _, k := range []string{"TLS", "Host", "Comment", "comment"} {
		if _, ok := m[k]; ok {
			t.Errorf("unexpected key %q", k)
		}
	}

	// field names are not keys when renamed
	var e Endpoint
	if err := e.FromStringMap(structmap.StringMap{"Host": "ignored"}); err != nil {
		t.Fatal(err)
	}
	if e.Host != "localhost" {
		t.Errorf("got host %q, want localhost", e.Host)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	var r Record
	if err := r.FromStringMap(structmap.StringMap{"name": "a", "other": "b"}); err != nil {
		t.Fatal(err)
	}
	if r.Name != "a" {
		t.Errorf("got %q", r.Name)
	}
}

func TestParseFailureLeavesReceiver(t *testing.T) {
	r := Record{Name: "keep", Value: 7}
	err := r.FromStringMap(structmap.StringMap{"name": "other", "value": "seven"})
	if !errors.Is(err, structmap.ErrParse) {
		t.Fatalf("got %v, want ErrParse", err)
	}
	var fe *structmap.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("got %T, want *FieldError", err)
	}
	if fe.Type != "Record" || fe.Field != "Value" || fe.Key != "value" {
		t.Errorf("unexpected field error %+v", fe)
	}
	if diff := cmp.Diff(Record{Name: "keep", Value: 7}, r); diff != "" {
		t.Errorf("receiver changed (-want +got):\n%s", diff)
	}
}

func TestOutOfRange(t *testing.T) {
	var e Endpoint
	if err := e.FromStringMap(structmap.StringMap{"port": "70000"}); !errors.Is(err, structmap.ErrParse) {
		t.Errorf("string path: got %v, want ErrParse", err)
	}
	if err := e.FromGenericMap(structmap.GenericMap{"retries": value.Int64(200)}); !errors.Is(err, structmap.ErrMismatch) {
		t.Errorf("generic path: got %v, want ErrMismatch", err)
	}
}

func TestAccessorMismatch(t *testing.T) {
	var r Record
	err := r.FromGenericMap(structmap.GenericMap{"value": value.Text("0")})
	if !errors.Is(err, structmap.ErrMismatch) {
		t.Fatalf("got %v, want ErrMismatch", err)
	}
}

func TestInputNotMutated(t *testing.T) {
	m := structmap.StringMap{"name": "example", "value": "3"}
	if _, err := structmap.FromStringMap[Record](m); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(structmap.StringMap{"name": "example", "value": "3"}, m); diff != "" {
		t.Errorf("input changed (-want +got):\n%s", diff)
	}
}

type id string

func TestGenericPair(t *testing.T) {
	p := Pair[id, int32]{Key: "k", Val: -5}
	if diff := cmp.Diff(structmap.StringMap{"key": "k", "value": "-5"}, p.ToStringMap()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err := structmap.FromGenericMap[Pair[id, int32]](p.ToGenericMap())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	var q Pair[string, int64]
	if err := q.FromStringMap(structmap.StringMap{"value": "9223372036854775807"}); err != nil {
		t.Fatal(err)
	}
	if q.Val != 9223372036854775807 {
		t.Errorf("got %d", q.Val)
	}

	var small Pair[string, int32]
	if err := small.FromStringMap(structmap.StringMap{"value": "9223372036854775807"}); !errors.Is(err, structmap.ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func TestFromMapOnly(t *testing.T) {
	var l Label
	if err := l.FromGenericMap(structmap.GenericMap{"Text": value.Text("hi")}); err != nil {
		t.Fatal(err)
	}
	if l.Text != "hi" {
		t.Errorf("got %q", l.Text)
	}
	if _, ok := any(l).(structmap.ToMap); ok {
		t.Error("Label should not implement ToMap")
	}
}
