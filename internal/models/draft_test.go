package models

import (
	"reflect"
	"testing"
)

func TestParseHobbies(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "reading, chess", want: []string{"reading", "chess"}},
		{raw: "art", want: []string{"art"}},
		{raw: "  a ,b,  c  ", want: []string{"a", "b", "c"}},
		{raw: "a,,b,", want: []string{"a", "b"}},
		{raw: "", want: []string{}},
		{raw: " , ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseHobbies(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseHobbies(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDraftSetters(t *testing.T) {
	var d Draft
	d.SetName("Ana")
	d.SetAge(20)
	d.SetMajor(true)
	d.SetHobbies("reading, chess")

	want := Draft{Name: "Ana", Age: 20, Major: true, Hobbies: "reading, chess"}
	if d != want {
		t.Errorf("draft = %+v, want %+v", d, want)
	}

	d.Reset()
	if d != (Draft{}) {
		t.Errorf("Reset left %+v", d)
	}
}

func TestDraftSetAgeText(t *testing.T) {
	var d Draft

	if err := d.SetAgeText(" 42 "); err != nil {
		t.Fatalf("SetAgeText failed: %v", err)
	}
	if d.Age != 42 {
		t.Errorf("age = %d, want 42", d.Age)
	}

	if err := d.SetAgeText("forty"); err == nil {
		t.Error("expected error for non-numeric age")
	}
	if d.Age != 42 {
		t.Errorf("invalid input changed age to %d", d.Age)
	}

	if err := d.SetAgeText(""); err != nil {
		t.Fatalf("SetAgeText(\"\") failed: %v", err)
	}
	if d.Age != 0 {
		t.Errorf("empty input should unset age, got %d", d.Age)
	}
}
