package validate

import (
	"strings"
	"testing"
)

type plan struct {
	Name string `json:"name" validate:"required"`
	Cost string `json:"cost" validate:"required,numeric"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(plan{Name: "Standard", Cost: "120"}); err != nil {
		t.Errorf("Struct() = %v, want nil", err)
	}
}

func TestStruct_FieldMessages(t *testing.T) {
	err := Struct(plan{Cost: "abc"})
	if err == nil {
		t.Fatal("Struct() = nil, want error")
	}

	verr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Struct() returned %T, want *Error", err)
	}
	if got := verr.Fields["name"]; got != "is required" {
		t.Errorf(`Fields["name"] = %q, want "is required"`, got)
	}
	if got := verr.Fields["cost"]; got != "must be numeric" {
		t.Errorf(`Fields["cost"] = %q, want "must be numeric"`, got)
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("Error() = %q, missing field message", err.Error())
	}
}

func TestError_MessageIsDeterministic(t *testing.T) {
	want := "cost must be numeric; name is required"
	for i := 0; i < 20; i++ {
		err := Struct(plan{Cost: "abc"})
		if err == nil {
			t.Fatal("Struct() = nil, want error")
		}
		if got := err.Error(); got != want {
			t.Fatalf("Error() = %q, want %q", got, want)
		}
	}
}

func TestStruct_UsesJSONTagNames(t *testing.T) {
	type payload struct {
		FullName string `json:"fullName" validate:"required"`
	}
	err := Struct(payload{})
	verr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Struct() returned %T, want *Error", err)
	}
	if _, ok := verr.Fields["fullName"]; !ok {
		t.Errorf("expected json tag name key, got %v", verr.Fields)
	}
}
