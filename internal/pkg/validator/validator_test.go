package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestExceedsLength(t *testing.T) {
	if ExceedsLength("abc", 3) {
		t.Error("ExceedsLength(\"abc\", 3) = true, want false")
	}
	if !ExceedsLength("abcd", 3) {
		t.Error("ExceedsLength(\"abcd\", 3) = false, want true")
	}
	// multi-byte characters count once
	if ExceedsLength("ééé", 3) {
		t.Error("ExceedsLength(\"ééé\", 3) = true, want false")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd", "e1@x.com"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", "", "not an email"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "2023-02-29", "2023-1-01", "20230101", "01-01-2023", "2023-01-01T00:00:00Z", " 2023-01-01", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Present", "Absent"}
	if !IsInSlice("Present", slice) {
		t.Error("IsInSlice(\"Present\") = false, want true")
	}
	if IsInSlice("present", slice) {
		t.Error("IsInSlice(\"present\") = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}

	if got, want := errs.Error(), "email: email is required; date: date must be in YYYY-MM-DD format"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["email"] != "email is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
