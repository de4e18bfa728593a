package sanitize

import (
	"strings"
	"testing"
)

func TestSanitizeValidInput(t *testing.T) {
	inputs := []string{
		"lazycelery",
		"1.2.3",
		"https://github.com/Fguedes90/lazycelery",
		"MIT",
		"a_b-c.d/e:f",
		"",
	}

	for _, input := range inputs {
		got, err := Sanitize(input, 256, DefaultCharset)
		if err != nil {
			t.Errorf("Sanitize(%q) returned error: %v", input, err)
			continue
		}
		if got != input {
			t.Errorf("Sanitize(%q) = %q, want input unchanged", input, got)
		}
	}
}

func TestSanitizeInvalidCharacters(t *testing.T) {
	inputs := []string{
		"name;rm -rf /",
		"name$(whoami)",
		"name with spaces",
		"name`cmd`",
		"name\"quote",
		"name'quote",
		"namé",
	}

	for _, input := range inputs {
		if _, err := Sanitize(input, 256, DefaultCharset); err == nil {
			t.Errorf("Sanitize(%q) succeeded, want charset error", input)
		}
	}
}

func TestSanitizeLengthLimit(t *testing.T) {
	value := strings.Repeat("a", 51)
	if _, err := Sanitize(value, 50, DefaultCharset); err == nil {
		t.Error("Sanitize accepted input longer than the limit")
	}

	value = strings.Repeat("a", 50)
	if _, err := Sanitize(value, 50, DefaultCharset); err != nil {
		t.Errorf("Sanitize rejected input at the limit: %v", err)
	}
}

func TestName(t *testing.T) {
	if _, err := Name("lazycelery"); err != nil {
		t.Errorf("Name rejected valid package name: %v", err)
	}
	if _, err := Name("lazy-celery2"); err != nil {
		t.Errorf("Name rejected valid package name: %v", err)
	}
	if _, err := Name("LazyCelery"); err == nil {
		t.Error("Name accepted uppercase characters")
	}
	if _, err := Name("lazy_celery"); err == nil {
		t.Error("Name accepted underscore")
	}
}

func TestVersionValid(t *testing.T) {
	versions := []string{
		"0.0.0",
		"1.2.3",
		"10.20.30",
		"1.2.3-alpha",
		"1.2.3-rc.1",
		"1.2.3-beta-2.dev",
	}

	for _, v := range versions {
		got, err := Version(v)
		if err != nil {
			t.Errorf("Version(%q) returned error: %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("Version(%q) = %q, want input unchanged", v, got)
		}
	}
}

func TestVersionInvalid(t *testing.T) {
	versions := []string{
		"",
		"1",
		"1.2",
		"1.2.3.4",
		"v1.2.3",
		"1.2.3 ",
		"1.2.3-",
		"1.2.3-pre_release",
		"1.2.x",
	}

	for _, v := range versions {
		if _, err := Version(v); err == nil {
			t.Errorf("Version(%q) succeeded, want format error", v)
		}
	}
}

func TestURLValid(t *testing.T) {
	urls := []string{
		"https://github.com/Fguedes90/lazycelery",
		"http://example.com",
		"https://example.com/",
		"https://example.com/path/to/page",
	}

	for _, u := range urls {
		got, err := URL(u)
		if err != nil {
			t.Errorf("URL(%q) returned error: %v", u, err)
			continue
		}
		if got != u {
			t.Errorf("URL(%q) = %q, want input unchanged", u, got)
		}
	}
}

func TestURLInvalid(t *testing.T) {
	urls := []string{
		"",
		"ftp://example.com",
		"github.com/Fguedes90/lazycelery",
		"https://",
		"javascript:alert(1)",
	}

	for _, u := range urls {
		if _, err := URL(u); err == nil {
			t.Errorf("URL(%q) succeeded, want format error", u)
		}
	}
}
