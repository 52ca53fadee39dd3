package schema

import "testing"

func TestLocate_NotFound(t *testing.T) {
	t.Setenv("FIXPROTO_DICT_FIX44", "")
	t.Setenv("FIXPROTO_DICT_DIR", "")

	if _, err := Locate("fix44"); err == nil {
		t.Fatal("expected a not-found error with neither env var set")
	}
}

func TestLocate_ExactOverride(t *testing.T) {
	t.Setenv("FIXPROTO_DICT_FIX44", "/opt/dicts/custom.xml")
	t.Setenv("FIXPROTO_DICT_DIR", "")

	got, err := Locate("fix44")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if got != "/opt/dicts/custom.xml" {
		t.Errorf("got %q, want the exact override path", got)
	}
}

func TestLocate_DirectoryConvention(t *testing.T) {
	t.Setenv("FIXPROTO_DICT_FIX44", "")
	t.Setenv("FIXPROTO_DICT_DIR", "/opt/dicts")

	got, err := Locate("fix44")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if got != "/opt/dicts/fix44.xml" {
		t.Errorf("got %q, want /opt/dicts/fix44.xml", got)
	}
}

func TestLocate_ExactOverrideTakesPrecedence(t *testing.T) {
	t.Setenv("FIXPROTO_DICT_FIX44", "/exact/path.xml")
	t.Setenv("FIXPROTO_DICT_DIR", "/opt/dicts")

	got, err := Locate("fix44")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if got != "/exact/path.xml" {
		t.Errorf("got %q, want the exact override to win over the directory convention", got)
	}
}
