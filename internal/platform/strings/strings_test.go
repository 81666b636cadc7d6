package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []string{"x", "y"}
	if got := IfEmpty(in, def); len(got) != 2 {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n  "} {
		if !IsBlank(s) {
			t.Errorf("IsBlank(%q) = false", s)
		}
	}
	if IsBlank(" x ") {
		t.Errorf("IsBlank(\" x \") = true")
	}
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"entries":    "/entries",
		"/entries/":  "/entries",
		" /meta ":    "/meta",
		"//entries/": "/entries",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Errorf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMustPrefixPanicsOnRoot(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustPrefix("  / ")
}

func TestPtrDeref(t *testing.T) {
	if Ptr("") != nil {
		t.Fatalf("Ptr(\"\") should be nil")
	}
	p := Ptr("v")
	if p == nil || *p != "v" {
		t.Fatalf("Ptr(\"v\") = %v", p)
	}
	if Deref(nil) != "" || Deref(p) != "v" {
		t.Fatalf("Deref misbehaves")
	}
}
