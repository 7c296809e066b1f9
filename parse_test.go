package patterns

import "testing"

func TestCompileBasic(t *testing.T) {
	p, err := Compile("4D 5A ?? ?? 00 00", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Length() != 6 {
		t.Fatalf("length = %d, want 6", p.Length())
	}
}

func TestCompileCaseInsensitiveHex(t *testing.T) {
	a, err := Compile("4d 5a", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Compile("4D 5A", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.bytes != b.bytes {
		t.Fatalf("lowercase and uppercase hex should compile identically")
	}
}

func TestCompileDotWildcard(t *testing.T) {
	a, err := Compile("4d . 5a", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Compile("4d ? 5a", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.mask != b.mask || a.bytes != b.bytes {
		t.Fatalf(". and ? must compile identically")
	}
}

func TestCompileTooLong(t *testing.T) {
	text := ""
	for i := 0; i < ChunkWidth+1; i++ {
		text += "41 "
	}
	_, err := Compile(text, 1)
	if err != ErrPatternTooLong {
		t.Fatalf("got %v, want ErrPatternTooLong", err)
	}
}

func TestCompileAllWildcard(t *testing.T) {
	_, err := Compile("?? ?? ??", 1)
	if err != ErrMissingNonWildcardByte {
		t.Fatalf("got %v, want ErrMissingNonWildcardByte", err)
	}
}

func TestCompileInvalidHex(t *testing.T) {
	_, err := Compile("4d zz", 1)
	var perr *ParseError
	if perr, _ = err.(*ParseError); perr == nil {
		t.Fatalf("got %v (%T), want *ParseError", err, err)
	}
	if perr.Kind != InvalidHexNumber {
		t.Fatalf("kind = %v, want InvalidHexNumber", perr.Kind)
	}
	if perr.Token != "zz" || perr.TokenIndex != 1 {
		t.Fatalf("token = %q idx %d, want \"zz\" idx 1", perr.Token, perr.TokenIndex)
	}
}

func TestCompileInvalidAlignment(t *testing.T) {
	_, err := Compile("41", 3)
	if err != ErrInvalidAlignment {
		t.Fatalf("got %v, want ErrInvalidAlignment", err)
	}
}

func TestCompileEmptyString(t *testing.T) {
	_, err := Compile("", 1)
	if err != ErrMissingNonWildcardByte {
		t.Fatalf("got %v, want ErrMissingNonWildcardByte", err)
	}
}
