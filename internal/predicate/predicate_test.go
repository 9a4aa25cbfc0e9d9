package predicate

import "testing"

func TestIsIdentifier(t *testing.T) {
	cases := map[string]bool{
		"foo":    true,
		"Foo_1":  true,
		"_foo":   false,
		"1foo":   false,
		"":       false,
		"foo.bar": false,
	}
	for in, want := range cases {
		if got := IsIdentifier(in); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsFullIdentifier(t *testing.T) {
	if !IsFullIdentifier("a.b.c") {
		t.Error("expected a.b.c to be a full identifier")
	}
	if IsFullIdentifier("a..b") {
		t.Error("expected a..b to be rejected")
	}
	if IsFullIdentifier(".a.b") {
		t.Error("expected leading dot to be rejected")
	}
}

func TestIsStringLiteral(t *testing.T) {
	if !IsStringLiteral(`"hello"`) {
		t.Error(`expected "hello" to be a string literal`)
	}
	if !IsStringLiteral("`hello`") {
		t.Error("expected `hello` to be a string literal")
	}
	if IsStringLiteral(`"mismatched`) {
		t.Error("expected mismatched quotes to be rejected")
	}
	if IsStringLiteral(`x`) {
		t.Error("expected bare text to be rejected")
	}
}

func TestIsIntegerLiteral(t *testing.T) {
	for _, lit := range []string{"0", "42", "017", "0x1F", "0X1f"} {
		if !IsIntegerLiteral(lit) {
			t.Errorf("expected %q to be an integer literal", lit)
		}
	}
	for _, lit := range []string{"01.5", "abc", "0x"} {
		if IsIntegerLiteral(lit) {
			t.Errorf("expected %q to be rejected", lit)
		}
	}
}

func TestIsBasicTypeAndMapKeyType(t *testing.T) {
	if !IsBasicType("int32") {
		t.Error("expected int32 to be a basic type")
	}
	if IsBasicType("Foo") {
		t.Error("expected Foo not to be a basic type")
	}
	if IsMapKeyType("double") || IsMapKeyType("float") || IsMapKeyType("bytes") {
		t.Error("expected double/float/bytes to be excluded map key types")
	}
	if !IsMapKeyType("string") {
		t.Error("expected string to be a valid map key type")
	}
}

func TestIsFieldStart(t *testing.T) {
	if !IsFieldStart("repeated") || !IsFieldStart("int32") || !IsFieldStart("my.Type") {
		t.Error("expected repeated/basic type/full identifier to start a field")
	}
	if IsFieldStart("=") {
		t.Error("expected '=' not to start a field")
	}
}

func TestIsFloatLiteral(t *testing.T) {
	for _, lit := range []string{"1.5", "1e10", "1.5e-3", "2E+4"} {
		if !IsFloatLiteral(lit) {
			t.Errorf("expected %q to be a float literal", lit)
		}
	}
	for _, lit := range []string{"42", "abc"} {
		if IsFloatLiteral(lit) {
			t.Errorf("expected %q to be rejected", lit)
		}
	}
}

func TestCommentDelimiterPredicates(t *testing.T) {
	if !IsInlineComment("//") {
		t.Error("expected // to open an inline comment")
	}
	if !IsMultilineCommentOpen("/*") {
		t.Error("expected /* to open a block comment")
	}
	if !IsMultilineCommentClose("*/") {
		t.Error("expected */ to close a block comment")
	}
}

func TestKeywordPredicates(t *testing.T) {
	keywords := map[string]func(string) bool{
		"syntax":   IsSyntax,
		"import":   IsImport,
		"package":  IsPackage,
		"option":   IsOption,
		"enum":     IsEnum,
		"service":  IsService,
		"message":  IsMessage,
		"oneof":    IsOneof,
		"map":      IsMap,
		"reserved": IsReserved,
		"rpc":      IsRpc,
		"stream":   IsStream,
		"returns":  IsReturns,
		"to":       IsTo,
	}
	for word, pred := range keywords {
		if !pred(word) {
			t.Errorf("expected predicate for %q to accept its own keyword", word)
		}
		if pred("notakeyword") {
			t.Errorf("predicate for %q matched an unrelated identifier", word)
		}
	}
}

func TestIsBooleanLiteral(t *testing.T) {
	if !IsBooleanLiteral("true") || !IsBooleanLiteral("false") {
		t.Error("expected true/false to be recognized as boolean literals")
	}
	if IsBooleanLiteral("True") {
		t.Error("expected case-sensitive rejection of True")
	}
}
