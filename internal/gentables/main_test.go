package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"testing"
)

func TestGenerateAnchor(t *testing.T) {
	scale, exp := generate()
	tests := []struct {
		e     int
		scale uint64
		exp   int
	}{
		{0, 0, 0},
		{1, 9113902524445496865, -323},
		{1020, 5120000000000000000, -16},
		{1023, 4096000000000000000, -15},
		{1024, 8192000000000000000, -15},
		{1025, 16384000000000000000, -15},
		{1026, 3276800000000000000, -14},
		{2046, 3681675540198022979, 293},
	}
	for _, tt := range tests {
		if scale[tt.e] != tt.scale || exp[tt.e] != tt.exp {
			t.Errorf("e=%d: expected (%d, %d), got (%d, %d)", tt.e, tt.scale, tt.exp, scale[tt.e], exp[tt.e])
		}
	}
}

func TestOverflows(t *testing.T) {
	if overflows(4096000000000000000) {
		t.Error("the scale of exponent zero must fit")
	}
	if !overflows(1<<64 - 1) {
		t.Error("the largest scale must overflow")
	}
}

// TestCheckedIn verifies that tables.go is up to date.
func TestCheckedIn(t *testing.T) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "../../tables.go", nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	tables := map[string][]int64{}
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			lit := vs.Values[0].(*ast.CompositeLit)
			values := make([]int64, 0, len(lit.Elts))
			for _, elt := range lit.Elts {
				values = append(values, literalValue(t, elt))
			}
			tables[vs.Names[0].Name] = values
		}
	}

	scale, exp := generate()
	if got := tables["mantissaScale"]; len(got) != tableSize {
		t.Fatalf("mantissaScale: expected %d entries, got %d", tableSize, len(got))
	}
	if got := tables["decimalExponent"]; len(got) != tableSize {
		t.Fatalf("decimalExponent: expected %d entries, got %d", tableSize, len(got))
	}
	for i := 0; i < tableSize; i++ {
		if got := uint64(tables["mantissaScale"][i]); got != scale[i] {
			t.Errorf("mantissaScale[%d]: expected %d, got %d", i, scale[i], got)
		}
		if got := int(tables["decimalExponent"][i]); got != exp[i] {
			t.Errorf("decimalExponent[%d]: expected %d, got %d", i, exp[i], got)
		}
	}
}

// literalValue returns the value of an integer literal, reinterpreting
// unsigned 64-bit values as two's complement.
func literalValue(t *testing.T, expr ast.Expr) int64 {
	t.Helper()
	neg := false
	if u, ok := expr.(*ast.UnaryExpr); ok && u.Op == token.SUB {
		neg = true
		expr = u.X
	}
	lit := expr.(*ast.BasicLit)
	v, err := strconv.ParseUint(lit.Value, 0, 64)
	if err != nil {
		t.Fatal(err)
	}
	if neg {
		return -int64(v)
	}
	return int64(v)
}
