package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name    string
		axis    int
		wantMsg string
	}{
		{
			name:    "rows",
			axis:    0,
			wantMsg: "sparse: Mul: dimension mismatch on axis 0 (rows). Expected 10, got 7",
		},
		{
			name:    "columns",
			axis:    1,
			wantMsg: "sparse: Mul: dimension mismatch on axis 1 (columns). Expected 10, got 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("Mul", 10, 7, tt.axis)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Fatal("Error should be castable to *DimensionError")
			}
			if dimErr.Expected != 10 || dimErr.Got != 7 {
				t.Errorf("unexpected sizes: expected=%d got=%d", dimErr.Expected, dimErr.Got)
			}
		})
	}
}

func TestNewIndexError(t *testing.T) {
	err := NewIndexError("Matrix.At", 12, 10, 1)

	want := "sparse: Matrix.At: columns index 12 out of range [0, 10)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var idxErr *IndexError
	if !As(err, &idxErr) {
		t.Fatal("Error should be castable to *IndexError")
	}
	if idxErr.Index != 12 || idxErr.Bound != 10 {
		t.Errorf("unexpected index error fields: %+v", idxErr)
	}
}

func TestNewFormatError(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		cause   error
		wantMsg string
	}{
		{
			name:    "with file and cause",
			file:    "train.svm",
			cause:   fmt.Errorf("invalid syntax"),
			wantMsg: `sparse: format error at train.svm:3: bad row index (line: "1 x:0.5"): invalid syntax`,
		},
		{
			name:    "unknown source",
			file:    "",
			cause:   nil,
			wantMsg: `sparse: format error at <input>:3: bad row index (line: "1 x:0.5")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFormatError(tt.file, 3, "1 x:0.5", "bad row index", tt.cause)
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var fmtErr *FormatError
			if !As(err, &fmtErr) {
				t.Fatal("Error should be castable to *FormatError")
			}
			if fmtErr.Line != 3 {
				t.Errorf("Line = %d, want 3", fmtErr.Line)
			}
			if tt.cause != nil && !Is(err, tt.cause) {
				t.Error("Expected cause to be reachable through Unwrap")
			}
		})
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("WithPrecision", fmt.Sprintf("precision: %d (must be >= -1)", -3))

	want := "sparse: WithPrecision: precision: -3 (must be >= -1)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("column[2]", "duplicate row index", 5)

	want := "sparse: validation failed for 'column[2]': duplicate row index (got: 5)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestUnsortedColumnWarning(t *testing.T) {
	warn := NewUnsortedColumnWarning("libsvm.Encode", 4)

	want := "libsvm.Encode: column 4 is not sorted by row index; call SortFeatures() for canonical output"
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}
}

func TestWarnRouting(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(func(w error) {})

	Warn(NewDataConversionWarning("float", "int64", "integral literal"))
	if len(got) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(got))
	}

	var zerologGot []error
	SetZerologWarnFunc(func(w error) { zerologGot = append(zerologGot, w) })
	Warn(NewUnsortedColumnWarning("test", 0))
	SetZerologWarnFunc(nil)

	if len(zerologGot) != 1 || len(got) != 1 {
		t.Errorf("zerolog func should take precedence: handler=%d zerolog=%d", len(got), len(zerologGot))
	}
}

func TestCheckFinite(t *testing.T) {
	if err := CheckFinite("op", []float64{1, 2, 3}, 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckScalar("op", math.NaN(), 7); err == nil {
		t.Error("expected error for NaN")
	}
	if err := CheckComplex("op", complex(1, math.Inf(1)), 2); err == nil {
		t.Error("expected error for complex Inf")
	}

	err := CheckFinite("libsvm.Decode", []float64{0, math.Inf(-1)}, 4)
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatal("Error should be castable to *NumericalInstabilityError")
	}
	if numErr.Position != 4 {
		t.Errorf("Position = %d, want 4", numErr.Position)
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "in libsvm.Decode")

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in libsvm.Decode") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrUnsupportedType, "in %s: element %s", "parseValue", "uintptr")

	if !Is(wrapped, ErrUnsupportedType) {
		t.Error("Expected Is(wrapped, ErrUnsupportedType) to be true")
	}

	expectedMsg := "in parseValue: element uintptr"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}
