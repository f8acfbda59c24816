package chart

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	bcerrors "github.com/matzehuels/barchart3d/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		nx, ny, nz int
		wantErr    bool
	}{
		{"full grid", 3, 2, 6, false},
		{"paired", 5, 5, 5, false},
		{"single", 1, 1, 1, false},
		{"empty", 0, 0, 0, false},
		{"grid short", 3, 2, 3, true},
		{"paired short", 4, 4, 3, true},
		{"all different", 1, 2, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.nx, tt.ny, tt.nz)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%d, %d, %d) error = %v, wantErr %v", tt.nx, tt.ny, tt.nz, err, tt.wantErr)
			}
		})
	}
}

func TestValidateError(t *testing.T) {
	err := Validate(3, 2, 3)

	var sm *ShapeMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("error %v is not a *ShapeMismatchError", err)
	}
	if sm.X != 3 || sm.Y != 2 || sm.Z != 3 {
		t.Errorf("lengths = (%d, %d, %d), want (3, 2, 3)", sm.X, sm.Y, sm.Z)
	}
	if !bcerrors.Is(err, bcerrors.ErrCodeShapeMismatch) {
		t.Errorf("code = %q, want %q", bcerrors.GetCode(err), bcerrors.ErrCodeShapeMismatch)
	}
	want := "input arguments are not matching, received x:3, y:2, z:3, expected x*y=z or x=y=z"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		x, y []Value
		z    []Height
		want Mode
	}{
		{
			name: "dense 3x3 repeated rows",
			x:    Nums(1, 1, 1, 2, 2, 2, 3, 3, 3),
			y:    Nums(10, 20, 30, 10, 20, 30, 10, 20, 30),
			z:    Heights(0, 1, 2, 3, 4, 5, 6, 7, 8),
			want: ModeDense,
		},
		{
			name: "dense shuffled rows",
			x:    Nums(2, 1, 2, 1),
			y:    Nums(4, 3, 3, 4),
			z:    Heights(1, 2, 3, 4),
			want: ModeDense,
		},
		{
			name: "single bar",
			x:    Nums(5),
			y:    Nums(10),
			z:    Heights(100),
			want: ModeDense,
		},
		{
			name: "paired",
			x:    Nums(2, 3, 5, 10, 20),
			y:    Nums(31, 24, 10, 28, 48),
			z:    Heights(0.9727, 0.9994, 0.9994, 0.9995, 0.9995),
			want: ModePaired,
		},
		{
			name: "paired with product size but missing pairs",
			x:    Nums(1, 1, 2, 2),
			y:    Nums(3, 3, 4, 4),
			z:    Heights(1, 2, 3, 4),
			want: ModePaired,
		},
		{
			name: "axis lists",
			x:    Nums(1, 10),
			y:    Nums(2, 4),
			z:    Heights(10, 30, 20, 45),
			want: ModeSparse,
		},
		{
			name: "numeric and string categories differ",
			x:    []Value{Num(1), Str("1")},
			y:    Nums(7, 7),
			z:    Heights(1, 2),
			want: ModeDense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.x, tt.y, tt.z)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyMismatch(t *testing.T) {
	_, err := Classify(Nums(1, 2, 3), Nums(4, 5), Heights(10, 20, 30))
	if !bcerrors.Is(err, bcerrors.ErrCodeShapeMismatch) {
		t.Fatalf("Classify error = %v, want shape mismatch", err)
	}
}

func TestUniques(t *testing.T) {
	vals := []Value{Num(10), Str("b"), Num(2), Num(10), Str("a"), Num(2.5), Str("b")}

	t.Run("first appearance", func(t *testing.T) {
		got := TickLabels(Uniques(vals, false))
		want := []string{"10", "b", "2", "a", "2.5"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Uniques mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sorted", func(t *testing.T) {
		got := TickLabels(Uniques(vals, true))
		want := []string{"2", "2.5", "10", "a", "b"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Uniques mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestSparseGrid(t *testing.T) {
	tests := []struct {
		name        string
		nx, ny      int
		z           []Height
		want        []Height
		wantDropped int
	}{
		{
			name: "exact fit",
			nx:   2,
			ny:   2,
			z:    Heights(1, 2, 3, 4),
			want: Heights(1, 2, 3, 4),
		},
		{
			name: "padded",
			nx:   2,
			ny:   2,
			z:    Heights(1, 2),
			want: []Height{Some(1), Some(2), None(), None()},
		},
		{
			name:        "overflow dropped",
			nx:          1,
			ny:          2,
			z:           Heights(1, 2, 3),
			want:        Heights(1, 2),
			wantDropped: 1,
		},
		{
			name: "empty grid",
			nx:   0,
			ny:   3,
			want: []Height{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := SparseGrid(tt.nx, tt.ny, tt.z)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SparseGrid mismatch (-want +got):\n%s", diff)
			}
			if dropped != tt.wantDropped {
				t.Errorf("dropped = %d, want %d", dropped, tt.wantDropped)
			}
		})
	}
}
