package recipe

import (
	"testing"

	"github.com/YuminosukeSato/modelgrid/pkg/errors"
)

func TestFluentChain(t *testing.T) {
	rec := New().Center().Scale().PCA(10).CorrFilter(0.9).ZeroVar().Log("dose")

	steps := rec.Steps()
	wantOps := []StepOp{OpCenter, OpScale, OpPCA, OpCorrFilter, OpZeroVar, OpLog}
	if len(steps) != len(wantOps) {
		t.Fatalf("len(Steps()) = %d, want %d", len(steps), len(wantOps))
	}
	for i, op := range wantOps {
		if steps[i].Op != op {
			t.Errorf("steps[%d].Op = %v, want %v", i, steps[i].Op, op)
		}
	}

	if steps[2].NumComponents != 10 {
		t.Errorf("PCA components = %d, want 10", steps[2].NumComponents)
	}
	if steps[3].Threshold != 0.9 {
		t.Errorf("CorrFilter threshold = %v, want 0.9", steps[3].Threshold)
	}
	if len(steps[5].Columns) != 1 || steps[5].Columns[0] != "dose" {
		t.Errorf("Log columns = %v, want [dose]", steps[5].Columns)
	}
}

func TestStepsReturnsCopy(t *testing.T) {
	rec := New().Center().Scale()
	steps := rec.Steps()
	steps[0].Op = OpPCA

	if rec.Steps()[0].Op != OpCenter {
		t.Error("Steps() must return a copy, not the internal slice")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     *Recipe
		wantErr bool
	}{
		{
			name:    "valid chain",
			rec:     New().Center().Scale().PCA(3),
			wantErr: false,
		},
		{
			name:    "empty recipe",
			rec:     New(),
			wantErr: true,
		},
		{
			name:    "pca with zero components",
			rec:     New().PCA(0),
			wantErr: true,
		},
		{
			name:    "corr filter threshold too high",
			rec:     New().CorrFilter(1.5),
			wantErr: true,
		},
		{
			name:    "corr filter threshold zero",
			rec:     New().CorrFilter(0),
			wantErr: true,
		},
		{
			name:    "corr filter threshold at boundary",
			rec:     New().CorrFilter(1.0),
			wantErr: false,
		},
		{
			name:    "unknown op via Append",
			rec:     New().Append(Step{Op: StepOp("boxcox")}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var valErr *errors.ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected *ValidationError, got %T: %v", err, err)
				}
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		rec  *Recipe
		want string
	}{
		{
			name: "full chain",
			rec:  New().Center().Scale().PCA(10),
			want: "center -> scale -> pca(10)",
		},
		{
			name: "corr filter formatting",
			rec:  New().CorrFilter(0.9),
			want: "corr_filter(0.90)",
		},
		{
			name: "log with columns",
			rec:  New().Log("dose", "age"),
			want: "log(dose,age)",
		},
		{
			name: "empty",
			rec:  New(),
			want: "(empty recipe)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
