package grid_test

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/modelgrid/core/model"
	"github.com/YuminosukeSato/modelgrid/grid"
	"github.com/YuminosukeSato/modelgrid/recipe"
)

// constantTrainer reports a fixed score distribution; real callers supply a
// trainer that resamples and fits an actual model.
type constantTrainer struct{}

func (constantTrainer) Fit(_ context.Context, _ model.Dataset, effective map[string]any) (model.Fitted, model.ResampleProfile, error) {
	metric, _ := effective["metric"].(string)
	return nil, model.ResampleProfile{Metric: metric, Scores: []float64{0.84, 0.86, 0.88}}, nil
}

// identityPre passes data through unchanged.
type identityPre struct{}

func (identityPre) Apply(_ context.Context, _ *recipe.Recipe, data model.Dataset, _ map[string]any) (model.Dataset, error) {
	return data, nil
}

func Example() {
	g := grid.New(identityPre{}, constantTrainer{})
	g.SetShared(grid.Settings{"resampling": "cv-5", "metric": "AUC", "method": "glm"})

	_ = g.Add("glm_base", nil, nil)
	_ = g.Add("glm_pca", nil, recipe.New().Center().Scale().PCA(10))
	_ = g.Add("rf_accuracy", grid.Settings{"method": "rf", "metric": "Accuracy"}, nil)

	X := mat.NewDense(4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	data, _ := model.NewDataset(X, mat.NewDense(4, 1, []float64{0, 1, 0, 1}), nil)

	report, err := g.Train(context.Background(), data)
	if err != nil {
		fmt.Println("run error:", err)
		return
	}

	for _, a := range g.Artifacts() {
		fmt.Printf("%s: %s %.2f\n", a.Name, a.Profile.Metric, a.Profile.Mean())
	}
	fmt.Println("failures:", len(report.Failed()))

	// Output:
	// glm_base: AUC 0.86
	// glm_pca: AUC 0.86
	// rf_accuracy: Accuracy 0.86
	// failures: 0
}
