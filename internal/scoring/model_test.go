package scoring

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeModelFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write model file: %v", err)
	}
	return path
}

func TestLoadModel(t *testing.T) {
	t.Parallel()

	path := writeModelFile(t, `{
		"features": ["weekly_work_hours", "overtime_hours", "meeting_hours", "performance_score"],
		"coefficients": [0.08, 0.21, 0.05, -1.3],
		"intercept": -2.1
	}`)

	m, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if len(m.Coefficients) != 4 {
		t.Fatalf("coefficients want=4 got=%d", len(m.Coefficients))
	}
}

func TestLoadModel_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := LoadModel(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := writeModelFile(t, `{"coefficients": []}`)
	if _, err := LoadModel(path); err == nil {
		t.Fatalf("expected error for empty coefficients")
	}

	path = writeModelFile(t, `{"features": ["a", "b"], "coefficients": [1.0]}`)
	if _, err := LoadModel(path); err == nil {
		t.Fatalf("expected error for dimension mismatch")
	}
}

func TestPredict_Sigmoid(t *testing.T) {
	t.Parallel()

	// 线性项为 0 时概率恰为 0.5
	m := &LogisticModel{Coefficients: []float64{1, 1}, Intercept: -3}
	p, err := m.Predict([]float64{1, 2})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if math.Abs(p-0.5) > 1e-12 {
		t.Fatalf("p want=0.5 got=%v", p)
	}

	// 大正线性项趋近 1
	p, err = m.Predict([]float64{100, 100})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if p < 0.999 || p > 1 {
		t.Fatalf("p want≈1 got=%v", p)
	}
}

func TestPredict_DimensionMismatch(t *testing.T) {
	t.Parallel()

	m := &LogisticModel{Coefficients: []float64{1, 2, 3, 4}}
	if _, err := m.Predict([]float64{1, 2}); err == nil {
		t.Fatalf("expected error for feature length mismatch")
	}
}
