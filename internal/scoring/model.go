package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// LogisticModel 逻辑回归模型参数，由训练管线导出为 JSON
// 特征顺序: [weekly_work_hours, overtime_hours, meeting_hours, performance_score]
type LogisticModel struct {
	Features     []string  `json:"features"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// LoadModel 从 JSON 文件加载模型参数
func LoadModel(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var m LogisticModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}

	if len(m.Coefficients) == 0 {
		return nil, fmt.Errorf("model has no coefficients")
	}
	if len(m.Features) > 0 && len(m.Features) != len(m.Coefficients) {
		return nil, fmt.Errorf("model feature/coefficient count mismatch: %d vs %d",
			len(m.Features), len(m.Coefficients))
	}

	return &m, nil
}

// Predict 返回正类（倦怠）概率，特征维度不匹配或结果非法时报错
func (m *LogisticModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("feature vector length %d does not match model dimension %d",
			len(features), len(m.Coefficients))
	}

	z := m.Intercept
	for i, w := range m.Coefficients {
		z += w * features[i]
	}

	p := 1.0 / (1.0 + math.Exp(-z))
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("model produced invalid probability: %v", p)
	}
	return p, nil
}
