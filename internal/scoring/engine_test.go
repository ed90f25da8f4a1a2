package scoring

import (
	"errors"
	"strings"
	"testing"

	"github.com/VenuAyyankar/Burn-Bot/internal/model"
)

// failingPredictor 总是失败的预测器，用于强制走规则兜底
type failingPredictor struct{}

func (failingPredictor) Predict([]float64) (float64, error) {
	return 0, errors.New("model unavailable")
}

// fixedPredictor 返回固定概率的预测器
type fixedPredictor struct {
	p float64
}

func (f fixedPredictor) Predict([]float64) (float64, error) {
	return f.p, nil
}

func TestScore_FallbackOnModelFailure(t *testing.T) {
	t.Parallel()

	engine := NewEngine(failingPredictor{})
	emp := &model.Employee{
		WeeklyWorkHours:  60,
		OvertimeHours:    15,
		MeetingHours:     5,
		PerformanceScore: 2,
	}

	score, explanation := engine.Score(emp)
	// 规则兜底: 30(周工时) + 25(加班) + 20(绩效)，会议条件未触发
	if score != 75 {
		t.Fatalf("score want=75 got=%v", score)
	}
	if !strings.Contains(explanation, "高风险") {
		t.Fatalf("explanation want high risk, got: %s", explanation)
	}
}

func TestScore_NilPredictorUsesRules(t *testing.T) {
	t.Parallel()

	engine := NewEngine(nil)
	emp := &model.Employee{
		WeeklyWorkHours:  40,
		OvertimeHours:    2,
		MeetingHours:     4,
		PerformanceScore: 4.5,
	}

	score, explanation := engine.Score(emp)
	if score != 0 {
		t.Fatalf("score want=0 got=%v", score)
	}
	if !strings.Contains(explanation, "低风险") {
		t.Fatalf("explanation want low risk, got: %s", explanation)
	}
}

func TestScore_ModelPath(t *testing.T) {
	t.Parallel()

	engine := NewEngine(fixedPredictor{p: 0.4321})
	emp := &model.Employee{
		WeeklyWorkHours:  40,
		OvertimeHours:    2,
		MeetingHours:     4,
		PerformanceScore: 4.5,
	}

	score, explanation := engine.Score(emp)
	if score != 43.21 {
		t.Fatalf("score want=43.21 got=%v", score)
	}
	if !strings.Contains(explanation, "中风险") {
		t.Fatalf("explanation want moderate risk, got: %s", explanation)
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	t.Parallel()

	engines := []*Engine{
		NewEngine(nil),
		NewEngine(fixedPredictor{p: 0}),
		NewEngine(fixedPredictor{p: 1}),
		NewEngine(failingPredictor{}),
	}
	employees := []*model.Employee{
		{},
		{WeeklyWorkHours: 100, OvertimeHours: 50, MeetingHours: 40, PerformanceScore: 1},
		{WeeklyWorkHours: -5, OvertimeHours: -5, MeetingHours: -5, PerformanceScore: 99},
	}

	for _, engine := range engines {
		for _, emp := range employees {
			score, _ := engine.Score(emp)
			if score < 0 || score > 100 {
				t.Fatalf("score out of range: %v", score)
			}
		}
	}
}

func TestNormalizePerformance(t *testing.T) {
	t.Parallel()

	// 百分制线性映射到 2.0-5.0
	if got := NormalizePerformance(50); got != 3.5 {
		t.Fatalf("NormalizePerformance(50) want=3.5 got=%v", got)
	}
	if got := NormalizePerformance(100); got != 5.0 {
		t.Fatalf("NormalizePerformance(100) want=5.0 got=%v", got)
	}
	// 5 分制原样使用
	if got := NormalizePerformance(3.2); got != 3.2 {
		t.Fatalf("NormalizePerformance(3.2) want=3.2 got=%v", got)
	}
	if got := NormalizePerformance(5); got != 5.0 {
		t.Fatalf("NormalizePerformance(5) want=5.0 got=%v", got)
	}
}

func TestExplain_BandBoundaries(t *testing.T) {
	t.Parallel()

	if got := Explain(70); !strings.Contains(got, "中风险") {
		t.Fatalf("Explain(70) want moderate, got: %s", got)
	}
	if got := Explain(70.01); !strings.Contains(got, "高风险") {
		t.Fatalf("Explain(70.01) want high, got: %s", got)
	}
	if got := Explain(40); !strings.Contains(got, "低风险") {
		t.Fatalf("Explain(40) want low, got: %s", got)
	}
	if got := Explain(40.01); !strings.Contains(got, "中风险") {
		t.Fatalf("Explain(40.01) want moderate, got: %s", got)
	}
}

func TestRuleScore_Cap(t *testing.T) {
	t.Parallel()

	// 全部条件命中: 30+25+15+20=90，未超过封顶
	if got := RuleScore(60, 20, 20, 2); got != 90 {
		t.Fatalf("RuleScore want=90 got=%v", got)
	}
	if got := RuleScore(40, 0, 0, 4); got != 0 {
		t.Fatalf("RuleScore want=0 got=%v", got)
	}
}
