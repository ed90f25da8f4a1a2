package scoring

import (
	"math"

	"github.com/VenuAyyankar/Burn-Bot/internal/model"
)

// Predictor 倦怠概率预测能力：给定特征向量返回 [0,1] 的正类概率
type Predictor interface {
	Predict(features []float64) (float64, error)
}

// Engine 倦怠评分引擎
// 优先走概率模型；模型缺失或预测失败时，静默切换到规则兜底，绝不向调用方报错
type Engine struct {
	predictor Predictor
}

// NewEngine 创建评分引擎，predictor 可为 nil（始终走规则兜底）
func NewEngine(predictor Predictor) *Engine {
	return &Engine{predictor: predictor}
}

// ModelAvailable 概率模型是否已装载
func (e *Engine) ModelAvailable() bool {
	return e.predictor != nil
}

// Score 计算员工倦怠评分（0-100，保留两位小数）及风险说明
// 纯读操作，不修改记录、不落库
func (e *Engine) Score(emp *model.Employee) (float64, string) {
	perf := NormalizePerformance(emp.PerformanceScore)

	score, ok := e.modelScore(emp, perf)
	if !ok {
		score = RuleScore(emp.WeeklyWorkHours, emp.OvertimeHours, emp.MeetingHours, perf)
	}

	return score, Explain(score)
}

// modelScore 模型主路径，失败时返回 ok=false 交给规则兜底
func (e *Engine) modelScore(emp *model.Employee, perf float64) (float64, bool) {
	if e.predictor == nil {
		return 0, false
	}

	features := []float64{emp.WeeklyWorkHours, emp.OvertimeHours, emp.MeetingHours, perf}
	p, err := e.predictor.Predict(features)
	if err != nil {
		return 0, false
	}

	return clamp(round2(p*100), 0, 100), true
}

// NormalizePerformance 归一化绩效评分到模型训练口径 2.0-5.0
// 大于 5 视为百分制，线性映射；否则原样使用
func NormalizePerformance(v float64) float64 {
	if v > 5 {
		return 2.0 + (v/100.0)*3.0
	}
	return v
}

// RuleScore 确定性规则评分：逐项累加，封顶 100，永不失败
func RuleScore(weeklyHours, overtimeHours, meetingHours, perf float64) float64 {
	score := 0.0
	if weeklyHours > 50 {
		score += 30
	}
	if overtimeHours > 10 {
		score += 25
	}
	if meetingHours > 15 {
		score += 15
	}
	if perf < 3 {
		score += 20
	}
	return clamp(score, 0, 100)
}

// Explain 按固定阈值给出风险说明：>70 高风险，(40,70] 中风险，<=40 低风险
func Explain(score float64) string {
	switch {
	case score > 70:
		return "高风险：工作负荷显著超标，存在明显倦怠迹象，建议尽快调整工作安排"
	case score > 40:
		return "中风险：工作负荷偏高，需关注加班时长与会议占用"
	default:
		return "低风险：工作负荷处于均衡区间"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
