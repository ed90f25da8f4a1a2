package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/VenuAyyankar/Burn-Bot/internal/model"
)

// displayRowOffset 数据行下标到展示行号的偏移：表头占 1 行，下标从 0 起
const displayRowOffset = 2

// RowError 单行转换错误，行号为文件中的展示行号
type RowError struct {
	Row    int
	Field  Field
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("第 %d 行: 字段 %s %s", e.Row, e.Field, e.Reason)
}

// ConvertRow 将一个数据行转换为员工记录
// 任一字段转换失败则整行失败，不返回部分记录；index 为数据行下标（0 起）
func ConvertRow(row map[string]string, mapping ColumnMapping, datasetID *int64, index int) (*model.Employee, error) {
	emp := &model.Employee{DatasetID: datasetID}

	for _, field := range AllFields {
		raw := strings.TrimSpace(row[mapping[field]])

		switch fieldKinds[field] {
		case kindText:
			setText(emp, field, raw)
		case kindFloat:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &RowError{
					Row:    index + displayRowOffset,
					Field:  field,
					Reason: fmt.Sprintf("的值 %q 无法解析为数字", raw),
				}
			}
			setFloat(emp, field, v)
		case kindInt:
			v, err := parseIntValue(raw)
			if err != nil {
				return nil, &RowError{
					Row:    index + displayRowOffset,
					Field:  field,
					Reason: fmt.Sprintf("的值 %q 无法解析为整数", raw),
				}
			}
			setInt(emp, field, v)
		}
	}

	return emp, nil
}

// parseIntValue 解析整数值，兼容 "20.0" 这类可整数表示的数值
func parseIntValue(raw string) (int, error) {
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.Trunc(f) != f || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not an integer: %s", raw)
	}
	// int(f) 在超出 int 范围时结果未定义
	if f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("integer out of range: %s", raw)
	}
	return int(f), nil
}

func setText(emp *model.Employee, field Field, v string) {
	switch field {
	case FieldName:
		emp.Name = v
	case FieldDepartment:
		emp.Department = v
	}
}

func setFloat(emp *model.Employee, field Field, v float64) {
	switch field {
	case FieldWeeklyWorkHours:
		emp.WeeklyWorkHours = v
	case FieldOvertimeHours:
		emp.OvertimeHours = v
	case FieldMeetingHours:
		emp.MeetingHours = v
	case FieldPerformanceScore:
		emp.PerformanceScore = v
	}
}

func setInt(emp *model.Employee, field Field, v int) {
	switch field {
	case FieldTasksCompleted:
		emp.TasksCompleted = v
	case FieldLeaveDaysLast3Months:
		emp.LeaveDaysLast3Months = v
	}
}
