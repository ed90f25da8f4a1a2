package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/VenuAyyankar/Burn-Bot/internal/scoring"
	"github.com/VenuAyyankar/Burn-Bot/internal/store"
)

// sheetName 导出工作表名称
const sheetName = "倦怠分析"

var columnTitles = []string{
	"姓名", "部门", "周工时", "加班时长", "完成任务数",
	"会议时长", "近三月请假天数", "绩效评分", "倦怠评分", "风险说明",
}

// Exporter 倦怠分析结果导出器：员工记录连同评分一并写入 Excel
type Exporter struct {
	store  *store.Store
	engine *scoring.Engine
}

// NewExporter 创建导出器
func NewExporter(st *store.Store, engine *scoring.Engine) *Exporter {
	return &Exporter{store: st, engine: engine}
}

// Export 导出指定数据集（datasetID 为空时导出全部）到 outPath，返回导出行数
func (e *Exporter) Export(datasetID *int64, outPath string) (int, error) {
	employees, err := e.store.ListEmployees(store.EmployeeQueryOptions{DatasetID: datasetID})
	if err != nil {
		return 0, fmt.Errorf("查询员工记录失败: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return 0, fmt.Errorf("创建 Sheet 失败: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return 0, fmt.Errorf("删除默认 Sheet 失败: %w", err)
	}

	if err := e.writeHeader(f); err != nil {
		return 0, err
	}

	for i, emp := range employees {
		score, explanation := e.engine.Score(emp)
		values := []interface{}{
			emp.Name, emp.Department, emp.WeeklyWorkHours, emp.OvertimeHours,
			emp.TasksCompleted, emp.MeetingHours, emp.LeaveDaysLast3Months,
			emp.PerformanceScore, score, explanation,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return 0, fmt.Errorf("计算单元格坐标失败: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return 0, fmt.Errorf("写入单元格失败: %w", err)
			}
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return 0, fmt.Errorf("保存导出文件失败: %w", err)
	}
	return len(employees), nil
}

// writeHeader 写表头行并加粗
func (e *Exporter) writeHeader(f *excelize.File) error {
	for col, title := range columnTitles {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("计算单元格坐标失败: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return fmt.Errorf("写入表头失败: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("创建表头样式失败: %w", err)
	}
	endCell, err := excelize.CoordinatesToCellName(len(columnTitles), 1)
	if err != nil {
		return fmt.Errorf("计算单元格坐标失败: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", endCell, style); err != nil {
		return fmt.Errorf("设置表头样式失败: %w", err)
	}
	return nil
}
