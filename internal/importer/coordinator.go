package importer

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/VenuAyyankar/Burn-Bot/internal/model"
	"github.com/VenuAyyankar/Burn-Bot/internal/parser"
	"github.com/VenuAyyankar/Burn-Bot/internal/store"
)

// maxWarnings 导入结果中保留的行级错误上限，超出部分只计数不保留
const maxWarnings = 10

// Coordinator 导入协调器：驱动 解析 -> 数据集定位 -> 表头映射 -> 逐行转换 -> 批量入库
type Coordinator struct {
	store *store.Store
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.Store) *Coordinator {
	return &Coordinator{store: st}
}

// ImportOptions 导入选项
type ImportOptions struct {
	Filename    string // 上传文件名，扩展名决定解析器
	Data        []byte // 文件原始字节
	DatasetName string // 目标数据集名称，可为空
}

// Import 执行一次导入
// 文件格式错误与表头缺失错误是全有或全无；单行转换失败只隔离该行
func (c *Coordinator) Import(opts ImportOptions) (*model.ImportResult, error) {
	startTime := time.Now()

	table, err := parser.ParseFile(opts.Filename, opts.Data)
	if err != nil {
		c.logFailure(opts.Filename, nil, err)
		return nil, err
	}

	result := &model.ImportResult{TotalRows: len(table.Rows)}

	// 数据集按名称查找或创建，一次导入只定位一次
	if name := strings.TrimSpace(opts.DatasetName); name != "" {
		ds, err := c.store.FindOrCreateDataset(name)
		if err != nil {
			return nil, fmt.Errorf("定位数据集失败: %w", err)
		}
		result.DatasetID = &ds.ID
		result.DatasetName = ds.Name
	}

	mapping, missing := parser.Resolve(table.Headers)
	if len(missing) > 0 {
		schemaErr := &SchemaError{Missing: missing, Headers: table.Headers}
		c.logFailure(opts.Filename, result.DatasetID, schemaErr)
		return nil, schemaErr
	}

	logID, logErr := c.store.CreateImportLog(opts.Filename, result.DatasetID)
	if logErr != nil {
		log.Printf("创建导入日志失败: %v", logErr)
	}

	// 逐行转换：失败行收集告警后继续，不中断整体导入
	var staged []*model.Employee
	for i, row := range table.Rows {
		emp, err := parser.ConvertRow(row, mapping, result.DatasetID, i)
		if err != nil {
			result.ErrorRows++
			if len(result.Warnings) < maxWarnings {
				result.Warnings = append(result.Warnings, err.Error())
			}
			continue
		}
		staged = append(staged, emp)
	}

	if err := c.store.BatchInsertEmployees(staged); err != nil {
		if logErr == nil {
			_ = c.store.FinishImportLog(logID, result.TotalRows, 0, result.ErrorRows, "failed", err.Error())
		}
		return nil, fmt.Errorf("批量入库失败: %w", err)
	}

	result.Added = len(staged)
	result.Duration = time.Since(startTime)

	if logErr == nil {
		if err := c.store.FinishImportLog(logID, result.TotalRows, result.Added, result.ErrorRows, "done", ""); err != nil {
			log.Printf("更新导入日志失败: %v", err)
		}
	}

	return result, nil
}

// logFailure 结构性失败也落一条导入日志，便于排查
func (c *Coordinator) logFailure(filename string, datasetID *int64, cause error) {
	logID, err := c.store.CreateImportLog(filename, datasetID)
	if err != nil {
		return
	}
	_ = c.store.FinishImportLog(logID, 0, 0, 0, "failed", cause.Error())
}
