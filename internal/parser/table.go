package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FormatError 文件格式错误：扩展名不支持或内容无法解析
// 触发时整个导入失败，不处理任何数据行
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// ParseFile 按文件扩展名解析表格字节流
// 支持 .csv / .xlsx / .xls，其余格式直接返回 FormatError
func ParseFile(filename string, data []byte) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return parseCSV(data)
	case ".xlsx", ".xls":
		return parseExcel(data)
	default:
		return nil, &FormatError{Reason: fmt.Sprintf("不支持的文件格式: %q，仅支持 .csv / .xlsx / .xls", ext)}
	}
}

// parseCSV 解析 CSV 字节流
// 宽松模式：允许不规则引号和列数不一致，短行按空值补齐
func parseCSV(data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &FormatError{Reason: "文件为空，缺少表头行"}
		}
		return nil, &FormatError{Reason: fmt.Sprintf("读取表头失败: %v", err)}
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("解析 CSV 内容失败: %v", err)}
		}
		rows = append(rows, row)
	}

	return buildTable(headers, rows), nil
}

// parseExcel 解析 Excel 字节流，取第一个 Sheet
func parseExcel(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("打开 Excel 文件失败: %v", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &FormatError{Reason: "Excel 文件不含任何 Sheet"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("读取 Sheet 失败: %v", err)}
	}
	if len(rows) < 1 {
		return nil, &FormatError{Reason: "Sheet 为空，缺少表头行"}
	}

	return buildTable(rows[0], rows[1:]), nil
}

// buildTable 按表头把原始行组装为键值行，短行补空、长行截断
func buildTable(headers []string, rawRows [][]string) *Table {
	table := &Table{Headers: headers}
	for _, raw := range rawRows {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(raw) {
				row[h] = raw[i]
			} else {
				row[h] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
