package importer

import (
	"fmt"
	"strings"

	"github.com/VenuAyyankar/Burn-Bot/internal/parser"
)

// SchemaError 表头解析后仍有规范字段无法定位到源列
// 结构性错误：整个导入失败，不处理任何数据行
type SchemaError struct {
	Missing []parser.Field
	Headers []string
}

func (e *SchemaError) Error() string {
	missing := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		missing[i] = string(f)
	}
	return fmt.Sprintf("缺少必需列: %s；实际识别到的表头: %s",
		strings.Join(missing, ", "), strings.Join(e.Headers, ", "))
}
