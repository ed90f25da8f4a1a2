package parser

// Resolve 将源表头按顺序映射到规范字段，并返回未解析到的规范字段
// 未匹配任何别名的表头直接忽略；两个表头命中同一字段时，后出现者覆盖先出现者
// 只依赖表头序列，不读数据行
func Resolve(headers []string) (ColumnMapping, []Field) {
	mapping := make(ColumnMapping)
	for _, header := range headers {
		normalized := NormalizeHeader(header)
		if normalized == "" {
			continue
		}
		if field, ok := aliasTable[normalized]; ok {
			mapping[field] = header
		}
	}

	var missing []Field
	for _, field := range AllFields {
		if _, ok := mapping[field]; !ok {
			missing = append(missing, field)
		}
	}
	return mapping, missing
}
