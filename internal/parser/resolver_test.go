package parser

import "testing"

func TestResolve_AllFieldsFound(t *testing.T) {
	t.Parallel()

	headers := []string{
		"Employee Name", "Dept", "Weekly Hours", "OT",
		"Tasks", "Meetings", "Leave Days", "Rating",
	}

	mapping, missing := Resolve(headers)
	if len(missing) != 0 {
		t.Fatalf("unexpected missing fields: %v", missing)
	}
	if len(mapping) != len(AllFields) {
		t.Fatalf("mapping size want=%d got=%d", len(AllFields), len(mapping))
	}
	if mapping[FieldOvertimeHours] != "OT" {
		t.Fatalf("overtime_hours want=OT got=%q", mapping[FieldOvertimeHours])
	}
	if mapping[FieldPerformanceScore] != "Rating" {
		t.Fatalf("performance_score want=Rating got=%q", mapping[FieldPerformanceScore])
	}
}

func TestResolve_MissingPerformance(t *testing.T) {
	t.Parallel()

	headers := []string{
		"Employee Name", "Dept", "Weekly Hours", "OT",
		"Tasks", "Meetings", "Leave Days",
	}

	_, missing := Resolve(headers)
	if len(missing) != 1 || missing[0] != FieldPerformanceScore {
		t.Fatalf("missing want=[performance_score] got=%v", missing)
	}
}

func TestResolve_LastHeaderWins(t *testing.T) {
	t.Parallel()

	headers := []string{
		"Name", "Dept", "Hours", "OT", "Overtime",
		"Tasks", "Meetings", "Leave Days", "Rating",
	}

	mapping, missing := Resolve(headers)
	if len(missing) != 0 {
		t.Fatalf("unexpected missing fields: %v", missing)
	}
	// 两列都命中 overtime_hours 时，后出现的列覆盖先出现的
	if mapping[FieldOvertimeHours] != "Overtime" {
		t.Fatalf("overtime_hours want=Overtime got=%q", mapping[FieldOvertimeHours])
	}
}

func TestResolve_UnknownHeadersIgnored(t *testing.T) {
	t.Parallel()

	headers := []string{"Name", "某个未知列", "Employee ID", "Favorite Color"}

	mapping, missing := Resolve(headers)
	if len(mapping) != 1 {
		t.Fatalf("mapping size want=1 got=%d (%v)", len(mapping), mapping)
	}
	if len(missing) != 7 {
		t.Fatalf("missing count want=7 got=%d", len(missing))
	}
	// 缺失字段按规范顺序报告
	if missing[0] != FieldDepartment {
		t.Fatalf("first missing want=department got=%v", missing[0])
	}
}
