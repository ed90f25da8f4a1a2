package parser

// fieldAliases 各规范字段的已知表头别名（规范化后的形式）
// 新增别名只需在此追加一行数据
var fieldAliases = map[Field][]string{
	FieldName: {
		"name", "fullname", "employeename", "empname", "employee",
	},
	FieldDepartment: {
		"department", "dept",
	},
	FieldWeeklyWorkHours: {
		"weeklyworkhours", "weeklyhours", "workhours", "hoursperweek",
		"weeklyhoursworked", "workinghours", "hours", "weeklyhrs", "workhrs",
	},
	FieldOvertimeHours: {
		"overtimehours", "overtime", "othours", "ot", "extrahours",
	},
	FieldTasksCompleted: {
		"taskscompleted", "tasks", "completedtasks", "taskcount",
		"totaltasks", "notasks", "numberoftasks",
	},
	FieldMeetingHours: {
		"meetinghours", "meetings", "meetinghrs", "meetingtime",
	},
	FieldLeaveDaysLast3Months: {
		"leavedayslast3months", "leavedays", "leaves", "leavedays3months",
		"leavecount", "daysoff", "leavebalance", "leave", "leavedayslast3month",
	},
	FieldPerformanceScore: {
		"performancescore", "performance", "performancerating", "rating",
		"perfscore", "score",
	},
}

// aliasTable 规范化表头 -> 规范字段的查找表，启动时构建一次
var aliasTable = buildAliasTable()

func buildAliasTable() map[string]Field {
	table := make(map[string]Field)
	for field, aliases := range fieldAliases {
		for _, alias := range aliases {
			table[alias] = field
		}
	}
	return table
}
