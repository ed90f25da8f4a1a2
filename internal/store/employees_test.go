package store

import (
	"errors"
	"testing"

	"github.com/VenuAyyankar/Burn-Bot/internal/model"
)

func sampleEmployee(name string, datasetID *int64) *model.Employee {
	return &model.Employee{
		DatasetID:            datasetID,
		Name:                 name,
		Department:           "Engineering",
		WeeklyWorkHours:      45,
		OvertimeHours:        8,
		TasksCompleted:       12,
		MeetingHours:         6,
		LeaveDaysLast3Months: 1,
		PerformanceScore:     3.6,
	}
}

func TestBatchInsertAndList(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	ds, err := st.CreateDataset("batch")
	if err != nil {
		t.Fatalf("create dataset: %v", err)
	}

	records := []*model.Employee{
		sampleEmployee("张三", &ds.ID),
		sampleEmployee("李四", &ds.ID),
		sampleEmployee("王五", nil),
	}
	if err := st.BatchInsertEmployees(records); err != nil {
		t.Fatalf("batch insert: %v", err)
	}

	all, err := st.ListEmployees(EmployeeQueryOptions{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all want=3 got=%d", len(all))
	}

	inDataset, err := st.ListEmployees(EmployeeQueryOptions{DatasetID: &ds.ID})
	if err != nil {
		t.Fatalf("list by dataset: %v", err)
	}
	if len(inDataset) != 2 {
		t.Fatalf("in dataset want=2 got=%d", len(inDataset))
	}
	if inDataset[0].Name != "张三" {
		t.Fatalf("unexpected order, first=%q", inDataset[0].Name)
	}
}

func TestGetUpdateDeleteEmployee(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	id, err := st.InsertEmployee(sampleEmployee("赵六", nil))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	emp, err := st.GetEmployee(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if emp.Name != "赵六" || emp.DatasetID != nil {
		t.Fatalf("unexpected record: %+v", emp)
	}

	emp.OvertimeHours = 20
	if err := st.UpdateEmployee(emp); err != nil {
		t.Fatalf("update: %v", err)
	}

	updated, err := st.GetEmployee(id)
	if err != nil {
		t.Fatalf("get updated: %v", err)
	}
	if updated.OvertimeHours != 20 {
		t.Fatalf("overtime want=20 got=%v", updated.OvertimeHours)
	}

	if err := st.DeleteEmployee(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.GetEmployee(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestImportLogLifecycle(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	id, err := st.CreateImportLog("workload.csv", nil)
	if err != nil {
		t.Fatalf("create log: %v", err)
	}
	if err := st.FinishImportLog(id, 10, 8, 2, "done", ""); err != nil {
		t.Fatalf("finish log: %v", err)
	}

	last, err := st.LastImportTime()
	if err != nil {
		t.Fatalf("last import time: %v", err)
	}
	if last == "" {
		t.Fatalf("expected non-empty last import time")
	}
}
