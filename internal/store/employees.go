package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/VenuAyyankar/Burn-Bot/internal/model"
)

const employeeColumns = `id, dataset_id, name, department, weekly_work_hours, overtime_hours,
	tasks_completed, meeting_hours, leave_days_last_3_months, performance_score, created_at`

// BatchInsertEmployees 在单个事务内批量插入员工记录
func (s *Store) BatchInsertEmployees(records []*model.Employee) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO employees (
			dataset_id, name, department, weekly_work_hours, overtime_hours,
			tasks_completed, meeting_hours, leave_days_last_3_months, performance_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.DatasetID, r.Name, r.Department, r.WeeklyWorkHours, r.OvertimeHours,
			r.TasksCompleted, r.MeetingHours, r.LeaveDaysLast3Months, r.PerformanceScore,
		)
		if err != nil {
			return fmt.Errorf("failed to insert employee %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// InsertEmployee 插入单条员工记录，返回新记录 id
func (s *Store) InsertEmployee(r *model.Employee) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO employees (
			dataset_id, name, department, weekly_work_hours, overtime_hours,
			tasks_completed, meeting_hours, leave_days_last_3_months, performance_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.DatasetID, r.Name, r.Department, r.WeeklyWorkHours, r.OvertimeHours,
		r.TasksCompleted, r.MeetingHours, r.LeaveDaysLast3Months, r.PerformanceScore,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert employee: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get employee id: %w", err)
	}
	return id, nil
}

// EmployeeQueryOptions 员工查询条件
type EmployeeQueryOptions struct {
	DatasetID *int64
}

// ListEmployees 查询员工记录，可按数据集过滤
func (s *Store) ListEmployees(opts EmployeeQueryOptions) ([]*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	var args []interface{}
	if opts.DatasetID != nil {
		query += ` WHERE dataset_id = ?`
		args = append(args, *opts.DatasetID)
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// GetEmployee 按 id 查询单条员工记录
func (s *Store) GetEmployee(id int64) (*model.Employee, error) {
	row := s.db.QueryRow(`SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)

	emp := &model.Employee{}
	var datasetID sql.NullInt64
	err := row.Scan(
		&emp.ID, &datasetID, &emp.Name, &emp.Department, &emp.WeeklyWorkHours,
		&emp.OvertimeHours, &emp.TasksCompleted, &emp.MeetingHours,
		&emp.LeaveDaysLast3Months, &emp.PerformanceScore, &emp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	if datasetID.Valid {
		emp.DatasetID = &datasetID.Int64
	}
	return emp, nil
}

// UpdateEmployee 整行更新员工记录
func (s *Store) UpdateEmployee(r *model.Employee) error {
	res, err := s.db.Exec(`
		UPDATE employees SET
			name = ?, department = ?, weekly_work_hours = ?, overtime_hours = ?,
			tasks_completed = ?, meeting_hours = ?, leave_days_last_3_months = ?,
			performance_score = ?
		WHERE id = ?
	`,
		r.Name, r.Department, r.WeeklyWorkHours, r.OvertimeHours,
		r.TasksCompleted, r.MeetingHours, r.LeaveDaysLast3Months,
		r.PerformanceScore, r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEmployee 删除员工记录
func (s *Store) DeleteEmployee(id int64) error {
	res, err := s.db.Exec(`DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountEmployees 员工记录总数
func (s *Store) CountEmployees() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// scanEmployee 从查询结果扫描一条员工记录
func scanEmployee(rows *sql.Rows) (*model.Employee, error) {
	emp := &model.Employee{}
	var datasetID sql.NullInt64
	err := rows.Scan(
		&emp.ID, &datasetID, &emp.Name, &emp.Department, &emp.WeeklyWorkHours,
		&emp.OvertimeHours, &emp.TasksCompleted, &emp.MeetingHours,
		&emp.LeaveDaysLast3Months, &emp.PerformanceScore, &emp.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}
	if datasetID.Valid {
		emp.DatasetID = &datasetID.Int64
	}
	return emp, nil
}
