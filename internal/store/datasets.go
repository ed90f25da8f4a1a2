package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/VenuAyyankar/Burn-Bot/internal/model"
)

// ErrDatasetExists 数据集名称已存在（显式创建路径的冲突错误）
var ErrDatasetExists = errors.New("dataset name already exists")

// FindOrCreateDataset 按名称查找数据集，不存在则创建
// 查找与创建在同一事务内完成，一次导入只调用一次
func (s *Store) FindOrCreateDataset(name string) (*model.Dataset, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ds := &model.Dataset{}
	err = tx.QueryRow(`SELECT id, name, created_at FROM datasets WHERE name = ?`, name).
		Scan(&ds.ID, &ds.Name, &ds.CreatedAt)
	if err == nil {
		return ds, tx.Commit()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}

	res, err := tx.Exec(`INSERT INTO datasets (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return &model.Dataset{ID: id, Name: name}, nil
}

// CreateDataset 显式创建数据集，名称重复时返回 ErrDatasetExists
func (s *Store) CreateDataset(name string) (*model.Dataset, error) {
	res, err := s.db.Exec(`INSERT INTO datasets (name) VALUES (?)`, name)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrDatasetExists
		}
		return nil, fmt.Errorf("failed to create dataset: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset id: %w", err)
	}
	return &model.Dataset{ID: id, Name: name}, nil
}

// GetDataset 按 id 查询数据集
func (s *Store) GetDataset(id int64) (*model.Dataset, error) {
	ds := &model.Dataset{}
	err := s.db.QueryRow(`
		SELECT d.id, d.name, d.created_at,
			(SELECT COUNT(*) FROM employees e WHERE e.dataset_id = d.id)
		FROM datasets d WHERE d.id = ?
	`, id).Scan(&ds.ID, &ds.Name, &ds.CreatedAt, &ds.EmployeeCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}
	return ds, nil
}

// ListDatasets 列出所有数据集及其记录数
func (s *Store) ListDatasets() ([]*model.Dataset, error) {
	rows, err := s.db.Query(`
		SELECT d.id, d.name, d.created_at, COUNT(e.id)
		FROM datasets d
		LEFT JOIN employees e ON e.dataset_id = d.id
		GROUP BY d.id
		ORDER BY d.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query datasets: %w", err)
	}
	defer rows.Close()

	var datasets []*model.Dataset
	for rows.Next() {
		ds := &model.Dataset{}
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.CreatedAt, &ds.EmployeeCount); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		datasets = append(datasets, ds)
	}
	return datasets, rows.Err()
}

// DeleteDataset 删除数据集，其下员工记录随外键级联删除
func (s *Store) DeleteDataset(id int64) error {
	res, err := s.db.Exec(`DELETE FROM datasets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
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

// CountDatasets 数据集总数
func (s *Store) CountDatasets() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM datasets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count datasets: %w", err)
	}
	return count, nil
}
