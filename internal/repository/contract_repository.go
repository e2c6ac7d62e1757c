package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contract-intel/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// contractRow mirrors the contracts table; analysis data travels as a
// JSONB document.
type contractRow struct {
	ID                    uuid.UUID
	Filename              string
	FileSize              int64
	Status                string
	ProgressPercentage    int
	ErrorMessage          *string
	Data                  []byte
	CreatedAt             time.Time
	UpdatedAt             time.Time
	ProcessingStartedAt   *time.Time
	ProcessingCompletedAt *time.Time
}

func (row *contractRow) toModel() (*model.Contract, error) {
	contract := &model.Contract{
		ID:                    row.ID,
		Filename:              row.Filename,
		FileSize:              row.FileSize,
		Status:                model.ProcessingStatus(row.Status),
		ProgressPercentage:    row.ProgressPercentage,
		ErrorMessage:          row.ErrorMessage,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
		ProcessingStartedAt:   row.ProcessingStartedAt,
		ProcessingCompletedAt: row.ProcessingCompletedAt,
	}
	if len(row.Data) > 0 {
		var data model.ContractData
		if err := json.Unmarshal(row.Data, &data); err != nil {
			return nil, fmt.Errorf("decode contract data: %w", err)
		}
		contract.Data = &data
	}
	return contract, nil
}

const contractColumns = `
	id,
	filename,
	file_size,
	status,
	progress_percentage,
	error_message,
	data,
	created_at,
	updated_at,
	processing_started_at,
	processing_completed_at
`

func (r *ContractRepository) Create(ctx context.Context, contract *model.Contract) error {
	var row contractRow
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contracts (id, filename, file_size, status, progress_percentage)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+contractColumns,
		contract.ID,
		contract.Filename,
		contract.FileSize,
		contract.Status,
		contract.ProgressPercentage,
	).Scan(&row).Error
	if err != nil {
		return err
	}
	contract.CreatedAt = row.CreatedAt
	contract.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var row contractRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return row.toModel()
}

type ListFilter struct {
	Status *model.ProcessingStatus
	Search string
	Limit  int
	Offset int
}

func (r *ContractRepository) List(ctx context.Context, filter ListFilter) ([]model.Contract, int64, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.Status != nil {
		where = append(where, "status = ?")
		args = append(args, *filter.Status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		where = append(where, "LOWER(filename) LIKE ?")
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	condition := strings.Join(where, " AND ")

	var total int64
	if err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM contracts WHERE `+condition, args...,
	).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + contractColumns + ` FROM contracts WHERE ` + condition + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	var rows []contractRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	contracts := make([]model.Contract, 0, len(rows))
	for i := range rows {
		contract, err := rows[i].toModel()
		if err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, *contract)
	}
	return contracts, total, nil
}

func (r *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM contracts WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContractRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE contracts
		SET status = ?, progress_percentage = 0, error_message = NULL,
			processing_started_at = NOW(), updated_at = NOW()
		WHERE id = ?
	`, model.StatusProcessing, id).Error
}

func (r *ContractRepository) SetProgress(ctx context.Context, id uuid.UUID, pct int) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE contracts
		SET progress_percentage = ?, updated_at = NOW()
		WHERE id = ? AND status = ?
	`, pct, id, model.StatusProcessing).Error
}

func (r *ContractRepository) Complete(ctx context.Context, id uuid.UUID, data *model.ContractData) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode contract data: %w", err)
	}
	return r.db.WithContext(ctx).Exec(`
		UPDATE contracts
		SET status = ?, progress_percentage = 100, data = ?,
			processing_completed_at = NOW(), updated_at = NOW()
		WHERE id = ?
	`, model.StatusCompleted, encoded, id).Error
}

func (r *ContractRepository) Fail(ctx context.Context, id uuid.UUID, message string) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE contracts
		SET status = ?, error_message = ?,
			processing_completed_at = NOW(), updated_at = NOW()
		WHERE id = ?
	`, model.StatusFailed, message, id).Error
}
