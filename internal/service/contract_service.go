package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/contract-intel/internal/config"
	"github.com/nurpe/contract-intel/internal/model"
	"github.com/nurpe/contract-intel/internal/repository"
)

// ContractStore is the persistence surface the service needs; the
// processor writes status transitions through its own narrower view.
type ContractStore interface {
	Create(ctx context.Context, contract *model.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	List(ctx context.Context, filter repository.ListFilter) ([]model.Contract, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentProcessor runs the analysis pipeline for one document.
type DocumentProcessor interface {
	Process(ctx context.Context, id uuid.UUID, raw []byte) error
}

type ExcelGenerator interface {
	Generate(contract *model.Contract) ([]byte, error)
}

type PDFGenerator interface {
	Generate(contract *model.Contract) ([]byte, error)
}

type ContractService struct {
	store       ContractStore
	processor   DocumentProcessor
	excel       ExcelGenerator
	pdf         PDFGenerator
	uploadDir   string
	maxFileSize int64
	log         zerolog.Logger
}

func NewContractService(
	store ContractStore,
	processor DocumentProcessor,
	excel ExcelGenerator,
	pdf PDFGenerator,
	cfg *config.Config,
	log zerolog.Logger,
) *ContractService {
	return &ContractService{
		store:       store,
		processor:   processor,
		excel:       excel,
		pdf:         pdf,
		uploadDir:   cfg.Upload.Dir,
		maxFileSize: cfg.Upload.MaxFileSize,
		log:         log,
	}
}

type UploadInput struct {
	Filename string
	Content  []byte
}

// Upload validates and stores a submitted PDF, records it as PENDING
// and kicks off processing in the background. The caller polls status
// to observe the outcome.
func (s *ContractService) Upload(ctx context.Context, input UploadInput) (*model.Contract, error) {
	filename := filepath.Base(strings.TrimSpace(input.Filename))
	if filename == "" || filename == "." {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, fmt.Errorf("%w: only PDF files are supported", ErrInvalidInput)
	}
	if len(input.Content) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if int64(len(input.Content)) > s.maxFileSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, s.maxFileSize)
	}

	contract := &model.Contract{
		ID:       uuid.New(),
		Filename: filename,
		FileSize: int64(len(input.Content)),
		Status:   model.StatusPending,
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare upload dir: %w", err)
	}
	if err := os.WriteFile(s.storedPath(contract.ID), input.Content, 0o644); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	if err := s.store.Create(ctx, contract); err != nil {
		if removeErr := os.Remove(s.storedPath(contract.ID)); removeErr != nil && !os.IsNotExist(removeErr) {
			s.log.Warn().Err(removeErr).Str("contract_id", contract.ID.String()).Msg("failed to remove orphaned upload")
		}
		return nil, err
	}

	content := input.Content
	go func() {
		if err := s.processor.Process(context.Background(), contract.ID, content); err != nil {
			s.log.Warn().Err(err).Str("contract_id", contract.ID.String()).Msg("processing failed")
		}
	}()

	return contract, nil
}

func (s *ContractService) GetStatus(ctx context.Context, id uuid.UUID) (*model.ContractStatusView, error) {
	contract, err := s.getContract(ctx, id)
	if err != nil {
		return nil, err
	}
	view := contract.StatusView()
	return &view, nil
}

// GetData returns the analysis result for a completed contract.
func (s *ContractService) GetData(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.getContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract.Status != model.StatusCompleted || contract.Data == nil {
		return nil, fmt.Errorf("%w: contract is %s", ErrNotReady, contract.Status)
	}
	return contract, nil
}

type ListInput struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

type ListResult struct {
	Contracts []model.Contract
	Total     int64
	Page      int
	PageSize  int
}

func (s *ContractService) List(ctx context.Context, input ListInput) (*ListResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	filter := repository.ListFilter{
		Search: input.Search,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if raw := strings.TrimSpace(input.Status); raw != "" {
		status := model.ProcessingStatus(strings.ToUpper(raw))
		switch status {
		case model.StatusPending, model.StatusProcessing, model.StatusCompleted, model.StatusFailed:
			filter.Status = &status
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, raw)
		}
	}

	contracts, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListResult{Contracts: contracts, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if err := os.Remove(s.storedPath(id)); err != nil && !os.IsNotExist(err) {
		s.log.Warn().Err(err).Str("contract_id", id.String()).Msg("failed to remove stored file")
	}
	return nil
}

type FileResult struct {
	FileName string
	Content  []byte
}

// Download returns the originally uploaded PDF.
func (s *ContractService) Download(ctx context.Context, id uuid.UUID) (*FileResult, error) {
	contract, err := s.getContract(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(s.storedPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read stored file: %w", err)
	}
	return &FileResult{FileName: contract.Filename, Content: content}, nil
}

func (s *ContractService) ExportExcel(ctx context.Context, id uuid.UUID) (*FileResult, error) {
	contract, err := s.GetData(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(contract)
	if err != nil {
		return nil, fmt.Errorf("generate excel: %w", err)
	}
	return &FileResult{FileName: exportName(contract, "xlsx"), Content: content}, nil
}

func (s *ContractService) ExportPDF(ctx context.Context, id uuid.UUID) (*FileResult, error) {
	contract, err := s.GetData(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(contract)
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return &FileResult{FileName: exportName(contract, "pdf"), Content: content}, nil
}

func (s *ContractService) getContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: contract id is required", ErrInvalidInput)
	}
	contract, err := s.store.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) storedPath(id uuid.UUID) string {
	return filepath.Join(s.uploadDir, id.String()+".pdf")
}

func exportName(contract *model.Contract, ext string) string {
	base := strings.TrimSuffix(contract.Filename, filepath.Ext(contract.Filename))
	return fmt.Sprintf("%s_analysis.%s", base, ext)
}
