package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/contest-jury/metrics"
	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/repositories"
)

// AuditLogService pages through the audit log and assembles display rows
type AuditLogService interface {
	// FetchPage returns the entries of one page, newest first, and the total
	// number of pages. Pages past the end are empty.
	FetchPage(ctx context.Context, pageNumber, pageSize int) ([]models.AuditLogEntry, int, error)
	// GetPage fetches a page of the configured size and formats its rows
	GetPage(ctx context.Context, pageNumber int, timeFormat string) (*AuditLogPage, error)
	// Record appends an entry to the audit log
	Record(ctx context.Context, entry *models.AuditLogEntry) error
	PageSize() int
}

// AuditLogPage is one rendered page of the audit log
type AuditLogPage struct {
	Rows        []models.DisplayRow
	CurrentPage int
	TotalPages  int
}

// auditLogService implements AuditLogService interface
type auditLogService struct {
	auditRepo repositories.AuditLogRepository
	locator   ResourceLocator
	metrics   *metrics.Metrics
	pageSize  int
}

// NewAuditLogService creates a new audit log service
func NewAuditLogService(
	auditRepo repositories.AuditLogRepository,
	locator ResourceLocator,
	m *metrics.Metrics,
	pageSize int,
) AuditLogService {
	return &auditLogService{
		auditRepo: auditRepo,
		locator:   locator,
		metrics:   m,
		pageSize:  pageSize,
	}
}

// PageSize returns the configured number of entries per page
func (s *auditLogService) PageSize() int {
	return s.pageSize
}

// FetchPage retrieves one page of the audit log
func (s *auditLogService) FetchPage(ctx context.Context, pageNumber, pageSize int) ([]models.AuditLogEntry, int, error) {
	if pageSize <= 0 {
		return nil, 0, fmt.Errorf("invalid page size: %d", pageSize)
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	total, err := s.auditRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count audit log: %w", err)
	}

	totalPages := models.TotalPages(total, pageSize)
	if pageNumber > totalPages {
		return []models.AuditLogEntry{}, totalPages, nil
	}

	entries, err := s.auditRepo.List(ctx, pageSize, pageSize*(pageNumber-1))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit log: %w", err)
	}

	return entries, totalPages, nil
}

// GetPage fetches a page and resolves every entry to a display row
func (s *auditLogService) GetPage(ctx context.Context, pageNumber int, timeFormat string) (*AuditLogPage, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}

	entries, totalPages, err := s.FetchPage(ctx, pageNumber, s.pageSize)
	if err != nil {
		return nil, err
	}

	rows := make([]models.DisplayRow, 0, len(entries))
	for _, entry := range entries {
		link, err := s.locator.ResolveLink(ctx, entry.Datatype, entry.DataID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve audit log entry %d: %w", entry.ID, err)
		}
		rows = append(rows, FormatRow(entry, timeFormat, link))
	}

	s.metrics.AuditLogPages.Inc()

	return &AuditLogPage{
		Rows:        rows,
		CurrentPage: pageNumber,
		TotalPages:  totalPages,
	}, nil
}

// Record validates and stores a new audit log entry
func (s *auditLogService) Record(ctx context.Context, entry *models.AuditLogEntry) error {
	entry.Datatype = strings.TrimSpace(entry.Datatype)
	entry.Action = strings.TrimSpace(entry.Action)

	if entry.Datatype == "" {
		return errors.New("datatype is required")
	}
	if entry.Action == "" {
		return errors.New("action is required")
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record audit log entry: %w", err)
	}
	return nil
}
