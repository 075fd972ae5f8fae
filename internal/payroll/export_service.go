package payroll

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-fieldops/internal/audit"
	"go-fieldops/internal/events"
	"go-fieldops/internal/messaging/kafka"
	payrollerrors "go-fieldops/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

// SantanderSheetName and SantanderColumns reproduce the layout the bank's
// bulk-transfer import expects. Order and spelling are dictated by the bank;
// do not reword them.
const SantanderSheetName = "Transferencias"

var SantanderColumns = []string{
	"NOMBRE BENEFICIARIO",
	"RUT BENEFICIARIO",
	"BANCO DESTINO",
	"TIPO CUENTA",
	"NUMERO CUENTA",
	"MONTO TRANSFERENCIA",
	"GLOSA",
}

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type ExportService interface {
	ExportSantanderTransfer(ctx context.Context, actor Actor) ([]byte, ExportResult, error)
}

type exportService struct {
	db         *sql.DB
	repo       Repository
	auditRepo  audit.Repository
	outboxRepo kafka.OutboxRepository
}

func NewExportService(db *sql.DB, repo Repository, auditRepo audit.Repository, outboxRepo kafka.OutboxRepository) ExportService {
	return &exportService{
		db:         db,
		repo:       repo,
		auditRepo:  auditRepo,
		outboxRepo: outboxRepo,
	}
}

// ExportSantanderTransfer builds the transfer workbook for every eligible
// employee. The audit row and the outbox event commit before the file bytes
// are handed back: a run that cannot be audited does not happen.
func (s *exportService) ExportSantanderTransfer(ctx context.Context, actor Actor) ([]byte, ExportResult, error) {
	rows, err := s.repo.FindEligibleTransfers(ctx)
	if err != nil {
		return nil, ExportResult{}, err
	}
	if len(rows) == 0 {
		return nil, ExportResult{}, payrollerrors.ErrNoEligibleEmployees
	}

	result := ExportResult{
		RecordCount:  len(rows),
		PersonnelIDs: make([]string, len(rows)),
	}
	for i, row := range rows {
		result.TotalAmount += row.Amount
		result.PersonnelIDs[i] = row.PersonnelID.String()
	}

	fileBytes, err := buildSantanderWorkbook(rows)
	if err != nil {
		return nil, ExportResult{}, err
	}

	if err := s.recordExport(ctx, actor, result); err != nil {
		return nil, ExportResult{}, err
	}

	return fileBytes, result, nil
}

func buildSantanderWorkbook(rows []EligibleTransfer) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SantanderSheetName)

	for i, header := range SantanderColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SantanderSheetName, cell, header); err != nil {
			return nil, err
		}
	}

	glosa := fmt.Sprintf("Pago remuneraciones %s", time.Now().Format("2006-01"))

	for i, row := range rows {
		values := []any{
			row.FullName,
			row.Rut,
			row.BankName,
			row.AccountType,
			row.AccountNumber,
			row.Amount,
			glosa,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SantanderSheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// recordExport writes the mandatory audit row and the outbox event in one
// transaction. Either both commit or the export fails.
func (s *exportService) recordExport(ctx context.Context, actor Actor, result ExportResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	entry := &audit.AuditLog{
		ID:          uuid.New(),
		Action:      audit.ActionPayrollExport,
		Description: "Santander transfer file generated",
		Metadata: datatypes.JSONMap{
			"record_count":  result.RecordCount,
			"total_amount":  result.TotalAmount,
			"personnel_ids": result.PersonnelIDs,
		},
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
	}
	if actorUUID, err := uuid.Parse(actor.UserID); err == nil {
		entry.ActorID = &actorUUID
	}

	if err := s.auditRepo.WithTx(tx).Create(ctx, entry); err != nil {
		return err
	}

	event := events.PayrollExportedEvent{
		EventType:    "payroll.exported",
		RecordCount:  result.RecordCount,
		TotalAmount:  result.TotalAmount,
		PersonnelIDs: result.PersonnelIDs,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxEvent := kafka.NewEvent(ctx, "payroll_export", entry.ID.String(), event.EventType, events.PayrollExportedTopic, payload)
	if err := s.outboxRepo.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return err
	}

	return tx.Commit()
}
