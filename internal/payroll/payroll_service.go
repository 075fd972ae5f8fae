package payroll

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-fieldops/internal/audit"
	"go-fieldops/internal/personnel"
	personnelerrors "go-fieldops/internal/personnel/errors"
	payrollerrors "go-fieldops/internal/payroll/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreateAccount(ctx context.Context, actorID string, req CreateAccountRequest) (AccountResponse, error)
	GetAllAccountsWithBalance(ctx context.Context) ([]AccountWithBalanceResponse, error)
	GetLedger(ctx context.Context, personnelID string) (LedgerResponse, error)
	CreateTransaction(ctx context.Context, actorID string, req CreateTransactionRequest) (TransactionResponse, error)
	Summary(ctx context.Context) (SummaryResponse, error)

	GetBankingInfo(ctx context.Context, personnelID string) (BankingInfoResponse, error)
	GetAllBankingInfo(ctx context.Context) ([]BankingInfoResponse, error)
	CreateBankingInfo(ctx context.Context, actor Actor, req UpsertBankingInfoRequest) (BankingInfoResponse, error)
	UpdateBankingInfo(ctx context.Context, actor Actor, personnelID string, req UpsertBankingInfoRequest) (BankingInfoResponse, error)
	DeleteBankingInfo(ctx context.Context, actor Actor, personnelID string) error
}

// Actor identifies who performed a mutating call, for the audit trail.
type Actor struct {
	UserID    string
	IPAddress string
	UserAgent string
}

type service struct {
	repo          Repository
	personnelRepo personnel.Repository
	auditRepo     audit.Repository
	sf            singleflight.Group
}

func NewService(repo Repository, personnelRepo personnel.Repository, auditRepo audit.Repository) Service {
	return &service{
		repo:          repo,
		personnelRepo: personnelRepo,
		auditRepo:     auditRepo,
	}
}

func (s *service) CreateAccount(ctx context.Context, actorID string, req CreateAccountRequest) (AccountResponse, error) {
	if req.BaseSalary <= 0 {
		return AccountResponse{}, payrollerrors.ErrInvalidBaseSalary
	}

	exists, err := s.repo.PersonnelExists(ctx, req.PersonnelID)
	if err != nil {
		return AccountResponse{}, err
	}
	if !exists {
		return AccountResponse{}, personnelerrors.ErrPersonnelNotFound
	}

	personnelID, err := uuid.Parse(req.PersonnelID)
	if err != nil {
		return AccountResponse{}, personnelerrors.ErrPersonnelNotFound
	}

	account := &PayrollAccount{
		ID:          uuid.New(),
		PersonnelID: personnelID,
		BaseSalary:  req.BaseSalary,
	}

	// The uniqueness race is settled by uq_payroll_accounts_personnel:
	// of two concurrent creates exactly one insert lands, the other
	// surfaces here as a Conflict.
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}

	s.writeAudit(ctx, Actor{UserID: actorID}, audit.ActionAccountCreated,
		"Payroll account created",
		map[string]any{
			"payroll_account_id": account.ID.String(),
			"personnel_id":       account.PersonnelID.String(),
			"base_salary":        account.BaseSalary,
		})

	return AccountResponse{
		ID:          account.ID.String(),
		PersonnelID: account.PersonnelID.String(),
		BaseSalary:  account.BaseSalary,
	}, nil
}

func (s *service) GetAllAccountsWithBalance(ctx context.Context) ([]AccountWithBalanceResponse, error) {
	accounts, err := s.repo.FindAllAccountsWithBalance(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AccountWithBalanceResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = AccountWithBalanceResponse{
			AccountID:   a.AccountID.String(),
			PersonnelID: a.PersonnelID.String(),
			FullName:    a.FullName,
			Rut:         a.Rut,
			BaseSalary:  a.BaseSalary,
			Balance:     a.Balance,
		}
	}
	return resp, nil
}

func (s *service) GetLedger(ctx context.Context, personnelID string) (LedgerResponse, error) {
	person, err := s.personnelRepo.FindByID(ctx, personnelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LedgerResponse{}, personnelerrors.ErrPersonnelNotFound
		}
		return LedgerResponse{}, err
	}

	account, err := s.repo.FindAccountByPersonnel(ctx, personnelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LedgerResponse{}, payrollerrors.ErrAccountNotFound
		}
		return LedgerResponse{}, err
	}

	transactions, err := s.repo.FindTransactionsByAccount(ctx, account.ID.String())
	if err != nil {
		return LedgerResponse{}, err
	}

	// Balance is always the sum of the log, never a stored column: the
	// ledger cannot drift from its own history.
	var balance int64
	txResp := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		balance += t.Amount
		txResp[i] = mapTransactionToResponse(t)
	}

	return LedgerResponse{
		PersonnelID:  person.ID.String(),
		FullName:     person.FullName,
		Rut:          person.Rut,
		AccountID:    account.ID.String(),
		BaseSalary:   account.BaseSalary,
		Balance:      balance,
		Transactions: txResp,
	}, nil
}

func (s *service) CreateTransaction(ctx context.Context, actorID string, req CreateTransactionRequest) (TransactionResponse, error) {
	if req.Amount == 0 {
		return TransactionResponse{}, payrollerrors.ErrZeroAmount
	}
	if !TransactionTypes[req.TransactionType] {
		return TransactionResponse{}, payrollerrors.ErrInvalidTransactionType
	}

	transactionDate, err := time.Parse("2006-01-02", req.TransactionDate)
	if err != nil {
		return TransactionResponse{}, payrollerrors.ErrInvalidTransactionDate
	}

	account, err := s.repo.FindAccountByID(ctx, req.PayrollAccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TransactionResponse{}, payrollerrors.ErrAccountNotFound
		}
		return TransactionResponse{}, err
	}

	transaction := &PayrollTransaction{
		ID:               uuid.New(),
		PayrollAccountID: account.ID,
		TransactionDate:  transactionDate,
		TransactionType:  req.TransactionType,
		Amount:           req.Amount,
		Description:      req.Description,
	}

	if actorUUID, err := uuid.Parse(actorID); err == nil {
		transaction.CreatedBy = &actorUUID
	}

	if err := s.repo.CreateTransaction(ctx, transaction); err != nil {
		return TransactionResponse{}, mapRepositoryError(err)
	}

	return mapTransactionToResponse(*transaction), nil
}

// Summary is read-heavy and hit by every dashboard load; singleflight
// collapses concurrent computations into one query.
func (s *service) Summary(ctx context.Context) (SummaryResponse, error) {
	v, err, _ := s.sf.Do("payroll-summary", func() (any, error) {
		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		row, err := s.repo.Summary(ctx, monthStart)
		if err != nil {
			return SummaryResponse{}, err
		}

		return SummaryResponse{
			ActiveAccounts:    row.ActiveAccounts,
			TotalPayable:      row.TotalPayable,
			EligibleForExport: row.EligibleForExport,
			MonthTransactions: row.MonthTransactions,
			MonthNetMovement:  row.MonthNetMovement,
			AccountsWithBank:  row.AccountsWithBank,
		}, nil
	})
	if err != nil {
		return SummaryResponse{}, err
	}
	return v.(SummaryResponse), nil
}

func (s *service) GetBankingInfo(ctx context.Context, personnelID string) (BankingInfoResponse, error) {
	info, err := s.repo.FindBankingInfoByPersonnel(ctx, personnelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BankingInfoResponse{}, payrollerrors.ErrBankingInfoNotFound
		}
		return BankingInfoResponse{}, err
	}
	return mapBankingInfoToResponse(*info), nil
}

func (s *service) GetAllBankingInfo(ctx context.Context) ([]BankingInfoResponse, error) {
	infos, err := s.repo.FindAllBankingInfo(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]BankingInfoResponse, len(infos))
	for i, info := range infos {
		resp[i] = mapBankingInfoToResponse(info)
	}
	return resp, nil
}

func (s *service) CreateBankingInfo(ctx context.Context, actor Actor, req UpsertBankingInfoRequest) (BankingInfoResponse, error) {
	person, info, err := s.validateBankingInfo(ctx, req.PersonnelID, req)
	if err != nil {
		return BankingInfoResponse{}, err
	}

	info.ID = uuid.New()
	if err := s.repo.CreateBankingInfo(ctx, info); err != nil {
		return BankingInfoResponse{}, mapRepositoryError(err)
	}

	s.writeAudit(ctx, actor, audit.ActionBankingInfoCreated,
		"Banking info registered for "+person.FullName,
		map[string]any{
			"personnel_id": person.ID.String(),
			"bank_name":    info.BankName,
		})

	return mapBankingInfoToResponse(*info), nil
}

func (s *service) UpdateBankingInfo(ctx context.Context, actor Actor, personnelID string, req UpsertBankingInfoRequest) (BankingInfoResponse, error) {
	existing, err := s.repo.FindBankingInfoByPersonnel(ctx, personnelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BankingInfoResponse{}, payrollerrors.ErrBankingInfoNotFound
		}
		return BankingInfoResponse{}, err
	}

	person, updated, err := s.validateBankingInfo(ctx, personnelID, req)
	if err != nil {
		return BankingInfoResponse{}, err
	}

	existing.BankName = updated.BankName
	existing.AccountType = updated.AccountType
	existing.AccountNumber = updated.AccountNumber
	existing.HolderRut = updated.HolderRut
	existing.Email = updated.Email

	if err := s.repo.UpdateBankingInfo(ctx, existing); err != nil {
		return BankingInfoResponse{}, mapRepositoryError(err)
	}

	s.writeAudit(ctx, actor, audit.ActionBankingInfoUpdated,
		"Banking info updated for "+person.FullName,
		map[string]any{
			"personnel_id": person.ID.String(),
			"bank_name":    existing.BankName,
		})

	return mapBankingInfoToResponse(*existing), nil
}

func (s *service) DeleteBankingInfo(ctx context.Context, actor Actor, personnelID string) error {
	_, err := s.repo.FindBankingInfoByPersonnel(ctx, personnelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payrollerrors.ErrBankingInfoNotFound
		}
		return err
	}

	if err := s.repo.DeleteBankingInfo(ctx, personnelID); err != nil {
		return err
	}

	s.writeAudit(ctx, actor, audit.ActionBankingInfoDeleted,
		"Banking info deleted",
		map[string]any{"personnel_id": personnelID})

	return nil
}

// validateBankingInfo checks the cross-field rules before any write: the
// holder RUT must match the owning personnel RUT, the bank and account type
// must be recognized, and the account number must be digits only.
func (s *service) validateBankingInfo(ctx context.Context, personnelID string, req UpsertBankingInfoRequest) (*personnel.Personnel, *BankingInfo, error) {
	person, err := s.personnelRepo.FindByID(ctx, personnelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, personnelerrors.ErrPersonnelNotFound
		}
		return nil, nil, err
	}

	if personnel.NormalizeRut(req.HolderRut) != personnel.NormalizeRut(person.Rut) {
		return nil, nil, payrollerrors.ErrRutMismatch
	}

	bankName := strings.ToUpper(strings.TrimSpace(req.BankName))
	if !ChileanBanks[bankName] {
		return nil, nil, payrollerrors.ErrUnknownBank
	}
	if !AccountTypes[req.AccountType] {
		return nil, nil, payrollerrors.ErrInvalidAccountType
	}
	for _, r := range req.AccountNumber {
		if r < '0' || r > '9' {
			return nil, nil, payrollerrors.ErrInvalidAccountNumber
		}
	}

	return person, &BankingInfo{
		PersonnelID:   person.ID,
		BankName:      bankName,
		AccountType:   req.AccountType,
		AccountNumber: req.AccountNumber,
		HolderRut:     personnel.FormatRut(req.HolderRut),
		Email:         req.Email,
	}, nil
}

// writeAudit records a best-effort trail entry for banking mutations.
// The export path is different: there the audit row commits with the run
// or the run fails (see export_service.go).
func (s *service) writeAudit(ctx context.Context, actor Actor, action, description string, meta map[string]any) {
	entry := &audit.AuditLog{
		ID:          uuid.New(),
		Action:      action,
		Description: description,
		Metadata:    datatypes.JSONMap(meta),
		IPAddress:   actor.IPAddress,
		UserAgent:   actor.UserAgent,
	}
	if actorUUID, err := uuid.Parse(actor.UserID); err == nil {
		entry.ActorID = &actorUUID
	}
	_ = s.auditRepo.Create(ctx, entry)
}

func mapTransactionToResponse(t PayrollTransaction) TransactionResponse {
	resp := TransactionResponse{
		ID:               t.ID.String(),
		PayrollAccountID: t.PayrollAccountID.String(),
		TransactionDate:  t.TransactionDate.Format("2006-01-02"),
		TransactionType:  t.TransactionType,
		Amount:           t.Amount,
		Description:      t.Description,
		CreatedByName:    t.CreatedByName,
	}
	if t.CreatedBy != nil {
		resp.CreatedBy = t.CreatedBy.String()
	}
	return resp
}

func mapBankingInfoToResponse(info BankingInfo) BankingInfoResponse {
	return BankingInfoResponse{
		ID:            info.ID.String(),
		PersonnelID:   info.PersonnelID.String(),
		BankName:      info.BankName,
		AccountType:   info.AccountType,
		AccountNumber: info.AccountNumber,
		HolderRut:     info.HolderRut,
		Email:         info.Email,
	}
}
