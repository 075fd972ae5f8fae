package payroll_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-fieldops/internal/audit"
	"go-fieldops/internal/payroll"
	payrollerrors "go-fieldops/internal/payroll/errors"
	"go-fieldops/internal/personnel"
	personnelerrors "go-fieldops/internal/personnel/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	createAccountFn              func(ctx context.Context, account *payroll.PayrollAccount) error
	findAccountByIDFn            func(ctx context.Context, id string) (*payroll.PayrollAccount, error)
	findAccountByPersonnelFn     func(ctx context.Context, personnelID string) (*payroll.PayrollAccount, error)
	findAllAccountsWithBalanceFn func(ctx context.Context) ([]payroll.AccountWithBalance, error)
	personnelExistsFn            func(ctx context.Context, personnelID string) (bool, error)
	createTransactionFn          func(ctx context.Context, tx *payroll.PayrollTransaction) error
	findTransactionsByAccountFn  func(ctx context.Context, accountID string) ([]payroll.PayrollTransaction, error)
	balanceByAccountFn           func(ctx context.Context, accountID string) (int64, error)
	findBankingInfoByPersonnelFn func(ctx context.Context, personnelID string) (*payroll.BankingInfo, error)
	findAllBankingInfoFn         func(ctx context.Context) ([]payroll.BankingInfo, error)
	createBankingInfoFn          func(ctx context.Context, info *payroll.BankingInfo) error
	updateBankingInfoFn          func(ctx context.Context, info *payroll.BankingInfo) error
	deleteBankingInfoFn          func(ctx context.Context, personnelID string) error
	findEligibleTransfersFn      func(ctx context.Context) ([]payroll.EligibleTransfer, error)
	summaryFn                    func(ctx context.Context, monthStart time.Time) (payroll.SummaryRow, error)
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository { return f }

func (f *fakePayrollRepository) CreateAccount(ctx context.Context, account *payroll.PayrollAccount) error {
	if f.createAccountFn != nil {
		return f.createAccountFn(ctx, account)
	}
	return nil
}

func (f *fakePayrollRepository) FindAccountByID(ctx context.Context, id string) (*payroll.PayrollAccount, error) {
	if f.findAccountByIDFn != nil {
		return f.findAccountByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindAccountByPersonnel(ctx context.Context, personnelID string) (*payroll.PayrollAccount, error) {
	if f.findAccountByPersonnelFn != nil {
		return f.findAccountByPersonnelFn(ctx, personnelID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindAllAccountsWithBalance(ctx context.Context) ([]payroll.AccountWithBalance, error) {
	if f.findAllAccountsWithBalanceFn != nil {
		return f.findAllAccountsWithBalanceFn(ctx)
	}
	return nil, nil
}

func (f *fakePayrollRepository) PersonnelExists(ctx context.Context, personnelID string) (bool, error) {
	if f.personnelExistsFn != nil {
		return f.personnelExistsFn(ctx, personnelID)
	}
	return true, nil
}

func (f *fakePayrollRepository) CreateTransaction(ctx context.Context, tx *payroll.PayrollTransaction) error {
	if f.createTransactionFn != nil {
		return f.createTransactionFn(ctx, tx)
	}
	return nil
}

func (f *fakePayrollRepository) FindTransactionsByAccount(ctx context.Context, accountID string) ([]payroll.PayrollTransaction, error) {
	if f.findTransactionsByAccountFn != nil {
		return f.findTransactionsByAccountFn(ctx, accountID)
	}
	return nil, nil
}

func (f *fakePayrollRepository) BalanceByAccount(ctx context.Context, accountID string) (int64, error) {
	if f.balanceByAccountFn != nil {
		return f.balanceByAccountFn(ctx, accountID)
	}
	return 0, nil
}

func (f *fakePayrollRepository) FindBankingInfoByPersonnel(ctx context.Context, personnelID string) (*payroll.BankingInfo, error) {
	if f.findBankingInfoByPersonnelFn != nil {
		return f.findBankingInfoByPersonnelFn(ctx, personnelID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindAllBankingInfo(ctx context.Context) ([]payroll.BankingInfo, error) {
	if f.findAllBankingInfoFn != nil {
		return f.findAllBankingInfoFn(ctx)
	}
	return nil, nil
}

func (f *fakePayrollRepository) CreateBankingInfo(ctx context.Context, info *payroll.BankingInfo) error {
	if f.createBankingInfoFn != nil {
		return f.createBankingInfoFn(ctx, info)
	}
	return nil
}

func (f *fakePayrollRepository) UpdateBankingInfo(ctx context.Context, info *payroll.BankingInfo) error {
	if f.updateBankingInfoFn != nil {
		return f.updateBankingInfoFn(ctx, info)
	}
	return nil
}

func (f *fakePayrollRepository) DeleteBankingInfo(ctx context.Context, personnelID string) error {
	if f.deleteBankingInfoFn != nil {
		return f.deleteBankingInfoFn(ctx, personnelID)
	}
	return nil
}

func (f *fakePayrollRepository) FindEligibleTransfers(ctx context.Context) ([]payroll.EligibleTransfer, error) {
	if f.findEligibleTransfersFn != nil {
		return f.findEligibleTransfersFn(ctx)
	}
	return nil, nil
}

func (f *fakePayrollRepository) Summary(ctx context.Context, monthStart time.Time) (payroll.SummaryRow, error) {
	if f.summaryFn != nil {
		return f.summaryFn(ctx, monthStart)
	}
	return payroll.SummaryRow{}, nil
}

type fakePersonnelRepository struct {
	findByIDFn func(ctx context.Context, id string) (*personnel.Personnel, error)
}

func (f *fakePersonnelRepository) WithTx(tx *sql.Tx) personnel.Repository { return f }
func (f *fakePersonnelRepository) Create(ctx context.Context, p *personnel.Personnel) error {
	return nil
}
func (f *fakePersonnelRepository) FindAll(ctx context.Context, activeOnly bool) ([]personnel.Personnel, error) {
	return nil, nil
}
func (f *fakePersonnelRepository) FindByID(ctx context.Context, id string) (*personnel.Personnel, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakePersonnelRepository) FindByRut(ctx context.Context, rut string) (*personnel.Personnel, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakePersonnelRepository) Update(ctx context.Context, p *personnel.Personnel) error {
	return nil
}
func (f *fakePersonnelRepository) DriverExists(ctx context.Context, driverID string) (bool, error) {
	return false, nil
}
func (f *fakePersonnelRepository) FindDriverIdentity(ctx context.Context, driverID string) (string, string, error) {
	return "", "", gorm.ErrRecordNotFound
}

type fakeAuditRepository struct {
	entries []audit.AuditLog
}

func (f *fakeAuditRepository) WithTx(tx *sql.Tx) audit.Repository { return f }
func (f *fakeAuditRepository) Create(ctx context.Context, entry *audit.AuditLog) error {
	f.entries = append(f.entries, *entry)
	return nil
}
func (f *fakeAuditRepository) FindRecent(ctx context.Context, limit int) ([]audit.AuditLog, error) {
	return f.entries, nil
}

type serviceDeps struct {
	service       payroll.Service
	repo          *fakePayrollRepository
	personnelRepo *fakePersonnelRepository
	auditRepo     *fakeAuditRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	repo := &fakePayrollRepository{}
	personnelRepo := &fakePersonnelRepository{}
	auditRepo := &fakeAuditRepository{}

	return &serviceDeps{
		service:       payroll.NewService(repo, personnelRepo, auditRepo),
		repo:          repo,
		personnelRepo: personnelRepo,
		auditRepo:     auditRepo,
	}
}

func TestPayrollService_CreateAccount(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	personnelID := uuid.New().String()

	t.Run("rejects base salary of zero or less", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.CreateAccount(ctx, actorID, payroll.CreateAccountRequest{
			PersonnelID: personnelID,
			BaseSalary:  0,
		})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidBaseSalary)

		_, err = deps.service.CreateAccount(ctx, actorID, payroll.CreateAccountRequest{
			PersonnelID: personnelID,
			BaseSalary:  -500000,
		})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidBaseSalary)
	})

	t.Run("unknown personnel", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.personnelExistsFn = func(ctx context.Context, id string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.CreateAccount(ctx, actorID, payroll.CreateAccountRequest{
			PersonnelID: personnelID,
			BaseSalary:  800000,
		})
		assert.ErrorIs(t, err, personnelerrors.ErrPersonnelNotFound)
	})

	t.Run("second account for the same employee is a conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.createAccountFn = func(ctx context.Context, account *payroll.PayrollAccount) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_payroll_accounts_personnel"}
		}

		_, err := deps.service.CreateAccount(ctx, actorID, payroll.CreateAccountRequest{
			PersonnelID: personnelID,
			BaseSalary:  800000,
		})
		assert.ErrorIs(t, err, payrollerrors.ErrAccountAlreadyExists)
	})

	t.Run("success writes an audit entry", func(t *testing.T) {
		deps := setupServiceTest(t)

		resp, err := deps.service.CreateAccount(ctx, actorID, payroll.CreateAccountRequest{
			PersonnelID: personnelID,
			BaseSalary:  800000,
		})

		assert.NoError(t, err)
		assert.Equal(t, personnelID, resp.PersonnelID)
		assert.Equal(t, int64(800000), resp.BaseSalary)
		if assert.Len(t, deps.auditRepo.entries, 1) {
			assert.Equal(t, audit.ActionAccountCreated, deps.auditRepo.entries[0].Action)
		}
	})
}

func TestPayrollService_GetLedger(t *testing.T) {
	ctx := context.Background()

	personnelID := uuid.New()
	accountID := uuid.New()
	person := &personnel.Personnel{
		ID:       personnelID,
		FullName: "Juan Pérez",
		Rut:      "11.111.111-1",
		IsActive: true,
	}

	t.Run("balance is the sum of the signed transaction log", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.personnelRepo.findByIDFn = func(ctx context.Context, id string) (*personnel.Personnel, error) {
			return person, nil
		}
		deps.repo.findAccountByPersonnelFn = func(ctx context.Context, id string) (*payroll.PayrollAccount, error) {
			return &payroll.PayrollAccount{ID: accountID, PersonnelID: personnelID, BaseSalary: 800000}, nil
		}
		// Most-recent-first, as the repository query orders them.
		deps.repo.findTransactionsByAccountFn = func(ctx context.Context, id string) ([]payroll.PayrollTransaction, error) {
			return []payroll.PayrollTransaction{
				{ID: uuid.New(), PayrollAccountID: accountID, TransactionType: payroll.TypeAdvance, Amount: -30000, TransactionDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
				{ID: uuid.New(), PayrollAccountID: accountID, TransactionType: payroll.TypeBonus, Amount: 50000, TransactionDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
				{ID: uuid.New(), PayrollAccountID: accountID, TransactionType: payroll.TypeSalary, Amount: 800000, TransactionDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		}

		ledger, err := deps.service.GetLedger(ctx, personnelID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Juan Pérez", ledger.FullName)
		assert.Equal(t, "11.111.111-1", ledger.Rut)
		assert.Equal(t, int64(820000), ledger.Balance)
		assert.Len(t, ledger.Transactions, 3)
		assert.Equal(t, payroll.TypeAdvance, ledger.Transactions[0].TransactionType)
	})

	t.Run("unknown personnel", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetLedger(ctx, uuid.New().String())
		assert.ErrorIs(t, err, personnelerrors.ErrPersonnelNotFound)
	})

	t.Run("personnel without an account", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.personnelRepo.findByIDFn = func(ctx context.Context, id string) (*personnel.Personnel, error) {
			return person, nil
		}

		_, err := deps.service.GetLedger(ctx, personnelID.String())
		assert.ErrorIs(t, err, payrollerrors.ErrAccountNotFound)
	})
}

func TestPayrollService_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	accountID := uuid.New()

	validReq := func() payroll.CreateTransactionRequest {
		return payroll.CreateTransactionRequest{
			PayrollAccountID: accountID.String(),
			TransactionDate:  "2026-08-15",
			TransactionType:  payroll.TypeBonus,
			Amount:           50000,
		}
	}

	t.Run("zero amount", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validReq()
		req.Amount = 0
		_, err := deps.service.CreateTransaction(ctx, actorID, req)
		assert.ErrorIs(t, err, payrollerrors.ErrZeroAmount)
	})

	t.Run("unknown type", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validReq()
		req.TransactionType = "REFUND"
		_, err := deps.service.CreateTransaction(ctx, actorID, req)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidTransactionType)
	})

	t.Run("malformed date", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validReq()
		req.TransactionDate = "15-08-2026"
		_, err := deps.service.CreateTransaction(ctx, actorID, req)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidTransactionDate)
	})

	t.Run("unknown account", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.CreateTransaction(ctx, actorID, validReq())
		assert.ErrorIs(t, err, payrollerrors.ErrAccountNotFound)
	})

	t.Run("negative bonus is allowed but unusual", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.findAccountByIDFn = func(ctx context.Context, id string) (*payroll.PayrollAccount, error) {
			return &payroll.PayrollAccount{ID: accountID, BaseSalary: 800000}, nil
		}

		var created *payroll.PayrollTransaction
		deps.repo.createTransactionFn = func(ctx context.Context, tx *payroll.PayrollTransaction) error {
			created = tx
			return nil
		}

		req := validReq()
		req.Amount = -25000

		resp, err := deps.service.CreateTransaction(ctx, actorID, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(-25000), resp.Amount)
		if assert.NotNil(t, created) {
			assert.Equal(t, payroll.TypeBonus, created.TransactionType)
			assert.NotNil(t, created.CreatedBy)
			assert.Equal(t, actorID, created.CreatedBy.String())
		}
	})
}

func TestPayrollService_BankingInfo(t *testing.T) {
	ctx := context.Background()
	actor := payroll.Actor{UserID: uuid.New().String(), IPAddress: "10.0.0.8"}

	personnelID := uuid.New()
	person := &personnel.Personnel{
		ID:       personnelID,
		FullName: "Juan Pérez",
		Rut:      "11.111.111-1",
		IsActive: true,
	}

	validReq := func() payroll.UpsertBankingInfoRequest {
		return payroll.UpsertBankingInfoRequest{
			PersonnelID:   personnelID.String(),
			BankName:      "Banco Santander",
			AccountType:   payroll.AccountTypeCorriente,
			AccountNumber: "000123456789",
			HolderRut:     "11111111-1",
		}
	}

	setupWithPerson := func(t *testing.T) *serviceDeps {
		deps := setupServiceTest(t)
		deps.personnelRepo.findByIDFn = func(ctx context.Context, id string) (*personnel.Personnel, error) {
			return person, nil
		}
		return deps
	}

	t.Run("holder rut must match the employee rut", func(t *testing.T) {
		deps := setupWithPerson(t)

		req := validReq()
		req.HolderRut = "22.222.222-2"

		_, err := deps.service.CreateBankingInfo(ctx, actor, req)
		assert.ErrorIs(t, err, payrollerrors.ErrRutMismatch)
		assert.Empty(t, deps.auditRepo.entries)
	})

	t.Run("unknown bank", func(t *testing.T) {
		deps := setupWithPerson(t)

		req := validReq()
		req.BankName = "BANCO DEL SUR"

		_, err := deps.service.CreateBankingInfo(ctx, actor, req)
		assert.ErrorIs(t, err, payrollerrors.ErrUnknownBank)
	})

	t.Run("account number must be digits only", func(t *testing.T) {
		deps := setupWithPerson(t)

		req := validReq()
		req.AccountNumber = "12-3456"

		_, err := deps.service.CreateBankingInfo(ctx, actor, req)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidAccountNumber)
	})

	t.Run("dotted and bare ruts compare equal", func(t *testing.T) {
		deps := setupWithPerson(t)

		var saved *payroll.BankingInfo
		deps.repo.createBankingInfoFn = func(ctx context.Context, info *payroll.BankingInfo) error {
			saved = info
			return nil
		}

		resp, err := deps.service.CreateBankingInfo(ctx, actor, validReq())

		assert.NoError(t, err)
		assert.Equal(t, "BANCO SANTANDER", resp.BankName)
		if assert.NotNil(t, saved) {
			assert.Equal(t, "11.111.111-1", saved.HolderRut)
		}
		if assert.Len(t, deps.auditRepo.entries, 1) {
			assert.Equal(t, audit.ActionBankingInfoCreated, deps.auditRepo.entries[0].Action)
		}
	})

	t.Run("delete of missing info", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.DeleteBankingInfo(ctx, actor, personnelID.String())
		assert.ErrorIs(t, err, payrollerrors.ErrBankingInfoNotFound)
	})
}

func TestPayrollService_Summary(t *testing.T) {
	deps := setupServiceTest(t)

	deps.repo.summaryFn = func(ctx context.Context, monthStart time.Time) (payroll.SummaryRow, error) {
		assert.Equal(t, 1, monthStart.Day())
		return payroll.SummaryRow{
			ActiveAccounts:    12,
			TotalPayable:      9600000,
			EligibleForExport: 9,
			MonthTransactions: 34,
			MonthNetMovement:  -120000,
			AccountsWithBank:  10,
		}, nil
	}

	resp, err := deps.service.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), resp.ActiveAccounts)
	assert.Equal(t, int64(9), resp.EligibleForExport)
	assert.Equal(t, int64(-120000), resp.MonthNetMovement)
}
