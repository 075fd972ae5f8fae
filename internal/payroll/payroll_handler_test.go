package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-fieldops/internal/payroll"
	payrollerrors "go-fieldops/internal/payroll/errors"
	"go-fieldops/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	createAccountFn     func(ctx context.Context, actorID string, req payroll.CreateAccountRequest) (payroll.AccountResponse, error)
	getAllAccountsFn    func(ctx context.Context) ([]payroll.AccountWithBalanceResponse, error)
	getLedgerFn         func(ctx context.Context, personnelID string) (payroll.LedgerResponse, error)
	createTransactionFn func(ctx context.Context, actorID string, req payroll.CreateTransactionRequest) (payroll.TransactionResponse, error)
	summaryFn           func(ctx context.Context) (payroll.SummaryResponse, error)
}

func (f *fakePayrollService) CreateAccount(ctx context.Context, actorID string, req payroll.CreateAccountRequest) (payroll.AccountResponse, error) {
	return f.createAccountFn(ctx, actorID, req)
}

func (f *fakePayrollService) GetAllAccountsWithBalance(ctx context.Context) ([]payroll.AccountWithBalanceResponse, error) {
	return f.getAllAccountsFn(ctx)
}

func (f *fakePayrollService) GetLedger(ctx context.Context, personnelID string) (payroll.LedgerResponse, error) {
	return f.getLedgerFn(ctx, personnelID)
}

func (f *fakePayrollService) CreateTransaction(ctx context.Context, actorID string, req payroll.CreateTransactionRequest) (payroll.TransactionResponse, error) {
	return f.createTransactionFn(ctx, actorID, req)
}

func (f *fakePayrollService) Summary(ctx context.Context) (payroll.SummaryResponse, error) {
	return f.summaryFn(ctx)
}

func (f *fakePayrollService) GetBankingInfo(ctx context.Context, personnelID string) (payroll.BankingInfoResponse, error) {
	return payroll.BankingInfoResponse{}, nil
}

func (f *fakePayrollService) GetAllBankingInfo(ctx context.Context) ([]payroll.BankingInfoResponse, error) {
	return nil, nil
}

func (f *fakePayrollService) CreateBankingInfo(ctx context.Context, actor payroll.Actor, req payroll.UpsertBankingInfoRequest) (payroll.BankingInfoResponse, error) {
	return payroll.BankingInfoResponse{}, nil
}

func (f *fakePayrollService) UpdateBankingInfo(ctx context.Context, actor payroll.Actor, personnelID string, req payroll.UpsertBankingInfoRequest) (payroll.BankingInfoResponse, error) {
	return payroll.BankingInfoResponse{}, nil
}

func (f *fakePayrollService) DeleteBankingInfo(ctx context.Context, actor payroll.Actor, personnelID string) error {
	return nil
}

type fakeExportService struct {
	exportFn func(ctx context.Context, actor payroll.Actor) ([]byte, payroll.ExportResult, error)
}

func (f *fakeExportService) ExportSantanderTransfer(ctx context.Context, actor payroll.Actor) ([]byte, payroll.ExportResult, error) {
	return f.exportFn(ctx, actor)
}

func TestPayrollHandler_CreateAccount(t *testing.T) {
	// Register json tag names before any validation runs: the validator
	// caches struct metadata on first use, so a later Init() has no effect.
	apperror.Init()

	t.Run("success", func(t *testing.T) {
		personnelID := uuid.New().String()

		svc := &fakePayrollService{
			createAccountFn: func(ctx context.Context, actorID string, req payroll.CreateAccountRequest) (payroll.AccountResponse, error) {
				assert.Equal(t, personnelID, req.PersonnelID)
				assert.Equal(t, int64(800000), req.BaseSalary)
				return payroll.AccountResponse{
					ID:          uuid.New().String(),
					PersonnelID: req.PersonnelID,
					BaseSalary:  req.BaseSalary,
				}, nil
			},
		}

		h := payroll.NewHandler(svc, &fakeExportService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"personnel_id":"` + personnelID + `","base_salary":800000}`
		req := httptest.NewRequest(http.MethodPost, "/payroll/account", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateAccount(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), personnelID)
	})

	t.Run("validation error", func(t *testing.T) {
		h := payroll.NewHandler(&fakePayrollService{}, &fakeExportService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/payroll/account", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateAccount(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
		assert.Contains(t, w.Body.String(), "Personnel Id is required")
	})

	t.Run("duplicate account maps to conflict", func(t *testing.T) {
		svc := &fakePayrollService{
			createAccountFn: func(ctx context.Context, actorID string, req payroll.CreateAccountRequest) (payroll.AccountResponse, error) {
				return payroll.AccountResponse{}, payrollerrors.ErrAccountAlreadyExists
			},
		}

		h := payroll.NewHandler(svc, &fakeExportService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"personnel_id":"` + uuid.New().String() + `","base_salary":800000}`
		req := httptest.NewRequest(http.MethodPost, "/payroll/account", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateAccount(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestPayrollHandler_GetLedger(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		personnelID := uuid.New().String()

		svc := &fakePayrollService{
			getLedgerFn: func(ctx context.Context, pid string) (payroll.LedgerResponse, error) {
				assert.Equal(t, personnelID, pid)
				return payroll.LedgerResponse{
					PersonnelID: pid,
					FullName:    "Juan Pérez",
					Rut:         "11.111.111-1",
					Balance:     820000,
				}, nil
			},
		}

		h := payroll.NewHandler(svc, &fakeExportService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/payroll/"+personnelID+"/ledger", nil)
		c.Params = gin.Params{{Key: "personnelId", Value: personnelID}}

		h.GetLedger(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "820000")
	})

	t.Run("missing account maps to not found", func(t *testing.T) {
		svc := &fakePayrollService{
			getLedgerFn: func(ctx context.Context, pid string) (payroll.LedgerResponse, error) {
				return payroll.LedgerResponse{}, payrollerrors.ErrAccountNotFound
			},
		}

		h := payroll.NewHandler(svc, &fakeExportService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/payroll/x/ledger", nil)
		c.Params = gin.Params{{Key: "personnelId", Value: uuid.New().String()}}

		h.GetLedger(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPayrollHandler_CreateTransaction(t *testing.T) {
	t.Run("success without idempotency store", func(t *testing.T) {
		accountID := uuid.New().String()

		svc := &fakePayrollService{
			createTransactionFn: func(ctx context.Context, actorID string, req payroll.CreateTransactionRequest) (payroll.TransactionResponse, error) {
				assert.Equal(t, accountID, req.PayrollAccountID)
				assert.Equal(t, int64(-30000), req.Amount)
				return payroll.TransactionResponse{
					ID:               uuid.New().String(),
					PayrollAccountID: req.PayrollAccountID,
					TransactionType:  req.TransactionType,
					Amount:           req.Amount,
				}, nil
			},
		}

		h := payroll.NewHandler(svc, &fakeExportService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"payroll_account_id":"` + accountID + `","transaction_date":"2026-08-15","transaction_type":"ADVANCE","amount":-30000,"description":"anticipo"}`
		req := httptest.NewRequest(http.MethodPost, "/payroll/transaction", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateTransaction(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "ADVANCE")
	})

	t.Run("zero amount maps to bad request", func(t *testing.T) {
		h := payroll.NewHandler(&fakePayrollService{}, &fakeExportService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"payroll_account_id":"` + uuid.New().String() + `","transaction_date":"2026-08-15","transaction_type":"ADVANCE","amount":0}`
		req := httptest.NewRequest(http.MethodPost, "/payroll/transaction", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateTransaction(c)

		// binding:required rejects the zero value before the service runs
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_ExportSantanderTransfer(t *testing.T) {
	t.Run("success streams workbook with export headers", func(t *testing.T) {
		exportSvc := &fakeExportService{
			exportFn: func(ctx context.Context, actor payroll.Actor) ([]byte, payroll.ExportResult, error) {
				return []byte("PK-workbook"), payroll.ExportResult{RecordCount: 2, TotalAmount: 1460000}, nil
			},
		}

		h := payroll.NewHandler(&fakePayrollService{}, exportSvc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/payroll/export/santander-transfer", nil)

		h.ExportSantanderTransfer(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "transferencias-santander-")
		assert.Equal(t, "2", w.Header().Get("X-Export-Record-Count"))
		assert.Equal(t, "PK-workbook", w.Body.String())
	})

	t.Run("no eligible employees maps to configuration error", func(t *testing.T) {
		exportSvc := &fakeExportService{
			exportFn: func(ctx context.Context, actor payroll.Actor) ([]byte, payroll.ExportResult, error) {
				return nil, payroll.ExportResult{}, payrollerrors.ErrNoEligibleEmployees
			},
		}

		h := payroll.NewHandler(&fakePayrollService{}, exportSvc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/payroll/export/santander-transfer", nil)

		h.ExportSantanderTransfer(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "CONFIGURATION_ERROR")
	})
}
