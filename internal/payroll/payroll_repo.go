package payroll

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateAccount(ctx context.Context, account *PayrollAccount) error
	FindAccountByID(ctx context.Context, id string) (*PayrollAccount, error)
	FindAccountByPersonnel(ctx context.Context, personnelID string) (*PayrollAccount, error)
	FindAllAccountsWithBalance(ctx context.Context) ([]AccountWithBalance, error)
	PersonnelExists(ctx context.Context, personnelID string) (bool, error)

	CreateTransaction(ctx context.Context, tx *PayrollTransaction) error
	FindTransactionsByAccount(ctx context.Context, accountID string) ([]PayrollTransaction, error)
	BalanceByAccount(ctx context.Context, accountID string) (int64, error)

	FindBankingInfoByPersonnel(ctx context.Context, personnelID string) (*BankingInfo, error)
	FindAllBankingInfo(ctx context.Context) ([]BankingInfo, error)
	CreateBankingInfo(ctx context.Context, info *BankingInfo) error
	UpdateBankingInfo(ctx context.Context, info *BankingInfo) error
	DeleteBankingInfo(ctx context.Context, personnelID string) error

	FindEligibleTransfers(ctx context.Context) ([]EligibleTransfer, error)
	Summary(ctx context.Context, monthStart time.Time) (SummaryRow, error)
}

// SummaryRow carries the raw aggregates behind GET /payroll/summary.
type SummaryRow struct {
	ActiveAccounts    int64
	TotalPayable      int64
	EligibleForExport int64
	MonthTransactions int64
	MonthNetMovement  int64
	AccountsWithBank  int64
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) CreateAccount(ctx context.Context, account *PayrollAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *repository) FindAccountByID(ctx context.Context, id string) (*PayrollAccount, error) {
	var account PayrollAccount
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	return &account, err
}

func (r *repository) FindAccountByPersonnel(ctx context.Context, personnelID string) (*PayrollAccount, error) {
	var account PayrollAccount
	err := r.db.WithContext(ctx).First(&account, "personnel_id = ?", personnelID).Error
	return &account, err
}

func (r *repository) PersonnelExists(ctx context.Context, personnelID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("personnel").
		Where("id = ?", personnelID).
		Count(&count).Error
	return count > 0, err
}

// FindAllAccountsWithBalance derives every balance from the transaction log.
// Inactive personnel keep their rows out of the dashboard and the export.
func (r *repository) FindAllAccountsWithBalance(ctx context.Context) ([]AccountWithBalance, error) {
	var accounts []AccountWithBalance
	query := `
SELECT
	pa.id AS account_id,
	pa.personnel_id,
	p.full_name,
	p.rut,
	pa.base_salary,
	p.is_active,
	COALESCE(SUM(pt.amount), 0) AS balance
FROM payroll_accounts pa
JOIN personnel p ON p.id = pa.personnel_id
LEFT JOIN payroll_transactions pt ON pt.payroll_account_id = pa.id
WHERE p.is_active
GROUP BY pa.id, pa.personnel_id, p.full_name, p.rut, pa.base_salary, p.is_active
ORDER BY p.full_name ASC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&accounts).Error
	return accounts, err
}

func (r *repository) CreateTransaction(ctx context.Context, tx *PayrollTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// FindTransactionsByAccount returns the ledger most-recent-first
// (transaction date, then insertion time). This ordering is part of the
// API contract.
func (r *repository) FindTransactionsByAccount(ctx context.Context, accountID string) ([]PayrollTransaction, error) {
	var transactions []PayrollTransaction
	query := `
SELECT
	pt.*,
	COALESCE(u.name, '') AS created_by_name
FROM payroll_transactions pt
LEFT JOIN users u ON u.id = pt.created_by
WHERE pt.payroll_account_id = ?
ORDER BY
	pt.transaction_date DESC,
	pt.created_at DESC
`

	err := r.db.WithContext(ctx).Raw(query, accountID).Scan(&transactions).Error
	return transactions, err
}

func (r *repository) BalanceByAccount(ctx context.Context, accountID string) (int64, error) {
	var balance int64
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(amount), 0) FROM payroll_transactions WHERE payroll_account_id = ?`, accountID).
		Scan(&balance).Error
	return balance, err
}

func (r *repository) FindBankingInfoByPersonnel(ctx context.Context, personnelID string) (*BankingInfo, error) {
	var info BankingInfo
	err := r.db.WithContext(ctx).First(&info, "personnel_id = ?", personnelID).Error
	return &info, err
}

func (r *repository) FindAllBankingInfo(ctx context.Context) ([]BankingInfo, error) {
	var infos []BankingInfo
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&infos).Error
	return infos, err
}

func (r *repository) CreateBankingInfo(ctx context.Context, info *BankingInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}

func (r *repository) UpdateBankingInfo(ctx context.Context, info *BankingInfo) error {
	return r.db.WithContext(ctx).Save(info).Error
}

func (r *repository) DeleteBankingInfo(ctx context.Context, personnelID string) error {
	return r.db.WithContext(ctx).
		Delete(&BankingInfo{}, "personnel_id = ?", personnelID).Error
}

// FindEligibleTransfers selects the payable rows for the Santander file:
// account + banking info + positive derived balance, active personnel only.
func (r *repository) FindEligibleTransfers(ctx context.Context) ([]EligibleTransfer, error) {
	var rows []EligibleTransfer
	query := `
SELECT
	pa.personnel_id,
	p.full_name,
	p.rut,
	bi.bank_name,
	bi.account_type,
	bi.account_number,
	COALESCE(SUM(pt.amount), 0) AS amount
FROM payroll_accounts pa
JOIN personnel p ON p.id = pa.personnel_id
JOIN banking_infos bi ON bi.personnel_id = pa.personnel_id
LEFT JOIN payroll_transactions pt ON pt.payroll_account_id = pa.id
WHERE p.is_active
GROUP BY pa.personnel_id, p.full_name, p.rut, bi.bank_name, bi.account_type, bi.account_number
HAVING COALESCE(SUM(pt.amount), 0) > 0
ORDER BY p.full_name ASC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}

func (r *repository) Summary(ctx context.Context, monthStart time.Time) (SummaryRow, error) {
	var row SummaryRow
	query := `
WITH balances AS (
	SELECT
		pa.id,
		pa.personnel_id,
		COALESCE(SUM(pt.amount), 0) AS balance
	FROM payroll_accounts pa
	JOIN personnel p ON p.id = pa.personnel_id
	LEFT JOIN payroll_transactions pt ON pt.payroll_account_id = pa.id
	WHERE p.is_active
	GROUP BY pa.id, pa.personnel_id
)
SELECT
	(SELECT COUNT(*) FROM balances) AS active_accounts,
	(SELECT COALESCE(SUM(balance), 0) FROM balances WHERE balance > 0) AS total_payable,
	(SELECT COUNT(*) FROM balances b
		JOIN banking_infos bi ON bi.personnel_id = b.personnel_id
		WHERE b.balance > 0) AS eligible_for_export,
	(SELECT COUNT(*) FROM payroll_transactions WHERE created_at >= ?) AS month_transactions,
	(SELECT COALESCE(SUM(amount), 0) FROM payroll_transactions WHERE created_at >= ?) AS month_net_movement,
	(SELECT COUNT(*) FROM balances b
		JOIN banking_infos bi ON bi.personnel_id = b.personnel_id) AS accounts_with_bank
`

	err := r.db.WithContext(ctx).Raw(query, monthStart, monthStart).Scan(&row).Error
	return row, err
}
