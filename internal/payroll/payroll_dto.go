package payroll

type CreateAccountRequest struct {
	PersonnelID string `json:"personnel_id" binding:"required,uuid"`
	BaseSalary  int64  `json:"base_salary" binding:"required"`
}

type CreateTransactionRequest struct {
	PayrollAccountID string `json:"payroll_account_id" binding:"required,uuid"`
	TransactionDate  string `json:"transaction_date" binding:"required"`
	TransactionType  string `json:"transaction_type" binding:"required"`
	Amount           int64  `json:"amount" binding:"required"`
	Description      string `json:"description"`
}

type UpsertBankingInfoRequest struct {
	PersonnelID   string  `json:"personnel_id" binding:"required,uuid"`
	BankName      string  `json:"bank_name" binding:"required"`
	AccountType   string  `json:"account_type" binding:"required"`
	AccountNumber string  `json:"account_number" binding:"required"`
	HolderRut     string  `json:"rut" binding:"required"`
	Email         *string `json:"email"`
}

type AccountResponse struct {
	ID          string `json:"id"`
	PersonnelID string `json:"personnel_id"`
	BaseSalary  int64  `json:"base_salary"`
}

type AccountWithBalanceResponse struct {
	AccountID   string `json:"account_id"`
	PersonnelID string `json:"personnel_id"`
	FullName    string `json:"full_name"`
	Rut         string `json:"rut"`
	BaseSalary  int64  `json:"base_salary"`
	Balance     int64  `json:"balance"`
}

type TransactionResponse struct {
	ID               string `json:"id"`
	PayrollAccountID string `json:"payroll_account_id"`
	TransactionDate  string `json:"transaction_date"`
	TransactionType  string `json:"transaction_type"`
	Amount           int64  `json:"amount"`
	Description      string `json:"description"`
	CreatedBy        string `json:"created_by,omitempty"`
	CreatedByName    string `json:"created_by_name,omitempty"`
}

// LedgerResponse lists transactions most-recent-first.
type LedgerResponse struct {
	PersonnelID  string                `json:"personnel_id"`
	FullName     string                `json:"full_name"`
	Rut          string                `json:"rut"`
	AccountID    string                `json:"account_id"`
	BaseSalary   int64                 `json:"base_salary"`
	Balance      int64                 `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

type BankingInfoResponse struct {
	ID            string  `json:"id"`
	PersonnelID   string  `json:"personnel_id"`
	BankName      string  `json:"bank_name"`
	AccountType   string  `json:"account_type"`
	AccountNumber string  `json:"account_number"`
	HolderRut     string  `json:"rut"`
	Email         *string `json:"email,omitempty"`
}

type SummaryResponse struct {
	ActiveAccounts    int64 `json:"active_accounts"`
	TotalPayable      int64 `json:"total_payable"`
	EligibleForExport int64 `json:"eligible_for_export"`
	MonthTransactions int64 `json:"month_transactions"`
	MonthNetMovement  int64 `json:"month_net_movement"`
	AccountsWithBank  int64 `json:"accounts_with_bank_info"`
}

type ExportResult struct {
	RecordCount  int      `json:"record_count"`
	TotalAmount  int64    `json:"total_amount"`
	PersonnelIDs []string `json:"personnel_ids"`
}
