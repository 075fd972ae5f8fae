package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeAdvance = "ADVANCE"
	TypeAbsence = "ABSENCE"
	TypeBonus   = "BONUS"
	TypeSalary  = "SALARY"
	TypeLoan    = "LOAN"
)

// TransactionTypes is the closed set accepted by CreateTransaction. The
// amount sign is conventional per type (BONUS positive, ADVANCE negative)
// but not enforced: a negative BONUS is allowed-but-unusual.
var TransactionTypes = map[string]bool{
	TypeAdvance: true,
	TypeAbsence: true,
	TypeBonus:   true,
	TypeSalary:  true,
	TypeLoan:    true,
}

const (
	AccountTypeCorriente = "CUENTA_CORRIENTE"
	AccountTypeVista     = "CUENTA_VISTA"
	AccountTypeRut       = "CUENTA_RUT"
)

var AccountTypes = map[string]bool{
	AccountTypeCorriente: true,
	AccountTypeVista:     true,
	AccountTypeRut:       true,
}

// Banks recognized by the Santander bulk-transfer import.
var ChileanBanks = map[string]bool{
	"BANCO SANTANDER":    true,
	"BANCO DE CHILE":     true,
	"BANCO ESTADO":       true,
	"BCI":                true,
	"SCOTIABANK":         true,
	"ITAU":               true,
	"BANCO FALABELLA":    true,
	"BANCO RIPLEY":       true,
	"BANCO SECURITY":     true,
	"BANCO BICE":         true,
	"BANCO CONSORCIO":    true,
	"BANCO INTERNACIONAL": true,
}

// PayrollAccount holds the base salary only. There is deliberately no
// balance column: the balance is always derived from the transaction log.
type PayrollAccount struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PersonnelID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_accounts_personnel"`
	BaseSalary  int64     `gorm:"type:bigint;not null"` // whole CLP, no minor unit
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PayrollAccount) TableName() string {
	return "payroll_accounts"
}

// PayrollTransaction rows are append-only; no update or delete path exists.
type PayrollTransaction struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PayrollAccountID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TransactionDate  time.Time  `gorm:"type:date;not null"`
	TransactionType  string     `gorm:"size:20;not null"`
	Amount           int64      `gorm:"type:bigint;not null"` // signed: positive credits the employee
	Description      string     `gorm:"type:text"`
	CreatedBy        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time

	// populated by the ledger join, not a column
	CreatedByName string `gorm:"->;-:migration"`
}

func (PayrollTransaction) TableName() string {
	return "payroll_transactions"
}

type BankingInfo struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PersonnelID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_banking_infos_personnel"`
	BankName      string    `gorm:"size:60;not null"`
	AccountType   string    `gorm:"size:20;not null"`
	AccountNumber string    `gorm:"size:30;not null"` // digits only
	HolderRut     string    `gorm:"size:13;not null"` // must match personnel.rut
	Email         *string   `gorm:"size:120"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (BankingInfo) TableName() string {
	return "banking_infos"
}

// AccountWithBalance is the read model for the dashboard listing and the
// export eligibility scan.
type AccountWithBalance struct {
	AccountID   uuid.UUID
	PersonnelID uuid.UUID
	FullName    string
	Rut         string
	BaseSalary  int64
	Balance     int64
	IsActive    bool
}

// EligibleTransfer is one payable row of the Santander transfer file.
type EligibleTransfer struct {
	PersonnelID   uuid.UUID
	FullName      string
	Rut           string
	BankName      string
	AccountType   string
	AccountNumber string
	Amount        int64
}
