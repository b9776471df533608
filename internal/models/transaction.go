package models

import "time"

// Category says which way money moved. It is always derived from the sign
// of Transaction.Amount and never set independently.
type Category string

const (
	Inflow  Category = "inflow"
	Outflow Category = "outflow"
)

// CategoryOf returns the category implied by a signed kobo amount.
func CategoryOf(amount int64) Category {
	if amount > 0 {
		return Inflow
	}
	return Outflow
}

// Type is the coarse semantic tag inferred from a narration.
type Type string

const (
	TypeTransfer   Type = "transfer"
	TypeAirtime    Type = "airtime"
	TypeBankCharge Type = "bank_charge"
	TypeCard       Type = "card_payment"
	TypeATM        Type = "atm_withdrawal"
	TypeBill       Type = "bill_payment"
	TypeInterest   Type = "interest"
	TypeReversal   Type = "reversal"
	TypeOther      Type = "other"
)

// BankCode identifies which bank's parser produced a record.
type BankCode string

const (
	BankAccess     BankCode = "access"
	BankFirstBank  BankCode = "firstbank"
	BankGTBank     BankCode = "gtbank"
	BankKuda       BankCode = "kuda"
	BankMoniepoint BankCode = "moniepoint"
	BankOPay       BankCode = "opay"
	BankPalmPay    BankCode = "palmpay"
	BankSterling   BankCode = "sterling"
	BankUBA        BankCode = "uba"
	BankWema       BankCode = "wema"
	BankZenith     BankCode = "zenith"
)

// Counterparty is the other party in a transfer, pulled out of free-text
// narration by the per-bank rule cascades.
type Counterparty struct {
	Name          string `json:"name,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	Bank          string `json:"bank,omitempty"`
}

// Bill holds bill-payment sub-fields where a narration carries them.
type Bill struct {
	Biller     string `json:"biller,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
}

// Meta carries the optional semantic extras attached to a transaction.
type Meta struct {
	Type         Type          `json:"type,omitempty"`
	Counterparty *Counterparty `json:"counterparty,omitempty"`
	Bill         *Bill         `json:"bill,omitempty"`
	BalanceAfter *int64        `json:"balanceAfter,omitempty"` // kobo
	RawCategory  string        `json:"rawCategory,omitempty"`
	SessionID    string        `json:"sessionId,omitempty"`
	ValueDate    *time.Time    `json:"valueDate,omitempty"`
}

// Transaction is the canonical normalized statement entry. Amount is a signed
// integer in kobo: positive means inflow, negative means outflow. A
// Transaction is built once at parse time and never mutated afterwards.
//
// Field names and the amount-sign convention are the export contract to
// storage and must not change per bank.
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Category    Category  `json:"category"`
	BankSource  BankCode  `json:"bankSource"`
	Reference   string    `json:"reference"`
	Meta        *Meta     `json:"meta,omitempty"`
}
