package domain

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrUserNotFound indicates that the ledger user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists indicates that the user name is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidUserName indicates an empty user name.
	ErrInvalidUserName = errors.New("invalid user name")
	// ErrSelfIOU indicates that lender and borrower are the same user.
	ErrSelfIOU = errors.New("lender and borrower must differ")
)

// User holds ledger data of a single person.
//
// Owes and OwedBy are keyed by the counterparty name and hold net amounts,
// a pair of users never appears in both maps.
type User struct {
	Name    string
	Owes    map[string]decimal.Decimal
	OwedBy  map[string]decimal.Decimal
	Balance decimal.Decimal
}

// NewUser returns a user with no debts.
func NewUser(name string) User {
	return User{
		Name:   name,
		Owes:   map[string]decimal.Decimal{},
		OwedBy: map[string]decimal.Decimal{},
	}
}

// IOU records that Lender lent Amount to Borrower.
type IOU struct {
	Lender   string          `json:"lender"`
	Borrower string          `json:"borrower"`
	Amount   decimal.Decimal `json:"amount"`
}

// LedgerSnapshot is the serialized form of a whole ledger.
type LedgerSnapshot struct {
	Users []User `json:"users"`
}

type userJSON struct {
	Name    string             `json:"name"`
	Owes    map[string]float64 `json:"owes"`
	OwedBy  map[string]float64 `json:"owed_by"`
	Balance float64            `json:"balance"`
}

// MarshalJSON encodes amounts as JSON numbers.
func (u User) MarshalJSON() ([]byte, error) {
	out := userJSON{
		Name:    u.Name,
		Owes:    toFloats(u.Owes),
		OwedBy:  toFloats(u.OwedBy),
		Balance: u.Balance.InexactFloat64(),
	}

	return json.Marshal(out)
}

// UnmarshalJSON accepts amounts both as numbers and as strings.
// The balance is not trusted and is recomputed from the maps.
func (u *User) UnmarshalJSON(data []byte) error {
	var in struct {
		Name   string                     `json:"name"`
		Owes   map[string]decimal.Decimal `json:"owes"`
		OwedBy map[string]decimal.Decimal `json:"owed_by"`
	}

	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*u = NewUser(in.Name)

	for k, v := range in.Owes {
		u.Owes[k] = v
	}

	for k, v := range in.OwedBy {
		u.OwedBy[k] = v
	}

	u.Balance = sum(u.OwedBy).Sub(sum(u.Owes))

	return nil
}

func toFloats(m map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v.InexactFloat64()
	}

	return out
}

func sum(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}

	return total
}
