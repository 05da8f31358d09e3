package ledger

import (
	"github.com/google/uuid"
	"github.com/joefazee/streaks/internal/address"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

// AccountRef names a custody account without loading it
type AccountRef struct {
	ID    uuid.UUID
	Kind  models.AccountKind
	Owner uuid.UUID
}

func UserAccount(user uuid.UUID) AccountRef {
	return AccountRef{ID: address.CustodyKey(user), Kind: models.AccountUser, Owner: user}
}

func EscrowAccount(market uuid.UUID) AccountRef {
	return AccountRef{ID: address.EscrowKey(market), Kind: models.AccountEscrow, Owner: market}
}

func CreatorAccount(creator uuid.UUID) AccountRef {
	return AccountRef{ID: address.CreatorRevenueKey(creator), Kind: models.AccountCreator, Owner: creator}
}

func PlatformAccount() AccountRef {
	return AccountRef{ID: address.PlatformKey(), Kind: models.AccountPlatform}
}

func InsuranceFundAccount() AccountRef {
	return AccountRef{ID: address.InsuranceFundKey(), Kind: models.AccountInsuranceFund}
}

// Posting moves a signed amount into or out of one account
type Posting struct {
	Account AccountRef
	Amount  decimal.Decimal
	Reason  models.EntryReason
}

func Debit(acct AccountRef, amount decimal.Decimal, reason models.EntryReason) Posting {
	return Posting{Account: acct, Amount: amount.Neg(), Reason: reason}
}

func Credit(acct AccountRef, amount decimal.Decimal, reason models.EntryReason) Posting {
	return Posting{Account: acct, Amount: amount, Reason: reason}
}

// Transfer debits from and credits to by the same amount
func Transfer(from, to AccountRef, amount decimal.Decimal, reason models.EntryReason) []Posting {
	return []Posting{Debit(from, amount, reason), Credit(to, amount, reason)}
}

// Balanced reports whether the postings sum to zero
func Balanced(postings []Posting) bool {
	sum := decimal.Zero
	for _, p := range postings {
		sum = sum.Add(p.Amount)
	}
	return sum.IsZero()
}

// compact drops zero postings and merges postings to the same account and reason
func compact(postings []Posting) []Posting {
	type key struct {
		id     uuid.UUID
		reason models.EntryReason
	}
	index := make(map[key]int, len(postings))
	out := make([]Posting, 0, len(postings))
	for _, p := range postings {
		k := key{p.Account.ID, p.Reason}
		if i, ok := index[k]; ok {
			out[i].Amount = out[i].Amount.Add(p.Amount)
			continue
		}
		index[k] = len(out)
		out = append(out, p)
	}

	kept := out[:0]
	for _, p := range out {
		if !p.Amount.IsZero() {
			kept = append(kept, p)
		}
	}
	return kept
}
