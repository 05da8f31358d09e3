// Package address derives the deterministic keys markets, bets, profiles and
// custody accounts are stored under. A key is a name-based (v5) UUID over a
// seed and a length-prefixed encoding of its parts, so distinct part tuples
// never produce the same input and the same tuple always produces the same key.
package address

import (
	"encoding/binary"

	"github.com/google/uuid"
)

var namespace = uuid.MustParse("6f1b3c52-5d0e-4a8f-9d2a-1e7c0b5a4f31")

const (
	seedMarket   = "market"
	seedUser     = "user"
	seedBet      = "bet"
	seedEscrow   = "escrow"
	seedCustody  = "custody"
	seedCreator  = "creator"
	seedPlatform = "platform"
	seedFund     = "insurance_fund"
)

// MarketKey is the key of the market created by creator with nonce.
func MarketKey(creator uuid.UUID, nonce string) uuid.UUID {
	return derive(seedMarket, creator[:], []byte(nonce))
}

// ProfileKey is the key of user's profile.
func ProfileKey(user uuid.UUID) uuid.UUID {
	return derive(seedUser, user[:])
}

// BetKey is the key of user's only bet on market.
func BetKey(market, user uuid.UUID) uuid.UUID {
	return derive(seedBet, market[:], user[:])
}

// EscrowKey is the custody account holding a market's pooled stakes.
func EscrowKey(market uuid.UUID) uuid.UUID {
	return derive(seedEscrow, market[:])
}

// CustodyKey is the custody account holding user's spendable balance.
func CustodyKey(user uuid.UUID) uuid.UUID {
	return derive(seedCustody, user[:])
}

// CreatorRevenueKey is the account creator fees are paid into.
func CreatorRevenueKey(creator uuid.UUID) uuid.UUID {
	return derive(seedCreator, creator[:])
}

// PlatformKey is the account platform fees are paid into.
func PlatformKey() uuid.UUID {
	return derive(seedPlatform)
}

// InsuranceFundKey is the account that collects insurance premiums and
// funds streak bonuses.
func InsuranceFundKey() uuid.UUID {
	return derive(seedFund)
}

func derive(seed string, parts ...[]byte) uuid.UUID {
	size := 4 + len(seed)
	for _, p := range parts {
		size += 4 + len(p)
	}
	buf := make([]byte, 0, size)
	buf = appendPart(buf, []byte(seed))
	for _, p := range parts {
		buf = appendPart(buf, p)
	}
	return uuid.NewSHA1(namespace, buf)
}

func appendPart(buf, part []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(part)))
	return append(buf, part...)
}
