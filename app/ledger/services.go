package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/joefazee/streaks/internal/logger"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type service struct {
	repo   Repository
	db     *gorm.DB
	config *Config
	clock  clockwork.Clock
	log    logger.Logger
}

func NewService(repo Repository, db *gorm.DB, config *Config, clock clockwork.Clock, log logger.Logger) Service {
	return &service{
		repo:   repo,
		db:     db,
		config: config,
		clock:  clock,
		log:    log,
	}
}

func (s *service) Post(ctx context.Context, tx *gorm.DB, reference uuid.UUID, postings ...Posting) ([]models.Entry, error) {
	postings = compact(postings)
	if len(postings) == 0 {
		return nil, nil
	}
	if !Balanced(postings) {
		return nil, models.ErrUnbalancedPosting
	}
	return s.apply(ctx, s.repo.WithTx(tx), reference, postings)
}

func (s *service) Deposit(ctx context.Context, acct AccountRef, amount decimal.Decimal, reason models.EntryReason) (*BalanceResponse, error) {
	if !amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	var account *models.Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		if _, err := s.apply(ctx, repoTx, uuid.Nil, []Posting{Credit(acct, amount, reason)}); err != nil {
			return err
		}
		var err error
		account, err = repoTx.GetAccount(ctx, acct.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deposit: %w", err)
	}

	s.log.Info("deposit posted", map[string]interface{}{
		"account_id": acct.ID,
		"kind":       acct.Kind,
		"amount":     amount.String(),
	})
	return ToBalanceResponse(account), nil
}

func (s *service) Airdrop(ctx context.Context, user uuid.UUID, req *AirdropRequest) (*BalanceResponse, error) {
	if !s.config.AirdropEnabled {
		return nil, models.ErrUnauthorized
	}
	if !req.Amount.IsPositive() || req.Amount.GreaterThan(s.config.MaxAirdropAmount()) {
		return nil, models.ErrInvalidAmount
	}
	return s.Deposit(ctx, UserAccount(user), req.Amount, models.ReasonDeposit)
}

func (s *service) Balance(ctx context.Context, acct AccountRef) (*BalanceResponse, error) {
	account, err := s.repo.GetAccount(ctx, acct.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &BalanceResponse{AccountID: acct.ID, Kind: string(acct.Kind), OwnerID: acct.Owner, Balance: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return ToBalanceResponse(account), nil
}

func (s *service) Entries(ctx context.Context, acct AccountRef, page, perPage int) (*EntryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > s.config.MaxEntriesPerPage {
		perPage = s.config.MaxEntriesPerPage
	}

	entries, total, err := s.repo.ListEntries(ctx, acct.ID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	resp := &EntryListResponse{
		Entries: make([]EntryResponse, len(entries)),
		Page:    page,
		PerPage: perPage,
		Total:   total,
	}
	for i := range entries {
		resp.Entries[i] = ToEntryResponse(&entries[i])
	}
	return resp, nil
}

// SeedInsuranceFund tops the insurance fund up to the configured seed
func (s *service) SeedInsuranceFund(ctx context.Context) error {
	seed := s.config.FundSeed()
	if !seed.IsPositive() {
		return nil
	}

	fund := InsuranceFundAccount()
	current, err := s.Balance(ctx, fund)
	if err != nil {
		return err
	}
	if current.Balance.GreaterThanOrEqual(seed) {
		return nil
	}
	_, err = s.Deposit(ctx, fund, seed.Sub(current.Balance), models.ReasonDeposit)
	return err
}

// apply locks every touched account, applies the postings in order and
// writes one entry per posting, all sharing a fresh TxRef.
func (s *service) apply(ctx context.Context, repo Repository, reference uuid.UUID, postings []Posting) ([]models.Entry, error) {
	refs := make([]AccountRef, 0, len(postings))
	seen := make(map[uuid.UUID]bool, len(postings))
	for _, p := range postings {
		if !seen[p.Account.ID] {
			seen[p.Account.ID] = true
			refs = append(refs, p.Account)
		}
	}

	if err := repo.EnsureAccounts(ctx, refs); err != nil {
		return nil, fmt.Errorf("failed to ensure accounts: %w", err)
	}

	ids := make([]uuid.UUID, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })

	locked, err := repo.LockAccounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	accounts := make(map[uuid.UUID]*models.Account, len(locked))
	for i := range locked {
		accounts[locked[i].ID] = &locked[i]
	}

	txRef := uuid.New()
	var referenceID *uuid.UUID
	if reference != uuid.Nil {
		referenceID = &reference
	}
	now := s.clock.Now()

	entries := make([]models.Entry, 0, len(postings))
	for _, p := range postings {
		account, ok := accounts[p.Account.ID]
		if !ok {
			return nil, fmt.Errorf("account %s: %w", p.Account.ID, models.ErrRecordNotFound)
		}

		before := account.Balance
		if err := account.Apply(p.Amount); err != nil {
			return nil, fmt.Errorf("%s account %s: %w", account.Kind, account.ID, err)
		}

		entries = append(entries, models.Entry{
			TxRef:         txRef,
			AccountID:     account.ID,
			Amount:        p.Amount,
			BalanceBefore: before,
			BalanceAfter:  account.Balance,
			Reason:        p.Reason,
			ReferenceID:   referenceID,
			CreatedAt:     now,
		})
	}

	for _, id := range ids {
		if err := repo.UpdateBalance(ctx, accounts[id]); err != nil {
			return nil, fmt.Errorf("failed to update balance: %w", err)
		}
	}

	if err := repo.CreateEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to create entries: %w", err)
	}
	return entries, nil
}
