// Package simulated is an in-memory ledger with escrow windows, trust lines
// and issued tokens. It backs local runs without network access and the
// end-to-end tests of the use cases.
package simulated

import (
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stellar/go/amount"
	"github.com/stellar/go/keypair"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
)

// BaseCurrency names the native asset in balance reports.
const BaseCurrency = "XLM"

// fee is charged in subunits for every submitted transaction.
const fee int64 = 10

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrUnderfunded       = errors.New("insufficient balance")
	ErrNoTrustLine       = errors.New("destination has no trust line for asset")
	ErrTrustLimit        = errors.New("trust line limit exceeded")
	ErrIssuerDisabled    = errors.New("issuer is not configured to issue tokens")
	ErrEscrowNotFound    = errors.New("escrow not found")
	ErrEscrowNotReady    = errors.New("escrow finish time not reached")
	ErrEscrowExpired     = errors.New("escrow cancel time passed")
	ErrEscrowNotExpired  = errors.New("escrow cancel time not reached")
	ErrConditionMismatch = errors.New("fulfillment does not match condition")
	ErrMalformed         = errors.New("malformed request")
)

type assetKey struct {
	currency string
	issuer   string
}

type trustLine struct {
	limit   int64
	balance int64
}

type account struct {
	address string
	native  int64 // subunits
	issuer  bool
	lines   map[assetKey]*trustLine
}

type escrow struct {
	port.EscrowObject
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithStartingBalance sets the base-currency units credited to new accounts.
func WithStartingBalance(units int64) Option {
	return func(l *Ledger) { l.startingBalance = units }
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.clock = now }
}

// Ledger implements port.Ledger in memory. It is safe for concurrent use.
type Ledger struct {
	mu              sync.Mutex
	clock           func() time.Time
	offset          time.Duration
	startingBalance int64
	index           int64
	nextEscrow      int64
	accounts        map[string]*account
	escrows         map[string]*escrow
	txs             map[string]port.Transaction
	failures        map[string][]error
}

// New returns an empty ledger. Accounts start with 1000 units by default.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		clock:           time.Now,
		startingBalance: 1000,
		index:           1,
		accounts:        make(map[string]*account),
		escrows:         make(map[string]*escrow),
		txs:             make(map[string]port.Transaction),
		failures:        make(map[string][]error),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ port.Ledger = (*Ledger)(nil)

// Advance moves the ledger clock forward.
func (l *Ledger) Advance(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.offset += d
}

// FailNext makes the next call of op return err. op is the method name,
// e.g. "TransferToken". Queued failures are consumed in order.
func (l *Ledger) FailNext(op string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[op] = append(l.failures[op], err)
}

func (l *Ledger) now() time.Time {
	return l.clock().Add(l.offset).UTC()
}

func (l *Ledger) injected(op string) error {
	q := l.failures[op]
	if len(q) == 0 {
		return nil
	}
	l.failures[op] = q[1:]
	return q[0]
}

func (l *Ledger) CreateAccount(_ context.Context) (port.Wallet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("CreateAccount"); err != nil {
		return port.Wallet{}, err
	}
	kp, err := keypair.Random()
	if err != nil {
		return port.Wallet{}, fmt.Errorf("generate keypair: %w", err)
	}
	l.accounts[kp.Address()] = &account{
		address: kp.Address(),
		native:  domain.ToSubunits(l.startingBalance),
		lines:   make(map[assetKey]*trustLine),
	}
	return port.Wallet{Address: kp.Address(), Seed: kp.Seed()}, nil
}

func (l *Ledger) LoadAccount(_ context.Context, seed string) (port.Wallet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("LoadAccount"); err != nil {
		return port.Wallet{}, err
	}
	acc, err := l.signer(seed)
	if err != nil {
		return port.Wallet{}, err
	}
	return port.Wallet{Address: acc.address, Seed: seed}, nil
}

func (l *Ledger) GetBalance(_ context.Context, address string) (port.Balance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("GetBalance"); err != nil {
		return port.Balance{}, err
	}
	acc, ok := l.accounts[address]
	if !ok {
		return port.Balance{}, fmt.Errorf("%s: %w", address, ErrAccountNotFound)
	}
	return port.Balance{Currency: BaseCurrency, Amount: formatSubunits(acc.native)}, nil
}

func (l *Ledger) TransferValue(_ context.Context, seed string, units int64, destination string) (port.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("TransferValue"); err != nil {
		return port.Receipt{}, err
	}
	src, err := l.signer(seed)
	if err != nil {
		return port.Receipt{}, err
	}
	dst, ok := l.accounts[destination]
	if !ok {
		return port.Receipt{}, fmt.Errorf("destination %s: %w", destination, ErrAccountNotFound)
	}
	if units <= 0 {
		return port.Receipt{}, fmt.Errorf("%w: amount must be positive", ErrMalformed)
	}
	subunits := domain.ToSubunits(units)
	if src.native < subunits+fee {
		return port.Receipt{}, ErrUnderfunded
	}
	src.native -= subunits + fee
	dst.native += subunits
	return l.commit(src.address), nil
}

func (l *Ledger) ConfigureIssuer(_ context.Context, seed string, enable bool) (port.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("ConfigureIssuer"); err != nil {
		return port.Receipt{}, err
	}
	acc, err := l.signer(seed)
	if err != nil {
		return port.Receipt{}, err
	}
	if err = acc.charge(); err != nil {
		return port.Receipt{}, err
	}
	acc.issuer = enable
	return l.commit(acc.address), nil
}

func (l *Ledger) EstablishTrustLine(_ context.Context, holderSeed, issuer, currency string, limit int64) (port.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("EstablishTrustLine"); err != nil {
		return port.Receipt{}, err
	}
	holder, err := l.signer(holderSeed)
	if err != nil {
		return port.Receipt{}, err
	}
	if _, ok := l.accounts[issuer]; !ok {
		return port.Receipt{}, fmt.Errorf("issuer %s: %w", issuer, ErrAccountNotFound)
	}
	if holder.address == issuer || currency == "" || limit <= 0 {
		return port.Receipt{}, fmt.Errorf("%w: invalid trust line", ErrMalformed)
	}
	key := assetKey{currency: currency, issuer: issuer}
	line, ok := holder.lines[key]
	if ok && limit < line.balance {
		return port.Receipt{}, fmt.Errorf("%w: limit below current balance", ErrTrustLimit)
	}
	if err = holder.charge(); err != nil {
		return port.Receipt{}, err
	}
	if !ok {
		line = &trustLine{}
		holder.lines[key] = line
	}
	line.limit = limit
	return l.commit(holder.address), nil
}

func (l *Ledger) TransferToken(_ context.Context, issuerSeed, destination, currency string, units int64) (port.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("TransferToken"); err != nil {
		return port.Receipt{}, err
	}
	issuer, err := l.signer(issuerSeed)
	if err != nil {
		return port.Receipt{}, err
	}
	if !issuer.issuer {
		return port.Receipt{}, ErrIssuerDisabled
	}
	dst, ok := l.accounts[destination]
	if !ok {
		return port.Receipt{}, fmt.Errorf("destination %s: %w", destination, ErrAccountNotFound)
	}
	if units <= 0 {
		return port.Receipt{}, fmt.Errorf("%w: amount must be positive", ErrMalformed)
	}
	line, ok := dst.lines[assetKey{currency: currency, issuer: issuer.address}]
	if !ok {
		return port.Receipt{}, ErrNoTrustLine
	}
	if line.balance+units > line.limit {
		return port.Receipt{}, ErrTrustLimit
	}
	if err = issuer.charge(); err != nil {
		return port.Receipt{}, err
	}
	line.balance += units
	return l.commit(issuer.address), nil
}

func (l *Ledger) CreateEscrow(_ context.Context, req port.EscrowRequest) (port.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("CreateEscrow"); err != nil {
		return port.Receipt{}, err
	}
	owner, err := l.signer(req.SenderSeed)
	if err != nil {
		return port.Receipt{}, err
	}
	if _, ok := l.accounts[req.Destination]; !ok {
		return port.Receipt{}, fmt.Errorf("destination %s: %w", req.Destination, ErrAccountNotFound)
	}
	if req.Subunits <= 0 || req.FinishAfter < 0 || req.CancelAfter <= req.FinishAfter {
		return port.Receipt{}, fmt.Errorf("%w: invalid escrow window or amount", ErrMalformed)
	}
	if owner.native < req.Subunits+fee {
		return port.Receipt{}, ErrUnderfunded
	}
	owner.native -= req.Subunits + fee

	now := l.now()
	l.nextEscrow++
	seq := strconv.FormatInt(l.nextEscrow, 10)
	l.escrows[seq] = &escrow{port.EscrowObject{
		Sequence:    seq,
		Owner:       owner.address,
		Destination: req.Destination,
		Subunits:    req.Subunits,
		FinishAfter: now.Add(req.FinishAfter),
		CancelAfter: now.Add(req.CancelAfter),
		Condition:   strings.ToUpper(req.Condition),
	}}
	rcpt := l.commit(owner.address)
	rcpt.Sequence = seq
	return rcpt, nil
}

func (l *Ledger) FinishEscrow(_ context.Context, finisherSeed, owner, sequence, fulfillment string) (port.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("FinishEscrow"); err != nil {
		return port.Receipt{}, err
	}
	finisher, err := l.signer(finisherSeed)
	if err != nil {
		return port.Receipt{}, err
	}
	esc, err := l.escrow(owner, sequence)
	if err != nil {
		return port.Receipt{}, err
	}
	now := l.now()
	if now.Before(esc.FinishAfter) {
		return port.Receipt{}, ErrEscrowNotReady
	}
	if !now.Before(esc.CancelAfter) {
		return port.Receipt{}, ErrEscrowExpired
	}
	if esc.Condition != "" && !domain.VerifyFulfillment(esc.Condition, fulfillment) {
		return port.Receipt{}, ErrConditionMismatch
	}
	if err = finisher.charge(); err != nil {
		return port.Receipt{}, err
	}
	if dst, ok := l.accounts[esc.Destination]; ok {
		dst.native += esc.Subunits
	}
	delete(l.escrows, sequence)
	return l.commit(finisher.address), nil
}

func (l *Ledger) CancelEscrow(_ context.Context, cancellerSeed, owner, sequence string) (port.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("CancelEscrow"); err != nil {
		return port.Receipt{}, err
	}
	canceller, err := l.signer(cancellerSeed)
	if err != nil {
		return port.Receipt{}, err
	}
	esc, err := l.escrow(owner, sequence)
	if err != nil {
		return port.Receipt{}, err
	}
	if l.now().Before(esc.CancelAfter) {
		return port.Receipt{}, ErrEscrowNotExpired
	}
	if err = canceller.charge(); err != nil {
		return port.Receipt{}, err
	}
	if acc, ok := l.accounts[esc.Owner]; ok {
		acc.native += esc.Subunits
	}
	delete(l.escrows, sequence)
	return l.commit(canceller.address), nil
}

func (l *Ledger) ListEscrows(_ context.Context, address string) ([]port.EscrowObject, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("ListEscrows"); err != nil {
		return nil, err
	}
	out := make([]port.EscrowObject, 0)
	for _, esc := range l.escrows {
		if esc.Owner == address || esc.Destination == address {
			out = append(out, esc.EscrowObject)
		}
	}
	slices.SortFunc(out, func(a, b port.EscrowObject) int {
		return cmp.Or(cmp.Compare(len(a.Sequence), len(b.Sequence)), cmp.Compare(a.Sequence, b.Sequence))
	})
	return out, nil
}

func (l *Ledger) TokenBalances(_ context.Context, address string) ([]port.Balance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("TokenBalances"); err != nil {
		return nil, err
	}
	acc, ok := l.accounts[address]
	if !ok {
		return nil, fmt.Errorf("%s: %w", address, ErrAccountNotFound)
	}
	out := make([]port.Balance, 0, len(acc.lines))
	for key, line := range acc.lines {
		out = append(out, port.Balance{
			Currency: key.currency,
			Issuer:   key.issuer,
			Amount:   formatUnits(line.balance),
			Limit:    formatUnits(line.limit),
		})
	}
	slices.SortFunc(out, func(a, b port.Balance) int {
		return cmp.Or(cmp.Compare(a.Currency, b.Currency), cmp.Compare(a.Issuer, b.Issuer))
	})
	return out, nil
}

func (l *Ledger) GetTransaction(_ context.Context, hash string) (port.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.injected("GetTransaction"); err != nil {
		return port.Transaction{}, err
	}
	tx, ok := l.txs[strings.ToUpper(hash)]
	if !ok {
		return port.Transaction{}, fmt.Errorf("transaction %s: %w", hash, domain.ErrNotFound)
	}
	return tx, nil
}

// signer resolves the account controlled by seed.
func (l *Ledger) signer(seed string) (*account, error) {
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid seed", ErrMalformed)
	}
	acc, ok := l.accounts[kp.Address()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", kp.Address(), ErrAccountNotFound)
	}
	return acc, nil
}

func (l *Ledger) escrow(owner, sequence string) (*escrow, error) {
	esc, ok := l.escrows[sequence]
	if !ok || esc.Owner != owner {
		return nil, fmt.Errorf("%s/%s: %w", owner, sequence, ErrEscrowNotFound)
	}
	return esc, nil
}

// commit closes a ledger holding one successful transaction by account.
func (l *Ledger) commit(account string) port.Receipt {
	sum := sha256.Sum256([]byte(uuid.NewString()))
	hash := strings.ToUpper(hex.EncodeToString(sum[:]))
	l.index++
	l.txs[hash] = port.Transaction{
		Hash:       hash,
		Ledger:     l.index,
		Account:    account,
		Successful: true,
		Fee:        fee,
		Operations: 1,
		ClosedAt:   l.now(),
	}
	return port.Receipt{Hash: hash, Ledger: l.index}
}

func (a *account) charge() error {
	if a.native < fee {
		return ErrUnderfunded
	}
	a.native -= fee
	return nil
}

// formatSubunits renders subunits as a decimal amount of whole units.
func formatSubunits(subunits int64) string {
	return amount.StringFromInt64(subunits * domain.LedgerAmountScale)
}

func formatUnits(units int64) string {
	return formatSubunits(domain.ToSubunits(units))
}
