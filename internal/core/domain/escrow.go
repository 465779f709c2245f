package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// SubunitFactor converts whole base-currency units into the ledger's
	// smallest indivisible unit.
	SubunitFactor int64 = 1_000_000

	// EscrowGracePeriod separates the finish deadline from the cancel
	// deadline.
	EscrowGracePeriod = 7 * 24 * time.Hour

	// TrustLineHeadroom multiplies the invested amount to get the trust line
	// limit.
	TrustLineHeadroom int64 = 10

	// TokensPerBaseUnit is the fixed exchange ratio between base currency and
	// project tokens.
	TokensPerBaseUnit int64 = 1

	// LedgerAmountScale converts subunits into the 7 decimal amounts the
	// ledger gateways submit.
	LedgerAmountScale int64 = 10
)

const (
	// MaxUnits is the largest whole-unit amount whose trust line limit still
	// fits in an int64 once scaled to ledger amounts.
	MaxUnits = math.MaxInt64 / (SubunitFactor * LedgerAmountScale * TrustLineHeadroom)

	// MaxRepaymentDays is the longest repayment period whose cancel deadline
	// still fits in a time.Duration.
	MaxRepaymentDays = int((time.Duration(math.MaxInt64) - EscrowGracePeriod) / (24 * time.Hour))
)

// CheckUnits rejects amounts that are not positive or exceed MaxUnits.
func CheckUnits(units int64) error {
	if units <= 0 || units > MaxUnits {
		return fmt.Errorf("%w: amount must be between 1 and %d", ErrInvalidInput, MaxUnits)
	}
	return nil
}

// CheckRepaymentDays rejects periods that are not positive or exceed
// MaxRepaymentDays.
func CheckRepaymentDays(days int) error {
	if days <= 0 || days > MaxRepaymentDays {
		return fmt.Errorf("%w: repayment days must be between 1 and %d", ErrInvalidInput, MaxRepaymentDays)
	}
	return nil
}

// EscrowWindow holds the relative offsets passed to escrow creation. The
// ledger anchors them to its own time at submission.
type EscrowWindow struct {
	FinishAfter time.Duration
	CancelAfter time.Duration
}

// NewEscrowWindow computes the window for a loan repaid within the given
// number of days. Callers validate days with CheckRepaymentDays first.
func NewEscrowWindow(repaymentDays int) EscrowWindow {
	finish := time.Duration(repaymentDays) * 24 * time.Hour
	return EscrowWindow{
		FinishAfter: finish,
		CancelAfter: finish + EscrowGracePeriod,
	}
}

// ToSubunits converts whole units to ledger subunits. Units must have passed
// CheckUnits.
func ToSubunits(units int64) int64 {
	return units * SubunitFactor
}

// EscrowCondition is a PREIMAGE-SHA-256 crypto-condition pair. Condition is
// stored with the loan, Fulfillment is handed to the investor once.
type EscrowCondition struct {
	Condition   string
	Fulfillment string
}

// NewEscrowCondition generates a random 32 byte preimage and its condition.
func NewEscrowCondition() (EscrowCondition, error) {
	preimage := make([]byte, 32)
	if _, err := rand.Read(preimage); err != nil {
		return EscrowCondition{}, fmt.Errorf("generate preimage: %w", err)
	}
	sum := sha256.Sum256(preimage)
	return EscrowCondition{
		Condition:   strings.ToUpper(hex.EncodeToString(sum[:])),
		Fulfillment: strings.ToUpper(hex.EncodeToString(preimage)),
	}, nil
}

// VerifyFulfillment checks a hex preimage against a hex condition.
func VerifyFulfillment(condition, fulfillment string) bool {
	preimage, err := hex.DecodeString(fulfillment)
	if err != nil || len(preimage) == 0 {
		return false
	}
	want, err := hex.DecodeString(condition)
	if err != nil {
		return false
	}
	sum := sha256.Sum256(preimage)
	return subtle.ConstantTimeCompare(sum[:], want) == 1
}
