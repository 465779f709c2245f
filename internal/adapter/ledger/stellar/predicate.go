package stellar

import (
	"time"

	"github.com/stellar/go/xdr"
)

// claimWindow extracts the finish and cancel times from a destination
// predicate of the form AND(NOT(before finish), before cancel), as Horizon
// reports it after converting relative times to absolute ones.
func claimWindow(p xdr.ClaimPredicate) (finish, cancel time.Time) {
	switch p.Type {
	case xdr.ClaimPredicateTypeClaimPredicateAnd:
		if p.AndPredicates == nil {
			return
		}
		for _, child := range *p.AndPredicates {
			f, c := claimWindow(child)
			if !f.IsZero() {
				finish = f
			}
			if !c.IsZero() {
				cancel = c
			}
		}
	case xdr.ClaimPredicateTypeClaimPredicateNot:
		if p.NotPredicate == nil || *p.NotPredicate == nil {
			return
		}
		inner := **p.NotPredicate
		if inner.Type == xdr.ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime && inner.AbsBefore != nil {
			finish = time.Unix(int64(*inner.AbsBefore), 0).UTC()
		}
	case xdr.ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime:
		if p.AbsBefore != nil {
			cancel = time.Unix(int64(*p.AbsBefore), 0).UTC()
		}
	}
	return
}
