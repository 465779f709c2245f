package domain

import (
	"cmp"
	"slices"
)

// Snapshot is the complete persisted state. Record stores load and save it
// as one unit. Version is the optimistic concurrency token: a store refuses
// to save a snapshot whose version differs from the stored one.
type Snapshot struct {
	Campaigns        []Campaign   `json:"campaigns"`
	Investments      []Investment `json:"investments"`
	Microloans       []Microloan  `json:"microloans"`
	NextCampaignID   int64        `json:"next_campaign_id"`
	NextInvestmentID int64        `json:"next_investment_id"`
	NextMicroloanID  int64        `json:"next_microloan_id"`
	Version          uint64       `json:"version"`
}

// NewSnapshot returns an empty state with all counters at 1.
func NewSnapshot() Snapshot {
	return Snapshot{
		Campaigns:        []Campaign{},
		Investments:      []Investment{},
		Microloans:       []Microloan{},
		NextCampaignID:   1,
		NextInvestmentID: 1,
		NextMicroloanID:  1,
	}
}

// Normalize fixes up snapshots written by older layouts that lacked a
// collection or a counter. Counters never fall behind existing ids.
func (s *Snapshot) Normalize() {
	if s.Campaigns == nil {
		s.Campaigns = []Campaign{}
	}
	if s.Investments == nil {
		s.Investments = []Investment{}
	}
	if s.Microloans == nil {
		s.Microloans = []Microloan{}
	}
	for _, c := range s.Campaigns {
		s.NextCampaignID = max(s.NextCampaignID, c.ID+1)
	}
	for _, i := range s.Investments {
		s.NextInvestmentID = max(s.NextInvestmentID, i.ID+1)
	}
	for _, m := range s.Microloans {
		s.NextMicroloanID = max(s.NextMicroloanID, m.ID+1)
	}
	s.NextCampaignID = max(s.NextCampaignID, 1)
	s.NextInvestmentID = max(s.NextInvestmentID, 1)
	s.NextMicroloanID = max(s.NextMicroloanID, 1)
}

// Clone returns a deep copy so callers may mutate it freely.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Campaigns = make([]Campaign, len(s.Campaigns))
	for i, c := range s.Campaigns {
		if c.TokenCurrency != nil {
			cur := *c.TokenCurrency
			c.TokenCurrency = &cur
		}
		out.Campaigns[i] = c
	}
	out.Investments = slices.Clone(s.Investments)
	if out.Investments == nil {
		out.Investments = []Investment{}
	}
	out.Microloans = make([]Microloan, len(s.Microloans))
	for i, m := range s.Microloans {
		if m.CompletedAt != nil {
			t := *m.CompletedAt
			m.CompletedAt = &t
		}
		if m.CancelledAt != nil {
			t := *m.CancelledAt
			m.CancelledAt = &t
		}
		out.Microloans[i] = m
	}
	return out
}

// Campaign returns a pointer into the snapshot for in-place mutation.
func (s *Snapshot) Campaign(id int64) (*Campaign, bool) {
	for i := range s.Campaigns {
		if s.Campaigns[i].ID == id {
			return &s.Campaigns[i], true
		}
	}
	return nil, false
}

// Microloan returns a pointer into the snapshot for in-place mutation.
func (s *Snapshot) Microloan(id int64) (*Microloan, bool) {
	for i := range s.Microloans {
		if s.Microloans[i].ID == id {
			return &s.Microloans[i], true
		}
	}
	return nil, false
}

// AddCampaign assigns the next campaign id and appends c.
func (s *Snapshot) AddCampaign(c Campaign) Campaign {
	c.ID = s.NextCampaignID
	s.NextCampaignID++
	s.Campaigns = append(s.Campaigns, c)
	return c
}

// AddInvestment assigns the next investment id and appends inv.
func (s *Snapshot) AddInvestment(inv Investment) Investment {
	inv.ID = s.NextInvestmentID
	s.NextInvestmentID++
	s.Investments = append(s.Investments, inv)
	return inv
}

// AddMicroloan assigns the next microloan id and appends m.
func (s *Snapshot) AddMicroloan(m Microloan) Microloan {
	m.ID = s.NextMicroloanID
	s.NextMicroloanID++
	s.Microloans = append(s.Microloans, m)
	return m
}

// Reset drops every record but keeps the id counters, so ids are never
// handed out twice.
func (s *Snapshot) Reset() {
	s.Campaigns = []Campaign{}
	s.Investments = []Investment{}
	s.Microloans = []Microloan{}
}

// CampaignsNewestFirst returns campaigns ordered by creation time, newest
// first, with the id as tie-break.
func (s Snapshot) CampaignsNewestFirst() []Campaign {
	out := slices.Clone(s.Campaigns)
	slices.SortStableFunc(out, func(a, b Campaign) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}

// MicroloansNewestFirst returns microloans ordered like CampaignsNewestFirst.
func (s Snapshot) MicroloansNewestFirst() []Microloan {
	out := slices.Clone(s.Microloans)
	slices.SortStableFunc(out, func(a, b Microloan) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}

// InvestmentsFor returns the investments of one campaign, or all of them
// when campaignID is 0, in id order.
func (s Snapshot) InvestmentsFor(campaignID int64) []Investment {
	out := make([]Investment, 0, len(s.Investments))
	for _, inv := range s.Investments {
		if campaignID == 0 || inv.CampaignID == campaignID {
			out = append(out, inv)
		}
	}
	return out
}
