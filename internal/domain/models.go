package domain

import "time"

type KYCState string

const (
	KYCNotSubmitted KYCState = "not_submitted"
	KYCPending      KYCState = "pending"
	KYCVerified     KYCState = "verified"
	KYCFailed       KYCState = "failed"
)

// BalancePool names one of an account's credit destinations. Crediting the
// verified or mined pool also raises the withdrawable balance; the pending
// referral pool does not count toward it until the bonus is confirmed.
type BalancePool string

const (
	PoolMined            BalancePool = "mined"
	PoolReferralPending  BalancePool = "referral_pending"
	PoolReferralVerified BalancePool = "referral_verified"
)

type Account struct {
	ID                   int        `db:"id"`
	Login                string     `db:"login"`
	PasswordHash         string     `db:"password_hash"`
	MinedBalance         float64    `db:"mined_balance"`
	ReferralPending      float64    `db:"referral_pending"`
	ReferralVerified     float64    `db:"referral_verified"`
	WithdrawableBalance  float64    `db:"withdrawable_balance"`
	Sessions             int        `db:"sessions"`
	LastMineAt           *time.Time `db:"last_mine_at"`
	KYCState             KYCState   `db:"kyc_state"`
	KYCWallet            *string    `db:"kyc_wallet"`
	PayoutAddress        *string    `db:"payout_address"`
	HasPendingWithdrawal bool       `db:"has_pending_withdrawal"`
	ReferredBy           *int       `db:"referred_by"`
	IsAdmin              bool       `db:"is_admin"`
	CreatedAt            time.Time  `db:"created_at"`
}

// WalletAdded reports whether the account has a payout address registered.
func (a *Account) WalletAdded() bool {
	return a.PayoutAddress != nil && *a.PayoutAddress != ""
}

// ReferralEdge mirrors a referred account's progress under its referrer.
// BonusPaid is terminal: once true the edge is never re-evaluated.
type ReferralEdge struct {
	ReferrerID  int       `db:"referrer_id"`
	ReferredID  int       `db:"referred_id"`
	Login       string    `db:"login"`
	KYCVerified bool      `db:"kyc_verified"`
	WalletAdded bool      `db:"wallet_added"`
	Sessions    int       `db:"sessions"`
	BonusPaid   bool      `db:"bonus_paid"`
	JoinedAt    time.Time `db:"joined_at"`
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
	WithdrawalComplete WithdrawalStatus = "completed"
)

type WithdrawalRequest struct {
	ID                 int              `db:"id"`
	AccountID          int              `db:"account_id"`
	Amount             float64          `db:"amount"`
	Fee                float64          `db:"fee"`
	FinalAmount        float64          `db:"final_amount"`
	DestinationAddress string           `db:"destination_address"`
	Status             WithdrawalStatus `db:"status"`
	ExternalRef        *string          `db:"external_ref"`
	RejectionReason    *string          `db:"rejection_reason"`
	RequestedAt        time.Time        `db:"requested_at"`
	ProcessedAt        *time.Time       `db:"processed_at"`
}

type ProposalKind string

const (
	ProposalGeneral  ProposalKind = "general"
	ProposalTreasury ProposalKind = "treasury"
)

type ProposalStatus string

const (
	ProposalActiveRound1 ProposalStatus = "active_round1"
	ProposalActiveRound2 ProposalStatus = "active_round2"
	ProposalPassed       ProposalStatus = "passed"
	ProposalRejected     ProposalStatus = "rejected"
)

type VoteChoice string

const (
	VoteFor     VoteChoice = "for"
	VoteAgainst VoteChoice = "against"
)

// Proposal tallies are denormalized on the row and always equal the aggregate
// over the round's recorded votes. For general proposals they are whole-number
// vote counts, for treasury proposals voting-power sums.
type Proposal struct {
	ID            int            `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	ProposerID    int            `db:"proposer_id"`
	Kind          ProposalKind   `db:"kind"`
	Status        ProposalStatus `db:"status"`
	Round1For     float64        `db:"round1_for"`
	Round1Against float64        `db:"round1_against"`
	Round2For     float64        `db:"round2_for"`
	Round2Against float64        `db:"round2_against"`
	Amount        *float64       `db:"amount"`
	Recipient     *string        `db:"recipient"`
	ExpiresAt     *time.Time     `db:"expires_at"`
	CreatedAt     time.Time      `db:"created_at"`
}

// Round maps an active status to its voting round number.
func (p *Proposal) Round() int {
	if p.Status == ProposalActiveRound2 {
		return 2
	}
	return 1
}

type ProposalVote struct {
	ProposalID int        `db:"proposal_id"`
	Round      int        `db:"round"`
	VoterID    int        `db:"voter_id"`
	Choice     VoteChoice `db:"choice"`
	Power      float64    `db:"power"`
	CastAt     time.Time  `db:"cast_at"`
}

type LeaderboardEntry struct {
	Address string  `json:"address"`
	Amount  float64 `json:"amount"`
}

// LeaderboardSnapshot is the single cached top-N contributor list. It is
// replaced wholesale on refresh and never overwritten with an empty result.
type LeaderboardSnapshot struct {
	Entries    []LeaderboardEntry
	TotalPower float64
	UpdatedAt  time.Time
}

func (s *LeaderboardSnapshot) Addresses() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Entries))
	for _, e := range s.Entries {
		set[e.Address] = struct{}{}
	}
	return set
}

type Contribution struct {
	Address     string    `db:"address"`
	TotalAmount float64   `db:"total_amount"`
	UpdatedAt   time.Time `db:"updated_at"`
}
