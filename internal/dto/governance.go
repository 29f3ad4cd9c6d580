package dto

import "time"

type CreateProposalRequestDTO struct {
	Title       string   `json:"title" validate:"required,max=200" example:"Fund the relay"`
	Description string   `json:"description" validate:"required" example:"Covers relay hosting for a year"`
	Kind        string   `json:"kind" validate:"required,oneof=general treasury" example:"treasury"`
	Amount      *float64 `json:"amount,omitempty" example:"500"`
	Recipient   *string  `json:"recipient,omitempty" example:"GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT"`
}

type CreateProposalResponseDTO struct {
	ProposalID int `json:"proposalId" example:"3"`
}

type VoteRequestDTO struct {
	Choice string `json:"choice" validate:"required,oneof=for against" example:"for"`
}

type VoteResponseDTO struct {
	Message string `json:"message"`
}

type ProposalResponseDTO struct {
	ID            int        `json:"id" example:"3"`
	Title         string     `json:"title" example:"Fund the relay"`
	Description   string     `json:"description" example:"Covers relay hosting for a year"`
	Kind          string     `json:"kind" example:"treasury"`
	Status        string     `json:"status" example:"active_round2"`
	Round1For     float64    `json:"round1For" example:"550"`
	Round1Against float64    `json:"round1Against" example:"120"`
	Round2For     float64    `json:"round2For" example:"0"`
	Round2Against float64    `json:"round2Against" example:"0"`
	Amount        *float64   `json:"amount,omitempty" example:"500"`
	Recipient     *string    `json:"recipient,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type EligibilityResponseDTO struct {
	Round1 bool `json:"round1" example:"true"`
	Round2 bool `json:"round2" example:"true"`
}

type LeaderboardEntryDTO struct {
	Address string  `json:"address" example:"GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT"`
	Amount  float64 `json:"amount" example:"120.5"`
}

type LeaderboardResponseDTO struct {
	Entries    []LeaderboardEntryDTO `json:"entries"`
	TotalPower float64               `json:"totalPower" example:"100500"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}
