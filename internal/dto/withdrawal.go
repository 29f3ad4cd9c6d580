package dto

import "time"

type WithdrawRequestDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0" example:"38"`
}

type WithdrawResponseDTO struct {
	RequestID   int     `json:"requestId" example:"14"`
	FinalAmount float64 `json:"finalAmount" example:"37.9"`
}

type GetWithdrawalsResponseDTO struct {
	RequestID   int        `json:"requestId" example:"14"`
	Amount      float64    `json:"amount" example:"38"`
	Fee         float64    `json:"fee" example:"0.1"`
	FinalAmount float64    `json:"finalAmount" example:"37.9"`
	Status      string     `json:"status" example:"approved"`
	RequestedAt time.Time  `json:"requestedAt" example:"2020-12-09T16:09:57+03:00"`
	ProcessedAt *time.Time `json:"processedAt,omitempty" example:"2020-12-10T10:00:00+03:00"`
}

type SettleRequestDTO struct {
	Outcome     string `json:"outcome" validate:"required,oneof=approve reject" example:"approve"`
	ExternalRef string `json:"externalRef,omitempty" example:"tx_9f2c"`
}

type SettleResponseDTO struct {
	RequestID int    `json:"requestId" example:"14"`
	Status    string `json:"status" example:"approved"`
	Reason    string `json:"reason,omitempty" example:"insufficient funds at settlement"`
}

type EnqueueResponseDTO struct {
	QueuedCount int `json:"queuedCount" example:"250"`
}
