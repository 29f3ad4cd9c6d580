package dto

type BalanceResponseDTO struct {
	Mined            float64 `json:"mined" example:"17.119"`
	ReferralPending  float64 `json:"referralPending" example:"10.07"`
	ReferralVerified float64 `json:"referralVerified" example:"20.14"`
	Withdrawable     float64 `json:"withdrawable" example:"37.259"`
	Sessions         int     `json:"sessions" example:"170"`
}

type MineResponseDTO struct {
	Message string `json:"message"`
}

type SaveWalletRequestDTO struct {
	Address string `json:"address" validate:"required" example:"GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT"`
}

type SubmitKYCRequestDTO struct {
	Wallet string `json:"wallet" validate:"required" example:"GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT"`
}

type ReferralResponseDTO struct {
	Login       string `json:"login" example:"miner42"`
	KYCVerified bool   `json:"kycVerified" example:"true"`
	WalletAdded bool   `json:"walletAdded" example:"true"`
	Sessions    int    `json:"sessions" example:"120"`
	BonusPaid   bool   `json:"bonusPaid" example:"false"`
}
