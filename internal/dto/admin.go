package dto

type ManageKYCRequestDTO struct {
	AccountID int  `json:"accountId" validate:"required" example:"7"`
	Approve   bool `json:"approve" example:"true"`
}

type ManageKYCResponseDTO struct {
	Message string `json:"message"`
}

type GrantAdminRequestDTO struct {
	AccountID int  `json:"accountId" validate:"required" example:"7"`
	IsAdmin   bool `json:"isAdmin" example:"true"`
}

type GrantAdminResponseDTO struct {
	Message string `json:"message"`
}
