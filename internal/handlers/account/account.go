package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/dto"
	"github.com/phoenixdao/phxledger/internal/service/accountservice"
	"github.com/phoenixdao/phxledger/pkg/auth"
	"github.com/phoenixdao/phxledger/pkg/utils"
)

type Service interface {
	SaveWallet(ctx context.Context, accountID int, address string) error
	SubmitKYC(ctx context.Context, accountID int, wallet string) error
}

type ReferralService interface {
	ListReferred(ctx context.Context, referrerID int) ([]domain.ReferralEdge, error)
}

type AccountHandler struct {
	accountService  Service
	referralService ReferralService
}

func New(accountService Service, referralService ReferralService) *AccountHandler {
	return &AccountHandler{
		accountService:  accountService,
		referralService: referralService,
	}
}

// SaveWallet godoc
//
//	@Summary		Register payout address
//	@Description	Set the account's external payout address. Write-once: a set address can never change.
//	@Tags			Account
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SaveWalletRequestDTO	true	"Payout address"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid address format"
//	@Failure		401		{object}	utils.Response	"Account not authorized"
//	@Failure		409		{object}	utils.Response	"Address already set"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet [post]
func (h *AccountHandler) SaveWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SaveWalletRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.accountService.SaveWallet(r.Context(), userID, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrInvalidAddress):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, accountservice.ErrWalletAlreadySet):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payout address saved"})
}

// SubmitKYC godoc
//
//	@Summary		Submit a KYC verification request
//	@Description	Open a pending verification backed by a wallet address; each wallet backs at most one submission ever.
//	@Tags			Account
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitKYCRequestDTO	true	"KYC wallet"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid wallet format"
//	@Failure		401		{object}	utils.Response	"Account not authorized"
//	@Failure		409		{object}	utils.Response	"Already submitted or wallet in use"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/kyc [post]
func (h *AccountHandler) SubmitKYC(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SubmitKYCRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.accountService.SubmitKYC(r.Context(), userID, req.Wallet)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrInvalidAddress):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, accountservice.ErrKYCAlreadySubmitted), errors.Is(err, accountservice.ErrWalletInUse):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "KYC submitted"})
}

// GetReferrals godoc
//
//	@Summary		List referred accounts
//	@Description	Retrieve the progress of every account referred by the caller.
//	@Tags			Account
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralResponseDTO
//	@Failure		401	{object}	utils.Response	"Account not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *AccountHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	edges, err := h.referralService.ListReferred(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.ReferralResponseDTO, 0, len(edges))
	for _, edge := range edges {
		resp = append(resp, dto.ReferralResponseDTO{
			Login:       edge.Login,
			KYCVerified: edge.KYCVerified,
			WalletAdded: edge.WalletAdded,
			Sessions:    edge.Sessions,
			BonusPaid:   edge.BonusPaid,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
