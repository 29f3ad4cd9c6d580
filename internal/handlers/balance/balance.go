package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/dto"
	"github.com/phoenixdao/phxledger/internal/service/ledgerservice"
	"github.com/phoenixdao/phxledger/pkg/auth"
	"github.com/phoenixdao/phxledger/pkg/utils"
)

type Service interface {
	CreditMining(ctx context.Context, accountID int, now time.Time) error
	GetBalance(ctx context.Context, accountID int) (*domain.Account, error)
	ReserveWithdrawal(ctx context.Context, accountID int, amount float64) (*domain.WithdrawalRequest, error)
	GetWithdrawals(ctx context.Context, accountID int) ([]domain.WithdrawalRequest, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// Mine godoc
//
//	@Summary		Claim a mining session reward
//	@Description	Credit one mining session; allowed once per 24 hours.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MineResponseDTO
//	@Failure		401	{object}	utils.Response	"Account not authorized"
//	@Failure		429	{object}	utils.Response	"Mined too recently"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/mine [post]
func (h *BalanceHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	err := h.ledgerService.CreditMining(r.Context(), userID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrRateLimited):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MineResponseDTO{
		Message: "Mining reward credited",
	})
}

// GetBalance godoc
//
//	@Summary		Get current account balances
//	@Description	Retrieve the mined, referral and withdrawable balances for the authenticated account.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Balance pools and session count"
//	@Failure		401	{object}	utils.Response			"Account not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	acc, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Mined:            acc.MinedBalance,
		ReferralPending:  acc.ReferralPending,
		ReferralVerified: acc.ReferralVerified,
		Withdrawable:     acc.WithdrawableBalance,
		Sessions:         acc.Sessions,
	})
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Reserve a withdrawal to the account's registered payout address. The balance is debited at settlement, not at reservation.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount below minimum"
//	@Failure		401		{object}	utils.Response	"Account not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		409		{object}	utils.Response	"A request is already pending"
//	@Failure		412		{object}	utils.Response	"KYC, sessions or wallet requirement unmet"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance/withdraw [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.ledgerService.ReserveWithdrawal(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrAlreadyPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ledgerservice.ErrNotEligible):
			utils.RespondWithError(w, http.StatusPreconditionFailed, err.Error())
		case errors.Is(err, ledgerservice.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawResponseDTO{
		RequestID:   request.ID,
		FinalAmount: request.FinalAmount,
	})
}

// GetWithdrawals godoc
//
//	@Summary		List own withdrawal requests
//	@Description	Retrieve every withdrawal request of the authenticated account, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetWithdrawalsResponseDTO
//	@Success		204	{string}	string			"No withdrawals"
//	@Failure		401	{object}	utils.Response	"Account not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *BalanceHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.ledgerService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(withdrawals) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.GetWithdrawalsResponseDTO, 0, len(withdrawals))
	for _, wd := range withdrawals {
		resp = append(resp, dto.GetWithdrawalsResponseDTO{
			RequestID:   wd.ID,
			Amount:      wd.Amount,
			Fee:         wd.Fee,
			FinalAmount: wd.FinalAmount,
			Status:      string(wd.Status),
			RequestedAt: wd.RequestedAt,
			ProcessedAt: wd.ProcessedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
