package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phoenixdao/phxledger/internal/dto"
	"github.com/phoenixdao/phxledger/internal/service/accountservice"
	"github.com/phoenixdao/phxledger/internal/service/authservice"
	"github.com/phoenixdao/phxledger/internal/service/ledgerservice"
	"github.com/phoenixdao/phxledger/pkg/utils"
)

type LedgerService interface {
	SettleWithdrawal(ctx context.Context, requestID int, outcome ledgerservice.SettleOutcome, externalRef *string) (*ledgerservice.SettleResult, error)
}

type Dispatcher interface {
	EnqueueAllPending(ctx context.Context) (int, error)
}

type AccountService interface {
	ManageKYC(ctx context.Context, accountID int, approve bool) error
}

type AuthService interface {
	GrantAdmin(ctx context.Context, accountID int, isAdmin bool) error
}

type AdminHandler struct {
	ledgerService  LedgerService
	dispatcher     Dispatcher
	accountService AccountService
	authService    AuthService
}

func New(ledgerService LedgerService, dispatcher Dispatcher, accountService AccountService, authService AuthService) *AdminHandler {
	return &AdminHandler{
		ledgerService:  ledgerService,
		dispatcher:     dispatcher,
		accountService: accountService,
		authService:    authService,
	}
}

// Settle godoc
//
//	@Summary		Settle one withdrawal request
//	@Description	Approve or reject a single pending request. Approval with insufficient balance converts to a rejection.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Request id"
//	@Param			request	body		dto.SettleRequestDTO	true	"Settlement outcome"
//	@Success		200		{object}	dto.SettleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid outcome"
//	@Failure		403		{object}	utils.Response	"Caller is not an admin"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Request already processed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/settle [post]
func (h *AdminHandler) Settle(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	var req dto.SettleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var outcome ledgerservice.SettleOutcome
	switch req.Outcome {
	case "approve":
		outcome = ledgerservice.OutcomeApprove
	case "reject":
		outcome = ledgerservice.OutcomeReject
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid outcome")
		return
	}
	var externalRef *string
	if req.ExternalRef != "" {
		externalRef = &req.ExternalRef
	}

	result, err := h.ledgerService.SettleWithdrawal(r.Context(), requestID, outcome, externalRef)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettleResponseDTO{
		RequestID: result.RequestID,
		Status:    string(result.Status),
		Reason:    result.Reason,
	})
}

// EnqueueAllPending godoc
//
//	@Summary		Queue all pending withdrawals
//	@Description	Partition the pending backlog into batches and queue them for settlement as approved.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.EnqueueResponseDTO
//	@Failure		403	{object}	utils.Response	"Caller is not an admin"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/enqueue [post]
func (h *AdminHandler) EnqueueAllPending(w http.ResponseWriter, r *http.Request) {
	queued, err := h.dispatcher.EnqueueAllPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EnqueueResponseDTO{QueuedCount: queued})
}

// ManageKYC godoc
//
//	@Summary		Resolve a KYC submission
//	@Description	Approve or reject a pending verification. Rejection clears the submitted wallet.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ManageKYCRequestDTO	true	"Resolution"
//	@Success		200		{object}	dto.ManageKYCResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Caller is not an admin"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		409		{object}	utils.Response	"No pending submission"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/kyc [post]
func (h *AdminHandler) ManageKYC(w http.ResponseWriter, r *http.Request) {
	var req dto.ManageKYCRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.accountService.ManageKYC(r.Context(), req.AccountID, req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, accountservice.ErrKYCNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ManageKYCResponseDTO{Message: "KYC submission resolved"})
}

// GrantAdmin godoc
//
//	@Summary		Grant or revoke the admin role
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GrantAdminRequestDTO	true	"Role change"
//	@Success		200		{object}	dto.GrantAdminResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Caller is not an admin"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/grant [post]
func (h *AdminHandler) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.GrantAdminRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.authService.GrantAdmin(r.Context(), req.AccountID, req.IsAdmin)
	if err != nil {
		if errors.Is(err, authservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GrantAdminResponseDTO{Message: "Role updated"})
}
