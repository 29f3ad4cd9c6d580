package governance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/dto"
	"github.com/phoenixdao/phxledger/internal/service/governanceservice"
	"github.com/phoenixdao/phxledger/pkg/auth"
	"github.com/phoenixdao/phxledger/pkg/utils"
)

type Service interface {
	CheckEligibility(ctx context.Context, accountID int) (*governanceservice.Eligibility, error)
	CreateProposal(ctx context.Context, proposerID int, title, description string, kind domain.ProposalKind, amount *float64, recipient *string) (*domain.Proposal, error)
	Vote(ctx context.Context, voterID, proposalID int, choice domain.VoteChoice) error
	GetProposal(ctx context.Context, id int) (*domain.Proposal, error)
	ListProposals(ctx context.Context) ([]domain.Proposal, error)
	Leaderboard(ctx context.Context) (*domain.LeaderboardSnapshot, error)
}

type GovernanceHandler struct {
	governanceService Service
}

func New(governanceService Service) *GovernanceHandler {
	return &GovernanceHandler{
		governanceService: governanceService,
	}
}

// CheckEligibility godoc
//
//	@Summary		Check voting eligibility
//	@Description	Report whether the caller may vote in round 1 (top contributors) and round 2 (all verified accounts with a wallet).
//	@Tags			Governance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.EligibilityResponseDTO
//	@Failure		401	{object}	utils.Response	"Account not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/governance/eligibility [get]
func (h *GovernanceHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	elig, err := h.governanceService.CheckEligibility(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EligibilityResponseDTO{
		Round1: elig.Round1,
		Round2: elig.Round2,
	})
}

// CreateProposal godoc
//
//	@Summary		Create a proposal
//	@Description	Open a general or treasury proposal in round 1. Treasury proposals carry a payout amount, recipient and expiry.
//	@Tags			Governance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProposalRequestDTO	true	"Proposal body"
//	@Success		200		{object}	dto.CreateProposalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid proposal arguments"
//	@Failure		401		{object}	utils.Response	"Account not authorized"
//	@Failure		412		{object}	utils.Response	"Caller not eligible"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/governance/proposals [post]
func (h *GovernanceHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateProposalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	kind := domain.ProposalKind(req.Kind)
	if kind != domain.ProposalGeneral && kind != domain.ProposalTreasury {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid proposal kind")
		return
	}

	created, err := h.governanceService.CreateProposal(r.Context(), userID, req.Title, req.Description, kind, req.Amount, req.Recipient)
	if err != nil {
		switch {
		case errors.Is(err, governanceservice.ErrInvalidProposal):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, governanceservice.ErrNotEligible):
			utils.RespondWithError(w, http.StatusPreconditionFailed, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateProposalResponseDTO{ProposalID: created.ID})
}

// Vote godoc
//
//	@Summary		Vote on a proposal
//	@Description	Record one ballot on the proposal's current round and credit the participation reward.
//	@Tags			Governance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Proposal id"
//	@Param			request	body		dto.VoteRequestDTO	true	"Ballot"
//	@Success		200		{object}	dto.VoteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid ballot"
//	@Failure		401		{object}	utils.Response	"Account not authorized"
//	@Failure		404		{object}	utils.Response	"Proposal not found"
//	@Failure		409		{object}	utils.Response	"Already voted in this round"
//	@Failure		412		{object}	utils.Response	"Caller not eligible or wrong phase"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/governance/proposals/{id}/vote [post]
func (h *GovernanceHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	proposalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid proposal id")
		return
	}
	var req dto.VoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	choice := domain.VoteChoice(req.Choice)
	if choice != domain.VoteFor && choice != domain.VoteAgainst {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vote choice")
		return
	}

	err = h.governanceService.Vote(r.Context(), userID, proposalID, choice)
	if err != nil {
		switch {
		case errors.Is(err, governanceservice.ErrProposalNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, governanceservice.ErrAlreadyVoted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, governanceservice.ErrNotEligible), errors.Is(err, governanceservice.ErrWrongPhase):
			utils.RespondWithError(w, http.StatusPreconditionFailed, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VoteResponseDTO{Message: "Vote recorded"})
}

// GetProposal godoc
//
//	@Summary		Get one proposal
//	@Tags			Governance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Proposal id"
//	@Success		200	{object}	dto.ProposalResponseDTO
//	@Failure		404	{object}	utils.Response	"Proposal not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/governance/proposals/{id} [get]
func (h *GovernanceHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	proposalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid proposal id")
		return
	}

	p, err := h.governanceService.GetProposal(r.Context(), proposalID)
	if err != nil {
		if errors.Is(err, governanceservice.ErrProposalNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProposalDTO(*p))
}

// ListProposals godoc
//
//	@Summary		List proposals
//	@Tags			Governance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ProposalResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/governance/proposals [get]
func (h *GovernanceHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.governanceService.ListProposals(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.ProposalResponseDTO, 0, len(proposals))
	for _, p := range proposals {
		resp = append(resp, toProposalDTO(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Leaderboard godoc
//
//	@Summary		Get the contribution leaderboard
//	@Description	Retrieve the cached top contributor list and its total voting power.
//	@Tags			Governance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LeaderboardResponseDTO
//	@Success		204	{string}	string			"No snapshot yet"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/governance/leaderboard [get]
func (h *GovernanceHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.governanceService.Leaderboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if snapshot == nil {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(snapshot.Entries))
	for _, e := range snapshot.Entries {
		entries = append(entries, dto.LeaderboardEntryDTO{Address: e.Address, Amount: e.Amount})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LeaderboardResponseDTO{
		Entries:    entries,
		TotalPower: snapshot.TotalPower,
		UpdatedAt:  snapshot.UpdatedAt,
	})
}

func toProposalDTO(p domain.Proposal) dto.ProposalResponseDTO {
	return dto.ProposalResponseDTO{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Kind:          string(p.Kind),
		Status:        string(p.Status),
		Round1For:     p.Round1For,
		Round1Against: p.Round1Against,
		Round2For:     p.Round2For,
		Round2Against: p.Round2Against,
		Amount:        p.Amount,
		Recipient:     p.Recipient,
		ExpiresAt:     p.ExpiresAt,
		CreatedAt:     p.CreatedAt,
	}
}
