package supply

import (
	"context"
	"fmt"
	"net/http"

	"github.com/phoenixdao/phxledger/pkg/utils"
)

type Service interface {
	CirculatingSupply(ctx context.Context) (float64, error)
	TotalSupply(ctx context.Context) (float64, error)
}

type SupplyHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *SupplyHandler {
	return &SupplyHandler{
		ledgerService: ledgerService,
	}
}

// Supply figures are consumed by external aggregators that expect a bare
// 7-decimal number as text/plain, not a JSON envelope.
func respondSupply(w http.ResponseWriter, amount float64) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%.7f", amount)
}

// Circulating godoc
//
//	@Summary		Get circulating supply
//	@Description	Sum of every final amount ever paid out through approved withdrawals, as a plain 7-decimal number.
//	@Tags			Supply
//	@Produce		plain
//	@Success		200	{string}	string			"37.0000000"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/supply/circulating [get]
func (h *SupplyHandler) Circulating(w http.ResponseWriter, r *http.Request) {
	amount, err := h.ledgerService.CirculatingSupply(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondSupply(w, amount)
}

// Total godoc
//
//	@Summary		Get total internal supply
//	@Description	Sum of all withdrawable balances held on the ledger, as a plain 7-decimal number.
//	@Tags			Supply
//	@Produce		plain
//	@Success		200	{string}	string			"100500.0000000"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/supply/total [get]
func (h *SupplyHandler) Total(w http.ResponseWriter, r *http.Request) {
	amount, err := h.ledgerService.TotalSupply(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondSupply(w, amount)
}
