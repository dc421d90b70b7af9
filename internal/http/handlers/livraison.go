package handlers

import (
	"errors"
	"net/http"

	"service-livraison/internal/apperr"
	"service-livraison/internal/domain"
	"service-livraison/internal/logx"
)

// LivraisonHandler handles HTTP requests for the delivery lifecycle.
type LivraisonHandler struct {
	usecase livraisonUsecase
	logger  logx.Logger
}

// NewLivraisonHandler creates a new LivraisonHandler.
func NewLivraisonHandler(logger logx.Logger, uc livraisonUsecase) *LivraisonHandler {
	return &LivraisonHandler{usecase: uc, logger: logger}
}

// Claim handles POST /livraison/claim.
// @Summary Claim an order
// @Description Assigns the order to a driver and creates the delivery record
// @Tags livraison
// @Accept json
// @Produce json
// @Param request body claimRequest true "Claim payload"
// @Success 201 {object} claimResponse
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 409 {object} ErrorResponse "order already claimed"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /livraison/claim [post]
func (h *LivraisonHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	deliveryID, err := h.usecase.Claim(r.Context(), req.CommandeID, driverFromDTO(req.Livreur))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusCreated, claimResponse{
			CommandeID:  req.CommandeID,
			LivraisonID: deliveryID,
			Status:      domain.DeliveryEnCours,
		})
	case errors.Is(err, apperr.ErrInvalid), errors.Is(err, domain.ErrInvalidDriver):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrAlreadyClaimed):
		writeError(h.logger, w, r, http.StatusConflict, "order already claimed")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Outcome handles POST /livraison/outcome.
// @Summary Submit a delivery outcome
// @Description Marks the delivery as delivered or failed and opens the undo window
// @Tags livraison
// @Accept json
// @Produce json
// @Param request body outcomeRequest true "Outcome payload"
// @Success 200 {object} outcomeResponse
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 404 {object} ErrorResponse "order not claimed"
// @Failure 409 {object} ErrorResponse "invalid status transition"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /livraison/outcome [post]
func (h *LivraisonHandler) Outcome(w http.ResponseWriter, r *http.Request) {
	var req outcomeRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	est, err := h.usecase.SubmitOutcome(r.Context(), req.CommandeID, domain.Outcome{
		Status: req.Status,
		Photo:  req.Photo,
		Reason: req.Raison,
	})
	switch {
	case err == nil:
		resp := outcomeResponse{
			CommandeID: req.CommandeID,
			Status:     req.Status,
		}
		if est != nil {
			kg := est.CarbonKg
			resp.CarbonFootprint = &kg
			resp.CarbonEstime = est.Unreliable
		}
		writeJSON(h.logger, w, r, http.StatusOK, resp)
	case errors.Is(err, apperr.ErrInvalid), errors.Is(err, domain.ErrInvalidOutcome):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotClaimed):
		writeError(h.logger, w, r, http.StatusNotFound, "order not claimed")
	case errors.Is(err, apperr.ErrInvalidTransition):
		writeError(h.logger, w, r, http.StatusConflict, "invalid status transition")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Cancel handles POST /livraison/cancel.
// @Summary Cancel a submitted outcome
// @Description Reverts the delivery to in-progress while the undo window is open
// @Tags livraison
// @Accept json
// @Produce json
// @Param request body cancelRequest true "Cancel payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 404 {object} ErrorResponse "order not claimed"
// @Failure 409 {object} ErrorResponse "no undo window open"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /livraison/cancel [post]
func (h *LivraisonHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err := h.usecase.CancelOutcome(r.Context(), req.CommandeID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
			"commandeId":      req.CommandeID,
			"statusLivraison": domain.DeliveryEnCours,
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotClaimed):
		writeError(h.logger, w, r, http.StatusNotFound, "order not claimed")
	case errors.Is(err, apperr.ErrInvalidTransition):
		writeError(h.logger, w, r, http.StatusConflict, "no undo window open")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Pending handles GET /livraison/pending.
// @Summary List pending orders
// @Description Returns the driver-facing pending view with undo countdowns
// @Tags livraison
// @Produce json
// @Success 200 {array} pendingOrderDTO
// @Router /livraison/pending [get]
func (h *LivraisonHandler) Pending(w http.ResponseWriter, r *http.Request) {
	pending := h.usecase.PendingOrders()

	out := make([]pendingOrderDTO, 0, len(pending))
	for _, p := range pending {
		out = append(out, pendingToDTO(p))
	}
	writeJSON(h.logger, w, r, http.StatusOK, out)
}
