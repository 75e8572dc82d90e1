package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/dtos"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/services"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

var cardValidate = validator.New()

type CardController struct {
	cards *services.CardService
}

func NewCardController(cards *services.CardService) *CardController {
	return &CardController{cards: cards}
}

// GET /api/v1/renter/cards
func (c *CardController) List(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}

	cards, err := c.cards.List(r.Context(), sess.ActorID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list cards", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.CardListResponse{Cards: cards})
}

// POST /api/v1/renter/cards
func (c *CardController) Add(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}

	var req dtos.AddCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := cardValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid card fields", err)
		return
	}

	cardID, err := c.cards.Add(r.Context(), sess.ActorID, req)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to add card", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.AddCardResponse{CardID: cardID})
}

// DELETE /api/v1/renter/cards/{card_id}
func (c *CardController) Delete(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}
	cardID, ok := pathID(r, "card_id")
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid card id")
		return
	}

	if err := c.cards.Delete(r.Context(), cardID, sess.ActorID); err != nil {
		if errors.Is(err, utils.ErrCardInUse) {
			utils.RespondErrorWithCode(
				w, http.StatusConflict, utils.ErrCodeCardInUse,
				"Cannot delete a card that has bookings associated with it",
			)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete card", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DeleteCardResponse{Message: "Card deleted"})
}
