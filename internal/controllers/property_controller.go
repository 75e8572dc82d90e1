package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/dtos"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/services"
	"github.com/NEHAKIRANNAYAK/WeRent-Homes/internal/utils"
)

var propValidate = validator.New()

// PropertyController covers the agent inventory routes, the category
// vocabulary and the renter search.
type PropertyController struct {
	properties *services.PropertyService
}

func NewPropertyController(properties *services.PropertyService) *PropertyController {
	return &PropertyController{properties: properties}
}

// GET /api/v1/agent/properties
func (c *PropertyController) ListOwned(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}

	props, err := c.properties.ListOwned(r.Context(), sess.ActorID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list properties", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.PropertyListResponse{Properties: props})
}

// POST /api/v1/agent/properties
func (c *PropertyController) Create(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}

	var req dtos.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", err)
		return
	}
	if err := propValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid property fields", err)
		return
	}

	propID, err := c.properties.Create(r.Context(), sess.ActorID, req)
	if err != nil {
		if errors.Is(err, utils.ErrUnknownCategory) {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeUnknownCategory, "Invalid category")
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create property", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreatePropertyResponse{PropID: propID})
}

// DELETE /api/v1/agent/properties/{prop_id}
func (c *PropertyController) Delete(w http.ResponseWriter, r *http.Request) {
	sess := sessionOr401(w, r)
	if sess == nil {
		return
	}
	propID, ok := pathID(r, "prop_id")
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid property id")
		return
	}

	if err := c.properties.Delete(r.Context(), propID, sess.ActorID); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete property", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/categories
func (c *PropertyController) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := c.properties.Categories(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list categories", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.CategoryListResponse{Categories: cats})
}

// GET /api/v1/properties/search
func (c *PropertyController) Search(w http.ResponseWriter, r *http.Request) {
	if sessionOr401(w, r) == nil {
		return
	}

	query, err := parseSearchQuery(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid search filters", err)
		return
	}
	if err := propValidate.Struct(query); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid search filters", err)
		return
	}

	props, err := c.properties.Search(r.Context(), *query)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Search failed", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.PropertyListResponse{Properties: props})
}

// parseSearchQuery reads the optional filters off the query string;
// absent or empty parameters stay nil and impose no constraint.
func parseSearchQuery(r *http.Request) (*dtos.SearchPropertiesQuery, error) {
	q := r.URL.Query()
	out := dtos.SearchPropertiesQuery{SortBy: q.Get("sort_by")}

	if v := q.Get("city"); v != "" {
		out.City = &v
	}
	if v := q.Get("category"); v != "" {
		out.Category = &v
	}
	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		out.MinPrice = &f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		out.MaxPrice = &f
	}
	if v := q.Get("rooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		out.Rooms = &n
	}
	return &out, nil
}
