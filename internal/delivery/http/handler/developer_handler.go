package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"developer-service/internal/delivery/dto"
	"developer-service/internal/usecase"
	"developer-service/pkg/response"
	"developer-service/pkg/validator"

	"github.com/gorilla/mux"
)

const (
	msgDeveloperNotFound = "Developer not found"
	msgDuplicateEmail    = "Developer with defined email already exists"
)

type DeveloperHandler struct {
	developerUsecase usecase.DeveloperUsecase
	validator        *validator.CustomValidator
}

func NewDeveloperHandler(developerUsecase usecase.DeveloperUsecase, validator *validator.CustomValidator) *DeveloperHandler {
	return &DeveloperHandler{
		developerUsecase: developerUsecase,
		validator:        validator,
	}
}

// CreateDeveloper handles developer creation
// @Summary Create a new developer
// @Tags Developers
// @Accept json
// @Produce json
// @Param request body dto.CreateDeveloperRequest true "Create Developer Request"
// @Success 200 {object} dto.DeveloperResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /developers [post]
func (h *DeveloperHandler) CreateDeveloper(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDeveloperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	developer, err := h.developerUsecase.CreateDeveloper(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDeveloperEmailExists):
			response.BadRequest(w, msgDuplicateEmail)
		default:
			response.InternalServerError(w, "Failed to create developer")
		}
		return
	}

	response.OK(w, developer)
}

// UpdateDeveloper handles developer update; the id travels in the body
// @Summary Update a developer
// @Tags Developers
// @Accept json
// @Produce json
// @Param request body dto.UpdateDeveloperRequest true "Update Developer Request"
// @Success 200 {object} dto.DeveloperResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /developers [put]
func (h *DeveloperHandler) UpdateDeveloper(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDeveloperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	developer, err := h.developerUsecase.UpdateDeveloper(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDeveloperNotFound):
			response.BadRequest(w, msgDeveloperNotFound)
		case errors.Is(err, usecase.ErrDeveloperEmailExists):
			response.BadRequest(w, msgDuplicateEmail)
		default:
			response.InternalServerError(w, "Failed to update developer")
		}
		return
	}

	response.OK(w, developer)
}

// GetDeveloperByID handles getting a developer by ID
// @Summary Get developer by ID
// @Tags Developers
// @Produce json
// @Param id path int true "Developer ID"
// @Success 200 {object} dto.DeveloperResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /developers/{id} [get]
func (h *DeveloperHandler) GetDeveloperByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseDeveloperID(w, r)
	if !ok {
		return
	}

	developer, err := h.developerUsecase.GetDeveloperByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrDeveloperNotFound) {
			response.NotFound(w, msgDeveloperNotFound)
			return
		}
		response.InternalServerError(w, "Failed to get developer")
		return
	}

	response.OK(w, developer)
}

func (h *DeveloperHandler) GetDeveloperByEmail(w http.ResponseWriter, r *http.Request) {
	developer, err := h.developerUsecase.GetDeveloperByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		if errors.Is(err, usecase.ErrDeveloperNotFound) {
			response.NotFound(w, msgDeveloperNotFound)
			return
		}
		response.InternalServerError(w, "Failed to get developer")
		return
	}

	response.OK(w, developer)
}

// GetAllDevelopers handles listing every ACTIVE developer
// @Summary List active developers
// @Tags Developers
// @Produce json
// @Success 200 {array} dto.DeveloperResponse
// @Router /developers [get]
func (h *DeveloperHandler) GetAllDevelopers(w http.ResponseWriter, r *http.Request) {
	developers, err := h.developerUsecase.GetAllActiveDevelopers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get developers")
		return
	}

	response.OK(w, developers)
}

// GetAllDevelopersBySpecialty handles listing ACTIVE developers of one specialty
// @Summary List active developers by specialty
// @Tags Developers
// @Produce json
// @Param specialty path string true "Specialty"
// @Success 200 {array} dto.DeveloperResponse
// @Router /developers/specialty/{specialty} [get]
func (h *DeveloperHandler) GetAllDevelopersBySpecialty(w http.ResponseWriter, r *http.Request) {
	developers, err := h.developerUsecase.GetAllActiveBySpecialty(r.Context(), mux.Vars(r)["specialty"])
	if err != nil {
		response.InternalServerError(w, "Failed to get developers")
		return
	}

	response.OK(w, developers)
}

// DeleteDeveloper handles soft (default) and hard deletion
// @Summary Delete a developer
// @Tags Developers
// @Param id path int true "Developer ID"
// @Param isHard query bool false "Remove the row permanently" default(false)
// @Success 200
// @Failure 400 {object} response.ErrorResponse
// @Router /developers/{id} [delete]
func (h *DeveloperHandler) DeleteDeveloper(w http.ResponseWriter, r *http.Request) {
	id, ok := parseDeveloperID(w, r)
	if !ok {
		return
	}

	isHard := false
	if raw := r.URL.Query().Get("isHard"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "Invalid isHard parameter")
			return
		}
		isHard = parsed
	}

	var err error
	if isHard {
		err = h.developerUsecase.HardDeleteByID(r.Context(), id)
	} else {
		err = h.developerUsecase.SoftDeleteByID(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, usecase.ErrDeveloperNotFound) {
			response.BadRequest(w, msgDeveloperNotFound)
			return
		}
		response.InternalServerError(w, "Failed to delete developer")
		return
	}

	response.Empty(w)
}

// parseDeveloperID accepts positive ids that fit the int4 primary key.
func parseDeveloperID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id < 1 {
		response.BadRequest(w, "Invalid developer ID")
		return 0, false
	}
	return int(id), true
}
