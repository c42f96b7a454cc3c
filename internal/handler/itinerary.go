package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/monu322/travel-agency-app/internal/domain"
)

// AddItineraryItem handles POST /api/v1/packages/{packageID}/itinerary.
func (s *Server) AddItineraryItem(w http.ResponseWriter, r *http.Request) {
	packageID, ok := uuidParam(w, r, "packageID")
	if !ok {
		return
	}

	var req itineraryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.packages.AddItineraryItem(r.Context(), packageID, requestToItineraryItem(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondNotFound(w, "package not found")
		case errors.Is(err, domain.ErrValidation):
			respondBadRequest(w, unwrapMessage(err))
		default:
			respondInternal(w)
		}
		return
	}

	respondJSON(w, http.StatusCreated, itineraryToResponse(created))
}

// DeleteItineraryItem handles DELETE /api/v1/packages/{packageID}/itinerary/{itineraryID}.
// Always returns 204 — deleting an item that does not exist is a no-op.
func (s *Server) DeleteItineraryItem(w http.ResponseWriter, r *http.Request) {
	packageID, ok := uuidParam(w, r, "packageID")
	if !ok {
		return
	}
	itemID, ok := uuidParam(w, r, "itineraryID")
	if !ok {
		return
	}

	if err := s.packages.RemoveItineraryItem(r.Context(), packageID, itemID); err != nil {
		respondInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- request/response shapes ------------------------------------------------

type itineraryCreateRequest struct {
	DayNumber   int     `json:"day_number"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type itineraryResponse struct {
	ID          uuid.UUID `json:"id"`
	PackageID   uuid.UUID `json:"package_id"`
	DayNumber   int       `json:"day_number"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func requestToItineraryItem(req itineraryCreateRequest) domain.ItineraryItem {
	item := domain.ItineraryItem{
		DayNumber: req.DayNumber,
		Title:     req.Title,
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	return item
}

func itineraryToResponse(item domain.ItineraryItem) itineraryResponse {
	return itineraryResponse{
		ID:          item.ID,
		PackageID:   item.PackageID,
		DayNumber:   item.DayNumber,
		Title:       item.Title,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
