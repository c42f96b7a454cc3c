package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/monu322/travel-agency-app/internal/domain"
)

// AddPackageImage handles POST /api/v1/packages/{packageID}/images.
func (s *Server) AddPackageImage(w http.ResponseWriter, r *http.Request) {
	packageID, ok := uuidParam(w, r, "packageID")
	if !ok {
		return
	}

	var req imageCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.packages.AddImage(r.Context(), packageID, requestToImage(req))
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

	respondJSON(w, http.StatusCreated, imageToResponse(created))
}

// DeletePackageImage handles DELETE /api/v1/packages/{packageID}/images/{imageID}.
// Always returns 204 — deleting an image that does not exist is a no-op.
func (s *Server) DeletePackageImage(w http.ResponseWriter, r *http.Request) {
	packageID, ok := uuidParam(w, r, "packageID")
	if !ok {
		return
	}
	imageID, ok := uuidParam(w, r, "imageID")
	if !ok {
		return
	}

	if err := s.packages.RemoveImage(r.Context(), packageID, imageID); err != nil {
		respondInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- request/response shapes ------------------------------------------------

type imageCreateRequest struct {
	ImageURL     string  `json:"image_url"`
	Caption      *string `json:"caption"`
	DisplayOrder int     `json:"display_order"`
}

type imageResponse struct {
	ID           uuid.UUID `json:"id"`
	PackageID    uuid.UUID `json:"package_id"`
	ImageURL     string    `json:"image_url"`
	Caption      string    `json:"caption"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func requestToImage(req imageCreateRequest) domain.PackageImage {
	img := domain.PackageImage{
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}
	if req.Caption != nil {
		img.Caption = *req.Caption
	}
	return img
}

func imageToResponse(img domain.PackageImage) imageResponse {
	return imageResponse{
		ID:           img.ID,
		PackageID:    img.PackageID,
		ImageURL:     img.ImageURL,
		Caption:      img.Caption,
		DisplayOrder: img.DisplayOrder,
		CreatedAt:    img.CreatedAt,
	}
}
