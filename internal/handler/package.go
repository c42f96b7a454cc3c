package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/monu322/travel-agency-app/internal/domain"
)

// ListPackages handles GET /api/v1/packages.
// Supports ?status=, ?featured=, ?limit= (default 50, max 100), and ?offset=.
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	var filter domain.PackageFilter

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.Status(raw)
		if !status.Valid() {
			respondBadRequest(w, fmt.Sprintf("invalid status %q", raw))
			return
		}
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			respondBadRequest(w, "featured must be a boolean")
			return
		}
		filter.Featured = &featured
	}

	limit, err := intQueryParam(r, "limit")
	if err != nil {
		respondBadRequest(w, "limit must be an integer")
		return
	}
	offset, err := intQueryParam(r, "offset")
	if err != nil {
		respondBadRequest(w, "offset must be an integer")
		return
	}

	summaries, err := s.packages.List(r.Context(), filter, domain.NewListParams(limit, offset))
	if err != nil {
		respondInternal(w)
		return
	}

	data := make([]packageSummaryResponse, len(summaries))
	for i, sum := range summaries {
		data[i] = summaryToResponse(sum)
	}
	respondJSON(w, http.StatusOK, data)
}

// GetPackage handles GET /api/v1/packages/{packageID}.
func (s *Server) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "packageID")
	if !ok {
		return
	}

	pkg, err := s.packages.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "package not found")
			return
		}
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, packageToResponse(pkg))
}

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req createPackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	created, err := s.packages.Create(r.Context(), requestToPackage(req))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondBadRequest(w, unwrapMessage(err))
			return
		}
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusCreated, packageToResponse(created))
}

// UpdatePackage handles PUT /api/v1/packages/{packageID}.
func (s *Server) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "packageID")
	if !ok {
		return
	}

	var req updatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	update, err := requestToPackageUpdate(req)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	updated, err := s.packages.Update(r.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondNotFound(w, "package not found")
		case errors.Is(err, domain.ErrNoFields):
			respondBadRequest(w, "no fields to update")
		case errors.Is(err, domain.ErrValidation):
			respondBadRequest(w, unwrapMessage(err))
		default:
			respondInternal(w)
		}
		return
	}

	respondJSON(w, http.StatusOK, packageToResponse(updated))
}

// DeletePackage handles DELETE /api/v1/packages/{packageID}.
// Deletion is a soft delete: the package status transitions to archived.
func (s *Server) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "packageID")
	if !ok {
		return
	}

	if err := s.packages.Archive(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w, "package not found")
			return
		}
		respondInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- request/response shapes ------------------------------------------------

// createPackageRequest is the POST body. Optional scalar fields are pointers
// so that absent values can fall back to their defaults (max_guests 20,
// status draft). Dates use the date-only "2006-01-02" wire form.
type createPackageRequest struct {
	Title        string                   `json:"title"`
	Description  *string                  `json:"description"`
	DurationDays int                      `json:"duration_days"`
	Price        float64                  `json:"price"`
	MaxGuests    *int                     `json:"max_guests"`
	Status       *string                  `json:"status"`
	CoverImage   *string                  `json:"cover_image"`
	StartDate    *openapi_types.Date      `json:"start_date"`
	EndDate      *openapi_types.Date      `json:"end_date"`
	Location     *string                  `json:"location"`
	IsFeatured   *bool                    `json:"is_featured"`
	Itinerary    []itineraryCreateRequest `json:"itinerary"`
	Images       []imageCreateRequest     `json:"images"`
}

// updatePackageRequest is the PUT body. Every field is optional; only
// provided fields are applied.
type updatePackageRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	DurationDays *int                `json:"duration_days"`
	Price        *float64            `json:"price"`
	MaxGuests    *int                `json:"max_guests"`
	Status       *string             `json:"status"`
	CoverImage   *string             `json:"cover_image"`
	StartDate    *openapi_types.Date `json:"start_date"`
	EndDate      *openapi_types.Date `json:"end_date"`
	Location     *string             `json:"location"`
	IsFeatured   *bool               `json:"is_featured"`
}

type packageResponse struct {
	ID           uuid.UUID                `json:"id"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	DurationDays int                      `json:"duration_days"`
	Price        float64                  `json:"price"`
	MaxGuests    int                      `json:"max_guests"`
	Status       string                   `json:"status"`
	CoverImage   string                   `json:"cover_image"`
	StartDate    *openapi_types.Date      `json:"start_date"`
	EndDate      *openapi_types.Date      `json:"end_date"`
	Location     string                   `json:"location"`
	IsFeatured   bool                     `json:"is_featured"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	Itinerary    []itineraryResponse      `json:"itinerary"`
	Images       []imageResponse          `json:"images"`
}

type packageSummaryResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	DurationDays int                 `json:"duration_days"`
	Price        float64             `json:"price"`
	Status       string              `json:"status"`
	CoverImage   string              `json:"cover_image"`
	StartDate    *openapi_types.Date `json:"start_date"`
	EndDate      *openapi_types.Date `json:"end_date"`
	Location     string              `json:"location"`
	IsFeatured   bool                `json:"is_featured"`
}

// --- mapping helpers --------------------------------------------------------

// requestToPackage converts a create body into a domain.Package, applying
// the documented defaults for absent optional fields. Validation beyond
// shape (bounds, enum membership) belongs to the service.
func requestToPackage(req createPackageRequest) domain.Package {
	pkg := domain.Package{
		Title:        req.Title,
		DurationDays: req.DurationDays,
		Price:        req.Price,
		MaxGuests:    20,
		Status:       domain.StatusDraft,
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.MaxGuests != nil {
		pkg.MaxGuests = *req.MaxGuests
	}
	if req.Status != nil {
		pkg.Status = domain.Status(*req.Status)
	}
	if req.CoverImage != nil {
		pkg.CoverImage = *req.CoverImage
	}
	if req.StartDate != nil {
		sd := req.StartDate.Time
		pkg.StartDate = &sd
	}
	if req.EndDate != nil {
		ed := req.EndDate.Time
		pkg.EndDate = &ed
	}
	if req.Location != nil {
		pkg.Location = *req.Location
	}
	if req.IsFeatured != nil {
		pkg.IsFeatured = *req.IsFeatured
	}
	for _, item := range req.Itinerary {
		pkg.Itinerary = append(pkg.Itinerary, requestToItineraryItem(item))
	}
	for _, img := range req.Images {
		pkg.Images = append(pkg.Images, requestToImage(img))
	}
	return pkg
}

// requestToPackageUpdate converts an update body into a domain.PackageUpdate,
// preserving the provided/absent distinction field by field.
func requestToPackageUpdate(req updatePackageRequest) (domain.PackageUpdate, error) {
	u := domain.PackageUpdate{
		Title:        req.Title,
		Description:  req.Description,
		DurationDays: req.DurationDays,
		Price:        req.Price,
		MaxGuests:    req.MaxGuests,
		CoverImage:   req.CoverImage,
		Location:     req.Location,
		IsFeatured:   req.IsFeatured,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		u.Status = &status
	}
	if req.StartDate != nil {
		sd := req.StartDate.Time
		u.StartDate = &sd
	}
	if req.EndDate != nil {
		ed := req.EndDate.Time
		u.EndDate = &ed
	}
	return u, nil
}

// packageToResponse converts a composed domain.Package into the response shape.
func packageToResponse(pkg domain.Package) packageResponse {
	resp := packageResponse{
		ID:           pkg.ID,
		Title:        pkg.Title,
		Description:  pkg.Description,
		DurationDays: pkg.DurationDays,
		Price:        pkg.Price,
		MaxGuests:    pkg.MaxGuests,
		Status:       string(pkg.Status),
		CoverImage:   pkg.CoverImage,
		StartDate:    dateOrNil(pkg.StartDate),
		EndDate:      dateOrNil(pkg.EndDate),
		Location:     pkg.Location,
		IsFeatured:   pkg.IsFeatured,
		CreatedAt:    pkg.CreatedAt,
		UpdatedAt:    pkg.UpdatedAt,
		Itinerary:    []itineraryResponse{},
		Images:       []imageResponse{},
	}
	for _, item := range pkg.Itinerary {
		resp.Itinerary = append(resp.Itinerary, itineraryToResponse(item))
	}
	for _, img := range pkg.Images {
		resp.Images = append(resp.Images, imageToResponse(img))
	}
	return resp
}

func summaryToResponse(sum domain.PackageSummary) packageSummaryResponse {
	return packageSummaryResponse{
		ID:           sum.ID,
		Title:        sum.Title,
		DurationDays: sum.DurationDays,
		Price:        sum.Price,
		Status:       string(sum.Status),
		CoverImage:   sum.CoverImage,
		StartDate:    dateOrNil(sum.StartDate),
		EndDate:      dateOrNil(sum.EndDate),
		Location:     sum.Location,
		IsFeatured:   sum.IsFeatured,
	}
}

// dateOrNil wraps a *time.Time into the date-only wire type, keeping nil as nil.
func dateOrNil(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

// uuidParam parses the named chi URL parameter as a UUID.
// On failure it writes a 400 response and returns ok=false.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondBadRequest(w, fmt.Sprintf("invalid %s", name))
		return uuid.UUID{}, false
	}
	return id, true
}

// intQueryParam parses an optional integer query parameter.
// Returns nil when the parameter is absent.
func intQueryParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
