package handler

import (
	"net/http"

	"github.com/fuzball1989/job-posting-portal/internal/middleware"
	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/service"
)

// JobHandler handles job posting endpoints
type JobHandler struct {
	jobService *service.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// JobRouteGuards are the middlewares protecting job routes.
type JobRouteGuards struct {
	Optional middleware.Middleware
	Employer middleware.Middleware
}

// RegisterRoutes registers the job endpoints on mux
func (h *JobHandler) RegisterRoutes(mux *http.ServeMux, guards JobRouteGuards) {
	public := func(f http.HandlerFunc) http.Handler { return guards.Optional(f) }
	employer := func(f http.HandlerFunc) http.Handler { return guards.Employer(f) }

	mux.Handle("GET /v1/jobs", public(h.Search))
	mux.Handle("GET /v1/jobs/search", public(h.Search))
	mux.Handle("GET /v1/jobs/{id}", public(h.Get))
	mux.Handle("GET /v1/companies/{companySlug}/jobs/{jobSlug}", public(h.GetBySlug))

	mux.Handle("GET /v1/me/jobs", employer(h.ListMine))
	mux.Handle("POST /v1/jobs", employer(h.Create))
	mux.Handle("PUT /v1/jobs/{id}", employer(h.Update))
	mux.Handle("PATCH /v1/jobs/{id}", employer(h.Update))
	mux.Handle("DELETE /v1/jobs/{id}", employer(h.Delete))
}

// Search handles GET /v1/jobs
func (h *JobHandler) Search(w http.ResponseWriter, r *http.Request) {
	params, errs := parseSearchParams(r.URL.Query())
	if len(errs) > 0 {
		WriteValidation(w, errs)
		return
	}

	result, err := h.jobService.SearchJobs(r.Context(), params)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteCollection(w, http.StatusOK, result.Jobs, &result.Pagination)
}

// Get handles GET /v1/jobs/{id}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.GetJobByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, job)
}

// GetBySlug handles GET /v1/companies/{companySlug}/jobs/{jobSlug}
func (h *JobHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.GetJobBySlug(r.Context(), r.PathValue("companySlug"), r.PathValue("jobSlug"))
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, job)
}

// ListMine handles GET /v1/me/jobs
func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var errs queryErrors
	page, limit := parsePage(r.URL.Query(), &errs)
	if len(errs) > 0 {
		WriteValidation(w, errs)
		return
	}

	result, err := h.jobService.ListUserJobs(r.Context(), userID, page, limit)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteCollection(w, http.StatusOK, result.Jobs, &result.Pagination)
}

// Create handles POST /v1/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req model.CreateJobRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidation(w, errs)
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), userID, req)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/v1/jobs/"+job.ID)
	WriteData(w, http.StatusCreated, job)
}

// Update handles PUT and PATCH /v1/jobs/{id}. Both apply a partial update.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req model.UpdateJobRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteValidation(w, errs)
		return
	}

	job, err := h.jobService.UpdateJob(r.Context(), r.PathValue("id"), userID, req)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteData(w, http.StatusOK, job)
}

// Delete handles DELETE /v1/jobs/{id}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(r.Context(), r.PathValue("id"), userID); err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteNoContent(w)
}
