package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gorm.io/datatypes"

	"github.com/Leganyst/labor-platform/internal/listing"
	"github.com/Leganyst/labor-platform/internal/middleware"
	"github.com/Leganyst/labor-platform/internal/model"
	"github.com/Leganyst/labor-platform/internal/service"
)

type JobRequestHandler struct {
	jobs   *service.JobRequestService
	authMW fiber.Handler
}

func NewJobRequestHandler(jobs *service.JobRequestService, authMW fiber.Handler) *JobRequestHandler {
	return &JobRequestHandler{jobs: jobs, authMW: authMW}
}

func (h *JobRequestHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/job-requests", h.authMW, h.Create)
	app.Get("/job-requests", h.List)
	app.Get("/job-requests/mine", h.authMW, h.ListMine)
	app.Get("/job-requests/:id", h.Get)
}

type createJobRequestRequest struct {
	Title    string `json:"title"`
	Location string `json:"location"`
	JobType  string `json:"job_type"`

	Duration string          `json:"duration"`
	Budget   string          `json:"budget"`
	Deadline *datatypes.Date `json:"deadline"`

	StartDate    *datatypes.Date `json:"start_date"`
	StartTime    string          `json:"start_time"`
	HoursPerDay  int             `json:"hours_per_day"`
	NumberOfDays int             `json:"number_of_days"`

	Workers    int                 `json:"workers"`
	Categories []model.JobCategory `json:"categories"`

	Description string `json:"description"`
	ContactInfo string `json:"contact_info"`
}

func (h *JobRequestHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}

	var req createJobRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	job, err := h.jobs.Create(c.Context(), service.CreateJobRequestInput{
		Title:        req.Title,
		Location:     req.Location,
		JobType:      req.JobType,
		Duration:     req.Duration,
		Budget:       req.Budget,
		Deadline:     req.Deadline,
		StartDate:    req.StartDate,
		StartTime:    req.StartTime,
		HoursPerDay:  req.HoursPerDay,
		NumberOfDays: req.NumberOfDays,
		Workers:      req.Workers,
		Categories:   req.Categories,
		Description:  req.Description,
		ContactInfo:  req.ContactInfo,
		UserID:       userID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, "job request created", job)
}

// List отдаёт страницу заявок с опциональными фильтрами
// ?job_type=&location=&search=&page=&page_size=.
func (h *JobRequestHandler) List(c *fiber.Ctx) error {
	views, err := h.jobs.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	opts := listing.FilterOptions{
		JobType:  c.Query("job_type"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
	}
	// Фильтруем декорированные записи по вложенной заявке.
	filtered := make([]service.JobRequestView, 0, len(views))
	for _, v := range views {
		if listing.Matches(v.JobRequest, opts) {
			filtered = append(filtered, v)
		}
	}

	page := listing.Paginate(filtered, c.QueryInt("page", 1), c.QueryInt("page_size", 10))
	return respond(c, fiber.StatusOK, "", fiber.Map{
		"items":     page.Items,
		"page":      page.Page,
		"page_size": page.PageSize,
		"total":     page.Total,
		"has_next":  page.HasNext,
		"has_prev":  page.HasPrev,
	})
}

func (h *JobRequestHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}

	views, err := h.jobs.ListByUser(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", views)
}

func (h *JobRequestHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	job, err := h.jobs.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", job)
}
