package hr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/platform/httpx"
)

// Handler wires staff, attendance and payroll endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers HR routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/employees", h.listEmployees)
	r.Post("/employees", h.createEmployee)

	r.Get("/attendance", h.listAttendance)
	r.Post("/attendance/check-in", h.checkIn)
	r.Post("/attendance/check-out", h.checkOut)

	r.Get("/payroll", h.listPayroll)
	r.Post("/payroll", h.runPayroll)
}

type createEmployeeRequest struct {
	Name       string  `json:"name" validate:"required,max=200"`
	Position   string  `json:"position" validate:"required,max=200"`
	Department string  `json:"department" validate:"required,max=200"`
	HourlyRate float64 `json:"hourly_rate" validate:"gt=0"`
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	emp, err := h.service.AddEmployee(NewEmployeeInput{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		HourlyRate: decimal.NewFromFloat(req.HourlyRate),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, emp)
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListEmployees())
}

type attendanceRequest struct {
	EmployeeName string `json:"employee_name" validate:"required,max=200"`
	At           string `json:"at" validate:"required,datetime=15:04"`
}

func (h *Handler) checkIn(w http.ResponseWriter, r *http.Request) {
	h.attendance(w, r, h.service.CheckIn)
}

func (h *Handler) checkOut(w http.ResponseWriter, r *http.Request) {
	h.attendance(w, r, h.service.CheckOut)
}

func (h *Handler) attendance(w http.ResponseWriter, r *http.Request, op func(string, string) (AttendanceLog, error)) {
	var req attendanceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	log, err := op(req.EmployeeName, req.At)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, log)
}

func (h *Handler) listAttendance(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListAttendance())
}

type runPayrollRequest struct {
	EmployeeName string  `json:"employee_name" validate:"required,max=200"`
	PayPeriod    string  `json:"pay_period" validate:"required,max=100"`
	TotalHours   float64 `json:"total_hours" validate:"gt=0"`
}

func (h *Handler) runPayroll(w http.ResponseWriter, r *http.Request) {
	var req runPayrollRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	record, err := h.service.RunPayroll(req.EmployeeName, req.PayPeriod, decimal.NewFromFloat(req.TotalHours))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, record)
}

func (h *Handler) listPayroll(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListPayroll())
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDuplicateEmployee):
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, ErrUnknownEmployee):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrInvalidHours):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
	default:
		h.logger.Error("hr command", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
