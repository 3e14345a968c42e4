package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/django-nerd/ulin/internal/domain"
	"github.com/django-nerd/ulin/internal/handler/dto"
	"github.com/django-nerd/ulin/internal/validation"
	"github.com/wb-go/wbf/ginext"
)

type ListingSvc interface {
	CreateHomestay(ctx context.Context, h domain.Homestay) (string, error)
	ListHomestays(ctx context.Context) ([]domain.Record, error)
	CreatePackage(ctx context.Context, p domain.Package) (string, error)
	ListPackages(ctx context.Context) ([]domain.Record, error)
}

type BookingSvc interface {
	Create(ctx context.Context, b domain.Booking) (string, error)
}

type StatusSvc interface {
	Check(ctx context.Context) domain.StorageStatus
}

type Options struct {
	// ExposeInternalErrors puts raw error text into 500 responses.
	ExposeInternalErrors bool
}

type Handler struct {
	listingService ListingSvc
	bookingService BookingSvc
	statusService  StatusSvc
	opts           Options
}

func NewHandler(listingService ListingSvc, bookingService BookingSvc, statusService StatusSvc, opts Options) *Handler {
	return &Handler{
		listingService: listingService,
		bookingService: bookingService,
		statusService:  statusService,
		opts:           opts,
	}
}

// Service

func (h *Handler) Root(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.ReadyMessage})
}

func (h *Handler) Status(c *ginext.Context) {
	status := h.statusService.Check(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToStatusResponse(status))
}

// Homestays

func (h *Handler) CreateHomestay(c *ginext.Context) {
	var req dto.CreateHomestayRequest
	if err := c.ShouldBindWith(&req, validation.JSON); err != nil {
		h.handleError(c, err)
		return
	}

	id, err := h.listingService.CreateHomestay(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

func (h *Handler) ListHomestays(c *ginext.Context) {
	records, err := h.listingService.ListHomestays(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordsResponse(records))
}

// Packages

func (h *Handler) CreatePackage(c *ginext.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindWith(&req, validation.JSON); err != nil {
		h.handleError(c, err)
		return
	}

	id, err := h.listingService.CreatePackage(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

func (h *Handler) ListPackages(c *ginext.Context) {
	records, err := h.listingService.ListPackages(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordsResponse(records))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindWith(&req, validation.JSON); err != nil {
		h.handleError(c, err)
		return
	}

	id, err := h.bookingService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Detail: verr.Violations})

	case errors.Is(err, domain.ErrStorageNotConfigured):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: domain.ErrStorageNotConfigured.Error()})

	case h.opts.ExposeInternalErrors:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "internal server error"})
	}
}
