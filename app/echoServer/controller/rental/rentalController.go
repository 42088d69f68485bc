package rental

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"attirerental/model"
	"attirerental/service/billing"
	rs "attirerental/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc       rs.Service
	V         *validator.Validate
	Log       *slog.Logger
	UploadDir string
}

// POST /v1/records
func (h *Controller) Create(c echo.Context) error {
	var req CreateRecordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid form"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	if !model.ValidIDType(req.IDType) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id_type"})
	}

	rentalDate, _ := time.Parse(time.DateOnly, req.RentalDate)
	expectedReturn, _ := time.Parse(time.DateOnly, req.ExpectedReturnDate)

	imagePath, err := h.saveIDImage(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "id image required"})
	}

	rec, err := h.Svc.Create(c.Request().Context(), rs.CreateReq{
		AttireID:           req.AttireID,
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		CustomerEmail:      req.CustomerEmail,
		CustomerAddress:    req.CustomerAddress,
		IDType:             model.IDType(req.IDType),
		IDImage:            imagePath,
		RentalDate:         rentalDate,
		ExpectedReturnDate: expectedReturn,
	})
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrDateOrder:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "expected return date must not precede rental date"})
		case rs.ErrAttireNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "attire not found"})
		case rs.ErrAttireUnavail:
			return c.JSON(http.StatusConflict, echo.Map{"message": "attire not available"})
		default:
			h.Log.Error("record create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, rec)
}

// GET /v1/records?status=&search=&year=&month=&due=
func (h *Controller) List(c echo.Context) error {
	year, _ := strconv.Atoi(c.QueryParam("year"))
	month, _ := strconv.Atoi(c.QueryParam("month"))

	rows, err := h.Svc.List(c.Request().Context(), billing.Query{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Year:   year,
		Month:  month,
		Due:    billing.DueBucket(c.QueryParam("due")),
	})
	if err != nil {
		h.Log.Error("record list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/records/stats
func (h *Controller) Stats(c echo.Context) error {
	stats, err := h.Svc.Stats(c.Request().Context())
	if err != nil {
		h.Log.Error("record stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, stats)
}

// GET /v1/records/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if rs.Code(err) == rs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "record not found"})
		}
		h.Log.Error("record detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}

// POST /v1/records/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	out, err := h.Svc.MarkReturned(c.Request().Context(), id)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "record not found"})
		case rs.ErrNotActive:
			return c.JSON(http.StatusConflict, echo.Map{"message": "record not active"})
		default:
			h.Log.Error("record return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// DELETE /v1/records/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "record not found"})
		case rs.ErrNotReturned:
			return c.JSON(http.StatusConflict, echo.Map{"message": "only returned records can be deleted"})
		default:
			h.Log.Error("record delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

func (h *Controller) saveIDImage(c echo.Context) (string, error) {
	fh, err := c.FormFile("id_image")
	if err != nil {
		return "", err
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(h.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}
