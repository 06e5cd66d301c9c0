package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "inscripcli/internal/errors"
	"inscripcli/internal/exporter"
	"inscripcli/internal/services"
	"inscripcli/pkg/contracts/domain"
)

// EnrollmentHandler handles enrollment HTTP requests with RFC 7807 compliance
type EnrollmentHandler struct {
	service        EnrollmentServiceInterface
	logger         *slog.Logger
	errorHandler   *apierrors.ErrorHandler
	validate       *validator.Validate
	maxUploadBytes int64
}

// NewEnrollmentHandler creates a new enrollment handler with RFC 7807 error handling
func NewEnrollmentHandler(service EnrollmentServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxUploadBytes int64) *EnrollmentHandler {
	return &EnrollmentHandler{
		service:        service,
		logger:         logger.With(slog.String("component", "enrollment_handler")),
		errorHandler:   errorHandler,
		validate:       validator.New(),
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes returns the enrollment routes with proper Chi patterns
func (h *EnrollmentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/", h.Upload)
	r.Get("/", h.List)
	r.Get("/stats", h.GetStats)
	r.Get("/options", h.GetOptions)
	r.Get("/export", h.Export)

	return r
}

// Upload handles POST /api/enrollments. It accepts either a multipart form
// with a "file" field or a raw text/csv body, runs the full pipeline over
// the document and atomically replaces the current snapshot.
func (h *EnrollmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	source, text, err := h.readDocument(r)
	if err != nil {
		h.logger.WarnContext(ctx, "upload rejected", slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	snapshot, err := h.service.Ingest(ctx, source, text)
	if err != nil {
		h.logger.ErrorContext(ctx, "ingestion failed",
			slog.String("source", source),
			slog.String("error", err.Error()),
		)

		switch {
		case errors.Is(err, services.ErrEmptyDocument):
			h.errorHandler.HandleError(w, r, apierrors.ErrEmptyUpload)
		case errors.Is(err, services.ErrNoRecords):
			h.errorHandler.HandleError(w, r, apierrors.New(
				http.StatusUnprocessableEntity,
				"NO_RECORDS",
				"Document contained no usable enrollment rows",
			))
		default:
			h.errorHandler.HandleError(w, r, err)
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]interface{}{
		"status":     "success",
		"generation": snapshot.Generation,
		"source":     snapshot.Source,
		"loaded_at":  snapshot.LoadedAt,
		"count":      len(snapshot.Records),
	})
}

// readDocument extracts the document text from either a multipart upload or
// a raw request body.
func (h *EnrollmentHandler) readDocument(r *http.Request) (source, text string, err error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "multipart/form-data" {
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", "", apierrors.ErrValidation("file", "Multipart upload requires a 'file' field")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", "", apierrors.New(http.StatusBadRequest, "UPLOAD_READ_FAILED", "Could not read uploaded file")
		}
		return header.Filename, string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", "", apierrors.New(http.StatusBadRequest, "UPLOAD_READ_FAILED", "Could not read request body")
	}
	return "request-body", string(data), nil
}

// List handles GET /api/enrollments with RFC 7807 errors
func (h *EnrollmentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	spec, err := h.filterSpecFromQuery(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	records, err := h.service.Records(ctx, spec)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   records,
		"count":  len(records),
	})
}

// GetStats handles GET /api/enrollments/stats
func (h *EnrollmentHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	spec, err := h.filterSpecFromQuery(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	view, err := h.service.Stats(ctx, spec)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   view,
	})
}

// GetOptions handles GET /api/enrollments/options
func (h *EnrollmentHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	options, err := h.service.Options(ctx)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   options,
	})
}

// Export handles GET /api/enrollments/export. The filtered record set is
// streamed as CSV (default) or XLSX depending on the format query parameter.
func (h *EnrollmentHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("format", fmt.Sprintf("Unsupported export format: %s", format)))
		return
	}

	spec, err := h.filterSpecFromQuery(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	records, err := h.service.Records(ctx, spec)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	filename := fmt.Sprintf("inscripciones_%s.%s", time.Now().Format("20060102_150405"), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		err = exporter.WriteRecordsCSV(w, records)
	case "xlsx":
		view, statsErr := h.service.Stats(ctx, spec)
		if statsErr != nil {
			h.handleServiceError(w, r, statsErr)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = exporter.WriteRecordsXLSX(w, records, view.Stats)
	}

	if err != nil {
		// Headers are already out; all we can do is log.
		h.logger.ErrorContext(ctx, "export write failed",
			slog.String("format", format),
			slog.String("error", err.Error()),
		)
	}
}

// filterSpecFromQuery binds and validates the filter controls from query
// parameters.
func (h *EnrollmentHandler) filterSpecFromQuery(r *http.Request) (domain.FilterSpec, error) {
	q := r.URL.Query()
	spec := domain.FilterSpec{
		Turno:      q.Get("turno"),
		Estado:     q.Get("estado"),
		TipoOferta: q.Get("tipo_oferta"),
		Genero:     q.Get("genero"),
		Actividad:  q.Get("actividad"),
		Search:     q.Get("search"),
	}

	if err := h.validate.Struct(spec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return domain.FilterSpec{}, apierrors.ErrValidation(fe.Field(), fmt.Sprintf("Invalid filter value for %s", fe.Field()))
		}
		return domain.FilterSpec{}, apierrors.InvalidRequestWithError(err)
	}

	return spec, nil
}

// handleServiceError maps service sentinel errors to API errors.
func (h *EnrollmentHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrNoData) {
		h.errorHandler.HandleError(w, r, apierrors.ErrSnapshotNotFound)
		return
	}
	h.errorHandler.HandleError(w, r, err)
}
