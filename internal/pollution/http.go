// Copyright (c) 2026 Aeris Labs. All rights reserved.

package pollution

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aeris-labs/aeris/internal/platform/middleware"
	requestutil "github.com/aeris-labs/aeris/internal/platform/request"
	"github.com/aeris-labs/aeris/internal/platform/respond"
	"github.com/aeris-labs/aeris/internal/platform/validate"
	"github.com/aeris-labs/aeris/pkg/pagination"
)

// maxPlausibleConcentration rejects obviously broken monitor payloads
// (µg/m³). The worst recorded urban episodes stay under 2000.
const maxPlausibleConcentration = 5000

// Handler implements the HTTP layer for the pollution domain.
type Handler struct {
	pollutionService *Service
}

// NewHandler constructs a new pollution [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{pollutionService: service}
}

// Routes returns a [chi.Router] configured with the pollution endpoints.
//
// # Endpoints
//   - POST   /                   : Records a reading (admin).
//   - GET    /                   : Lists readings (authenticated).
//   - GET    /analytics/summary  : Aggregate AQI stats (authenticated).
//   - POST   /predict            : AQI estimation (public).
//   - GET    /{id}               : Single reading (authenticated).
//   - DELETE /{id}               : Removes a reading (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/predict", handler.predict)

	// Authenticated read surface
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", handler.listReadings)
		r.Get("/analytics/summary", handler.summary)
		r.Get("/{id}", handler.getReading)
	})

	// Admin write surface
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/", handler.addReading)
		r.Delete("/{id}", handler.deleteReading)
	})

	return router
}

// # Request Payloads

// addReadingRequest uses pointers so that absent and zero measurements are
// distinguishable.
type addReadingRequest struct {
	Location string   `json:"location"`
	PM25     *float64 `json:"pm25"`
	PM10     *float64 `json:"pm10"`
	NO2      *float64 `json:"no2"`
}

type predictRequest struct {
	PM25 *float64 `json:"pm25"`
	PM10 *float64 `json:"pm10"`
	NO2  *float64 `json:"no2"`
}

/*
AddReading records a new monitor measurement.

POST /api/v1/pollution

Description: Validates the payload, derives the AQI bucket from PM2.5, and
persists the reading attributed to the acting admin.

Request:
  - Body: addReadingRequest (Location, PM25, PM10, optional NO2)

Response:
  - 201: Reading: Persisted reading with AQI and health category
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Admin privileges required
*/
func (handler *Handler) addReading(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addReadingRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldLocation, input.Location).
		MaxLen(FieldLocation, input.Location, 200).
		Custom(FieldPM25, input.PM25 == nil, "This field is required").
		Custom(FieldPM10, input.PM10 == nil, "This field is required")

	if input.PM25 != nil {
		validator.NonNegative(FieldPM25, *input.PM25).
			Custom(FieldPM25, *input.PM25 > maxPlausibleConcentration, "Implausible measurement")
	}
	if input.PM10 != nil {
		validator.NonNegative(FieldPM10, *input.PM10).
			Custom(FieldPM10, *input.PM10 > maxPlausibleConcentration, "Implausible measurement")
	}
	if input.NO2 != nil {
		validator.NonNegative(FieldNO2, *input.NO2)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	reading, err := handler.pollutionService.Add(request.Context(), identity.ID, AddInput{
		Location: input.Location,
		PM25:     *input.PM25,
		PM10:     *input.PM10,
		NO2:      input.NO2,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, reading)
}

/*
ListReadings returns a paginated page of readings.

GET /api/v1/pollution?location=&page=&limit=

Description: Newest first. The location filter is accent- and
case-insensitive.

Response:
  - 200: []Reading with pagination metadata
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listReadings(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	readings, total, err := handler.pollutionService.List(request.Context(), ListFilter{
		Location: request.URL.Query().Get(FieldLocation),
		Limit:    params.Limit,
		Offset:   params.Offset(),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if readings == nil {
		readings = []*Reading{}
	}

	respond.Paginated(writer, readings, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GetReading retrieves a single reading by ID.

GET /api/v1/pollution/{id}

Response:
  - 200: Reading
  - 404: ErrNotFound: Unknown reading ID
*/
func (handler *Handler) getReading(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.Required(FieldID, id).UUID(FieldID, id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	reading, err := handler.pollutionService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reading)
}

/*
DeleteReading permanently removes a reading.

DELETE /api/v1/pollution/{id}

Response:
  - 204: No Content: Reading removed
  - 404: ErrNotFound: Unknown reading ID
  - 403: ErrForbidden: Admin privileges required
*/
func (handler *Handler) deleteReading(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.Required(FieldID, id).UUID(FieldID, id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.pollutionService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
Summary returns the aggregate AQI statistics.

GET /api/v1/pollution/analytics/summary

Response:
  - 200: Summary: average_aqi and worst_aqi (null when no readings exist)
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.pollutionService.Summary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

/*
Predict estimates the AQI for hypothetical pollutant concentrations.

POST /api/v1/pollution/predict

Description: Runs the linear model over the submitted levels. Public:
the estimate leaks nothing about stored readings.

Request:
  - Body: predictRequest (PM25, PM10, NO2)

Response:
  - 200: predicted_aqi: Continuous estimate, two decimal places
  - 400: ErrInvalidJSON: Bad input or validation failure
*/
func (handler *Handler) predict(writer http.ResponseWriter, request *http.Request) {
	var input predictRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Custom(FieldPM25, input.PM25 == nil, "This field is required").
		Custom(FieldPM10, input.PM10 == nil, "This field is required").
		Custom(FieldNO2, input.NO2 == nil, "This field is required")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator = &validate.Validator{}
	validator.NonNegative(FieldPM25, *input.PM25).
		NonNegative(FieldPM10, *input.PM10).
		NonNegative(FieldNO2, *input.NO2)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]float64{
		"predicted_aqi": handler.pollutionService.Predict(*input.PM25, *input.PM10, *input.NO2),
	})
}
