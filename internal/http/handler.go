// Package http provides the Gin HTTP surface of the diet service: the six
// resource collections, the approval and kitchen workflow actions, and the
// health endpoints.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/diet-service/internal/circuitbreaker"
	"github.com/guttosm/diet-service/internal/domain/dto"
	"github.com/guttosm/diet-service/internal/i18n"
	"github.com/guttosm/diet-service/internal/repository"
	"github.com/guttosm/diet-service/internal/service"
)

// Handler bundles the domain services behind the HTTP surface.
type Handler struct {
	Catalog  service.Catalog
	Packages service.Packages
	Requests service.Requests
	Orders   service.Orders
	Canteen  service.Canteen
	Plans    service.CustomPlans
}

// NewHandler creates a new Handler instance.
func NewHandler(catalog service.Catalog, packages service.Packages, requests service.Requests, orders service.Orders, canteen service.Canteen, plans service.CustomPlans) *Handler {
	return &Handler{
		Catalog:  catalog,
		Packages: packages,
		Requests: requests,
		Orders:   orders,
		Canteen:  canteen,
		Plans:    plans,
	}
}

// respondError maps domain errors onto HTTP statuses: missing documents to
// 404, forbidden transitions to 409, validation failures to 400, an open
// circuit to 503, anything else to 500.
func respondError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)
	var validationErr *dto.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrInvalidTransition):
		builder.Error(http.StatusConflict, i18n.ErrKeyInvalidTransition, err)
	case errors.Is(err, service.ErrUnknownStatus):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
	case errors.Is(err, service.ErrUnknownMealSlot):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownMealSlot, err)
	case errors.As(err, &validationErr):
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// resourceService is the CRUD surface every collection service exposes.
type resourceService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) (*T, error)
	Update(ctx context.Context, id string, doc *T) (*T, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id string) error
}

// resourceRoutes serves the uniform CRUD surface of one collection.
type resourceRoutes[T any] struct {
	svc resourceService[T]
}

func (r *resourceRoutes[T]) list(c *gin.Context) {
	docs, err := r.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(docs)
}

func (r *resourceRoutes[T]) get(c *gin.Context) {
	doc, err := r.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(doc)
}

func (r *resourceRoutes[T]) create(c *gin.Context) {
	doc, err := BuildRequest[T](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	created, err := r.svc.Create(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessCreated(created)
}

func (r *resourceRoutes[T]) update(c *gin.Context) {
	doc, err := BuildRequest[T](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	updated, err := r.svc.Update(c.Request.Context(), c.Param("id"), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(updated)
}

func (r *resourceRoutes[T]) patch(c *gin.Context) {
	fields, err := BuildRequest[map[string]interface{}](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	patched, err := r.svc.Patch(c.Request.Context(), c.Param("id"), *fields)
	if err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(patched)
}

func (r *resourceRoutes[T]) remove(c *gin.Context) {
	if err := r.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessNoContent()
}

// registerResource mounts the CRUD routes of one collection under path.
func registerResource[T any](rg *gin.RouterGroup, path string, svc resourceService[T]) {
	routes := &resourceRoutes[T]{svc: svc}
	group := rg.Group("/" + path)
	group.GET("", routes.list)
	group.GET("/:id", routes.get)
	group.POST("", routes.create)
	group.PUT("/:id", routes.update)
	group.PATCH("/:id", routes.patch)
	group.DELETE("/:id", routes.remove)
}
