package handlers

import (
	"net/http"
	request "rental_portal/internal/adapter/http/dto/request"
	response "rental_portal/internal/adapter/http/dto/response"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ApartmentHandler is the admin inventory of units. Binding a tenant goes
// through the tenant usecase so the passcode is rotated with the assignment.
type ApartmentHandler struct {
	apartments usecase.IApartmentUseCase
	tenants    usecase.ITenantUseCase
}

func NewApartmentHandler(apartments usecase.IApartmentUseCase, tenants usecase.ITenantUseCase) *ApartmentHandler {
	return &ApartmentHandler{apartments: apartments, tenants: tenants}
}

// Create godoc
// @Summary      Create an apartment
// @Tags         admin-apartments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      request.ApartmentRequest  true  "Apartment"
// @Success      201      {object}  response.ApartmentCreatedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /api/admin/apartments [post]
func (h *ApartmentHandler) Create(c *gin.Context) {
	var payload request.ApartmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	created, err := h.apartments.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.ApartmentCreatedResponse{
		Apartment: response.FromApartment(created.Apartment),
		Passcode:  created.Passcode,
	})
}

// List godoc
// @Summary      List apartments
// @Tags         admin-apartments
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "VACANT, OCCUPIED, MAINTENANCE or ARCHIVED"
// @Success      200     {array}   response.ApartmentResponse
// @Router       /api/admin/apartments [get]
func (h *ApartmentHandler) List(c *gin.Context) {
	list, err := h.apartments.List(c.Request.Context(), entities.ApartmentStatus(c.Query("status")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartments(list))
}

// Get godoc
// @Summary      Get an apartment
// @Tags         admin-apartments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resource ID"
// @Success      200  {object}  response.ApartmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /api/admin/apartments/{id} [get]
func (h *ApartmentHandler) Get(c *gin.Context) {
	apt, err := h.apartments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartment(apt))
}

// Update godoc
// @Summary      Update an apartment
// @Tags         admin-apartments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                    true  "Resource ID"
// @Param        payload  body      request.ApartmentRequest  true  "Apartment"
// @Success      200      {object}  response.ApartmentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /api/admin/apartments/{id} [put]
func (h *ApartmentHandler) Update(c *gin.Context) {
	var payload request.ApartmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	apt, err := h.apartments.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartment(apt))
}

// ChangeStatus godoc
// @Summary      Change the status of an apartment
// @Tags         admin-apartments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                          true  "Apartment ID"
// @Param        payload  body      request.ApartmentStatusRequest  true  "Status"
// @Success      200      {object}  response.ApartmentResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /api/admin/apartments/{id}/status [patch]
func (h *ApartmentHandler) ChangeStatus(c *gin.Context) {
	var payload request.ApartmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	apt, err := h.apartments.ChangeStatus(c.Request.Context(), c.Param("id"), entities.ApartmentStatus(payload.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartment(apt))
}

// Archive godoc
// @Summary      Archive an apartment
// @Tags         admin-apartments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resource ID"
// @Success      200  {object}  response.ApartmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /api/admin/apartments/{id}/archive [post]
func (h *ApartmentHandler) Archive(c *gin.Context) {
	apt, err := h.apartments.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartment(apt))
}

// Delete godoc
// @Summary      Delete an apartment
// @Tags         admin-apartments
// @Security     BearerAuth
// @Param        id   path      string  true  "Resource ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /api/admin/apartments/{id} [delete]
func (h *ApartmentHandler) Delete(c *gin.Context) {
	if err := h.apartments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Assign godoc
// @Summary      Bind a new tenant to a vacant apartment
// @Description  Returns the room number and a freshly issued passcode, shown only once.
// @Tags         admin-apartments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "Apartment ID"
// @Param        payload  body      request.AssignRequest  true  "Tenant contact"
// @Success      201      {object}  response.CredentialsResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /api/admin/apartments/{id}/assign [post]
func (h *ApartmentHandler) Assign(c *gin.Context) {
	var payload request.AssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	creds, err := h.tenants.AssignApartment(c.Request.Context(), c.Param("id"), payload.ToContact())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCredentials(creds))
}
