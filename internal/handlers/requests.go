package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloodlifesaver/api/internal/middleware"
	"bloodlifesaver/api/internal/respond"
	"bloodlifesaver/api/internal/service"
)

type createRequestRequest struct {
	HospitalName  string `json:"hospital_name"`
	BloodType     string `json:"blood_type"`
	Units         int    `json:"units"`
	Urgency       string `json:"urgency"`
	Reason        string `json:"reason"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
}

func (h HandlerSet) CreateRequest(c *gin.Context) {
	var req createRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	request, err := h.requests.Create(c.Request.Context(), service.CreateRequestInput{
		HospitalName:  req.HospitalName,
		BloodType:     req.BloodType,
		Units:         req.Units,
		Urgency:       req.Urgency,
		Reason:        req.Reason,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
	}, user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, "Blood request created successfully", request)
}

func (h HandlerSet) ListRequests(c *gin.Context) {
	requests, err := h.requests.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Blood requests fetched successfully", requests)
}

func (h HandlerSet) GetRequest(c *gin.Context) {
	request, err := h.requests.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Blood request fetched successfully", request)
}

func (h HandlerSet) ListRequestsByHospital(c *gin.Context) {
	requests, err := h.requests.ListByHospital(c.Request.Context(), c.Param("hospitalName"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Blood requests fetched successfully", requests)
}

func (h HandlerSet) ListMyRequests(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	requests, err := h.requests.ListByCreator(c.Request.Context(), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Blood requests fetched successfully", requests)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h HandlerSet) UpdateRequestStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	request, err := h.requests.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Blood request "+req.Status+" successfully", request)
}

func (h HandlerSet) DeleteRequest(c *gin.Context) {
	if err := h.requests.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Blood request deleted successfully", nil)
}
