package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloodlifesaver/api/internal/respond"
	"bloodlifesaver/api/internal/service"
)

type registerDonorRequest struct {
	Name             string  `json:"name"`
	Age              int     `json:"age"`
	BloodType        string  `json:"blood_type"`
	LastDonationDate *string `json:"last_donation_date"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
}

func (h HandlerSet) RegisterDonor(c *gin.Context) {
	var req registerDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	donor, err := h.donors.Register(c.Request.Context(), service.RegisterDonorInput{
		Name:             req.Name,
		Age:              req.Age,
		BloodType:        req.BloodType,
		LastDonationDate: req.LastDonationDate,
		Phone:            req.Phone,
		Email:            req.Email,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, "Donor registered successfully", donor)
}

func (h HandlerSet) ListDonors(c *gin.Context) {
	donors, err := h.donors.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Donors fetched successfully", donors)
}

func (h HandlerSet) GetDonor(c *gin.Context) {
	donor, err := h.donors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Donor fetched successfully", donor)
}

func (h HandlerSet) ListDonorsByBloodType(c *gin.Context) {
	donors, err := h.donors.ListByBloodType(c.Request.Context(), c.Param("bloodType"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Donors fetched successfully", donors)
}

func (h HandlerSet) DeleteDonor(c *gin.Context) {
	if err := h.donors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Donor deleted successfully", nil)
}
