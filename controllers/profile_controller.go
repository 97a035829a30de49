package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beaute-shop/models"
	"beaute-shop/repositories"
)

type ProfileController struct {
	users *repositories.UserRepository
}

func NewProfileController(users *repositories.UserRepository) *ProfileController {
	return &ProfileController{users: users}
}

// GetMyProfile godoc
// @Summary Get own profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Profile
// @Router /profiles/me/ [get]
func (ctrl *ProfileController) GetMyProfile(c *gin.Context) {
	account, err := ctrl.users.FindByID(c.GetInt("user_id"))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Compte introuvable")
		return
	}
	c.JSON(http.StatusOK, account.Profile)
}

// UpdateMyProfile godoc
// @Summary Update own profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile"
// @Success 200 {object} models.Profile
// @Router /profiles/me/ [put]
func (ctrl *ProfileController) UpdateMyProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	profile, err := ctrl.users.UpdateProfile(c.GetInt("user_id"), req)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Compte introuvable")
		return
	}
	c.JSON(http.StatusOK, profile)
}
