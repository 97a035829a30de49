package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"beaute-shop/models"
	"beaute-shop/repositories"
	"beaute-shop/utils"
)

type AuthController struct {
	users *repositories.UserRepository
}

func NewAuthController(users *repositories.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// Token godoc
// @Summary Obtain token pair
// @Description Exchange username and password for access and refresh tokens
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.TokenPair
// @Failure 401 {object} models.ErrorResponse
// @Router /token/ [post]
func (ctrl *AuthController) Token(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	account, err := ctrl.users.FindByUsername(req.Username)
	if err != nil || !utils.VerifyPassword(account.PasswordHash, req.Password) {
		respondError(c, http.StatusUnauthorized, "Identifiants invalides")
		return
	}

	access, err := utils.GenerateToken(account.User.ID, account.User.Username, account.User.IsAdmin, utils.TokenTypeAccess)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Échec de génération du jeton")
		return
	}
	refresh, err := utils.GenerateToken(account.User.ID, account.User.Username, account.User.IsAdmin, utils.TokenTypeRefresh)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Échec de génération du jeton")
		return
	}

	c.JSON(http.StatusOK, models.TokenPair{Access: access, Refresh: refresh})
}

// RefreshToken godoc
// @Summary Refresh access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RefreshRequest true "Refresh token"
// @Success 200 {object} models.RefreshResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /token/refresh/ [post]
func (ctrl *AuthController) RefreshToken(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	claims, err := utils.ValidateToken(req.Refresh, utils.TokenTypeRefresh)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Jeton de rafraîchissement invalide ou expiré")
		return
	}

	access, err := utils.GenerateToken(claims.UserID, claims.Username, claims.IsAdmin, utils.TokenTypeAccess)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Échec de génération du jeton")
		return
	}

	c.JSON(http.StatusOK, models.RefreshResponse{Access: access})
}

// Register godoc
// @Summary Register a new customer
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /users/register/ [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Échec de création du compte")
		return
	}

	account, err := ctrl.users.Create(req.Username, req.Email, req.FirstName, req.LastName, hash)
	if err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			respondError(c, http.StatusBadRequest, "Ce nom d'utilisateur est déjà pris")
			return
		}
		respondError(c, http.StatusInternalServerError, "Échec de création du compte")
		return
	}

	c.JSON(http.StatusCreated, account.User)
}

// Me godoc
// @Summary Current user
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me/ [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	user, ok := currentUser(c, ctrl.users)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}
