package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "pustakaku_backend/internals/features/users/auth/helper"
	authRepo "pustakaku_backend/internals/features/users/auth/repository"
	userModel "pustakaku_backend/internals/features/users/user/model"
	helpers "pustakaku_backend/internals/helpers"
)

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helpers.JsonValidationError(c, map[string][]string{"input": {err.Error()}})
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: passwordHash,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", fiber.Map{
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
		},
	})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"` // email atau user_name
		Email      string `json:"email"`      // kompat frontend lama
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" {
		identifier = strings.TrimSpace(input.Email)
	}
	if err := authHelper.ValidateLoginInput(identifier, input.Password); err != nil {
		return helpers.JsonValidationError(c, map[string][]string{"input": {err.Error()}})
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, identifier)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if !authHelper.CheckPassword(user.Password, input.Password) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	token, expiresAt, err := IssueAccessToken(*user, secret, nowUTC())
	if err != nil {
		log.Printf("[ERROR] gagal membuat access token: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create access token")
	}

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   expiresAt,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
		},
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := extractTokenForLogout(c)
	if tokenString == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Missing access token")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// exp token dipakai sebagai umur blacklist; fallback TTL default
	expiredAt := nowUTC().Add(accessTTLDefault)
	if _, exp, perr := ParseAccessToken(tokenString, secret); perr == nil && !exp.IsZero() {
		expiredAt = exp
	}

	if err := authRepo.BlacklistToken(db, tokenString, expiredAt); err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate key") && !strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to logout")
		}
	}

	c.ClearCookie("access_token")
	return helpers.JsonOK(c, "Logout successful", nil)
}

func extractTokenForLogout(c *fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

/* ==========================
   PROFILE (ME)
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"user": fiber.Map{
			"id":         user.ID,
			"user_name":  user.UserName,
			"email":      user.Email,
			"is_active":  user.IsActive,
			"created_at": user.CreatedAt,
		},
	})
}
