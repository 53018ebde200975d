package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/configs"
	"github.com/Jalann18/kcm-corredora/internals/features/users/model"
	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// =======================
// POST /api/auth/login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email y password son obligatorios")
	}

	var user model.UsuarioAdminModel
	err := ctrl.DB.
		Where("email = ? AND activo = ?", helper.NormalizarEmail(body.Email), true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar las credenciales")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helper.JsonOK(c, "Sesión iniciada", fiber.Map{
		"token": token,
		"email": user.Email,
	})
}

// SeedAdmin crea la cuenta del back-office si no existe ninguna.
// Idempotente: con una cuenta ya creada no hace nada.
func SeedAdmin(db *gorm.DB) error {
	if configs.AdminEmail == "" || configs.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.UsuarioAdminModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := model.UsuarioAdminModel{
		Email:    helper.NormalizarEmail(configs.AdminEmail),
		Password: string(hash),
		Activo:   true,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Printf("[INFO] Cuenta admin creada: %s", user.Email)
	return nil
}
