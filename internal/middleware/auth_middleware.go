package middleware

import (
	"strings"

	"erp-kozo-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Auth(c *fiber.Ctx) error {
	// 1. Ambil token dari Header Authorization
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
	}

	// Format header biasanya: "Bearer <token>"
	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

	// 2. Parse dan Validasi Token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(config.GetEnv("JWT_SECRET", "rahasia-kozo")), nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
	}

	// 3. Simpan data user (Claims) ke Context agar bisa dipakai di Handler
	claims := token.Claims.(jwt.MapClaims)
	c.Locals("user_id", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("role", claims["role"])

	return c.Next()
}
