package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	PersonIDKey         = "personID" // Key for storing the person ID in fiber.Ctx locals
	SiteIDKey           = "siteID"   // Key for storing the site ID in fiber.Ctx locals
)

// Claims are the token claims issued by the identity provider. Subject is the
// person ID; SiteID pins every request to one tenant.
type Claims struct {
	SiteID string `json:"site_id"`
	Admin  bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// Protected is a middleware function that protects routes by requiring a valid JWT.
// It validates the token signature and sets the person and site IDs in the context.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errResp := parseToken(c, jwtSecret)
		if errResp != nil {
			return c.Status(errResp.Status).JSON(errResp)
		}

		c.Locals(PersonIDKey, claims.Subject)
		c.Locals(SiteIDKey, claims.SiteID)

		return c.Next()
	}
}

// AdminOnly requires a valid JWT carrying the admin claim.
func AdminOnly(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errResp := parseToken(c, jwtSecret)
		if errResp != nil {
			return c.Status(errResp.Status).JSON(errResp)
		}
		if !claims.Admin {
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "Admin privileges required",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals(PersonIDKey, claims.Subject)
		c.Locals(SiteIDKey, claims.SiteID)

		return c.Next()
	}
}

func parseToken(c *fiber.Ctx, jwtSecret string) (*Claims, *ErrorResponse) {
	authHeader := c.Get(AuthorizationHeader)
	if authHeader == "" {
		return nil, &ErrorResponse{
			Code:    "MISSING_AUTH_HEADER",
			Message: "Authorization header is missing",
			Status:  fiber.StatusUnauthorized,
		}
	}

	if !strings.HasPrefix(authHeader, BearerSchema) {
		return nil, &ErrorResponse{
			Code:    "INVALID_AUTH_SCHEME",
			Message: "Authorization scheme is not Bearer",
			Status:  fiber.StatusUnauthorized,
		}
	}

	tokenString := strings.TrimPrefix(authHeader, BearerSchema)
	if tokenString == "" {
		return nil, &ErrorResponse{
			Code:    "EMPTY_TOKEN",
			Message: "Token is empty",
			Status:  fiber.StatusUnauthorized,
		}
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, &ErrorResponse{
			Code:    "INVALID_TOKEN",
			Message: "Token is invalid or expired",
			Status:  fiber.StatusUnauthorized,
		}
	}
	if claims.Subject == "" || claims.SiteID == "" {
		return nil, &ErrorResponse{
			Code:    "INVALID_TOKEN",
			Message: "Token is missing required claims",
			Status:  fiber.StatusUnauthorized,
		}
	}

	return claims, nil
}
