package router

import (
	"net/http"
	"unicode"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"todoapi/internal/auth"
	"todoapi/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	todoHandler *handler.TodoHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// Secured routes: the token travels in a bare "token" header, which is
	// the header existing clients send.
	secured := e.Group("", AuthGate(jwtService))

	secured.POST("/todo", todoHandler.Create)
	secured.GET("/todos", todoHandler.List)
	secured.POST("/toggle", todoHandler.Toggle)
	secured.GET("/singleTodo", todoHandler.GetSingle)
}

// AuthGate builds the JWT middleware for the secured group. Verification is
// delegated to the token service; on success the user id claim lands in the
// echo context under "user_id". Every failure mode, missing header included,
// gets the same fixed 401 body so callers cannot distinguish a missing token
// from an invalid one.
func AuthGate(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:token",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get("user").(*auth.Claims); ok {
				c.Set("user_id", claims.UserID)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator with the composite password
// rule registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("password", passwordComplexity)
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// passwordComplexity requires at least one lowercase letter, one uppercase
// letter, one digit, and one special character. Anything that is not a cased
// letter or digit counts as special (underscore included). Length is policed
// by the min/max tags, so "A1!" fails here on the missing lowercase class,
// not on length.
func passwordComplexity(fl validator.FieldLevel) bool {
	var lower, upper, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}
