package http

import (
	"net/http"
	"sync"

	"dinesmart/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const docsInstance = "dinesmart"

// RequestValidator rejects requests that do not match the OpenAPI document
// with 400 before they reach a handler. Paths the document does not describe
// pass through untouched.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// Match on paths only, whatever host the server is reached on.
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			return next(ctx)
		}
	}, nil
}

type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

var registerDocs sync.Once

// RegisterDocs serves the OpenAPI document as JSON on /api/openapi.json and
// the Swagger UI on /swagger/.
func RegisterDocs(e *echo.Echo, swagger *openapi3.T) error {
	raw, err := swagger.MarshalJSON()
	if err != nil {
		return err
	}

	registerDocs.Do(func() {
		swag.Register(docsInstance, swaggerDoc(raw))
	})

	e.GET("/api/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, raw)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(docsInstance)))

	return nil
}
