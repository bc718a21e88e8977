package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/url"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type ContextKey string

// ContextURL is the key under which the external API URL is stored in the gin context.
const ContextURL ContextKey = "requestURL"

// URLMiddleware stores the external API URL in the context of every request.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(ContextURL), url.String())
		c.Next()
	}
}

// URL returns the external API URL set by URLMiddleware.
func URL(c *gin.Context) string {
	return c.GetString(string(ContextURL))
}

// BindData binds the data from the request to the struct passed in the interface.
//
// Validation errors are returned with one message per invalid field.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return ValidationError(validationErrors)
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// BindQuery binds the query parameters of the request to the struct.
func BindQuery(c *gin.Context, data any) error {
	err := c.ShouldBindQuery(data)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return ValidationError(validationErrors)
	}

	return err
}
