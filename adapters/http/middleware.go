package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/pkg/apperror"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

const MsgInvalidBody = "Invalid request body"

// ErrorMiddleware renders the last error pushed with c.Error as {"error": ...}.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperror.From(c.Errors.Last().Err)
		status := apperror.ToHTTPStatus(appErr)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
		}
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", appErr, fields...)
		} else {
			log.Warn("Request rejected", append(fields, zap.String("reason", appErr.Details))...)
		}

		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}

// RequestLogger logs one line per request once the response is written.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Warn("HTTP request", fields...)
			return
		}
		log.Info("HTTP request", fields...)
	}
}

// Recovery turns a handler panic into a 500 with the generic error body.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error("Unhandled panic", fmt.Errorf("%v", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apperror.MsgInternal})
	})
}

// CORS allows the configured origins with credentials. Requests from other
// origins are refused by the CORS layer itself (403, no body).
func CORS(origins []string) (gin.HandlerFunc, error) {
	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CORS config: %w", err)
	}
	return cors.New(cfg), nil
}

// BodyLimit caps request bodies. Declared oversize bodies are refused up front,
// undeclared ones fail while being read.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.Error(apperror.NewTooLarge(limit, nil))
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": apperror.MsgEndpointNotFound})
}

// bindBody decodes JSON or urlencoded bodies. Other content types carry no
// fields, but struct validation still runs so required fields are reported.
func bindBody(c *gin.Context, obj any) error {
	var err error
	switch c.ContentType() {
	case binding.MIMEJSON:
		err = c.ShouldBindWith(obj, binding.JSON)
		if errors.Is(err, io.EOF) {
			err = binding.Validator.ValidateStruct(obj)
		}
	case binding.MIMEPOSTForm:
		err = c.ShouldBindWith(obj, binding.FormPost)
	default:
		err = binding.Validator.ValidateStruct(obj)
	}
	return err
}

// bindError maps a bindBody failure onto the public error taxonomy.
func bindError(err error, missingFieldsMsg string) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.NewTooLarge(tooLarge.Limit, err)
	}
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && missingFieldsMsg != "" {
		return apperror.NewInvalidInput(missingFieldsMsg, err)
	}
	return apperror.NewInvalidInput(MsgInvalidBody, err)
}
