package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every processed request with its status and latency
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// error handler writes response, so status is known only after it
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			logrus.WithFields(logrus.Fields{
				"method":    req.Method,
				"path":      req.URL.Path,
				"route":     c.Path(),
				"status":    res.Status,
				"latency":   time.Since(start).String(),
				"bytes":     res.Size,
				"requestId": res.Header().Get(echo.HeaderXRequestID),
			}).Info("request processed")

			return nil
		}
	}
}
