package middleware

import (
	"context"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// XRayMiddleware wraps requests in AWS X-Ray segments. Health checks are
// skipped to reduce noise.
func XRayMiddleware(segmentName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}

		ctx, seg := xray.BeginSegment(context.Background(), segmentName)
		defer func() {
			if seg != nil {
				seg.Close(nil)
			}
		}()

		if seg.GetHTTP() != nil {
			seg.GetHTTP().GetRequest().Method = c.Method()
			seg.GetHTTP().GetRequest().URL = c.OriginalURL()
			seg.GetHTTP().GetRequest().ClientIP = c.IP()
			seg.GetHTTP().GetRequest().UserAgent = c.Get("User-Agent")
		}

		seg.AddAnnotation("route", c.Path())
		seg.AddAnnotation("method", c.Method())

		c.Locals("xray-ctx", ctx)

		err := c.Next()

		if seg.GetHTTP() != nil {
			seg.GetHTTP().GetResponse().Status = c.Response().StatusCode()
		}

		if err != nil {
			log.Error().Str("request_id", RequestID(c)).Err(err).Msg("Request error")
			seg.AddError(err)
			if seg.GetHTTP() != nil {
				seg.GetHTTP().GetResponse().Status = fiber.StatusInternalServerError
			}
		}

		return err
	}
}

// XRayContext retrieves the X-Ray segment context from fiber locals.
func XRayContext(c *fiber.Ctx) context.Context {
	if ctx, ok := c.Locals("xray-ctx").(context.Context); ok {
		return ctx
	}
	return context.Background()
}
