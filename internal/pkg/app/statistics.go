package app

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/car-booking/pkg/statistics"
)

// NewStatisticsMW pushes every incoming API request to the statistics
// topic. A push failure is logged and the request proceeds: statistics
// must never cost a user request.
func NewStatisticsMW(stat *statistics.KafkaStatistics, logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		headers := ctx.GetReqHeaders()

		headersStr := ""
		for key, header := range headers {
			headersStr += key + ": " + strings.Join(header, ", ") + "\r\n"
		}

		req := statistics.Request{
			Method:  ctx.Method(),
			URL:     ctx.OriginalURL(),
			Body:    string(ctx.Body()),
			Headers: headersStr,
		}

		if err := stat.Push(ctx.Context(), req); err != nil {
			logger.Error("push request statistics", slog.String("error", err.Error()))
		}

		return ctx.Next()
	}
}
