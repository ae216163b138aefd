package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
)

// RequestIDHeader carries the id assigned to each call by LoggingInterceptor.
const RequestIDHeader = "X-Request-Id"

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the procedure name, request id, duration, and any error codes/messages.
// Install it outside RequireAuth so rejected calls are logged too.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			requestID := req.Header().Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					slog.Warn("RPC error",
						"procedure", procedure,
						"request_id", requestID,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"duration_ms", duration,
					)
				} else {
					slog.Error("RPC error",
						"procedure", procedure,
						"request_id", requestID,
						"error", err,
						"duration_ms", duration,
					)
				}
				return resp, err
			}

			slog.Info("RPC ok",
				"procedure", procedure,
				"request_id", requestID,
				"duration_ms", duration,
			)
			resp.Header().Set(RequestIDHeader, requestID)
			return resp, nil
		}
	}
}
