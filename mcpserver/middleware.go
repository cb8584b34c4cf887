package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolMiddleware wraps a tool handler.
type ToolMiddleware func(server.ToolHandlerFunc) server.ToolHandlerFunc

type callIDKeyType struct{}

var callIDKey = callIDKeyType{} //nolint:gochecknoglobals

// CallIDFromContext returns the tool call ID stored by Logging, or "" if there is none.
func CallIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(callIDKey).(string)

	return id
}

// Chain applies middlewares so that the first one is the outermost.
func Chain(handler server.ToolHandlerFunc, middlewares ...ToolMiddleware) server.ToolHandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}

// Logging assigns every call a UUID and logs tool name, call ID, duration and outcome.
// Log level is Info for successful results, Warn for error results and Error for handler errors.
func Logging(logger *slog.Logger) ToolMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			callID := uuid.NewString()

			ctx = context.WithValue(ctx, callIDKey, callID)

			result, err := next(ctx, req)

			attrs := []any{
				slog.String("tool", req.Params.Name),
				slog.String("call_id", callID),
				slog.Duration("duration", time.Since(start)),
			}

			msg := "tool call"

			switch {
			case err != nil:
				logger.ErrorContext(ctx, msg, append(attrs, slog.String("error", err.Error()))...)
			case result != nil && result.IsError:
				logger.WarnContext(ctx, msg, append(attrs, slog.Bool("is_error", true))...)
			default:
				logger.InfoContext(ctx, msg, attrs...)
			}

			return result, err
		}
	}
}

// Recovery turns a panic in the handler into an error result and logs the panic with its stack.
func Recovery(logger *slog.Logger) ToolMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				attrs := []any{
					slog.String("panic", fmt.Sprintf("%v", rec)),
					slog.String("stack", string(debug.Stack())),
					slog.String("tool", req.Params.Name),
				}

				if callID := CallIDFromContext(ctx); callID != "" {
					attrs = append(attrs, slog.String("call_id", callID))
				}

				logger.ErrorContext(ctx, "panic recovered", attrs...)

				result = mcp.NewToolResultError("internal error while running " + req.Params.Name)
				err = nil
			}()

			return next(ctx, req)
		}
	}
}
