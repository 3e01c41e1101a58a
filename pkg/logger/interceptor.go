package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	"homework_tracker/pkg/ctxdata"
)

// NewMetadataUnaryInterceptor copies trace and caller identity from
// incoming metadata into the request context.
func NewMetadataUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("x-trace-id"); len(values) > 0 {
				ctx = ctxdata.WithTraceID(ctx, values[0])
			}
			ids, roles := md.Get("x-user-id"), md.Get("x-user-role")
			if len(ids) > 0 && len(roles) > 0 {
				ctx = ctxdata.WithRawUser(ctx, ids[0], roles[0])
			}
		}

		return handler(ctx, req)
	}
}

func NewUnaryLoggingInterceptor(l *Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		clientIP := "unknown"
		if p, ok := peer.FromContext(ctx); ok {
			clientIP = p.Addr.String()
		}

		l.DebugContext(ctx, "grpc unary request",
			zap.String("method", info.FullMethod),
			zap.String("client_ip", clientIP),
		)

		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			l.ErrorContext(ctx, "request failed", append(fields, zap.Error(err))...)
		} else {
			l.InfoContext(ctx, "request handled", fields...)
		}

		return resp, err
	}
}
