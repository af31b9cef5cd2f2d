package logger

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.Logger
	once sync.Once

	buildLogger = func(cfg zap.Config) (*zap.Logger, error) {
		return cfg.Build(zap.AddCallerSkip(1))
	}
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	AdminIDKey   ContextKey = "admin_id"
)

// Init builds the process-wide logger. Development gets a colored console
// encoder, everything else structured JSON.
func Init(env string) {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		if env == "development" {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		l, err := buildLogger(cfg)
		if err != nil {
			panic(err)
		}
		log = l
	})
}

// GetLogger returns the underlying zap logger, falling back to a no-op
// logger when Init has not run (tests, tooling).
func GetLogger() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// WithContext returns a logger carrying the request and admin ids found in ctx.
func WithContext(ctx context.Context) *zap.Logger {
	base := GetLogger()
	if ctx == nil {
		return base
	}

	var fields []zap.Field
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok && reqID != "" {
		fields = append(fields, zap.String("request_id", reqID))
	}
	if adminID, ok := ctx.Value(AdminIDKey).(string); ok && adminID != "" {
		fields = append(fields, zap.String("admin_id", adminID))
	}

	if len(fields) > 0 {
		return base.With(fields...)
	}
	return base
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Info(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Error(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Debug(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	WithContext(ctx).Warn(msg, fields...)
}

// Sync flushes buffered entries; call on shutdown.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

// RequestEntry is one served HTTP request.
type RequestEntry struct {
	Method   string
	Path     string
	Route    string
	Status   int
	Latency  time.Duration
	ClientIP string
	Size     int
}

// LogRequest logs a served request; 5xx at error level, 4xx at warn.
func LogRequest(ctx context.Context, e RequestEntry) {
	fields := []zap.Field{
		zap.String("method", e.Method),
		zap.String("path", e.Path),
		zap.String("route", e.Route),
		zap.Int("status", e.Status),
		zap.Duration("latency", e.Latency),
		zap.String("client_ip", e.ClientIP),
		zap.Int("size", e.Size),
	}

	l := WithContext(ctx)
	switch {
	case e.Status >= 500:
		l.Error("HTTP Request", fields...)
	case e.Status >= 400:
		l.Warn("HTTP Request", fields...)
	default:
		l.Info("HTTP Request", fields...)
	}
}
