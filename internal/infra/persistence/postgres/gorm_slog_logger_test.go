package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func selectOne() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	gormLogger := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})
	requestLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	gormLogger.Trace(ctx, time.Now(), selectOne, errors.New("connection reset"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "GORM query failed")
	assert.Contains(t, scoped.String(), "request_id=req-1")
}

func TestGormSlogLogger_Trace_IgnoresRecordNotFound(t *testing.T) {
	var base bytes.Buffer
	gormLogger := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})

	gormLogger.Trace(context.Background(), time.Now(), selectOne, gorm.ErrRecordNotFound)

	assert.Empty(t, base.String())
}

func TestGormSlogLogger_Trace_LogsQueriesInDebug(t *testing.T) {
	var base bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	gormLogger := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), cfg)

	gormLogger.Trace(context.Background(), time.Now(), selectOne, nil)

	assert.Contains(t, base.String(), "GORM query")
	assert.Contains(t, base.String(), "SELECT 1")
}
