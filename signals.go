package transcode

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for transcode events.
var (
	SignalSchemaDefined  = capitan.NewSignal("transcode.schema.defined", "Schema instantiated")
	SignalDecodeComplete = capitan.NewSignal("transcode.decode.complete", "Schema decode finished")
	SignalEncodeComplete = capitan.NewSignal("transcode.encode.complete", "Schema encode finished")
	SignalBindComplete   = capitan.NewSignal("transcode.bind.complete", "Struct bind finished")
	SignalUnbindComplete = capitan.NewSignal("transcode.unbind.complete", "Struct unbind finished")
)

// Keys for typed event data.
var (
	KeyCodec      = capitan.NewStringKey("codec")
	KeyTypeName   = capitan.NewStringKey("type_name")
	KeySize       = capitan.NewIntKey("size")
	KeyFieldCount = capitan.NewIntKey("field_count")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// emitSchemaDefined emits an event when a schema is created.
func emitSchemaDefined(ctx context.Context, codec string) {
	capitan.Emit(ctx, SignalSchemaDefined,
		KeyCodec.Field(codec),
	)
}

// emitDecodeComplete emits an event when a schema decode finishes.
// size is the wire length for text codecs and 0 otherwise.
func emitDecodeComplete(ctx context.Context, codec string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCodec.Field(codec),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitEncodeComplete emits an event when a schema encode finishes.
func emitEncodeComplete(ctx context.Context, codec string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCodec.Field(codec),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitBindComplete emits an event when Bind finishes.
func emitBindComplete(ctx context.Context, typeName string, count int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(count),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalBindComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalBindComplete, fields...)
	}
}

// emitUnbindComplete emits an event when Unbind finishes.
func emitUnbindComplete(ctx context.Context, typeName string, count int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(count),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalUnbindComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalUnbindComplete, fields...)
	}
}
