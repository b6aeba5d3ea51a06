package log

import (
	"Recycle/config"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const projectName = "Recycle"

var L *zap.Logger

func init() {
	L = New(nil)
}

// Init 按配置重建全局 logger
func Init(conf *config.Log) {
	L = New(conf)
}

func New(conf *config.Log) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		index := strings.Index(caller.File, projectName)
		if index != -1 {
			enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
		} else {
			enc.AppendString(caller.TrimmedPath())
		}
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	level := zap.InfoLevel
	sink := stdout()
	if conf != nil {
		if lv, err := zapcore.ParseLevel(conf.Level); err == nil {
			level = lv
		}
		if conf.File != "" {
			rotate := &lumberjack.Logger{
				Filename:   conf.File,
				MaxSize:    conf.MaxSize,
				MaxBackups: conf.MaxBackups,
				MaxAge:     conf.MaxAge,
				Compress:   conf.Compress,
			}
			sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(rotate))
		}
	}

	core := zapcore.NewCore(encoder, sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// stdout 不透传 Sync，管道或终端上 fsync 会返回 EINVAL
func stdout() zapcore.WriteSyncer {
	return zapcore.Lock(zapcore.AddSync(struct{ io.Writer }{os.Stdout}))
}
