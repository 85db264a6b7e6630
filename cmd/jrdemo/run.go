package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	zap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philanthropists/json-result/pkg/jsonresult"
	"github.com/Philanthropists/json-result/pkg/result"
)

type report struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
}

type apiError struct {
	Msg string `json:"msg"`
}

func getLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return config.Build()
}

func getPayload(payload string) ([]byte, error) {
	if payload != "" {
		return []byte(payload), nil
	}

	return io.ReadAll(os.Stdin)
}

func main() {
	payload := flag.String("payload", "", "JSON payload to decode, stdin when empty")
	flag.Parse()

	logger, err := getLogger()
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	sample := result.Ok[report, apiError](report{ID: "r-1", Total: 123})
	encoded, err := jsonresult.Marshal(sample)
	if err != nil {
		logger.Fatal("failed to encode sample", zap.Error(err))
	}
	logger.Info("encoded sample success payload", zap.String("wire", string(encoded)))

	raw, err := getPayload(*payload)
	if err != nil {
		logger.Fatal("failed to read payload", zap.Error(err))
	}

	var decoded jsonresult.Wrapped[report, apiError]
	if err := json.Unmarshal(raw, &decoded); err != nil {
		if jsonresult.Unmatched.Has(err) {
			logger.Fatal("payload matched neither shape", zap.Error(err))
		}
		logger.Fatal("payload is not valid JSON", zap.Error(err))
	}

	if e, isErr := decoded.Err(); isErr {
		logger.Warn("payload decoded as error outcome", zap.String("msg", e.Msg))
		return
	}

	r := decoded.Value()
	logger.Info("payload decoded as success outcome",
		zap.String("id", r.ID),
		zap.Int("total", r.Total))
}
