package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestGetLogData_RoundTrip(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	ctx := WithLogData(context.Background(), logData)

	assert.Same(t, logData, GetLogData(ctx))
	assert.Nil(t, GetLogData(context.Background()))
}

func TestLogData_FieldsEmitted(t *testing.T) {
	logger, buf := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("transactionCount", 3)
	stop := logData.AddTiming("listMs")
	stop()
	logData.Log().Info("done")

	entry := lastLine(t, buf)
	assert.Equal(t, "info", entry["loglevel"])
	assert.EqualValues(t, 3, entry["transactionCount"])
	assert.Contains(t, entry, "listMs")
}

func TestLoggingWrapper_Complete(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		logData.AddData("seen", true)
		w.WriteHeader(http.StatusOK)
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entry := lastLine(t, buf)
	assert.Equal(t, "Handler.Test.Complete", entry["msg"])
	assert.Equal(t, true, entry["seen"])
	assert.Contains(t, entry, "duration")
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		return errors.New("boom")
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entry := lastLine(t, buf)
	assert.Equal(t, "Handler.Test.Error", entry["msg"])
	assert.Equal(t, "error", entry["loglevel"])
	assert.Equal(t, "boom", entry["error"])
}

func TestSetLevel(t *testing.T) {
	logger, _ := newBufferedLogger()

	require.NoError(t, SetLevel(logger, "debug"))
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	assert.Error(t, SetLevel(logger, "chatty"))
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })
}
