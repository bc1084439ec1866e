package logging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.FatalLevel, GetLevel("fatal"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("whatever"))
}

func TestSetup_LogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "service")
	Setup(LoggerSetupParams{
		LogFileName: logFile,
		LogLevel:    "warn",
	})
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})

	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.DirExists(t, filepath.Dir(logFile))
}

type transportMock struct {
	events []*sentry.Event
}

func (t *transportMock) Configure(sentry.ClientOptions)          {}
func (t *transportMock) SendEvent(event *sentry.Event)           { t.events = append(t.events, event) }
func (t *transportMock) Flush(_ time.Duration) bool              { return true }
func (t *transportMock) FlushWithContext(_ context.Context) bool { return true }
func (t *transportMock) Close()                                  {}

func TestSentryHook_Fire(t *testing.T) {
	transport := &transportMock{}
	client, err := sentry.NewClient(sentry.ClientOptions{Transport: transport})
	require.NoError(t, err)
	hub := sentry.NewHub(client, sentry.NewScope())

	hook := newSentryHookWithHub(hub, []logrus.Level{logrus.ErrorLevel})
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	logger := logrus.New()
	logger.AddHook(hook)
	logger.WithField("user", "u-1").WithError(errors.New("boom")).Error("record completion failed")
	logger.Warn("not forwarded")

	require.Len(t, transport.events, 1)
	event := transport.events[0]
	assert.Equal(t, "record completion failed", event.Message)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "u-1", event.Extra["user"])
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "boom", event.Exception[0].Value)
}

func TestSentryHook_NoClient(t *testing.T) {
	hook := newSentryHookWithHub(sentry.NewHub(nil, sentry.NewScope()), []logrus.Level{logrus.ErrorLevel})
	assert.Error(t, hook.Fire(&logrus.Entry{Level: logrus.ErrorLevel}))
}
