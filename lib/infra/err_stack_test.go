package infra

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

func caller() Frame {
	var pcs [3]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	frame := caller()
	testcases := []struct {
		Frame
		format string
		check  func(t *testing.T, res string)
	}{
		{
			frame,
			"%s",
			func(t *testing.T, res string) { require.Equal(t, "err_stack_test.go", res) },
		},
		{
			frame,
			"%n",
			func(t *testing.T, res string) { require.Equal(t, "TestFrameFormat", res) },
		},
		{
			frame,
			"%v",
			func(t *testing.T, res string) { require.True(t, strings.HasPrefix(res, "err_stack_test.go:")) },
		},
		{
			frame,
			"%+s",
			func(t *testing.T, res string) {
				require.True(t, strings.HasPrefix(res, "github.com/benz9527/xdsa/lib/infra.TestFrameFormat\n\t"))
			},
		},
		{
			Frame(0),
			"%s",
			func(t *testing.T, res string) { require.Equal(t, "unknownFile", res) },
		},
		{
			Frame(0),
			"%n",
			func(t *testing.T, res string) { require.Equal(t, "unknownFunc", res) },
		},
		{
			Frame(0),
			"%d",
			func(t *testing.T, res string) { require.Equal(t, "0", res) },
		},
	}
	for _, tc := range testcases {
		tc.check(t, fmt.Sprintf(tc.format, tc.Frame))
	}
}

func TestFrameMarshalText(t *testing.T) {
	text, err := Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(text))

	text, err = caller().MarshalText()
	require.NoError(t, err)
	require.Contains(t, string(text), "TestFrameMarshalText")
}

var errTestSentinel = errors.New("[infra] sentinel")

func TestErrorStack(t *testing.T) {
	require.NoError(t, WrapErrorStack(nil))
	require.NoError(t, WrapErrorStackWithMessage(nil, "msg"))

	err := NewErrorStack("plain")
	require.Equal(t, "plain", err.Error())
	var es ErrorStack
	require.True(t, errors.As(err, &es))
	require.NotEmpty(t, es.Frames())

	err = WrapErrorStackWithMessage(errTestSentinel, "vertex 7")
	require.ErrorIs(t, err, errTestSentinel)
	require.Equal(t, "vertex 7: [infra] sentinel", err.Error())

	wrapped := WrapErrorStack(err)
	require.Same(t, err.(*errorStack), wrapped.(*errorStack))

	rewrapped := WrapErrorStackWithMessage(err, "outer")
	require.ErrorIs(t, rewrapped, errTestSentinel)
	require.Equal(t, err.(*errorStack).frames, rewrapped.(*errorStack).frames)
}

func TestErrorStackMarshalLogObject(t *testing.T) {
	err := WrapErrorStack(multierr.Combine(errTestSentinel, errors.New("second")))
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, err.(ErrorStack).MarshalLogObject(enc))
	require.Equal(t, err.Error(), enc.Fields["error"])
	require.Len(t, enc.Fields["causes"], 2)
	require.NotEmpty(t, enc.Fields["errorStack"])
}
