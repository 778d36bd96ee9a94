package mihomo_test

import (
	"errors"
	"testing"

	"github.com/leighmacdonald/srinfo/internal/mihomo"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want mihomo.ErrorKind
	}{
		{nil, mihomo.KindUnknown},
		{errors.New("other"), mihomo.KindUnknown},
		{errors.Join(errors.New("dial"), mihomo.ErrRequest, mihomo.ErrFetchProfile), mihomo.KindRequest},
		{errors.Join(&mihomo.StatusError{StatusCode: 503, Status: "503 Service Unavailable"}, mihomo.ErrFetchProfile), mihomo.KindStatus},
		{errors.Join(errors.New("eof"), mihomo.ErrDecode), mihomo.KindDecode},
	}

	for _, testCase := range cases {
		require.Equal(t, testCase.want, mihomo.Classify(testCase.err))
	}

	require.Equal(t, "request", mihomo.KindRequest.String())
	require.Equal(t, "status", mihomo.KindStatus.String())
	require.Equal(t, "decode", mihomo.KindDecode.String())
	require.Equal(t, "unknown", mihomo.KindUnknown.String())
}

func TestStatusError(t *testing.T) {
	err := &mihomo.StatusError{StatusCode: 404, Status: "404 Not Found"}
	require.ErrorIs(t, err, mihomo.ErrResponseStatus)
	require.Equal(t, "api returned status 404 Not Found", err.Error())
}
