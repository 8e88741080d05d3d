package apiclient

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	apperrors "github.com/xyz-asif/ecocheck-admin/pkg/errors"
)

type rec struct {
	ID ID `json:"id"`
}

func TestDecodeList_Shapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"bare array", `[{"id":"a"},{"id":"b"}]`, 2},
		{"data envelope", `{"data":[{"id":"a"}]}`, 1},
		{"success envelope", `{"success":true,"data":[{"id":"a"},{"id":"b"},{"id":"c"}]}`, 3},
		{"named key", `{"reports":[{"id":"a"}]}`, 1},
		{"nested data", `{"success":true,"data":{"reports":[{"id":"a"}]}}`, 1},
		{"null", `null`, 0},
		{"empty", ``, 0},
		{"null data", `{"data":null}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := DecodeList[rec](json.RawMessage(tt.raw), "reports")
			require.NoError(t, err)
			require.NotNil(t, items)
			require.Len(t, items, tt.want)
		})
	}
}

func TestDecodeList_PreservesOrder(t *testing.T) {
	items, err := DecodeList[rec](json.RawMessage(`[{"id":"3"},{"id":"1"},{"id":"2"}]`))
	require.NoError(t, err)
	require.Equal(t, []rec{{"3"}, {"1"}, {"2"}}, items)
}

func TestDecodeList_UnexpectedShape(t *testing.T) {
	_, err := DecodeList[rec](json.RawMessage(`{"success":false,"message":"nope"}`))
	require.ErrorIs(t, err, apperrors.ErrServer)

	_, err = DecodeList[rec](json.RawMessage(`"text"`))
	require.ErrorIs(t, err, apperrors.ErrServer)
}

func TestDecodeObject(t *testing.T) {
	got, err := DecodeObject[rec](json.RawMessage(`{"success":true,"data":{"id":"x"}}`))
	require.NoError(t, err)
	require.Equal(t, ID("x"), got.ID)

	got, err = DecodeObject[rec](json.RawMessage(`{"id":"y"}`))
	require.NoError(t, err)
	require.Equal(t, ID("y"), got.ID)

	got, err = DecodeObject[rec](json.RawMessage(`{"message":"ok","admin":{"id":"z"}}`), "admin")
	require.NoError(t, err)
	require.Equal(t, ID("z"), got.ID)
}

func TestID_Unmarshal(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
		D ID `json:"d"`
		E ID `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a":"abc","b":42,"c":{"_id":"m1","name":"x"},"d":{"id":7},"e":null}`), &v)
	require.NoError(t, err)
	require.Equal(t, ID("abc"), v.A)
	require.Equal(t, ID("42"), v.B)
	require.Equal(t, ID("m1"), v.C)
	require.Equal(t, ID("7"), v.D)
	require.Equal(t, ID(""), v.E)
}

func TestTimestamp_RoundTripAndAbsent(t *testing.T) {
	var v struct {
		At      Timestamp `json:"at"`
		Missing Timestamp `json:"missing"`
		Garbage Timestamp `json:"garbage"`
		Millis  Timestamp `json:"millis"`
	}
	err := json.Unmarshal([]byte(`{"at":"2024-01-01T10:00:00Z","missing":null,"garbage":"yesterday","millis":1704103200000}`), &v)
	require.NoError(t, err)

	require.True(t, v.At.Present())
	require.True(t, v.At.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))
	require.False(t, v.Missing.Present())
	require.False(t, v.Garbage.Present())
	require.True(t, v.Millis.Equal(v.At.Time))

	out, err := json.Marshal(v.Missing)
	require.NoError(t, err)
	require.Equal(t, "null", string(out))
}

func TestNegotiate(t *testing.T) {
	c, ok := Negotiate("Login logs", &Error{Kind: KindNotFound, Status: 404})
	require.True(t, ok)
	require.False(t, c.Supported)
	require.Equal(t, "unsupported", c.Reason)
	require.Contains(t, c.Message, "not available")

	c, ok = Negotiate("Admin management", &Error{Kind: KindForbidden, Status: 403, Message: "Superadmin only"})
	require.True(t, ok)
	require.Equal(t, "Superadmin only", c.Message)

	_, ok = Negotiate("Admin management", &Error{Kind: KindServer, Status: 500})
	require.False(t, ok)
}
