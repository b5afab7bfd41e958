package beat

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const timeString = "2021-11-01T00:00:00+01:00"

var displayPattern = regexp.MustCompile(`^@[0-9]{3}$`)

func subject(t *testing.T) Beat {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, timeString)
	require.NoError(t, err)
	return FromTimestamp(ts)
}

func TestFromTimestamp(t *testing.T) {
	b := subject(t)
	require.Equal(t, 0, b.Beats())

	ts, ok := b.Timestamp()
	require.True(t, ok)
	require.Equal(t, timeString, ts.Format(time.RFC3339))
}

func TestFromTimestamp_NormalizesOffset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		beats int
		want  string
	}{
		{"utc", "2021-10-31T23:00:00Z", 0, "2021-11-01T00:00:00+01:00"},
		{"new york", "2021-11-01T07:00:00-05:00", 541, "2021-11-01T13:00:00+01:00"},
		{"already bmt", "2021-11-01T12:00:01+01:00", 500, "2021-11-01T12:00:01+01:00"},
		{"east of bmt", "2021-11-02T07:59:59+09:00", 999, "2021-11-01T23:59:59+01:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := time.Parse(time.RFC3339, tt.input)
			require.NoError(t, err)

			b := FromTimestamp(ts)
			require.Equal(t, tt.beats, b.Beats())
			got, _ := b.Timestamp()
			require.Equal(t, tt.want, got.Format(time.RFC3339))
		})
	}
}

func TestNowBeat_UsesClock(t *testing.T) {
	ts, err := time.Parse(time.RFC3339, "2021-11-01T18:00:01+01:00")
	require.NoError(t, err)

	b := NowBeat(FixedClock(ts))
	require.Equal(t, 750, b.Beats())
	require.Equal(t, "@750", b.String())
}

func TestFromBeatCount(t *testing.T) {
	b, err := FromBeatCount(42)
	require.NoError(t, err)
	require.Equal(t, 42, b.Beats())

	_, ok := b.Timestamp()
	require.False(t, ok)

	h, m, s := b.TimeOfDay()
	require.Equal(t, []int{1, 0, 28}, []int{h, m, s})
}

func TestString_ZeroPadded(t *testing.T) {
	tests := []struct {
		beats int
		want  string
	}{
		{0, "@000"},
		{7, "@007"},
		{42, "@042"},
		{500, "@500"},
		{999, "@999"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			b, err := FromBeatCount(tt.beats)
			require.NoError(t, err)
			require.Equal(t, tt.want, b.String())
		})
	}
}

func TestLookupURL(t *testing.T) {
	assert.Equal(t,
		"https://www.timeanddate.com/worldclock/fixedtime.html?day=1&month=11&year=2021&beats=0&p1=0",
		subject(t).LookupURL())

	b, err := FromBeatCount(42)
	require.NoError(t, err)
	assert.Equal(t,
		"https://www.timeanddate.com/worldclock/fixedtime.html?beats=42&p1=0",
		b.LookupURL())
}

func TestLookupURLWithBase(t *testing.T) {
	b, err := FromBeatCount(7)
	require.NoError(t, err)

	require.Equal(t, "http://localhost/clock?beats=7&p1=0", b.LookupURLWithBase("http://localhost/clock"))
	require.Equal(t, "http://localhost/clock?tz=1&beats=7&p1=0", b.LookupURLWithBase("http://localhost/clock?tz=1"))
}

func TestOn_AttachesBMTDay(t *testing.T) {
	b, err := FromBeatCount(42)
	require.NoError(t, err)

	// 23:30 UTC on the 31st is already the 1st in Biel.
	dated := b.On(time.Date(2021, 10, 31, 23, 30, 0, 0, time.UTC))

	ts, ok := dated.Timestamp()
	require.True(t, ok)
	require.Equal(t, "2021-11-01T01:00:28+01:00", ts.Format(time.RFC3339))
	require.Equal(t, 42, dated.Beats())
	require.Equal(t,
		"https://www.timeanddate.com/worldclock/fixedtime.html?day=1&month=11&year=2021&beats=42&p1=0",
		dated.LookupURL())

	// The receiver is unchanged.
	_, ok = b.Timestamp()
	require.False(t, ok)
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(subject(t))
	require.NoError(t, err)
	require.Equal(t, `{"beats":0,"datetime":"`+timeString+`"}`, string(data))

	b, err := FromBeatCount(42)
	require.NoError(t, err)
	data, err = json.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, `{"beats":42,"time":"01:00:28"}`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		beats     int
		timestamp string
		wantErr   error
		wantMsg   string
	}{
		{name: "datetime shape", input: `{"beats":0,"datetime":"2021-11-01T00:00:00+01:00"}`, beats: 0, timestamp: timeString},
		{name: "datetime in utc", input: `{"beats":0,"datetime":"2021-10-31T23:00:00Z"}`, beats: 0, timestamp: timeString},
		{name: "time shape", input: `{"beats":42,"time":"01:00:28"}`, beats: 42},
		{name: "beats only", input: `{"beats":999}`, beats: 999},
		{name: "beats too large", input: `{"beats":1000}`, wantErr: ErrInvalidBeatCount},
		{name: "negative beats", input: `{"beats":-3}`, wantErr: ErrInvalidBeatCount},
		{name: "empty object", input: `{}`, wantMsg: "beats is required"},
		{name: "datetime without beats", input: `{"datetime":"2021-11-01T12:00:01+01:00"}`, wantMsg: "beats is required"},
		{name: "beats disagree with datetime", input: `{"beats":5,"datetime":"2021-11-01T12:00:01+01:00"}`, wantMsg: "does not match datetime"},
		{name: "beats disagree with utc datetime", input: `{"beats":42,"datetime":"2021-10-31T23:00:00Z"}`, wantMsg: "(@000)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Beat
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantMsg != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.beats, b.Beats())

			ts, ok := b.Timestamp()
			require.Equal(t, tt.timestamp != "", ok)
			if ok {
				require.Equal(t, tt.timestamp, ts.Format(time.RFC3339))
			}
		})
	}
}

func TestUnmarshalJSON_BadDatetime(t *testing.T) {
	var b Beat
	err := json.Unmarshal([]byte(`{"beats":1,"datetime":"yesterday"}`), &b)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing datetime")
}

// ============================================================================
// Property-Based Tests
// ============================================================================

func TestProperty_ValidBeatCountDisplays(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(MinBeats, MaxBeats).Draw(t, "beats")

		b, err := FromBeatCount(n)
		require.NoError(t, err)
		if !displayPattern.MatchString(b.String()) {
			t.Fatalf("display %q does not match @NNN", b.String())
		}
	})
}

func TestProperty_InvalidBeatCountRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.OneOf(rapid.IntMax(MinBeats-1), rapid.IntMin(MaxBeats+1)).Draw(t, "beats")

		_, err := FromBeatCount(n)
		require.ErrorIs(t, err, ErrInvalidBeatCount)
	})
}

func TestProperty_JSONRoundTripKeepsBeats(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var original Beat
		if rapid.Bool().Draw(t, "withTimestamp") {
			unix := rapid.Int64Range(0, 4102444800).Draw(t, "unix")
			original = FromTimestamp(time.Unix(unix, 0))
		} else {
			n := rapid.IntRange(MinBeats, MaxBeats).Draw(t, "beats")
			var err error
			original, err = FromBeatCount(n)
			require.NoError(t, err)
		}

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Beat
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, original.Beats(), decoded.Beats())
	})
}
