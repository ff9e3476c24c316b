package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := TimeToMinutes(tc.in)
		if err != nil {
			t.Fatalf("TimeToMinutes(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("TimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTimeToMinutes_InvalidFormat(t *testing.T) {
	cases := []string{
		"",
		"9:00",
		"09:0",
		"09-00",
		"24:00",
		"12:60",
		"ab:cd",
		"09:00:00",
		// dígito a dígito: nada de espaços, sinais ou lixo no fim
		"09:5x",
		" 9:30",
		"09: 5",
		"+9:30",
		"-9:30",
		"1e:30",
	}

	for _, in := range cases {
		if _, err := TimeToMinutes(in); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Fatalf("TimeToMinutes(%q) err = %v, want ErrInvalidTimeFormat", in, err)
		}
	}
}

func TestTimeToMinutes_RoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 5 {
			label := MinutesToTime(h*60 + m)
			minutes, err := TimeToMinutes(label)
			if err != nil {
				t.Fatalf("round trip %q: %v", label, err)
			}
			if MinutesToTime(minutes) != label {
				t.Fatalf("round trip %q produced %q", label, MinutesToTime(minutes))
			}
		}
	}
}

func TestDateToMinutes_UsesWallClock(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	at := time.Date(2026, 3, 10, 14, 45, 0, 0, loc)
	if got := DateToMinutes(at); got != 14*60+45 {
		t.Fatalf("DateToMinutes = %d, want %d", got, 14*60+45)
	}

	// o mesmo instante em UTC tem outro relógio de parede; a função deve
	// seguir o fuso do próprio timestamp, não normalizar
	utc := at.UTC()
	if DateToMinutes(utc) == DateToMinutes(at) {
		t.Fatalf("expected different wall-clock minutes across timezones")
	}
}
