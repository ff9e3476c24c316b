package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeFormat indica um horário fora do padrão HH:MM.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// TimeToMinutes converte "HH:MM" em minutos desde 00:00. O formato é
// estrito: cinco bytes, dois dígitos de cada lado do ':', sem espaços
// ou sinais — esses valores circulam como chaves de slot e vão parar
// no documento de disponibilidade persistido.
func TimeToMinutes(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, ErrInvalidTimeFormat
	}

	for _, i := range [...]int{0, 1, 3, 4} {
		if clock[i] < '0' || clock[i] > '9' {
			return 0, ErrInvalidTimeFormat
		}
	}

	hours := int(clock[0]-'0')*10 + int(clock[1]-'0')
	minutes := int(clock[3]-'0')*10 + int(clock[4]-'0')

	if hours > 23 || minutes > 59 {
		return 0, ErrInvalidTimeFormat
	}

	return hours*60 + minutes, nil
}

// MinutesToTime formata minutos desde 00:00 de volta para "HH:MM".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DateToMinutes extrai os minutos desde a meia-noite local do próprio timestamp.
// Usa hora/minuto do relógio de parede (nunca normaliza para UTC) para que a
// matemática de slots fique sempre no fuso da barbearia.
func DateToMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
