package schedule

import (
	"time"

	"github.com/corteja-app/booking-api/internal/httperr"
)

// ===============================
// Availability
// ===============================

// HoursRange é um intervalo de relógio "HH:MM" com início < fim.
type HoursRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Availability descreve o padrão semanal recorrente de um barbeiro:
// dias de trabalho, janela diária e pausas. Os dias usam time.Weekday
// (0 = domingo) como representação canônica; nomes de exibição ficam
// na borda HTTP.
type Availability struct {
	WorkDays  []time.Weekday `json:"work_days"`
	WorkHours HoursRange     `json:"work_hours"`
	Breaks    []HoursRange   `json:"breaks"`
}

// WorksOn informa se o dia da semana faz parte do padrão.
func (a *Availability) WorksOn(day time.Weekday) bool {
	for _, d := range a.WorkDays {
		if d == day {
			return true
		}
	}
	return false
}

// Validate garante a forma estrutural: janela obrigatória com início < fim,
// dias dentro de 0..6 e pausas internamente consistentes. Pausas vazias são
// permitidas (a lista pode ser vazia, não os campos de uma pausa declarada).
func (a *Availability) Validate() error {
	if a.WorkHours.Start == "" || a.WorkHours.End == "" {
		return httperr.ErrBusiness("missing_work_hours")
	}

	start, err := TimeToMinutes(a.WorkHours.Start)
	if err != nil {
		return httperr.ErrBusiness("invalid_work_hours")
	}
	end, err := TimeToMinutes(a.WorkHours.End)
	if err != nil {
		return httperr.ErrBusiness("invalid_work_hours")
	}
	if start >= end {
		return httperr.ErrBusiness("inverted_work_hours")
	}

	for _, d := range a.WorkDays {
		if d < time.Sunday || d > time.Saturday {
			return httperr.ErrBusiness("invalid_work_day")
		}
	}

	for _, b := range a.Breaks {
		bs, err := TimeToMinutes(b.Start)
		if err != nil {
			return httperr.ErrBusiness("invalid_break")
		}
		be, err := TimeToMinutes(b.End)
		if err != nil {
			return httperr.ErrBusiness("invalid_break")
		}
		if bs >= be {
			return httperr.ErrBusiness("inverted_break")
		}
	}

	return nil
}
