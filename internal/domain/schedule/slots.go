package schedule

import (
	"sort"
	"time"
)

// SlotGridMinutes é a grade fixa de início de atendimento. Todos os serviços
// encaixam em múltiplos de 15 minutos, independente da duração.
const SlotGridMinutes = 15

// Interval é um intervalo ocupado em minutos desde a meia-noite, meio-aberto
// [Start, End).
type Interval struct {
	Start int
	End   int
}

// Overlaps aplica o teste de interseção de intervalos meio-abertos:
// [a,b) cruza [c,d) sse a < d && b > c.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// AvailableSlots calcula os horários de início válidos para um serviço de
// durationMin minutos, dado o padrão semanal do barbeiro e os intervalos já
// ocupados na data. Retorna rótulos "HH:MM" ordenados; vazio nunca é erro.
//
// Regras reproduzidas do produto:
//   - barbeiro inativo ou sem disponibilidade → vazio;
//   - dia fora de WorkDays → vazio;
//   - slot que ultrapassa o fechamento é descartado;
//   - encostar em pausa ou agendamento (fim == início) é permitido,
//     apenas sobreposição estrita exclui;
//   - pausas com campos vazios são ignoradas em vez de quebrar o cálculo.
func AvailableSlots(
	av *Availability,
	active bool,
	durationMin int,
	busy []Interval,
	date time.Time,
) []string {

	if av == nil || !active || durationMin <= 0 {
		return []string{}
	}

	if !av.WorksOn(date.Weekday()) {
		return []string{}
	}

	workStart, err := TimeToMinutes(av.WorkHours.Start)
	if err != nil {
		return []string{}
	}
	workEnd, err := TimeToMinutes(av.WorkHours.End)
	if err != nil {
		return []string{}
	}

	breaks := make([]Interval, 0, len(av.Breaks))
	for _, b := range av.Breaks {
		if b.Start == "" || b.End == "" {
			continue
		}
		bs, err := TimeToMinutes(b.Start)
		if err != nil {
			continue
		}
		be, err := TimeToMinutes(b.End)
		if err != nil {
			continue
		}
		breaks = append(breaks, Interval{Start: bs, End: be})
	}

	found := make(map[string]struct{})

	for t := workStart; t < workEnd; t += SlotGridMinutes {
		slot := Interval{Start: t, End: t + durationMin}

		if slot.End > workEnd {
			continue
		}

		blocked := false
		for _, b := range breaks {
			if slot.Overlaps(b) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		for _, b := range busy {
			if slot.Overlaps(b) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		found[MinutesToTime(t)] = struct{}{}
	}

	slots := make([]string, 0, len(found))
	for s := range found {
		slots = append(slots, s)
	}
	sort.Strings(slots)

	return slots
}
