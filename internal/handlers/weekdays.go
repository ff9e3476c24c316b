package handlers

import "time"

// Nomes de exibição em pt-BR. A representação canônica do padrão semanal
// é sempre time.Weekday (0 = domingo); os nomes existem só nesta borda.
var weekdayNames = [7]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

func weekdayName(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return weekdayNames[d]
}

func weekdayNamesFor(days []time.Weekday) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, weekdayName(d))
	}
	return names
}
