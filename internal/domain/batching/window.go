package batching

import (
	"fmt"
	"time"
)

// WindowHours es el ancho de la ventana de agrupación por bin: todas las
// altas de un grupo deben caer dentro de las 4 horas ancladas a la primera
// alta (límite inclusivo).
const WindowHours = 4

// Timestamp combina una fecha de parte y la hora entera 0-23 del modelo
// legado (las altas no llevan minutos).
func Timestamp(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

// WindowDecision es el resultado de evaluar una alta candidata contra la
// ventana de 4 horas de un grupo. En rechazo, Reason lleva ancla, fin de
// ventana y candidato para que el operario entienda el porqué.
type WindowDecision struct {
	Allowed   bool
	Anchor    time.Time
	WindowEnd time.Time
	Candidate time.Time
	Reason    string
}

// EvaluateWindow decide si un candidato (instante con minuto cero) puede
// unirse a un grupo cuyas altas existentes son entries. Se evalúa en
// fresco en cada alta; no hay estado persistido más allá del propio libro.
//
//  1. Grupo sin altas: el candidato ancla la ventana [candidato, +4h].
//  2. Hay alta en la fecha del candidato: ancla = primera alta de ese día.
//  3. Si no, la primera alta del día anterior continúa la ventana cuando
//     su +4h cruza la medianoche hacia la fecha del candidato.
//  4. Si no, el candidato abre ventana nueva.
//
// Regla global independiente: un candidato estrictamente anterior a la
// primera alta histórica del grupo se rechaza siempre (anti-backdate).
func EvaluateWindow(entries []time.Time, candidate time.Time) WindowDecision {
	if len(entries) == 0 {
		return WindowDecision{
			Allowed:   true,
			Anchor:    candidate,
			WindowEnd: candidate.Add(WindowHours * time.Hour),
			Candidate: candidate,
		}
	}

	earliest := entries[0]
	for _, e := range entries[1:] {
		if e.Before(earliest) {
			earliest = e
		}
	}
	if candidate.Before(earliest) {
		return WindowDecision{
			Allowed:   false,
			Anchor:    earliest,
			WindowEnd: earliest.Add(WindowHours * time.Hour),
			Candidate: candidate,
			Reason: fmt.Sprintf("Backdated not allowed. Earliest group entry %s; candidate %s precedes it.",
				earliest.Format("2006-01-02 15:00"), candidate.Format("2006-01-02 15:00")),
		}
	}

	anchor, windowEnd, ok := windowForDay(entries, candidate)
	if !ok {
		// Ni el día del candidato ni el anterior alcanzan: ventana nueva.
		anchor = candidate
		windowEnd = candidate.Add(WindowHours * time.Hour)
	}

	if sameDay(anchor, candidate) && candidate.Before(anchor) {
		return WindowDecision{
			Allowed:   false,
			Anchor:    anchor,
			WindowEnd: windowEnd,
			Candidate: candidate,
			Reason: fmt.Sprintf("Cannot insert earlier than the first entry hour for the day in this group (%s).",
				anchor.Format("2006-01-02 15:00")),
		}
	}

	if candidate.After(windowEnd) {
		return WindowDecision{
			Allowed:   false,
			Anchor:    anchor,
			WindowEnd: windowEnd,
			Candidate: candidate,
			Reason: fmt.Sprintf("Window closed. Base %s, allowed until %s; candidate %s outside %d-hour window.",
				anchor.Format("2006-01-02 15:00"), windowEnd.Format("2006-01-02 15:00"),
				candidate.Format("2006-01-02 15:00"), WindowHours),
		}
	}

	return WindowDecision{Allowed: true, Anchor: anchor, WindowEnd: windowEnd, Candidate: candidate}
}

// windowForDay resuelve ancla y fin para la fecha del candidato: primera
// alta del mismo día, o continuación de la ventana del día anterior cuando
// esta cruza la medianoche.
func windowForDay(entries []time.Time, candidate time.Time) (anchor, windowEnd time.Time, ok bool) {
	var sameDayFirst, prevDayFirst time.Time
	prevDay := candidate.AddDate(0, 0, -1)
	for _, e := range entries {
		switch {
		case sameDay(e, candidate):
			if sameDayFirst.IsZero() || e.Before(sameDayFirst) {
				sameDayFirst = e
			}
		case sameDay(e, prevDay):
			if prevDayFirst.IsZero() || e.Before(prevDayFirst) {
				prevDayFirst = e
			}
		}
	}
	if !sameDayFirst.IsZero() {
		return sameDayFirst, sameDayFirst.Add(WindowHours * time.Hour), true
	}
	if !prevDayFirst.IsZero() {
		end := prevDayFirst.Add(WindowHours * time.Hour)
		if sameDay(end, candidate) {
			return prevDayFirst, end, true
		}
	}
	return time.Time{}, time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
