package batching

import "time"

// MaturityHours devuelve las horas completas transcurridas desde el alta de
// la bobina hasta now, con suelo en cero. Se compara contra las horas
// objetivo por calidad para juzgar si el stock está maduro.
func MaturityHours(entry, now time.Time) int {
	d := now.Sub(entry)
	if d < 0 {
		return 0
	}
	return int(d / time.Hour)
}

// TruncateToHour trunca al inicio de la hora del reloj de pared, conservando
// el huso horario. No es Truncate(time.Hour), que corta sobre el instante
// absoluto y se desvía en husos con offset fraccionario.
func TruncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
