package batching_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidheshsarda/mis/internal/domain/batching"
)

func ts(day, hour int) time.Time {
	return time.Date(2025, 9, day, hour, 0, 0, 0, time.UTC)
}

// Grupo vacío: el candidato ancla la ventana.
func TestEvaluateWindow_GrupoVacioAnclaVentana(t *testing.T) {
	d := batching.EvaluateWindow(nil, ts(1, 6))

	assert.True(t, d.Allowed)
	assert.Equal(t, ts(1, 6), d.Anchor)
	assert.Equal(t, ts(1, 10), d.WindowEnd)
}

// Con ancla a las 06:00, la hora límite 10:00 es inclusiva y 11:00 rechaza.
func TestEvaluateWindow_LimiteInclusivo(t *testing.T) {
	entries := []time.Time{ts(1, 6)}

	boundary := batching.EvaluateWindow(entries, ts(1, 10))
	assert.True(t, boundary.Allowed, "la hora ancla+4 es parte de la ventana")

	inside := batching.EvaluateWindow(entries, ts(1, 9))
	assert.True(t, inside.Allowed)

	outside := batching.EvaluateWindow(entries, ts(1, 11))
	assert.False(t, outside.Allowed)
	assert.Equal(t, ts(1, 6), outside.Anchor)
	assert.Equal(t, ts(1, 10), outside.WindowEnd)
	assert.Contains(t, outside.Reason, "Window closed")
	assert.Contains(t, outside.Reason, "2025-09-01 06:00")
	assert.Contains(t, outside.Reason, "2025-09-01 10:00")
	assert.Contains(t, outside.Reason, "2025-09-01 11:00")
}

// El ancla del día es la alta más temprana de ese día, no la del grupo.
func TestEvaluateWindow_AnclaPorDia(t *testing.T) {
	entries := []time.Time{ts(1, 6), ts(1, 8)}

	d := batching.EvaluateWindow(entries, ts(1, 10))
	assert.True(t, d.Allowed)
	assert.Equal(t, ts(1, 6), d.Anchor)
}

// Ventana que cruza medianoche: alta a las 23:00 del día 1 permite
// continuar hasta las 03:00 del día 2; a las 04:00 ya no.
func TestEvaluateWindow_CruceDeMedianoche(t *testing.T) {
	entries := []time.Time{ts(1, 23)}

	cont := batching.EvaluateWindow(entries, ts(2, 2))
	require.True(t, cont.Allowed)
	assert.Equal(t, ts(1, 23), cont.Anchor, "la ventana sigue anclada al día anterior")
	assert.Equal(t, ts(2, 3), cont.WindowEnd)

	edge := batching.EvaluateWindow(entries, ts(2, 3))
	assert.True(t, edge.Allowed, "el fin de ventana es inclusivo también cruzando medianoche")

	late := batching.EvaluateWindow(entries, ts(2, 4))
	assert.False(t, late.Allowed)
}

// Sin cruce de medianoche (ancla temprana el día anterior), un candidato al
// día siguiente abre ventana nueva.
func TestEvaluateWindow_DiaSiguienteAbreVentanaNueva(t *testing.T) {
	entries := []time.Time{ts(1, 6)}

	// Nota: 06:00+4h no cruza al día 2, así que el día 2 arranca de cero...
	// pero el grupo solo sigue activo si conserva stock; eso lo decide el caso de uso.
	d := batching.EvaluateWindow(entries, ts(2, 9))
	assert.True(t, d.Allowed)
	assert.Equal(t, ts(2, 9), d.Anchor)
	assert.Equal(t, ts(2, 13), d.WindowEnd)
}

// Backdate global: cualquier candidato anterior a la primera alta histórica
// del grupo se rechaza, independientemente de la aritmética de ventanas.
func TestEvaluateWindow_BackdateSiempreRechazado(t *testing.T) {
	entries := []time.Time{ts(2, 9), ts(2, 11)}

	d := batching.EvaluateWindow(entries, ts(1, 22))
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "Backdated not allowed")
	assert.Equal(t, ts(2, 9), d.Anchor)
}

// Mismo día, hora anterior al ancla del día: rechazado aunque no sea
// backdate histórico.
func TestEvaluateWindow_HoraAnteriorAlAnclaDelDia(t *testing.T) {
	entries := []time.Time{ts(1, 23), ts(2, 6)}

	d := batching.EvaluateWindow(entries, ts(2, 5))
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "earlier than the first entry hour")
}

func TestMaturityHours(t *testing.T) {
	entry := ts(1, 6)

	assert.Equal(t, 0, batching.MaturityHours(entry, ts(1, 6)))
	assert.Equal(t, 5, batching.MaturityHours(entry, ts(1, 11)))
	assert.Equal(t, 28, batching.MaturityHours(entry, ts(2, 10)))
	assert.Equal(t, 0, batching.MaturityHours(entry, ts(1, 2)), "nunca negativo")
	// Media hora no cuenta como hora completa.
	assert.Equal(t, 4, batching.MaturityHours(entry, ts(1, 10).Add(30*time.Minute)))
}

func TestTimestamp(t *testing.T) {
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, ts(1, 14), batching.Timestamp(date, 14))
}
