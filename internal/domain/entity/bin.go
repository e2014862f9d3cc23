package entity

// Bin es una posición física de almacenamiento de bobinas. Un bin mantiene
// como mucho un grupo "activo" a la vez (el último grupo con stock neto
// positivo).
type Bin struct {
	BinID int
	BinNo int
}

// JuteQuality es la calidad de yute de referencia (solo lectura aquí).
type JuteQuality struct {
	ID   int
	Name string
}

// MaturityTarget son las horas de maduración objetivo por calidad de yute
// antes de que el stock se considere apto para salida.
type MaturityTarget struct {
	JuteQualityID int
	MaturityHours int
}
