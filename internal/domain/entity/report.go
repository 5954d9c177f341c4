package entity

// ReportRow fila de un reporte; las columnas las define el servicio remoto.
type ReportRow map[string]any
