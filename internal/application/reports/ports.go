package reports

import "context"

// Document tabla lista para renderizar: título, líneas de resumen y filas.
// El exportador consume snapshots read-only; nada de lo que renderiza se
// vuelve a leer por el sistema (los formatos se generan, no se round-tripean).
type Document struct {
	Title   string
	Summary []string
	Headers []string
	Rows    [][]string
}

// DocumentGenerator colaborador externo que convierte un Document en un
// documento paginado (PDF). El core no conoce el layout interno.
type DocumentGenerator interface {
	Generate(ctx context.Context, doc Document) ([]byte, error)
}
