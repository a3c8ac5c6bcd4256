// Package format agrupa el formato regional (es) de importes, fechas y búsquedas.
package format

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/transform"
)

// DateLayout formato de fecha usado en recibos y prompts.
const DateLayout = "02/01/2006 15:04"

var (
	printer = message.NewPrinter(language.Spanish)
	folder  = cases.Fold()
)

// Currency formatea un importe en dólares con separadores del español: 5,00 US$.
func Currency(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f) + " US$"
}

// Date formatea una fecha en hora local.
func Date(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// Fold normaliza un texto para comparaciones sin distinguir mayúsculas.
func Fold(s string) string {
	return folder.String(s)
}

// ContainsFold indica si s contiene term ignorando mayúsculas.
func ContainsFold(s, term string) bool {
	return strings.Contains(Fold(s), Fold(term))
}

// Windows1252Writer envuelve w para que el texto UTF-8 se escriba en Windows-1252,
// la codificación que espera Excel en español al abrir un CSV. Cerrar para volcar.
func Windows1252Writer(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, charmap.Windows1252.NewEncoder())
}
