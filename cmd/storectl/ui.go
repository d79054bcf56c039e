package main

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
)

// Variables de paquete para sustituir el portapapeles en tests.
var (
	clipboardWriteAll    = clipboard.WriteAll
	clipboardUnsupported = clipboard.Unsupported
)

// terminal notifica, navega y copia al portapapeles desde la línea de comandos.
type terminal struct {
	out io.Writer
}

func (t terminal) Success(msg string) {
	color.New(color.FgGreen).Fprintln(t.out, "✓ "+msg)
}

func (t terminal) Error(msg string) {
	color.New(color.FgRed).Fprintln(t.out, "✗ "+msg)
}

func (t terminal) Refresh() {}

func (t terminal) Push(path string) {
	color.New(color.FgCyan).Fprintf(t.out, "→ %s\n", path)
}

// Copy escribe en el portapapeles del sistema. Sin portapapeles (sin xclip/xsel, sesión remota)
// imprime el texto para copiarlo a mano.
func (t terminal) Copy(text string) error {
	if !clipboardUnsupported {
		if err := clipboardWriteAll(text); err == nil {
			return nil
		}
	}
	color.New(color.FgYellow).Fprintf(t.out, "portapapeles no disponible, copie el id: %s\n", text)
	return nil
}
