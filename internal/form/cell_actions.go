package form

import (
	"context"
	"fmt"
)

// Clipboard destino de "copiar id".
type Clipboard interface {
	Copy(text string) error
}

// CellActions acciones del menú de cada fila de una tabla.
type CellActions struct {
	Schema    *Schema
	StoreID   string
	Transport Transport
	Notifier  Notifier
	Navigator Navigator
	Clipboard Clipboard
}

// CopyID copia el id de la fila y lo notifica.
func (a CellActions) CopyID(id string) error {
	if err := a.Clipboard.Copy(id); err != nil {
		a.Notifier.Error(FailureMessage)
		return err
	}
	a.Notifier.Success(fmt.Sprintf("ID de %s copiado al portapapeles.", a.Schema.Title))
	return nil
}

// Edit navega al formulario de edición de la fila.
func (a CellActions) Edit(id string) {
	a.Navigator.Push(a.Schema.RecordPath(a.StoreID, id))
}

// Row formulario de borrado de la fila: mismo flujo de diálogo que el formulario de edición,
// pero tras eliminar se queda en la lista.
func (a CellActions) Row(id string) (*Form, error) {
	return New(Config{
		Schema:       a.Schema,
		StoreID:      a.StoreID,
		ID:           id,
		Transport:    a.Transport,
		Notifier:     a.Notifier,
		Navigator:    a.Navigator,
		StayOnDelete: true,
	})
}

// Delete abre y confirma el borrado de la fila.
func (a CellActions) Delete(ctx context.Context, id string) error {
	f, err := a.Row(id)
	if err != nil {
		return err
	}
	if err := f.OpenDelete(); err != nil {
		return err
	}
	return f.ConfirmDelete(ctx)
}
