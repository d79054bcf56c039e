// Package form implementa los formularios del panel: un formulario genérico guiado por el
// esquema de la entidad, con su ciclo enviar/eliminar y las acciones por fila de las tablas.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State estado del envío.
type State int

const (
	Idle State = iota
	Submitting
)

func (s State) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}

// Dialog estado del diálogo de confirmación de borrado.
type Dialog int

const (
	Closed Dialog = iota
	Open
)

func (d Dialog) String() string {
	if d == Open {
		return "open"
	}
	return "closed"
}

var (
	// ErrBusy: ya hay un envío en curso (el control está deshabilitado).
	ErrBusy = errors.New("form: envío en curso")
	// ErrDialogClosed: se confirmó un borrado sin abrir el diálogo.
	ErrDialogClosed = errors.New("form: diálogo de borrado cerrado")
	// ErrNothingToDelete: el formulario es de alta.
	ErrNothingToDelete = errors.New("form: no hay registro que eliminar")
)

// FailureMessage notificación genérica de error al guardar.
const FailureMessage = "Algo salió mal."

// Transport llamadas a la API. Lo implementa pkg/client. Create devuelve el id del registro creado.
type Transport interface {
	Create(ctx context.Context, storeID, resource string, body any) (string, error)
	Update(ctx context.Context, storeID, resource, id string, body any) error
	Delete(ctx context.Context, storeID, resource, id string) error
}

// Notifier muestra avisos al usuario.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator refresca y navega la vista.
type Navigator interface {
	Refresh()
	Push(path string)
}

// Config dependencias de un formulario.
type Config struct {
	Schema  *Schema
	StoreID string
	// ID vacío = alta; si no, edición del registro.
	ID        string
	Transport Transport
	Notifier  Notifier
	Navigator Navigator
	// StayOnDelete: tras eliminar solo refresca la vista actual (acciones de fila).
	StayOnDelete bool
}

// Form formulario de una entidad. Seguro para uso concurrente.
type Form struct {
	cfg Config

	mu     sync.Mutex
	state  State
	dialog Dialog
}

// New valida la configuración y construye el formulario en idle/closed.
func New(cfg Config) (*Form, error) {
	switch {
	case cfg.Schema == nil:
		return nil, fmt.Errorf("form: schema requerido")
	case cfg.Transport == nil || cfg.Notifier == nil || cfg.Navigator == nil:
		return nil, fmt.Errorf("form: transport, notifier y navigator son requeridos")
	case cfg.Schema.Scoped && cfg.StoreID == "":
		return nil, fmt.Errorf("form: %s requiere storeId", cfg.Schema.Entity)
	}
	return &Form{cfg: cfg}, nil
}

// Editing indica si el formulario edita un registro existente.
func (f *Form) Editing() bool { return f.cfg.ID != "" }

// State devuelve el estado actual.
func (f *Form) State() (State, Dialog) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.dialog
}

// ListPath ruta de la lista de la entidad, destino tras guardar o eliminar.
func (f *Form) ListPath() string {
	if !f.cfg.Schema.Scoped {
		return "/" + f.cfg.Schema.ListPath
	}
	return "/" + f.cfg.StoreID + "/" + f.cfg.Schema.ListPath
}

// begin pasa a submitting; ErrBusy si ya lo estaba.
func (f *Form) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Submitting {
		return ErrBusy
	}
	f.state = Submitting
	return nil
}

// Submit valida localmente y, si pasa, crea o actualiza. Un error de validación no cambia el estado
// ni llama a la API. Los errores de la API se notifican y también se devuelven.
func (f *Form) Submit(ctx context.Context, values Values) error {
	sc := f.cfg.Schema
	if err := sc.Validate(values); err != nil {
		return err
	}
	if err := f.begin(); err != nil {
		return err
	}

	body := sc.Body(values)
	var (
		id  = f.cfg.ID
		err error
	)
	if f.Editing() {
		err = f.cfg.Transport.Update(ctx, f.cfg.StoreID, sc.Resource, id, body)
	} else {
		id, err = f.cfg.Transport.Create(ctx, f.cfg.StoreID, sc.Resource, body)
	}

	f.mu.Lock()
	f.state = Idle
	f.mu.Unlock()

	if err != nil {
		f.cfg.Notifier.Error(FailureMessage)
		return err
	}
	msg, nav := sc.Messages.Created, sc.AfterCreate
	if f.Editing() {
		msg, nav = sc.Messages.Updated, sc.AfterUpdate
	}
	f.cfg.Notifier.Success(msg)
	f.cfg.Navigator.Refresh()
	switch {
	case nav == NavStay:
	case nav == NavRecord && id != "":
		f.cfg.Navigator.Push(sc.RecordPath(f.cfg.StoreID, id))
	default:
		f.cfg.Navigator.Push(f.ListPath())
	}
	return nil
}

// OpenDelete abre el diálogo de confirmación (botón de papelera).
func (f *Form) OpenDelete() error {
	if !f.Editing() {
		return ErrNothingToDelete
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Submitting {
		return ErrBusy
	}
	f.dialog = Open
	return nil
}

// CloseDelete cancela el diálogo.
func (f *Form) CloseDelete() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Idle {
		f.dialog = Closed
	}
}

// ConfirmDelete elimina el registro. Con éxito o error el diálogo termina cerrado y el estado idle;
// el fallo siempre muestra la pista de la entidad.
func (f *Form) ConfirmDelete(ctx context.Context) error {
	f.mu.Lock()
	switch {
	case f.state == Submitting:
		f.mu.Unlock()
		return ErrBusy
	case f.dialog != Open:
		f.mu.Unlock()
		return ErrDialogClosed
	}
	f.state = Submitting
	f.mu.Unlock()

	sc := f.cfg.Schema
	err := f.cfg.Transport.Delete(ctx, f.cfg.StoreID, sc.Resource, f.cfg.ID)

	f.mu.Lock()
	f.state = Idle
	f.dialog = Closed
	f.mu.Unlock()

	if err != nil {
		f.cfg.Notifier.Error(sc.Messages.DeleteHint)
		return err
	}
	f.cfg.Notifier.Success(sc.Messages.Deleted)
	f.cfg.Navigator.Refresh()
	if !f.cfg.StayOnDelete {
		f.cfg.Navigator.Push(f.ListPath())
	}
	return nil
}
