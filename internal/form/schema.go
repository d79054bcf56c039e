package form

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed schemas.yaml
var schemasYAML []byte

// Widget tipo de control de un campo.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetImage    Widget = "image"  // una URL
	WidgetImages   Widget = "images" // lista de URLs
	WidgetNumber   Widget = "number"
	WidgetSelect   Widget = "select"
	WidgetCheckbox Widget = "checkbox"
	WidgetColor    Widget = "color"
)

func (w Widget) valid() bool {
	switch w {
	case WidgetText, WidgetImage, WidgetImages, WidgetNumber, WidgetSelect, WidgetCheckbox, WidgetColor:
		return true
	}
	return false
}

// Navigation destino tras guardar.
type Navigation string

const (
	NavList   Navigation = "list"   // lista de la entidad (vacío equivale a list)
	NavRecord Navigation = "record" // el registro guardado
	NavStay   Navigation = "stay"   // solo refresca la vista actual
)

func (n Navigation) valid() bool {
	switch n {
	case "", NavList, NavRecord, NavStay:
		return true
	}
	return false
}

// Rules reglas de validación local de un campo.
type Rules struct {
	Required  bool   `yaml:"required"`
	Positive  bool   `yaml:"positive"`
	MinLength int    `yaml:"minLength"`
	Pattern   string `yaml:"pattern"`
	Message   string `yaml:"message"`
}

// Field un campo del formulario.
type Field struct {
	Name   string `yaml:"name"`
	Label  string `yaml:"label"`
	Widget Widget `yaml:"widget"`
	// Source recurso del que salen las opciones de un select.
	Source string `yaml:"source"`
	Rules  Rules  `yaml:"rules"`

	pattern *regexp.Regexp
}

// Messages textos de notificación de la entidad.
type Messages struct {
	Created    string `yaml:"created"`
	Updated    string `yaml:"updated"`
	Deleted    string `yaml:"deleted"`
	DeleteHint string `yaml:"deleteHint"`
}

// Schema formulario declarativo de una entidad.
type Schema struct {
	Entity   string   `yaml:"entity"`
	Title    string   `yaml:"title"`
	Resource string   `yaml:"resource"`
	Scoped   bool     `yaml:"scoped"`
	ListPath string   `yaml:"listPath"`
	Messages Messages `yaml:"messages"`
	Fields   []Field  `yaml:"fields"`

	AfterCreate Navigation `yaml:"afterCreate"`
	AfterUpdate Navigation `yaml:"afterUpdate"`
}

// RecordPath ruta del registro id: /{id} para tiendas, /{storeId}/{listPath}/{id} para el resto.
func (sc *Schema) RecordPath(storeID, id string) string {
	if !sc.Scoped {
		return "/" + id
	}
	return "/" + storeID + "/" + sc.ListPath + "/" + id
}

// Schemas esquemas por nombre de entidad.
type Schemas map[string]*Schema

// Get devuelve el esquema de la entidad.
func (s Schemas) Get(entity string) (*Schema, error) {
	sc, ok := s[entity]
	if !ok {
		return nil, fmt.Errorf("form: entidad desconocida %q", entity)
	}
	return sc, nil
}

var loadDefault = sync.OnceValues(func() (Schemas, error) {
	return ParseSchemas(schemasYAML)
})

// Default esquemas embebidos del panel.
func Default() (Schemas, error) {
	return loadDefault()
}

// ParseSchemas lee el documento YAML y compila los patrones.
func ParseSchemas(data []byte) (Schemas, error) {
	var doc struct {
		Entities []*Schema `yaml:"entities"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("form: yaml: %w", err)
	}
	out := make(Schemas, len(doc.Entities))
	for _, sc := range doc.Entities {
		if sc.Entity == "" || sc.Resource == "" {
			return nil, fmt.Errorf("form: entidad sin nombre o recurso")
		}
		if _, dup := out[sc.Entity]; dup {
			return nil, fmt.Errorf("form: entidad duplicada %q", sc.Entity)
		}
		if !sc.AfterCreate.valid() || !sc.AfterUpdate.valid() {
			return nil, fmt.Errorf("form: %s: navegación desconocida", sc.Entity)
		}
		for i := range sc.Fields {
			f := &sc.Fields[i]
			if !f.Widget.valid() {
				return nil, fmt.Errorf("form: %s.%s: widget %q desconocido", sc.Entity, f.Name, f.Widget)
			}
			if f.Widget == WidgetSelect && f.Source == "" {
				return nil, fmt.Errorf("form: %s.%s: select sin source", sc.Entity, f.Name)
			}
			if f.Rules.Pattern != "" {
				re, err := regexp.Compile(f.Rules.Pattern)
				if err != nil {
					return nil, fmt.Errorf("form: %s.%s: pattern: %w", sc.Entity, f.Name, err)
				}
				f.pattern = re
			}
		}
		out[sc.Entity] = sc
	}
	return out, nil
}

// Values valores capturados: string, []string, bool o número según el widget.
type Values map[string]any

// FieldError primer campo que no pasa la validación local.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate revisa los campos en orden y devuelve el primero inválido.
func (s *Schema) Validate(values Values) error {
	for _, f := range s.Fields {
		if err := f.validate(values[f.Name]); err != nil {
			return err
		}
	}
	return nil
}

func (f Field) validate(v any) error {
	fail := func(def string) error {
		msg := f.Rules.Message
		if msg == "" {
			msg = def
		}
		return &FieldError{Field: f.Name, Message: msg}
	}

	switch f.Widget {
	case WidgetCheckbox:
		if v == nil {
			return nil
		}
		if _, ok := v.(bool); !ok {
			return fail("debe ser verdadero o falso")
		}
		return nil
	case WidgetImages:
		urls := stringList(v)
		if f.Rules.Required && len(urls) == 0 {
			return fail(f.Label + " es requerido")
		}
		return nil
	case WidgetNumber:
		if v == nil || v == "" {
			if f.Rules.Required {
				return fail(f.Label + " es requerido")
			}
			return nil
		}
		d, err := toDecimal(v)
		if err != nil {
			return fail(f.Label + " debe ser un número")
		}
		if f.Rules.Positive && !d.IsPositive() {
			return fail(f.Label + " debe ser mayor que cero")
		}
		return nil
	}

	s, _ := v.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		if f.Rules.Required {
			return fail(f.Label + " es requerido")
		}
		return nil
	}
	if f.Rules.MinLength > 0 && len([]rune(s)) < f.Rules.MinLength {
		return fail(fmt.Sprintf("%s debe tener al menos %d caracteres", f.Label, f.Rules.MinLength))
	}
	if f.pattern != nil && !f.pattern.MatchString(s) {
		return fail(f.Label + " no tiene el formato esperado")
	}
	return nil
}

// Body arma el cuerpo JSON de la API a partir de los valores.
func (s *Schema) Body(values Values) map[string]any {
	body := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		v, ok := values[f.Name]
		switch f.Widget {
		case WidgetImages:
			urls := stringList(v)
			imgs := make([]map[string]string, 0, len(urls))
			for _, u := range urls {
				imgs = append(imgs, map[string]string{"url": u})
			}
			body[f.Name] = imgs
		case WidgetNumber:
			if d, err := toDecimal(v); err == nil {
				body[f.Name] = d
			}
		case WidgetCheckbox:
			b, _ := v.(bool)
			body[f.Name] = b
		default:
			if ok {
				s, _ := v.(string)
				body[f.Name] = strings.TrimSpace(s)
			}
		}
	}
	return body
}

func stringList(v any) []string {
	var in []string
	switch t := v.(type) {
	case []string:
		in = t
	case string:
		in = []string{t}
	case []any:
		for _, x := range t {
			if s, ok := x.(string); ok {
				in = append(in, s)
			}
		}
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(t))
	}
	return decimal.Decimal{}, fmt.Errorf("form: número inválido %v", v)
}
