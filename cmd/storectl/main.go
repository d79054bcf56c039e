// storectl administra tiendas desde la terminal usando la API REST.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/form"
	"github.com/jhoicas/store-admin-api/pkg/client"
)

var (
	profilePath string
	apiOverride string
	storeFlag   string
)

var rootCmd = &cobra.Command{
	Use:           "storectl",
	Short:         "Administra tiendas, billboards, categorías, productos, tallas y colores",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", defaultProfilePath(), "archivo de perfil TOML")
	rootCmd.PersistentFlags().StringVar(&apiOverride, "api", "", "URL base de la API (sobrescribe el perfil)")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "ID de la tienda (sobrescribe el perfil)")

	loginCmd.Flags().String("email", "", "email")
	loginCmd.Flags().String("password", "", "password")
	registerCmd.Flags().String("email", "", "email")
	registerCmd.Flags().String("password", "", "password")
	registerCmd.Flags().String("name", "", "nombre")
	for _, c := range []*cobra.Command{createCmd, updateCmd} {
		c.Flags().StringArray("set", nil, "campo=valor (imágenes separadas por coma)")
	}
	deleteCmd.Flags().Bool("yes", false, "no pedir confirmación")
	listCmd.Flags().StringArray("filter", nil, "filtro=valor (productos)")
	catalogCmd.Flags().String("out", "catalogo.pdf", "archivo de salida")

	storesCmd.AddCommand(storesListCmd, storesCreateCmd, storesUseCmd)
	rootCmd.AddCommand(loginCmd, registerCmd, storesCmd, listCmd, createCmd, updateCmd, deleteCmd, copyIDCmd, optionsCmd, catalogCmd)
}

// session perfil cargado más el cliente listo para usar.
type session struct {
	profile *Profile
	api     *client.Client
	term    terminal
}

func newSession(cmd *cobra.Command) (*session, error) {
	p, err := loadProfile(profilePath)
	if err != nil {
		return nil, err
	}
	if apiOverride != "" {
		p.API = apiOverride
	}
	if storeFlag != "" {
		p.Store = storeFlag
	}
	return &session{profile: p, api: client.New(p.API, p.Token), term: terminal{out: cmd.OutOrStdout()}}, nil
}

func (s *session) schema(entity string) (*form.Schema, error) {
	all, err := form.Default()
	if err != nil {
		return nil, err
	}
	return all.Get(entity)
}

func (s *session) storeFor(sc *form.Schema) (string, error) {
	if sc.Scoped && s.profile.Store == "" {
		return "", fmt.Errorf("sin tienda: usa --store o 'storectl stores use <id>'")
	}
	return s.profile.Store, nil
}

func (s *session) newForm(sc *form.Schema, id string) (*form.Form, error) {
	storeID, err := s.storeFor(sc)
	if err != nil {
		return nil, err
	}
	return form.New(form.Config{
		Schema:    sc,
		StoreID:   storeID,
		ID:        id,
		Transport: s.api,
		Notifier:  s.term,
		Navigator: s.term,
	})
}

// ── Auth ──────────────────────────────────────────────────────────────────────

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Inicia sesión y guarda el token en el perfil",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		out, err := s.api.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		s.profile.Token = out.Token
		if err := saveProfile(profilePath, s.profile); err != nil {
			return err
		}
		s.term.Success("Sesión iniciada como " + out.User.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Crea un usuario",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		var in dto.RegisterRequest
		in.Email, _ = cmd.Flags().GetString("email")
		in.Password, _ = cmd.Flags().GetString("password")
		in.Name, _ = cmd.Flags().GetString("name")
		user, err := s.api.Register(cmd.Context(), in)
		if err != nil {
			return err
		}
		s.term.Success("Usuario creado: " + user.Email)
		return nil
	},
}

// ── Tiendas ───────────────────────────────────────────────────────────────────

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Tiendas del usuario",
}

var storesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista las tiendas propias",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		stores, err := s.api.Stores(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\t")
		for _, st := range stores {
			mark := ""
			if st.ID == s.profile.Store {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", st.ID, st.Name, mark)
		}
		return w.Flush()
	},
}

var storesCreateCmd = &cobra.Command{
	Use:   "create <nombre>",
	Short: "Crea una tienda y la deja como actual",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		st, err := s.api.CreateStore(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		s.profile.Store = st.ID
		if err := saveProfile(profilePath, s.profile); err != nil {
			return err
		}
		s.term.Success("Tienda creada.")
		s.term.Push("/" + st.ID)
		return nil
	},
}

var storesUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Fija la tienda actual del perfil",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		var got dto.StoreResponse
		if err := s.api.Get(cmd.Context(), "", "stores", args[0], &got); err != nil {
			return err
		}
		s.profile.Store = got.ID
		if err := saveProfile(profilePath, s.profile); err != nil {
			return err
		}
		s.term.Push("/" + got.ID)
		return nil
	},
}

// ── Entidades ─────────────────────────────────────────────────────────────────

var listCmd = &cobra.Command{
	Use:   "list <entidad>",
	Short: "Lista billboards, categorías, tallas, colores o productos de la tienda",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		sc, err := s.schema(args[0])
		if err != nil {
			return err
		}
		storeID, err := s.storeFor(sc)
		if err != nil {
			return err
		}
		filters, _ := cmd.Flags().GetStringArray("filter")
		query, err := parseFilters(filters)
		if err != nil {
			return err
		}
		var out dto.ListResponse[map[string]any]
		if err := s.api.List(cmd.Context(), storeID, sc.Resource, query, &out); err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), sc, out.Items)
	},
}

var createCmd = &cobra.Command{
	Use:   "create <entidad>",
	Short: "Crea un registro (--set campo=valor)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return submit(cmd, args[0], "")
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <entidad> <id>",
	Short: "Reemplaza un registro (--set campo=valor con todos los campos)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return submit(cmd, args[0], args[1])
	},
}

func submit(cmd *cobra.Command, entity, id string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	sc, err := s.schema(entity)
	if err != nil {
		return err
	}
	sets, _ := cmd.Flags().GetStringArray("set")
	values, err := parseValues(sc, sets)
	if err != nil {
		return err
	}
	f, err := s.newForm(sc, id)
	if err != nil {
		return err
	}
	return f.Submit(cmd.Context(), values)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <entidad> <id>",
	Short: "Elimina un registro previa confirmación",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		sc, err := s.schema(args[0])
		if err != nil {
			return err
		}
		f, err := s.newForm(sc, args[1])
		if err != nil {
			return err
		}
		if err := f.OpenDelete(); err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(cmd, fmt.Sprintf("¿Eliminar %s %s? Esta acción no se puede deshacer [s/N]: ", sc.Title, args[1])) {
			f.CloseDelete()
			return nil
		}
		return f.ConfirmDelete(cmd.Context())
	},
}

var copyIDCmd = &cobra.Command{
	Use:   "copy-id <entidad> <id>",
	Short: "Copia el id del registro al portapapeles",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		sc, err := s.schema(args[0])
		if err != nil {
			return err
		}
		actions := form.CellActions{
			Schema:    sc,
			StoreID:   s.profile.Store,
			Transport: s.api,
			Notifier:  s.term,
			Navigator: s.term,
			Clipboard: s.term,
		}
		return actions.CopyID(args[1])
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Muestra categorías, tallas y colores disponibles para productos",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		if s.profile.Store == "" {
			return fmt.Errorf("sin tienda: usa --store o 'storectl stores use <id>'")
		}
		opts, err := s.api.LoadProductOptions(cmd.Context(), s.profile.Store)
		if err != nil {
			return err
		}
		sc, err := s.schema("product")
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, f := range sc.Fields {
			if f.Widget != form.WidgetSelect {
				continue
			}
			for _, o := range opts.BySource(f.Source) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, o.ID, o.Name)
			}
		}
		return w.Flush()
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Descarga el catálogo PDF de la tienda actual",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		pdf, err := s.api.CatalogPDF(cmd.Context(), s.profile.Store)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if err := os.WriteFile(out, pdf, 0o644); err != nil {
			return fmt.Errorf("guardando %s: %w", out, err)
		}
		s.term.Success(fmt.Sprintf("Catálogo guardado en %s (%d bytes)", out, len(pdf)))
		return nil
	},
}

func confirm(cmd *cobra.Command, prompt string) bool {
	color.New(color.FgYellow).Fprint(cmd.OutOrStdout(), prompt)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "s" || answer == "si" || answer == "sí" || answer == "y"
}

// parseValues convierte --set campo=valor según el widget del campo.
func parseValues(sc *form.Schema, sets []string) (form.Values, error) {
	widgets := make(map[string]form.Widget, len(sc.Fields))
	for _, f := range sc.Fields {
		widgets[f.Name] = f.Widget
	}
	values := form.Values{}
	for _, kv := range sets {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: se espera campo=valor", kv)
		}
		widget, known := widgets[name]
		if !known {
			return nil, fmt.Errorf("%s no tiene el campo %q", sc.Entity, name)
		}
		switch widget {
		case form.WidgetImages:
			values[name] = strings.Split(raw, ",")
		case form.WidgetCheckbox:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %q no es booleano", name, raw)
			}
			values[name] = b
		default:
			values[name] = raw
		}
	}
	return values, nil
}

// parseFilters --filter campo=valor a query string.
func parseFilters(filters []string) (map[string][]string, error) {
	q := map[string][]string{}
	for _, kv := range filters {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--filter %q: se espera campo=valor", kv)
		}
		q[name] = append(q[name], val)
	}
	return q, nil
}
