package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Profile credenciales y preferencias locales de storectl.
type Profile struct {
	API   string `toml:"api"`
	Token string `toml:"token"`
	Store string `toml:"store"`
}

const defaultAPI = "http://localhost:3000"

func defaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".storectl.toml"
	}
	return filepath.Join(dir, "storectl", "profile.toml")
}

// loadProfile lee el perfil; si no existe devuelve uno vacío apuntando a la API local.
func loadProfile(path string) (*Profile, error) {
	p := &Profile{API: defaultAPI}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leyendo perfil: %w", err)
	}
	if _, err := toml.Decode(os.ExpandEnv(string(data)), p); err != nil {
		return nil, fmt.Errorf("parseando perfil: %w", err)
	}
	if p.API == "" {
		p.API = defaultAPI
	}
	return p, nil
}

func saveProfile(path string, p *Profile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creando directorio del perfil: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("escribiendo perfil: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("codificando perfil: %w", err)
	}
	return nil
}
