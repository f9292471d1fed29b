package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/prefiks/crown-controller/internal/keysym"
)

//go:embed schema.json
var schemaJSON []byte

var schema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("config.schema.json", bytes.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	s, err := c.Compile("config.schema.json")
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes a configuration document, checks it against the
// embedded schema and builds the typed model. The format is chosen by
// file extension; yaml, toml and json are supported.
func Parse(data []byte, ext string) (*Config, error) {
	tree, err := decodeTree(data, ext)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(tree); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return buildConfig(tree.(map[string]any))
}

func decodeTree(data []byte, ext string) (any, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return v, nil
	case ".toml":
		var v map[string]any
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return any(v), nil
	case ".json":
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("config: unsupported format %q", ext)
}

func buildConfig(tree map[string]any) (*Config, error) {
	cfg := &Config{
		Apps:   make(map[string]*AppMapping, len(tree)),
		byBase: make(map[string]*AppMapping, len(tree)),
	}
	for name, raw := range tree {
		appTree, _ := raw.(map[string]any)
		app, err := buildApp(appTree)
		if err != nil {
			return nil, fmt.Errorf("config: app %q: %w", name, err)
		}
		cfg.Apps[name] = app
	}

	names := make([]string, 0, len(cfg.Apps))
	for name := range cfg.Apps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if name == "global" {
			continue
		}
		base := name
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			base = name[i+1:]
		}
		if base == "" {
			continue
		}
		if _, ok := cfg.byBase[base]; !ok {
			cfg.byBase[base] = cfg.Apps[name]
		}
	}
	return cfg, nil
}

func buildApp(tree map[string]any) (*AppMapping, error) {
	app := &AppMapping{Mode: ModeRatcheted, Buttons: make(map[Modifier]*ButtonMapping)}
	if s, ok := tree["mode"].(string); ok {
		app.Mode = parseMode(s)
	}
	mapping, _ := tree["mapping"].(map[string]any)
	for key, raw := range mapping {
		btnTree, _ := raw.(map[string]any)
		btn, err := buildButton(btnTree)
		if err != nil {
			return nil, fmt.Errorf("mapping %s: %w", key, err)
		}
		app.Buttons[parseModifier(key)] = btn
	}
	return app, nil
}

func buildButton(tree map[string]any) (*ButtonMapping, error) {
	btn := &ButtonMapping{}
	if s, ok := tree["mode"].(string); ok {
		m := parseMode(s)
		btn.Mode = &m
	}
	for g := GestureTouch; g < gestureCount; g++ {
		list, _ := tree[g.String()].([]any)
		for _, item := range list {
			opTree, _ := item.(map[string]any)
			op, err := buildOperation(opTree)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", g, err)
			}
			btn.Ops[g] = append(btn.Ops[g], op)
		}
	}
	return btn, nil
}

func buildOperation(tree map[string]any) (Operation, error) {
	if spec, ok := tree["KeyPress"].(string); ok {
		ks, mods, err := ParseKeySpec(spec)
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpKeyPress, Keysym: ks, Modifiers: mods}, nil
	}
	if cmd, ok := tree["Execute"].(string); ok {
		return Operation{Kind: OpExecute, Command: cmd}, nil
	}
	return Operation{}, fmt.Errorf("unknown operation")
}

func parseMode(s string) RatchetMode {
	if s == "Free" {
		return ModeFree
	}
	return ModeRatcheted
}

func parseModifier(s string) Modifier {
	switch s {
	case "Shift":
		return ModShift
	case "Alt":
		return ModAlt
	case "Ctrl":
		return ModCtrl
	}
	return ModNone
}

// ParseKeySpec resolves a key specification like "ctrl+shift+t" into a
// keysym and an X11 modifier bitmask. The spec is lowercased first; the
// last '+'-separated token names the keysym, leading tokens add shift
// (1), ctrl (4) or alt (8). Unknown modifier tokens are ignored, an
// unknown keysym name is an error.
func ParseKeySpec(spec string) (uint32, uint8, error) {
	tokens := strings.Split(strings.ToLower(spec), "+")
	name := tokens[len(tokens)-1]
	ks, ok := keysym.Lookup(name)
	if !ok {
		return 0, 0, fmt.Errorf("unknown keysym %q", name)
	}
	var mods uint8
	for _, tok := range tokens[:len(tokens)-1] {
		switch tok {
		case "shift":
			mods |= 1
		case "ctrl":
			mods |= 4
		case "alt":
			mods |= 8
		}
	}
	return ks, mods, nil
}
